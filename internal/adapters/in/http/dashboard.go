package http

import (
	"net/http"

	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/listing"

	"github.com/labstack/echo/v4"
)

type dashboardResponse struct {
	TotalListings    int            `json:"totalListings"`
	ListingsByStatus map[string]int `json:"listingsByStatus"`
	TotalOrders      int            `json:"totalOrders"`
	OrdersByStatus   map[string]int `json:"ordersByStatus"`
	CompletedRevenue float64        `json:"completedRevenue"`
	UnreadMessages   int            `json:"unreadMessages"`
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	actorID, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	query, err := queries.NewGetDashboardSummaryQuery(actorID)
	if err != nil {
		return domainError(ctx, err)
	}

	summary, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dashboardResponse{
		TotalListings:    summary.TotalListings,
		ListingsByStatus: summary.ListingsByStatus,
		TotalOrders:      summary.TotalOrders,
		OrdersByStatus:   summary.OrdersByStatus,
		CompletedRevenue: summary.CompletedRevenue,
		UnreadMessages:   summary.UnreadMessages,
	})
}

type priceSuggestionResponse struct {
	Suggested float64 `json:"suggested"`
	Low       float64 `json:"low"`
	High      float64 `json:"high"`
	Unit      string  `json:"unit"`
	Rationale string  `json:"rationale"`
}

// GetPriceSuggestion handles GET /api/v1/advisor/price. It is a public
// endpoint so farmers can check prices before registering.
func (s *Server) GetPriceSuggestion(ctx echo.Context) error {
	listingType, err := listing.TypeFromString(ctx.QueryParam("type"))
	if err != nil {
		return domainError(ctx, err)
	}

	unit := listing.UnitUnknown
	if raw := ctx.QueryParam("unit"); raw != "" {
		if unit, err = listing.UnitFromString(raw); err != nil {
			return domainError(ctx, err)
		}
	}

	query, err := queries.NewGetPriceSuggestionQuery(
		listingType,
		ctx.QueryParam("category"),
		ctx.QueryParam("grade"),
		unit,
		ctx.QueryParam("animalType"),
		ctx.QueryParam("landType"),
	)
	if err != nil {
		return domainError(ctx, err)
	}

	suggestion, err := s.getPriceSuggestionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, priceSuggestionResponse{
		Suggested: suggestion.Suggested,
		Low:       suggestion.Low,
		High:      suggestion.High,
		Unit:      suggestion.Unit,
		Rationale: suggestion.Rationale,
	})
}
