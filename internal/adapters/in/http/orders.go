package http

import (
	"net/http"
	"strconv"
	"time"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	ListingID    string  `json:"listingId"`
	Quantity     float64 `json:"quantity"`
	Message      string  `json:"message"`
	ContactName  string  `json:"contactName"`
	ContactEmail string  `json:"contactEmail"`
	ContactPhone string  `json:"contactPhone"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	listingID, err := kernel.UUIDFromString(req.ListingID)
	if err != nil {
		return badRequest(ctx, "invalid listing id")
	}

	contact, err := order.NewBuyerContact(req.ContactName, req.ContactEmail, req.ContactPhone)
	if err != nil {
		return domainError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actorID, listingID, req.Quantity, req.Message, contact)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{ID: orderID.String()})
}

type orderResponse struct {
	ID           string  `json:"id"`
	BuyerID      string  `json:"buyerId"`
	SellerID     string  `json:"sellerId"`
	ListingID    string  `json:"listingId"`
	ListingType  string  `json:"listingType"`
	Quantity     float64 `json:"quantity"`
	TotalPrice   float64 `json:"totalPrice"`
	Message      string  `json:"message,omitempty"`
	ContactName  string  `json:"contactName"`
	ContactEmail string  `json:"contactEmail"`
	ContactPhone string  `json:"contactPhone"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
	RespondedAt  *string `json:"respondedAt,omitempty"`
	CompletedAt  *string `json:"completedAt,omitempty"`
}

func toOrderResponse(row queries.GetOrdersQueryResponse) orderResponse {
	return orderResponse{
		ID:           row.ID.String(),
		BuyerID:      row.BuyerID.String(),
		SellerID:     row.SellerID.String(),
		ListingID:    row.ListingID.String(),
		ListingType:  row.ListingType,
		Quantity:     row.Quantity,
		TotalPrice:   row.TotalPrice,
		Message:      row.Message,
		ContactName:  row.ContactName,
		ContactEmail: row.ContactEmail,
		ContactPhone: row.ContactPhone,
		Status:       row.Status,
		CreatedAt:    formatTime(row.CreatedAt),
		RespondedAt:  formatOptionalTime(row.RespondedAt),
		CompletedAt:  formatOptionalTime(row.CompletedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := formatTime(*t)
	return &formatted
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	actorID, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	side := queries.SideAny
	switch ctx.QueryParam("side") {
	case "", "any":
	case "buyer":
		side = queries.SideBuyer
	case "seller":
		side = queries.SideSeller
	default:
		return badRequest(ctx, "side must be one of: any, buyer, seller")
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		st, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return domainError(ctx, statusErr)
		}
		status = &st
	}

	var page, limit int
	if raw := ctx.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return badRequest(ctx, "page must be an integer")
		}
	}
	if raw := ctx.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return badRequest(ctx, "limit must be an integer")
		}
	}

	query, err := queries.NewGetOrdersQuery(actorID, side, status, page, limit)
	if err != nil {
		return domainError(ctx, err)
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]orderResponse, len(rows))
	for i, row := range rows {
		response[i] = toOrderResponse(row)
	}
	return ctx.JSON(http.StatusOK, response)
}

type transitionOrderRequest struct {
	Status string `json:"status"`
}

// TransitionOrder handles PUT /api/v1/orders/:id.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actorID, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req transitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return domainError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, actorID, target)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
