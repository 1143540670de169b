package http

import (
	"net/http"
	"strconv"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/listing"

	"github.com/labstack/echo/v4"
)

type createListingRequest struct {
	ListingType string   `json:"listingType"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	District    string   `json:"district"`
	State       string   `json:"state"`
	Images      []string `json:"images"`

	Quantity     *float64 `json:"quantity"`
	QuantityUnit string   `json:"quantityUnit"`
	Category     string   `json:"category"`
	Grade        string   `json:"grade"`

	AnimalType   string `json:"animalType"`
	Breed        string `json:"breed"`
	HealthStatus string `json:"healthStatus"`
	Count        int    `json:"count"`

	AreaAcres float64 `json:"areaAcres"`
	LandType  string  `json:"landType"`
}

type createListingResponse struct {
	ID string `json:"id"`
}

// CreateListing handles POST /api/v1/listings.
func (s *Server) CreateListing(ctx echo.Context) error {
	actorID, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	var req createListingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	listingType, err := listing.TypeFromString(req.ListingType)
	if err != nil {
		return domainError(ctx, err)
	}
	price, err := kernel.NewPrice(req.Price)
	if err != nil {
		return domainError(ctx, err)
	}
	location, err := kernel.NewLocation(req.District, req.State)
	if err != nil {
		return domainError(ctx, err)
	}

	var quantity *listing.Quantity
	var crop *listing.CropDetails
	var livestock *listing.LivestockDetails
	var land *listing.LandDetails

	switch listingType {
	case listing.TypeCrop:
		unit, unitErr := listing.UnitFromString(req.QuantityUnit)
		if unitErr != nil {
			return domainError(ctx, unitErr)
		}
		var value float64
		if req.Quantity != nil {
			value = *req.Quantity
		}
		q, qErr := listing.NewQuantity(value, unit)
		if qErr != nil {
			return domainError(ctx, qErr)
		}
		quantity = &q
		crop = &listing.CropDetails{Category: req.Category, Grade: req.Grade}
	case listing.TypeLivestock:
		livestock = &listing.LivestockDetails{
			AnimalType:   req.AnimalType,
			Breed:        req.Breed,
			HealthStatus: req.HealthStatus,
			Count:        req.Count,
		}
	case listing.TypeLand:
		land = &listing.LandDetails{AreaAcres: req.AreaAcres, LandType: req.LandType}
	case listing.TypeUnknown:
		// Unreachable: TypeFromString rejects unknown types.
	}

	listingID := kernel.NewUUID()
	cmd, err := commands.NewCreateListingCommand(
		listingID, actorID, listingType,
		req.Title, req.Description, price, location, req.Images,
		quantity, crop, livestock, land,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.createListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createListingResponse{ID: listingID.String()})
}

type listingResponse struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"ownerId"`
	ListingType string   `json:"listingType"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	District    string   `json:"district"`
	State       string   `json:"state"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`

	Quantity     *float64 `json:"quantity,omitempty"`
	QuantityUnit string   `json:"quantityUnit,omitempty"`
	Category     string   `json:"category,omitempty"`
	Grade        string   `json:"grade,omitempty"`

	AnimalType   string `json:"animalType,omitempty"`
	Breed        string `json:"breed,omitempty"`
	HealthStatus string `json:"healthStatus,omitempty"`
	Count        int    `json:"count,omitempty"`

	AreaAcres float64 `json:"areaAcres,omitempty"`
	LandType  string  `json:"landType,omitempty"`
}

func toListingResponse(row queries.SearchListingsQueryResponse) listingResponse {
	resp := listingResponse{
		ID:          row.ID.String(),
		OwnerID:     row.OwnerID.String(),
		ListingType: row.ListingType,
		Title:       row.Title,
		Description: row.Description,
		Price:       row.Price,
		District:    row.District,
		State:       row.State,
		Status:      row.Status,
		CreatedAt:   formatTime(row.CreatedAt),
	}

	switch row.ListingType {
	case listing.TypeCrop.String():
		quantity := row.QuantityValue
		resp.Quantity = &quantity
		resp.QuantityUnit = row.QuantityUnit
		resp.Category = row.Category
		resp.Grade = row.Grade
	case listing.TypeLivestock.String():
		resp.AnimalType = row.AnimalType
		resp.Breed = row.Breed
		resp.HealthStatus = row.HealthStatus
		resp.Count = row.Count
	case listing.TypeLand.String():
		resp.AreaAcres = row.AreaAcres
		resp.LandType = row.LandType
	}

	return resp
}

// SearchListings handles GET /api/v1/listings.
func (s *Server) SearchListings(ctx echo.Context) error {
	filters := queries.SearchListingsFilters{
		District:   ctx.QueryParam("district"),
		State:      ctx.QueryParam("state"),
		Category:   ctx.QueryParam("category"),
		Grade:      ctx.QueryParam("grade"),
		AnimalType: ctx.QueryParam("animalType"),
		LandType:   ctx.QueryParam("landType"),
	}

	if raw := ctx.QueryParam("type"); raw != "" {
		t, err := listing.TypeFromString(raw)
		if err != nil {
			return domainError(ctx, err)
		}
		filters.ListingType = &t
	}
	if raw := ctx.QueryParam("status"); raw != "" {
		st, err := listing.StatusFromString(raw)
		if err != nil {
			return domainError(ctx, err)
		}
		filters.Status = &st
	}
	if raw := ctx.QueryParam("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(ctx, "minPrice must be a number")
		}
		filters.MinPrice = &v
	}
	if raw := ctx.QueryParam("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(ctx, "maxPrice must be a number")
		}
		filters.MaxPrice = &v
	}
	if raw := ctx.QueryParam("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "page must be an integer")
		}
		filters.Page = v
	}
	if raw := ctx.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "limit must be an integer")
		}
		filters.Limit = v
	}

	query, err := queries.NewSearchListingsQuery(filters)
	if err != nil {
		return domainError(ctx, err)
	}

	rows, err := s.searchListingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]listingResponse, len(rows))
	for i, row := range rows {
		response[i] = toListingResponse(row)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetListing handles GET /api/v1/listings/:id.
func (s *Server) GetListing(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid listing id")
	}

	query, err := queries.NewGetListingQuery(listingID)
	if err != nil {
		return domainError(ctx, err)
	}

	row, err := s.getListingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toListingResponse(row))
}

type updateListingRequest struct {
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
	Status      *string  `json:"status"`
}

// UpdateListing handles PUT /api/v1/listings/:id.
func (s *Server) UpdateListing(ctx echo.Context) error {
	actorID, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid listing id")
	}

	var req updateListingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var price *kernel.Price
	if req.Price != nil {
		p, priceErr := kernel.NewPrice(*req.Price)
		if priceErr != nil {
			return domainError(ctx, priceErr)
		}
		price = &p
	}

	var status *listing.Status
	if req.Status != nil {
		st, statusErr := listing.StatusFromString(*req.Status)
		if statusErr != nil {
			return domainError(ctx, statusErr)
		}
		status = &st
	}

	cmd, err := commands.NewUpdateListingCommand(listingID, actorID, price, req.Description, req.Images, status)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.updateListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteListing handles DELETE /api/v1/listings/:id.
func (s *Server) DeleteListing(ctx echo.Context) error {
	actorID, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid listing id")
	}

	cmd, err := commands.NewDeleteListingCommand(listingID, actorID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.deleteListingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
