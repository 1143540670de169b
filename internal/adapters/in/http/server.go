// Package http exposes the marketplace over a JSON REST API built on echo.
//
// The acting user is taken from a bearer token when one is presented, or from
// the x-user-id header otherwise. Domain errors are mapped onto HTTP status
// codes in one place so handlers stay thin.
package http

import (
	"errors"
	"net/http"
	"strings"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/conversation"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorHeader = "x-user-id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler         commands.RegisterUserCommandHandler
	createListingHandler        commands.CreateListingCommandHandler
	updateListingHandler        commands.UpdateListingCommandHandler
	deleteListingHandler        commands.DeleteListingCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	transitionOrderHandler      commands.TransitionOrderCommandHandler
	startConversationHandler    commands.StartConversationCommandHandler
	sendMessageHandler          commands.SendMessageCommandHandler
	markConversationReadHandler commands.MarkConversationReadCommandHandler

	// Query handlers
	searchListingsHandler      queries.SearchListingsQueryHandler
	getListingHandler          queries.GetListingQueryHandler
	getOrdersHandler           queries.GetOrdersQueryHandler
	getConversationsHandler    queries.GetConversationsQueryHandler
	getMessagesHandler         queries.GetMessagesQueryHandler
	getDashboardHandler        queries.GetDashboardSummaryQueryHandler
	getAuthTokenHandler        queries.GetAuthTokenQueryHandler
	getPriceSuggestionHandler  queries.GetPriceSuggestionQueryHandler

	tokenService ports.TokenService
}

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	RegisterUser         commands.RegisterUserCommandHandler
	CreateListing        commands.CreateListingCommandHandler
	UpdateListing        commands.UpdateListingCommandHandler
	DeleteListing        commands.DeleteListingCommandHandler
	CreateOrder          commands.CreateOrderCommandHandler
	TransitionOrder      commands.TransitionOrderCommandHandler
	StartConversation    commands.StartConversationCommandHandler
	SendMessage          commands.SendMessageCommandHandler
	MarkConversationRead commands.MarkConversationReadCommandHandler

	SearchListings     queries.SearchListingsQueryHandler
	GetListing         queries.GetListingQueryHandler
	GetOrders          queries.GetOrdersQueryHandler
	GetConversations   queries.GetConversationsQueryHandler
	GetMessages        queries.GetMessagesQueryHandler
	GetDashboard       queries.GetDashboardSummaryQueryHandler
	GetAuthToken       queries.GetAuthTokenQueryHandler
	GetPriceSuggestion queries.GetPriceSuggestionQueryHandler
}

// NewServer creates the HTTP server for the given handlers and token service.
func NewServer(handlers Handlers, tokenService ports.TokenService) *Server {
	return &Server{
		registerUserHandler:         handlers.RegisterUser,
		createListingHandler:        handlers.CreateListing,
		updateListingHandler:        handlers.UpdateListing,
		deleteListingHandler:        handlers.DeleteListing,
		createOrderHandler:          handlers.CreateOrder,
		transitionOrderHandler:      handlers.TransitionOrder,
		startConversationHandler:    handlers.StartConversation,
		sendMessageHandler:          handlers.SendMessage,
		markConversationReadHandler: handlers.MarkConversationRead,
		searchListingsHandler:       handlers.SearchListings,
		getListingHandler:           handlers.GetListing,
		getOrdersHandler:            handlers.GetOrders,
		getConversationsHandler:     handlers.GetConversations,
		getMessagesHandler:          handlers.GetMessages,
		getDashboardHandler:         handlers.GetDashboard,
		getAuthTokenHandler:         handlers.GetAuthToken,
		getPriceSuggestionHandler:   handlers.GetPriceSuggestion,
		tokenService:                tokenService,
	}
}

// RegisterRoutes wires the API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/users", s.RegisterUser)
	v1.POST("/auth/login", s.Login)

	v1.POST("/listings", s.CreateListing)
	v1.GET("/listings", s.SearchListings)
	v1.GET("/listings/:id", s.GetListing)
	v1.PUT("/listings/:id", s.UpdateListing)
	v1.DELETE("/listings/:id", s.DeleteListing)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.PUT("/orders/:id", s.TransitionOrder)

	v1.POST("/conversations", s.StartConversation)
	v1.GET("/conversations", s.GetConversations)
	v1.GET("/conversations/:id/messages", s.GetMessages)
	v1.POST("/conversations/:id/messages", s.SendMessage)
	v1.PUT("/conversations/:id/read", s.MarkConversationRead)

	v1.GET("/dashboard", s.GetDashboard)
	v1.GET("/advisor/price", s.GetPriceSuggestion)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// actor resolves the acting user from the request. A bearer token wins over
// the x-user-id header.
func (s *Server) actor(ctx echo.Context) (kernel.UUID, error) {
	authorization := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authorization, "Bearer "); ok {
		subject, err := s.tokenService.Verify(strings.TrimSpace(token))
		if err != nil {
			return kernel.UUID{}, err
		}
		return kernel.UUIDFromString(subject)
	}

	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewNotAuthorizedError("anonymous", "use this endpoint")
	}
	return kernel.UUIDFromString(raw)
}

// unauthorized replies 401; used when the actor could not be established.
func unauthorized(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, errorResponse{
		Code:    http.StatusUnauthorized,
		Message: err.Error(),
	})
}

// badRequest replies 400 for malformed request bodies or parameters.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application errors onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotAuthorized), errors.Is(err, conversation.ErrNotParticipant):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, order.ErrSelfOrder):
		code = http.StatusConflict
	case errors.Is(err, conversation.ErrSameParticipant):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}
