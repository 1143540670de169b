package http

import (
	"net/http"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type startConversationRequest struct {
	RecipientID string `json:"recipientId"`
	ListingID   string `json:"listingId"`
	Body        string `json:"body"`
}

type startConversationResponse struct {
	ID        string `json:"id"`
	MessageID string `json:"messageId"`
}

// StartConversation handles POST /api/v1/conversations.
func (s *Server) StartConversation(ctx echo.Context) error {
	actorID, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	var req startConversationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	recipientID, err := kernel.UUIDFromString(req.RecipientID)
	if err != nil {
		return badRequest(ctx, "invalid recipient id")
	}

	var listingID *kernel.UUID
	if req.ListingID != "" {
		id, idErr := kernel.UUIDFromString(req.ListingID)
		if idErr != nil {
			return badRequest(ctx, "invalid listing id")
		}
		listingID = &id
	}

	conversationID := kernel.NewUUID()
	messageID := kernel.NewUUID()
	cmd, err := commands.NewStartConversationCommand(conversationID, messageID, actorID, recipientID, listingID, req.Body)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.startConversationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, startConversationResponse{
		ID:        conversationID.String(),
		MessageID: messageID.String(),
	})
}

type conversationResponse struct {
	ID               string  `json:"id"`
	OtherParticipant string  `json:"otherParticipant"`
	ListingID        *string `json:"listingId,omitempty"`
	LastMessage      string  `json:"lastMessage,omitempty"`
	LastMessageAt    *string `json:"lastMessageAt,omitempty"`
	Unread           int     `json:"unread"`
	CreatedAt        string  `json:"createdAt"`
}

// GetConversations handles GET /api/v1/conversations.
func (s *Server) GetConversations(ctx echo.Context) error {
	actorID, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	query, err := queries.NewGetConversationsQuery(actorID)
	if err != nil {
		return domainError(ctx, err)
	}

	rows, err := s.getConversationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]conversationResponse, len(rows))
	for i, row := range rows {
		resp := conversationResponse{
			ID:               row.ID.String(),
			OtherParticipant: row.OtherParticipant.String(),
			LastMessage:      row.LastMessage,
			LastMessageAt:    formatOptionalTime(row.LastMessageAt),
			Unread:           row.Unread,
			CreatedAt:        formatTime(row.CreatedAt),
		}
		if row.ListingID != nil {
			listingID := row.ListingID.String()
			resp.ListingID = &listingID
		}
		response[i] = resp
	}
	return ctx.JSON(http.StatusOK, response)
}

type messageResponse struct {
	ID       string `json:"id"`
	SenderID string `json:"senderId"`
	Body     string `json:"body"`
	SentAt   string `json:"sentAt"`
	Read     bool   `json:"read"`
}

// GetMessages handles GET /api/v1/conversations/:id/messages.
func (s *Server) GetMessages(ctx echo.Context) error {
	actorID, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	conversationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid conversation id")
	}

	query, err := queries.NewGetMessagesQuery(conversationID, actorID)
	if err != nil {
		return domainError(ctx, err)
	}

	rows, err := s.getMessagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]messageResponse, len(rows))
	for i, row := range rows {
		response[i] = messageResponse{
			ID:       row.ID.String(),
			SenderID: row.SenderID.String(),
			Body:     row.Body,
			SentAt:   formatTime(row.SentAt),
			Read:     row.Read,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

type sendMessageRequest struct {
	Body string `json:"body"`
}

type sendMessageResponse struct {
	ID string `json:"id"`
}

// SendMessage handles POST /api/v1/conversations/:id/messages.
func (s *Server) SendMessage(ctx echo.Context) error {
	actorID, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	conversationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid conversation id")
	}

	var req sendMessageRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	messageID := kernel.NewUUID()
	cmd, err := commands.NewSendMessageCommand(messageID, conversationID, actorID, req.Body)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.sendMessageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, sendMessageResponse{ID: messageID.String()})
}

// MarkConversationRead handles PUT /api/v1/conversations/:id/read.
func (s *Server) MarkConversationRead(ctx echo.Context) error {
	actorID, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	conversationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid conversation id")
	}

	cmd, err := commands.NewMarkConversationReadCommand(conversationID, actorID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err = s.markConversationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
