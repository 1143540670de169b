// Package conversationrepo provides data transfer objects and mapping
// functions for conversation and message persistence.
package conversationrepo

import (
	"time"

	"farmmarket/internal/core/domain/model/conversation"
	"farmmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ConversationDTO represents the database structure for persisting
// conversation aggregates. Participants are stored in the aggregate's
// canonical order, so a pair always maps to the same row.
type ConversationDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParticipantA  uuid.UUID  `gorm:"type:uuid;index:idx_conversations_pair"`
	ParticipantB  uuid.UUID  `gorm:"type:uuid;index:idx_conversations_pair"`
	ListingID     *uuid.UUID `gorm:"type:uuid;index"`
	UnreadA       int
	UnreadB       int
	LastMessage   string
	LastMessageAt *time.Time
	CreatedAt     time.Time
}

// TableName specifies the database table name for conversation entities.
func (ConversationDTO) TableName() string {
	return "conversations"
}

// MessageDTO represents the database structure for persisting messages.
type MessageDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConversationID uuid.UUID `gorm:"type:uuid;index"`
	SenderID       uuid.UUID `gorm:"type:uuid"`
	Body           string
	SentAt         time.Time
	IsRead         bool
}

// TableName specifies the database table name for message entities.
func (MessageDTO) TableName() string {
	return "messages"
}

// fromDomain converts a conversation aggregate to its database representation.
func fromDomain(c *conversation.Conversation) ConversationDTO {
	first, second := c.Participants()

	var listingID *uuid.UUID
	if id := c.ListingID(); id != nil {
		raw := id.Bytes()
		listingID = &raw
	}

	unreadFirst, _ := c.UnreadFor(first)
	unreadSecond, _ := c.UnreadFor(second)

	return ConversationDTO{
		ID:            c.ID().Bytes(),
		ParticipantA:  first.Bytes(),
		ParticipantB:  second.Bytes(),
		ListingID:     listingID,
		UnreadA:       unreadFirst,
		UnreadB:       unreadSecond,
		LastMessage:   c.LastMessage(),
		LastMessageAt: c.LastMessageAt(),
		CreatedAt:     c.CreatedAt(),
	}
}

// toDomain converts a database DTO to a conversation aggregate.
func toDomain(dto ConversationDTO) (*conversation.Conversation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	first, err := kernel.UUIDFromBytes(dto.ParticipantA[:])
	if err != nil {
		return nil, err
	}

	second, err := kernel.UUIDFromBytes(dto.ParticipantB[:])
	if err != nil {
		return nil, err
	}

	var listingID *kernel.UUID
	if dto.ListingID != nil {
		lID, listingErr := kernel.UUIDFromBytes((*dto.ListingID)[:])
		if listingErr != nil {
			return nil, listingErr
		}
		listingID = &lID
	}

	return conversation.RestoreConversation(
		id, first, second, listingID,
		dto.UnreadA, dto.UnreadB,
		dto.LastMessage, dto.LastMessageAt, dto.CreatedAt,
	)
}

// messageFromDomain converts a message entity to its database representation.
func messageFromDomain(m *conversation.Message) MessageDTO {
	return MessageDTO{
		ID:             m.ID().Bytes(),
		ConversationID: m.ConversationID().Bytes(),
		SenderID:       m.SenderID().Bytes(),
		Body:           m.Body(),
		SentAt:         m.SentAt(),
		IsRead:         m.IsRead(),
	}
}

// messageToDomain converts a database DTO to a message entity.
func messageToDomain(dto MessageDTO) (*conversation.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	conversationID, err := kernel.UUIDFromBytes(dto.ConversationID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	return conversation.RestoreMessage(id, conversationID, senderID, dto.Body, dto.SentAt, dto.IsRead)
}
