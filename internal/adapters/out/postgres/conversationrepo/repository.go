package conversationrepo

import (
	"context"
	"errors"

	"farmmarket/internal/core/domain/model/conversation"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormConversationRepository implements ConversationRepository using GORM.
type GormConversationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormConversationRepository creates a new GORM conversation repository.
func NewGormConversationRepository(db *gorm.DB, tracker aggregateTracker) *GormConversationRepository {
	return &GormConversationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new conversation to the database.
func (r *GormConversationRepository) Add(ctx context.Context, aggregate *conversation.Conversation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing conversation to the database.
func (r *GormConversationRepository) Update(ctx context.Context, aggregate *conversation.Conversation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ConversationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a conversation by ID.
func (r *GormConversationRepository) Get(ctx context.Context, id kernel.UUID) (*conversation.Conversation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ConversationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("conversation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByParticipants retrieves the thread between two users about an optional
// listing. The pair is canonicalized before lookup, so argument order does
// not matter.
func (r *GormConversationRepository) GetByParticipants(
	ctx context.Context,
	first, second kernel.UUID,
	listingID *kernel.UUID,
) (*conversation.Conversation, error) {
	if err := errors.Join(first.Validate(), second.Validate()); err != nil {
		return nil, err
	}

	a, b := conversation.CanonicalPair(first, second)

	query := r.db.WithContext(ctx).
		Where("participant_a = ? AND participant_b = ?", a.Bytes(), b.Bytes())
	if listingID != nil {
		query = query.Where("listing_id = ?", listingID.Bytes())
	} else {
		query = query.Where("listing_id IS NULL")
	}

	var dto ConversationDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("conversation", a.String()+"/"+b.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddMessage saves a message belonging to a conversation.
func (r *GormConversationRepository) AddMessage(ctx context.Context, message *conversation.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := messageFromDomain(message)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetMessages retrieves all messages of a conversation, oldest first.
func (r *GormConversationRepository) GetMessages(
	ctx context.Context,
	conversationID kernel.UUID,
) ([]*conversation.Message, error) {
	if err := conversationID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID.Bytes()).
		Order("sent_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*conversation.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, mErr := messageToDomain(dto)
		if mErr != nil {
			return nil, mErr
		}
		messages = append(messages, m)
	}

	return messages, nil
}

// MarkMessagesRead marks every message not sent by readerID as read.
func (r *GormConversationRepository) MarkMessagesRead(ctx context.Context, conversationID, readerID kernel.UUID) error {
	if err := errors.Join(conversationID.Validate(), readerID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = false",
			conversationID.Bytes(), readerID.Bytes()).
		Update("is_read", true).Error
}
