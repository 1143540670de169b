package conversation

import (
	"errors"
	"strings"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

var (
	// ErrConversationIsNotConstructed is returned when a Conversation was not
	// created through the NewConversation or RestoreConversation factories.
	ErrConversationIsNotConstructed = errors.New("Conversation must be created via NewConversation constructor")

	// ErrSameParticipant is returned when both sides of a conversation are
	// the same user.
	ErrSameParticipant = errors.New("conversation participants must be different users")

	// ErrNotParticipant is returned when a user outside the conversation
	// tries to act on it.
	ErrNotParticipant = errors.New("user is not a participant of the conversation")
)

const previewLimit = 120

// Conversation is a chat thread between two marketplace users, optionally
// tied to a listing. The participant pair is unordered: participants are kept
// in canonical order so the same two users (plus listing) always map to the
// same thread.
//
// The aggregate tracks a per-participant unread count and a preview of the
// last message for conversation lists.
type Conversation struct {
	id            kernel.UUID
	participantA  kernel.UUID
	participantB  kernel.UUID
	listingID     *kernel.UUID
	unreadA       int
	unreadB       int
	lastMessage   string
	lastMessageAt *time.Time
	createdAt     time.Time

	isConstructed bool
}

// NewConversation creates a conversation between two distinct users.
// The participant order does not matter; the pair is canonicalized.
func NewConversation(id, first, second kernel.UUID, listingID *kernel.UUID) (*Conversation, error) {
	c := &Conversation{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setParticipants(first, second),
		c.setListingID(listingID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreConversation reconstructs a Conversation from persistence.
func RestoreConversation(
	id, first, second kernel.UUID,
	listingID *kernel.UUID,
	unreadFirst, unreadSecond int,
	lastMessage string,
	lastMessageAt *time.Time,
	createdAt time.Time,
) (*Conversation, error) {
	c, err := NewConversation(id, first, second, listingID)
	if err != nil {
		return nil, err
	}
	if unreadFirst < 0 || unreadSecond < 0 {
		return nil, errs.NewValueIsInvalidError("unread count")
	}

	// Unread counts arrive in the caller's participant order; store them in
	// canonical order.
	if c.participantA.IsEqual(first) {
		c.unreadA, c.unreadB = unreadFirst, unreadSecond
	} else {
		c.unreadA, c.unreadB = unreadSecond, unreadFirst
	}
	c.lastMessage = lastMessage
	c.lastMessageAt = lastMessageAt
	c.createdAt = createdAt
	return c, nil
}

// Validate ensures the Conversation instance was properly constructed.
func (c *Conversation) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConversationIsNotConstructed
	}
	return nil
}

// ID returns the conversation's unique identifier.
func (c *Conversation) ID() kernel.UUID {
	return c.id
}

// Participants returns the two participants in canonical order.
func (c *Conversation) Participants() (kernel.UUID, kernel.UUID) {
	return c.participantA, c.participantB
}

// ListingID returns the listing the thread is about, or nil.
func (c *Conversation) ListingID() *kernel.UUID {
	return c.listingID
}

// LastMessage returns a preview of the most recent message.
func (c *Conversation) LastMessage() string {
	return c.lastMessage
}

// LastMessageAt returns when the most recent message was sent, or nil.
func (c *Conversation) LastMessageAt() *time.Time {
	return c.lastMessageAt
}

// CreatedAt returns when the thread was started.
func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}

// HasParticipant reports whether the user belongs to the conversation.
func (c *Conversation) HasParticipant(userID kernel.UUID) bool {
	return c.participantA.IsEqual(userID) || c.participantB.IsEqual(userID)
}

// OtherParticipant returns the participant opposite the given user.
func (c *Conversation) OtherParticipant(userID kernel.UUID) (kernel.UUID, error) {
	switch {
	case c.participantA.IsEqual(userID):
		return c.participantB, nil
	case c.participantB.IsEqual(userID):
		return c.participantA, nil
	default:
		return kernel.UUID{}, ErrNotParticipant
	}
}

// UnreadFor returns the unread message count for the given participant.
func (c *Conversation) UnreadFor(userID kernel.UUID) (int, error) {
	switch {
	case c.participantA.IsEqual(userID):
		return c.unreadA, nil
	case c.participantB.IsEqual(userID):
		return c.unreadB, nil
	default:
		return 0, ErrNotParticipant
	}
}

// RecordMessage registers a message sent by a participant: the other side's
// unread count grows and the last-message preview is refreshed.
func (c *Conversation) RecordMessage(senderID kernel.UUID, body string, sentAt time.Time) error {
	if !c.HasParticipant(senderID) {
		return ErrNotParticipant
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}

	if c.participantA.IsEqual(senderID) {
		c.unreadB++
	} else {
		c.unreadA++
	}

	if len(body) > previewLimit {
		body = body[:previewLimit]
	}
	c.lastMessage = body
	c.lastMessageAt = &sentAt
	return nil
}

// MarkRead clears the unread count for the given participant.
func (c *Conversation) MarkRead(userID kernel.UUID) error {
	switch {
	case c.participantA.IsEqual(userID):
		c.unreadA = 0
	case c.participantB.IsEqual(userID):
		c.unreadB = 0
	default:
		return ErrNotParticipant
	}
	return nil
}

func (c *Conversation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Conversation) setParticipants(first, second kernel.UUID) error {
	if err := first.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("participant", err)
	}
	if err := second.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("participant", err)
	}
	if first.IsEqual(second) {
		return ErrSameParticipant
	}

	c.participantA, c.participantB = CanonicalPair(first, second)
	return nil
}

func (c *Conversation) setListingID(listingID *kernel.UUID) error {
	if listingID == nil {
		return nil
	}
	if err := listingID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("listingID", err)
	}
	id := *listingID
	c.listingID = &id
	return nil
}

// CanonicalPair orders two participant ids deterministically, so the
// unordered pair always persists and queries the same way.
func CanonicalPair(x, y kernel.UUID) (kernel.UUID, kernel.UUID) {
	if strings.Compare(x.String(), y.String()) <= 0 {
		return x, y
	}
	return y, x
}
