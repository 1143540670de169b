package conversation

import (
	"errors"
	"strings"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned when a Message instance was not
// created through the NewMessage or RestoreMessage factory methods.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Message is a single chat message inside a conversation.
type Message struct {
	id             kernel.UUID
	conversationID kernel.UUID
	senderID       kernel.UUID
	body           string
	sentAt         time.Time
	read           bool

	isConstructed bool
}

// NewMessage creates an unread message with validation.
func NewMessage(id, conversationID, senderID kernel.UUID, body string) (*Message, error) {
	m := &Message{
		sentAt:        time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setConversationID(conversationID),
		m.setSenderID(senderID),
		m.setBody(body),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMessage reconstructs a Message from persistence.
func RestoreMessage(id, conversationID, senderID kernel.UUID, body string, sentAt time.Time, read bool) (*Message, error) {
	m, err := NewMessage(id, conversationID, senderID, body)
	if err != nil {
		return nil, err
	}

	m.sentAt = sentAt
	m.read = read
	return m, nil
}

// Validate ensures the Message instance was properly constructed.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message's unique identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// ConversationID returns the conversation the message belongs to.
func (m *Message) ConversationID() kernel.UUID {
	return m.conversationID
}

// SenderID returns the participant who sent the message.
func (m *Message) SenderID() kernel.UUID {
	return m.senderID
}

// Body returns the message text.
func (m *Message) Body() string {
	return m.body
}

// SentAt returns when the message was sent.
func (m *Message) SentAt() time.Time {
	return m.sentAt
}

// IsRead reports whether the recipient has read the message.
func (m *Message) IsRead() bool {
	return m.read
}

// MarkRead flags the message as read by the recipient.
func (m *Message) MarkRead() {
	m.read = true
}

func (m *Message) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Message) setConversationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("conversationID", err)
	}
	m.conversationID = id
	return nil
}

func (m *Message) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderID", err)
	}
	m.senderID = id
	return nil
}

func (m *Message) setBody(body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}
	m.body = body
	return nil
}
