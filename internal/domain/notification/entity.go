package notification

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle   = errors.New("notification title cannot be empty")
	ErrEmptyMessage = errors.New("notification message cannot be empty")
	ErrInvalidType  = errors.New("invalid notification type")
)

type Type string

const (
	TypeAppointment Type = "APPOINTMENT"
	TypeClient      Type = "CLIENT"
	TypeService     Type = "SERVICE"
	TypeSystem      Type = "SYSTEM"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeAppointment, TypeClient, TypeService, TypeSystem:
		return true
	default:
		return false
	}
}

// Notification is one entry of the backoffice activity feed.
type Notification struct {
	id        uuid.UUID
	kind      Type
	title     string
	message   string
	icon      string
	actionURL string
	read      bool
	createdAt time.Time
}

func NewNotification(kind Type, title, message, icon, actionURL string) (*Notification, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidType
	}
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if message == "" {
		return nil, ErrEmptyMessage
	}

	return &Notification{
		id:        uuid.New(),
		kind:      kind,
		title:     title,
		message:   message,
		icon:      icon,
		actionURL: actionURL,
	}, nil
}

func ReconstructNotification(id uuid.UUID, kind Type, title, message, icon, actionURL string, read bool, createdAt time.Time) *Notification {
	return &Notification{
		id:        id,
		kind:      kind,
		title:     title,
		message:   message,
		icon:      icon,
		actionURL: actionURL,
		read:      read,
		createdAt: createdAt,
	}
}

func (n *Notification) MarkRead() { n.read = true }

func (n *Notification) ID() uuid.UUID        { return n.id }
func (n *Notification) Kind() Type           { return n.kind }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Icon() string         { return n.icon }
func (n *Notification) ActionURL() string    { return n.actionURL }
func (n *Notification) IsRead() bool         { return n.read }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
