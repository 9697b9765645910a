package client

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyClientName = errors.New("client name cannot be empty")
	ErrEmptyPhone      = errors.New("client phone cannot be empty")
)

type Client struct {
	id        uuid.UUID
	name      string
	phone     string
	email     string
	createdAt time.Time
	updatedAt time.Time
}

func NewClient(name, phone, email string) (*Client, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, ErrEmptyClientName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}

	return &Client{
		id:    uuid.New(),
		name:  name,
		phone: phone,
		email: strings.TrimSpace(email),
	}, nil
}

func ReconstructClient(id uuid.UUID, name, phone, email string, createdAt, updatedAt time.Time) *Client {
	return &Client{
		id:        id,
		name:      name,
		phone:     phone,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Client) UpdateContact(name, phone, email string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return ErrEmptyClientName
	}
	if phone == "" {
		return ErrEmptyPhone
	}
	c.name = name
	c.phone = phone
	c.email = strings.TrimSpace(email)
	return nil
}

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) Name() string         { return c.name }
func (c *Client) Phone() string        { return c.phone }
func (c *Client) Email() string        { return c.email }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }
