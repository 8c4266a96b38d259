package store

import "time"

// Client is a consumer of secrets.
type Client struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by"`
}

// ClientsStore abstracts client identity operations
type ClientsStore interface {
	// CreateClient creates a client. A duplicate name fails with the
	// store's uniqueness error.
	CreateClient(name, description, createdBy string) (*Client, error)

	// GetClient retrieves a client by name, nil if absent.
	GetClient(name string) (*Client, error)

	// GetClientByID retrieves a client by id, nil if absent.
	GetClientByID(id int64) (*Client, error)

	// ListClients returns all clients ordered by id.
	ListClients() ([]Client, error)

	// DeleteClient removes a client and, through the schema's cascades, its
	// memberships. No-op if the client does not exist.
	DeleteClient(id int64) error
}
