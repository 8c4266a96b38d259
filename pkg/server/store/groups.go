package store

import "time"

// Group is a named collection of clients, the unit access is granted to.
type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by"`
}

// GroupsStore abstracts group identity operations
type GroupsStore interface {
	// CreateGroup creates a group. A duplicate name fails with the store's
	// uniqueness error.
	CreateGroup(name, description, createdBy string) (*Group, error)

	// GetGroup retrieves a group by name, nil if absent.
	GetGroup(name string) (*Group, error)

	// GetGroupByID retrieves a group by id, nil if absent.
	GetGroupByID(id int64) (*Group, error)

	// ListGroups returns all groups ordered by id.
	ListGroups() ([]Group, error)

	// DeleteGroup removes a group and, through the schema's cascades, every
	// membership and grant that references it. No-op if absent.
	DeleteGroup(id int64) error
}
