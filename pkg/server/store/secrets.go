package store

import "time"

// SecretSeries is the versionless identity of a secret. Content and
// versions are out of scope for this service.
type SecretSeries struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by"`
}

// SanitizedSecret is the caller-safe projection of a secret series: metadata
// only, never content. Groups carries the names of the groups providing
// access and is populated only by the client-scoped ACL queries.
type SanitizedSecret struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by"`
	Groups      []string  `json:"groups,omitempty"`
}

// SecretSeriesStore abstracts secret series identity operations
type SecretSeriesStore interface {
	// CreateSecretSeries creates a secret series. A duplicate name fails
	// with the store's uniqueness error.
	CreateSecretSeries(name, description, createdBy string) (*SecretSeries, error)

	// GetSecretSeries retrieves a secret series by name, nil if absent.
	GetSecretSeries(name string) (*SecretSeries, error)

	// GetSecretSeriesByID retrieves a secret series by id, nil if absent.
	GetSecretSeriesByID(id int64) (*SecretSeries, error)

	// ListSecretSeries returns all secret series ordered by id.
	ListSecretSeries() ([]SecretSeries, error)

	// DeleteSecretSeries removes a secret series and, through the schema's
	// cascades, its grants. No-op if absent.
	DeleteSecretSeries(id int64) error
}
