package aclfile

// Edge is a name-addressed pair. From is the client or secret name, To the
// group name.
type Edge struct {
	From string
	To   string
}

// Snapshot is the name-addressed view of current database state a plan is
// computed against.
type Snapshot struct {
	Clients     map[string]int64
	Groups      map[string]int64
	Secrets     map[string]int64
	Memberships map[Edge]bool
	Grants      map[Edge]bool
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Clients:     make(map[string]int64),
		Groups:      make(map[string]int64),
		Secrets:     make(map[string]int64),
		Memberships: make(map[Edge]bool),
		Grants:      make(map[Edge]bool),
	}
}

// Store abstracts the storage operations the loader needs.
// This allows the loader to work with different backends (e.g., database,
// fake for testing).
type Store interface {
	// Transaction wraps operations in a database transaction.
	// The provided function receives a transactional Store.
	// If the function returns an error, the transaction is rolled back.
	Transaction(fn func(Store) error) error

	// Snapshot reads the current graph state, name-addressed.
	Snapshot() (*Snapshot, error)

	// CreateClient creates a client and returns its id.
	CreateClient(name, description, creator string) (int64, error)

	// CreateGroup creates a group and returns its id.
	CreateGroup(name, description, creator string) (int64, error)

	// CreateSecret creates a secret series and returns its id.
	CreateSecret(name, description, creator string) (int64, error)

	// EnrollClient adds a client to a group; no-op if already enrolled.
	EnrollClient(clientID, groupID int64) error

	// EvictClient removes a client from a group; no-op if not enrolled.
	EvictClient(clientID, groupID int64) error

	// AllowAccess grants a group access to a secret; no-op if granted.
	AllowAccess(secretID, groupID int64) error

	// RevokeAccess removes a group's access to a secret; no-op if absent.
	RevokeAccess(secretID, groupID int64) error
}
