package store

// AclStore abstracts the access-control graph linking clients, groups, and
// secrets. Mutations are idempotent single statements: repeating one is a
// no-op, never an error. Every method runs on the handle the store was built
// over, so a caller composes multi-step updates by constructing the store
// inside Transaction.
type AclStore interface {
	// AllowAccess grants a group read access to a secret. No-op if the
	// grant already exists.
	AllowAccess(secretID, groupID int64) error

	// RevokeAccess removes a group's access to a secret. No-op if no such
	// grant exists.
	RevokeAccess(secretID, groupID int64) error

	// EnrollClient adds a client to a group. No-op if already enrolled.
	EnrollClient(clientID, groupID int64) error

	// EvictClient removes a client from a group. No-op if not enrolled.
	EvictClient(clientID, groupID int64) error

	// GetGroupsForSecret returns the groups holding a grant on the secret.
	GetGroupsForSecret(secretID int64) ([]Group, error)

	// GetGroupsForClient returns the groups the client is enrolled in.
	GetGroupsForClient(clientID int64) ([]Group, error)

	// GetClientsForGroup returns the clients enrolled in the group.
	GetClientsForGroup(groupID int64) ([]Client, error)

	// GetClientsForSecret returns every client that can read the secret
	// through at least one group, each client listed once.
	GetClientsForSecret(secretID int64) ([]Client, error)

	// GetSanitizedSecretsForGroup returns the secrets granted to the group.
	GetSanitizedSecretsForGroup(groupID int64) ([]SanitizedSecret, error)

	// GetSanitizedSecretsForClient returns the secrets the client can read,
	// one entry per secret no matter how many groups provide access, each
	// annotated with the names of the groups that do.
	GetSanitizedSecretsForClient(clientID int64) ([]SanitizedSecret, error)

	// GetSecretSeriesFor returns the named secret series if the client can
	// read it. Returns nil when the secret does not exist or the client is
	// not authorized; the two cases are indistinguishable.
	GetSecretSeriesFor(clientID int64, name string) (*SecretSeries, error)

	// GetSanitizedSecretFor is GetSecretSeriesFor with the access-providing
	// group names attached. Same nil semantics.
	GetSanitizedSecretFor(clientID int64, name string) (*SanitizedSecret, error)

	// CountGrants returns the number of rows in accessgrants.
	CountGrants() (int64, error)

	// CountMemberships returns the number of rows in memberships.
	CountMemberships() (int64, error)

	// Transaction runs fn against a transactional copy of the store. If fn
	// returns an error the transaction is rolled back.
	Transaction(fn func(AclStore) error) error
}
