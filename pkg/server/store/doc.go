// Package store provides storage abstractions for the keywhiz server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - AclStore: the access-control graph (memberships, grants, derived queries)
//   - ClientsStore: client identity lifecycle
//   - GroupsStore: group identity lifecycle
//   - SecretSeriesStore: secret series identity lifecycle
//   - HealthStore: connectivity checks
//
// # Absence semantics
//
// Lookups return a nil pointer (or an empty slice) with a nil error when the
// requested entity does not exist. On the client-scoped secret lookups this
// deliberately conflates "no such secret" with "client not authorized": a
// caller probing for names it cannot read learns nothing either way. Errors
// are reserved for store failures.
//
// # Usage
//
//	acl := gorm.NewAclStore(db)
//	secret, err := acl.GetSecretSeriesFor(clientID, "db-password")
//	if err != nil {
//	    // store failure, not absence
//	}
//	if secret == nil {
//	    // missing or unauthorized; indistinguishable on purpose
//	}
package store
