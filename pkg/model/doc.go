// Package model defines the database models for keywhiz.
//
// This package contains GORM models that map to the keywhiz PostgreSQL
// schema. The schema is owned by the SQL migrations in db/migrations; the
// models mirror it rather than drive it.
//
// # Core Models
//
//   - Client: consumers of secrets (service instances, jobs)
//   - Group: named collections of clients used to grant access
//   - SecretSeries: the versionless identity of a secret
//   - AccessGrant: secret-to-group authorization edges
//   - Membership: client-to-group enrollment edges
//
// # Database Schema
//
// The database uses PostgreSQL with the following tables:
//
//   - clients: all client identities
//   - groups: all group identities
//   - secrets: secret series metadata (no secret content)
//   - accessgrants: (secret_id, group_id) pairs with ON DELETE CASCADE
//   - memberships: (client_id, group_id) pairs with ON DELETE CASCADE
package model
