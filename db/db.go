// Package db embeds the SQL migrations that define the keywhiz schema.
//
// The migrations are compiled into the binary when the embed_migrations
// build tag is set, so production deployments do not need the source tree.
package db

import "embed"

// Migrations holds the embedded SQL migration files.
//
//go:embed migrations
var Migrations embed.FS
