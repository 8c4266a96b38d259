// Package main provides the keywhizctl CLI for the Keywhiz secret
// distribution service.
//
// Keywhiz controls access to secrets through two relations: clients belong
// to groups, and groups are granted access to secrets. A client may read a
// secret exactly when it shares at least one group with it.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: storage interfaces and GORM implementations
//   - pkg/aclfile: declarative ACL file parsing and loading
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/config: configuration management
//
// # Quick Start
//
// The server is run via the keywhizctl CLI:
//
//	# Run database migrations
//	keywhizctl db migrate
//
//	# Start the server
//	keywhizctl server
//
//	# Seed access control state from a file
//	keywhizctl acl apply --file acl.yml
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - KEYWHIZ_CONFIG_PATH: config directory (default: /etc/keywhiz/config)
//   - KEYWHIZ_LOG_LEVEL: log level (debug, info, warn, error)
//   - PORT: server port (default: 8080)
package main
