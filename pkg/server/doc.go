// Package server provides the HTTP admin API server for keywhiz.
//
// This package implements the HTTP server that exposes identity lifecycle,
// access-control mutations, and derived authorization queries. It uses
// gorilla/mux for routing and gorilla/handlers for access logging.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, "0.0.0.0", "8080")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - Config: loaded configuration
//   - AclStore, ClientsStore, GroupsStore, SecretSeriesStore, HealthStore:
//     the storage layer, constructed over DB
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers:
//
//   - /clients, /groups, /secrets - identity lifecycle
//   - /memberships/... - grant/revoke and enroll/evict edges
//   - /clients/{name}/secrets/{secretName} - client-scoped secret lookup
//   - /status - connectivity check
package server
