package endpoints

import (
	"github.com/rayrc/keywhiz/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterClientsEndpoints(srv)
	RegisterGroupsEndpoints(srv)
	RegisterSecretsEndpoints(srv)
	RegisterMembershipsEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
