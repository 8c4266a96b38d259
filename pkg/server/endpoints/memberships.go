package endpoints

import (
	"net/http"

	"github.com/rayrc/keywhiz/pkg/server"
	"github.com/rayrc/keywhiz/pkg/server/store"
)

// RegisterMembershipsEndpoints registers the edge mutation endpoints. Edges
// are id-addressed: the ids come from the identity endpoints, and the four
// operations are idempotent, so PUT and DELETE both return 204 regardless of
// whether the edge already existed.
func RegisterMembershipsEndpoints(s *server.Server) {
	router := s.Router
	aclStore := s.AclStore
	clientsStore := s.ClientsStore
	groupsStore := s.GroupsStore
	secretsStore := s.SecretSeriesStore

	router.HandleFunc(
		"/memberships/clients/{clientID:[0-9]+}/groups/{groupID:[0-9]+}",
		handleEnrollClient(aclStore, clientsStore, groupsStore),
	).Methods("PUT")
	router.HandleFunc(
		"/memberships/clients/{clientID:[0-9]+}/groups/{groupID:[0-9]+}",
		handleEvictClient(aclStore),
	).Methods("DELETE")

	router.HandleFunc(
		"/memberships/secrets/{secretID:[0-9]+}/groups/{groupID:[0-9]+}",
		handleAllowAccess(aclStore, secretsStore, groupsStore),
	).Methods("PUT")
	router.HandleFunc(
		"/memberships/secrets/{secretID:[0-9]+}/groups/{groupID:[0-9]+}",
		handleRevokeAccess(aclStore),
	).Methods("DELETE")
}

func handleEnrollClient(aclStore store.AclStore, clientsStore store.ClientsStore, groupsStore store.GroupsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := pathID(r, "clientID")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid client id")
			return
		}
		groupID, ok := pathID(r, "groupID")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid group id")
			return
		}

		client, err := clientsStore.GetClientByID(clientID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		group, err := groupsStore.GetGroupByID(groupID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if client == nil || group == nil {
			respondWithError(w, http.StatusUnprocessableEntity, "client or group does not exist")
			return
		}

		if err := aclStore.EnrollClient(clientID, groupID); err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleEvictClient(aclStore store.AclStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, ok := pathID(r, "clientID")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid client id")
			return
		}
		groupID, ok := pathID(r, "groupID")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid group id")
			return
		}

		if err := aclStore.EvictClient(clientID, groupID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleAllowAccess(aclStore store.AclStore, secretsStore store.SecretSeriesStore, groupsStore store.GroupsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secretID, ok := pathID(r, "secretID")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid secret id")
			return
		}
		groupID, ok := pathID(r, "groupID")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid group id")
			return
		}

		secret, err := secretsStore.GetSecretSeriesByID(secretID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		group, err := groupsStore.GetGroupByID(groupID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if secret == nil || group == nil {
			respondWithError(w, http.StatusUnprocessableEntity, "secret or group does not exist")
			return
		}

		if err := aclStore.AllowAccess(secretID, groupID); err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleRevokeAccess(aclStore store.AclStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secretID, ok := pathID(r, "secretID")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid secret id")
			return
		}
		groupID, ok := pathID(r, "groupID")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "invalid group id")
			return
		}

		if err := aclStore.RevokeAccess(secretID, groupID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
