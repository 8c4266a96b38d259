package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rayrc/keywhiz/pkg/server"
	"github.com/rayrc/keywhiz/pkg/server/store"
)

func RegisterGroupsEndpoints(s *server.Server) {
	router := s.Router
	groupsStore := s.GroupsStore
	aclStore := s.AclStore
	defaultCreator := s.Config.DefaultCreator
	listLimit := s.Config.APIListLimitMax

	router.HandleFunc("/groups", handleCreateGroup(groupsStore, defaultCreator)).Methods("POST")
	router.HandleFunc("/groups", handleListGroups(groupsStore, listLimit)).Methods("GET")
	router.HandleFunc("/groups/{name}", handleGetGroup(groupsStore)).Methods("GET")
	router.HandleFunc("/groups/{name}", handleDeleteGroup(groupsStore)).Methods("DELETE")

	router.HandleFunc("/groups/{name}/clients", handleGetGroupClients(groupsStore, aclStore)).Methods("GET")
	router.HandleFunc("/groups/{name}/secrets", handleGetGroupSecrets(groupsStore, aclStore)).Methods("GET")
}

func handleCreateGroup(groupsStore store.GroupsStore, defaultCreator string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeCreateRequest(w, r)
		if !ok {
			return
		}

		group, err := groupsStore.CreateGroup(req.Name, req.Description, creator(r, defaultCreator))
		if err != nil {
			respondWithError(w, http.StatusConflict, err.Error())
			return
		}
		respondWithJSON(w, http.StatusCreated, group)
	}
}

func handleListGroups(groupsStore store.GroupsStore, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := groupsStore.ListGroups()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if len(groups) > limit {
			groups = groups[:limit]
		}
		respondWithJSON(w, http.StatusOK, groups)
	}
}

func handleGetGroup(groupsStore store.GroupsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		group, err := groupsStore.GetGroup(mux.Vars(r)["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if group == nil {
			respondWithError(w, http.StatusNotFound, "group not found")
			return
		}
		respondWithJSON(w, http.StatusOK, group)
	}
}

func handleDeleteGroup(groupsStore store.GroupsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		group, err := groupsStore.GetGroup(mux.Vars(r)["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if group == nil {
			respondWithError(w, http.StatusNotFound, "group not found")
			return
		}
		// Grants and memberships referencing the group are removed in the
		// same transaction via the schema's cascades.
		if err := groupsStore.DeleteGroup(group.ID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleGetGroupClients(groupsStore store.GroupsStore, aclStore store.AclStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		group, err := groupsStore.GetGroup(mux.Vars(r)["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if group == nil {
			respondWithError(w, http.StatusNotFound, "group not found")
			return
		}

		clients, err := aclStore.GetClientsForGroup(group.ID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondWithJSON(w, http.StatusOK, clients)
	}
}

func handleGetGroupSecrets(groupsStore store.GroupsStore, aclStore store.AclStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		group, err := groupsStore.GetGroup(mux.Vars(r)["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if group == nil {
			respondWithError(w, http.StatusNotFound, "group not found")
			return
		}

		secrets, err := aclStore.GetSanitizedSecretsForGroup(group.ID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondWithJSON(w, http.StatusOK, secrets)
	}
}
