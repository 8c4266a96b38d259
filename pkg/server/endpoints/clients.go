package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rayrc/keywhiz/pkg/server"
	"github.com/rayrc/keywhiz/pkg/server/store"
)

func RegisterClientsEndpoints(s *server.Server) {
	router := s.Router
	clientsStore := s.ClientsStore
	aclStore := s.AclStore
	defaultCreator := s.Config.DefaultCreator
	listLimit := s.Config.APIListLimitMax

	router.HandleFunc("/clients", handleCreateClient(clientsStore, defaultCreator)).Methods("POST")
	router.HandleFunc("/clients", handleListClients(clientsStore, listLimit)).Methods("GET")
	router.HandleFunc("/clients/{name}", handleGetClient(clientsStore)).Methods("GET")
	router.HandleFunc("/clients/{name}", handleDeleteClient(clientsStore)).Methods("DELETE")

	// Derived queries over the access graph
	router.HandleFunc("/clients/{name}/groups", handleGetClientGroups(clientsStore, aclStore)).Methods("GET")
	router.HandleFunc("/clients/{name}/secrets", handleGetClientSecrets(clientsStore, aclStore)).Methods("GET")
	router.HandleFunc("/clients/{name}/secrets/{secretName}", handleGetClientSecret(clientsStore, aclStore)).Methods("GET")
}

func handleCreateClient(clientsStore store.ClientsStore, defaultCreator string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeCreateRequest(w, r)
		if !ok {
			return
		}

		client, err := clientsStore.CreateClient(req.Name, req.Description, creator(r, defaultCreator))
		if err != nil {
			respondWithError(w, http.StatusConflict, err.Error())
			return
		}
		respondWithJSON(w, http.StatusCreated, client)
	}
}

func handleListClients(clientsStore store.ClientsStore, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := clientsStore.ListClients()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if len(clients) > limit {
			clients = clients[:limit]
		}
		respondWithJSON(w, http.StatusOK, clients)
	}
}

func handleGetClient(clientsStore store.ClientsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client, err := clientsStore.GetClient(mux.Vars(r)["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if client == nil {
			respondWithError(w, http.StatusNotFound, "client not found")
			return
		}
		respondWithJSON(w, http.StatusOK, client)
	}
}

func handleDeleteClient(clientsStore store.ClientsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client, err := clientsStore.GetClient(mux.Vars(r)["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if client == nil {
			respondWithError(w, http.StatusNotFound, "client not found")
			return
		}
		// Memberships referencing the client go with it, in the same
		// transaction, via the schema's cascades.
		if err := clientsStore.DeleteClient(client.ID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleGetClientGroups(clientsStore store.ClientsStore, aclStore store.AclStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client, err := clientsStore.GetClient(mux.Vars(r)["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if client == nil {
			respondWithError(w, http.StatusNotFound, "client not found")
			return
		}

		groups, err := aclStore.GetGroupsForClient(client.ID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondWithJSON(w, http.StatusOK, groups)
	}
}

func handleGetClientSecrets(clientsStore store.ClientsStore, aclStore store.AclStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client, err := clientsStore.GetClient(mux.Vars(r)["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if client == nil {
			respondWithError(w, http.StatusNotFound, "client not found")
			return
		}

		secrets, err := aclStore.GetSanitizedSecretsForClient(client.ID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondWithJSON(w, http.StatusOK, secrets)
	}
}

func handleGetClientSecret(clientsStore store.ClientsStore, aclStore store.AclStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		client, err := clientsStore.GetClient(vars["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if client == nil {
			respondWithError(w, http.StatusNotFound, "client not found")
			return
		}

		secret, err := aclStore.GetSanitizedSecretFor(client.ID, vars["secretName"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if secret == nil {
			// A secret that does not exist and one the client cannot read
			// produce the same response, so callers cannot probe for names.
			respondWithError(w, http.StatusNotFound, "secret not found")
			return
		}
		respondWithJSON(w, http.StatusOK, secret)
	}
}
