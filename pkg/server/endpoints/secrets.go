package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rayrc/keywhiz/pkg/server"
	"github.com/rayrc/keywhiz/pkg/server/store"
)

func RegisterSecretsEndpoints(s *server.Server) {
	router := s.Router
	secretsStore := s.SecretSeriesStore
	aclStore := s.AclStore
	defaultCreator := s.Config.DefaultCreator
	listLimit := s.Config.APIListLimitMax

	router.HandleFunc("/secrets", handleCreateSecret(secretsStore, defaultCreator)).Methods("POST")
	router.HandleFunc("/secrets", handleListSecrets(secretsStore, listLimit)).Methods("GET")
	router.HandleFunc("/secrets/{name}", handleGetSecret(secretsStore)).Methods("GET")
	router.HandleFunc("/secrets/{name}", handleDeleteSecret(secretsStore)).Methods("DELETE")

	router.HandleFunc("/secrets/{name}/groups", handleGetSecretGroups(secretsStore, aclStore)).Methods("GET")
	router.HandleFunc("/secrets/{name}/clients", handleGetSecretClients(secretsStore, aclStore)).Methods("GET")
}

func handleCreateSecret(secretsStore store.SecretSeriesStore, defaultCreator string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeCreateRequest(w, r)
		if !ok {
			return
		}

		secret, err := secretsStore.CreateSecretSeries(req.Name, req.Description, creator(r, defaultCreator))
		if err != nil {
			respondWithError(w, http.StatusConflict, err.Error())
			return
		}
		respondWithJSON(w, http.StatusCreated, secret)
	}
}

func handleListSecrets(secretsStore store.SecretSeriesStore, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secrets, err := secretsStore.ListSecretSeries()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if len(secrets) > limit {
			secrets = secrets[:limit]
		}
		respondWithJSON(w, http.StatusOK, secrets)
	}
}

func handleGetSecret(secretsStore store.SecretSeriesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secret, err := secretsStore.GetSecretSeries(mux.Vars(r)["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if secret == nil {
			respondWithError(w, http.StatusNotFound, "secret not found")
			return
		}
		respondWithJSON(w, http.StatusOK, secret)
	}
}

func handleDeleteSecret(secretsStore store.SecretSeriesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secret, err := secretsStore.GetSecretSeries(mux.Vars(r)["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if secret == nil {
			respondWithError(w, http.StatusNotFound, "secret not found")
			return
		}
		// Grants referencing the series are removed in the same transaction
		// via the schema's cascades.
		if err := secretsStore.DeleteSecretSeries(secret.ID); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleGetSecretGroups(secretsStore store.SecretSeriesStore, aclStore store.AclStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secret, err := secretsStore.GetSecretSeries(mux.Vars(r)["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if secret == nil {
			respondWithError(w, http.StatusNotFound, "secret not found")
			return
		}

		groups, err := aclStore.GetGroupsForSecret(secret.ID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondWithJSON(w, http.StatusOK, groups)
	}
}

func handleGetSecretClients(secretsStore store.SecretSeriesStore, aclStore store.AclStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secret, err := secretsStore.GetSecretSeries(mux.Vars(r)["name"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if secret == nil {
			respondWithError(w, http.StatusNotFound, "secret not found")
			return
		}

		clients, err := aclStore.GetClientsForSecret(secret.ID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondWithJSON(w, http.StatusOK, clients)
	}
}
