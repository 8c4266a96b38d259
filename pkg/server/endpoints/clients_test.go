package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayrc/keywhiz/pkg/server/store"
)

func TestCreateClient(t *testing.T) {
	clients := NewMockClientsStore()
	clients.On("CreateClient", "web-frontend", "web tier", "keywhiz").
		Return(&store.Client{ID: 1, Name: "web-frontend", Description: "web tier"}, nil)

	router := mux.NewRouter()
	router.HandleFunc("/clients", handleCreateClient(clients, "keywhiz")).Methods("POST")

	req := httptest.NewRequest("POST", "/clients", strings.NewReader(`{"name":"web-frontend","description":"web tier"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"web-frontend"`)
	clients.AssertExpectations(t)
}

func TestCreateClientRequiresName(t *testing.T) {
	clients := NewMockClientsStore()

	router := mux.NewRouter()
	router.HandleFunc("/clients", handleCreateClient(clients, "keywhiz")).Methods("POST")

	req := httptest.NewRequest("POST", "/clients", strings.NewReader(`{"description":"no name"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	clients.AssertNotCalled(t, "CreateClient")
}

func TestCreateClientUsesCreatorHeader(t *testing.T) {
	clients := NewMockClientsStore()
	clients.On("CreateClient", "batch-job", "", "alice").
		Return(&store.Client{ID: 2, Name: "batch-job"}, nil)

	router := mux.NewRouter()
	router.HandleFunc("/clients", handleCreateClient(clients, "keywhiz")).Methods("POST")

	req := httptest.NewRequest("POST", "/clients", strings.NewReader(`{"name":"batch-job"}`))
	req.Header.Set("X-Keywhiz-Creator", "alice")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	clients.AssertExpectations(t)
}

func TestGetClientNotFound(t *testing.T) {
	clients := NewMockClientsStore()
	clients.On("GetClient", "ghost").Return(nil, nil)

	router := mux.NewRouter()
	router.HandleFunc("/clients/{name}", handleGetClient(clients)).Methods("GET")

	req := httptest.NewRequest("GET", "/clients/ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteClient(t *testing.T) {
	clients := NewMockClientsStore()
	clients.On("GetClient", "web-frontend").Return(&store.Client{ID: 1, Name: "web-frontend"}, nil)
	clients.On("DeleteClient", int64(1)).Return(nil)

	router := mux.NewRouter()
	router.HandleFunc("/clients/{name}", handleDeleteClient(clients)).Methods("DELETE")

	req := httptest.NewRequest("DELETE", "/clients/web-frontend", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	clients.AssertExpectations(t)
}

func TestGetClientSecrets(t *testing.T) {
	clients := NewMockClientsStore()
	acl := NewMockAclStore()
	clients.On("GetClient", "web-frontend").Return(&store.Client{ID: 1, Name: "web-frontend"}, nil)
	acl.On("GetSanitizedSecretsForClient", int64(1)).Return([]store.SanitizedSecret{
		{ID: 9, Name: "db-password", Groups: []string{"frontend", "infra"}},
	}, nil)

	router := mux.NewRouter()
	router.HandleFunc("/clients/{name}/secrets", handleGetClientSecrets(clients, acl)).Methods("GET")

	req := httptest.NewRequest("GET", "/clients/web-frontend/secrets", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"db-password"`)
	assert.Contains(t, rec.Body.String(), `"frontend"`)
	acl.AssertExpectations(t)
}

// A secret that does not exist and a secret the client is not authorized to
// read must produce identical responses.
func TestGetClientSecretMissingAndUnauthorizedMatch(t *testing.T) {
	clients := NewMockClientsStore()
	acl := NewMockAclStore()
	clients.On("GetClient", "web-frontend").Return(&store.Client{ID: 1, Name: "web-frontend"}, nil)
	acl.On("GetSanitizedSecretFor", int64(1), "non-existent").Return(nil, nil)
	acl.On("GetSanitizedSecretFor", int64(1), "someone-elses-secret").Return(nil, nil)

	router := mux.NewRouter()
	router.HandleFunc("/clients/{name}/secrets/{secretName}", handleGetClientSecret(clients, acl)).Methods("GET")

	missing := httptest.NewRecorder()
	router.ServeHTTP(missing, httptest.NewRequest("GET", "/clients/web-frontend/secrets/non-existent", nil))

	unauthorized := httptest.NewRecorder()
	router.ServeHTTP(unauthorized, httptest.NewRequest("GET", "/clients/web-frontend/secrets/someone-elses-secret", nil))

	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, http.StatusNotFound, unauthorized.Code)
	assert.Equal(t, missing.Body.String(), unauthorized.Body.String())
}

func TestGetClientSecretAuthorized(t *testing.T) {
	clients := NewMockClientsStore()
	acl := NewMockAclStore()
	clients.On("GetClient", "web-frontend").Return(&store.Client{ID: 1, Name: "web-frontend"}, nil)
	acl.On("GetSanitizedSecretFor", int64(1), "db-password").Return(&store.SanitizedSecret{
		ID: 9, Name: "db-password", Groups: []string{"frontend"},
	}, nil)

	router := mux.NewRouter()
	router.HandleFunc("/clients/{name}/secrets/{secretName}", handleGetClientSecret(clients, acl)).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/clients/web-frontend/secrets/db-password", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"groups":["frontend"]`)
}
