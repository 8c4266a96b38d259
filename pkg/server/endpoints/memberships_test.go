package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/rayrc/keywhiz/pkg/server/store"
)

func membershipRouter(acl *MockAclStore, clients *MockClientsStore, groups *MockGroupsStore, secrets *MockSecretSeriesStore) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc(
		"/memberships/clients/{clientID:[0-9]+}/groups/{groupID:[0-9]+}",
		handleEnrollClient(acl, clients, groups),
	).Methods("PUT")
	router.HandleFunc(
		"/memberships/clients/{clientID:[0-9]+}/groups/{groupID:[0-9]+}",
		handleEvictClient(acl),
	).Methods("DELETE")
	router.HandleFunc(
		"/memberships/secrets/{secretID:[0-9]+}/groups/{groupID:[0-9]+}",
		handleAllowAccess(acl, secrets, groups),
	).Methods("PUT")
	router.HandleFunc(
		"/memberships/secrets/{secretID:[0-9]+}/groups/{groupID:[0-9]+}",
		handleRevokeAccess(acl),
	).Methods("DELETE")
	return router
}

func TestEnrollClientEndpoint(t *testing.T) {
	acl := NewMockAclStore()
	clients := NewMockClientsStore()
	groups := NewMockGroupsStore()
	clients.On("GetClientByID", int64(1)).Return(&store.Client{ID: 1}, nil)
	groups.On("GetGroupByID", int64(2)).Return(&store.Group{ID: 2}, nil)
	acl.On("EnrollClient", int64(1), int64(2)).Return(nil)

	router := membershipRouter(acl, clients, groups, NewMockSecretSeriesStore())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/memberships/clients/1/groups/2", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	acl.AssertExpectations(t)
}

func TestEnrollClientUnknownIDs(t *testing.T) {
	acl := NewMockAclStore()
	clients := NewMockClientsStore()
	groups := NewMockGroupsStore()
	clients.On("GetClientByID", int64(99)).Return(nil, nil)
	groups.On("GetGroupByID", int64(2)).Return(&store.Group{ID: 2}, nil)

	router := membershipRouter(acl, clients, groups, NewMockSecretSeriesStore())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/memberships/clients/99/groups/2", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	acl.AssertNotCalled(t, "EnrollClient")
}

// Evicting a pair that does not exist is still a 204: the operation is
// idempotent and the caller cannot tell the difference.
func TestEvictClientIdempotent(t *testing.T) {
	acl := NewMockAclStore()
	acl.On("EvictClient", int64(1), int64(2)).Return(nil).Twice()

	router := membershipRouter(acl, NewMockClientsStore(), NewMockGroupsStore(), NewMockSecretSeriesStore())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/memberships/clients/1/groups/2", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
	acl.AssertExpectations(t)
}

func TestAllowAccessEndpoint(t *testing.T) {
	acl := NewMockAclStore()
	groups := NewMockGroupsStore()
	secrets := NewMockSecretSeriesStore()
	secrets.On("GetSecretSeriesByID", int64(9)).Return(&store.SecretSeries{ID: 9}, nil)
	groups.On("GetGroupByID", int64(2)).Return(&store.Group{ID: 2}, nil)
	acl.On("AllowAccess", int64(9), int64(2)).Return(nil)

	router := membershipRouter(acl, NewMockClientsStore(), groups, secrets)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/memberships/secrets/9/groups/2", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	acl.AssertExpectations(t)
}

func TestAllowAccessUnknownSecret(t *testing.T) {
	acl := NewMockAclStore()
	groups := NewMockGroupsStore()
	secrets := NewMockSecretSeriesStore()
	secrets.On("GetSecretSeriesByID", int64(404)).Return(nil, nil)
	groups.On("GetGroupByID", int64(2)).Return(&store.Group{ID: 2}, nil)

	router := membershipRouter(acl, NewMockClientsStore(), groups, secrets)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/memberships/secrets/404/groups/2", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	acl.AssertNotCalled(t, "AllowAccess")
}

func TestRevokeAccessEndpoint(t *testing.T) {
	acl := NewMockAclStore()
	acl.On("RevokeAccess", int64(9), int64(2)).Return(nil)

	router := membershipRouter(acl, NewMockClientsStore(), NewMockGroupsStore(), NewMockSecretSeriesStore())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/memberships/secrets/9/groups/2", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	acl.AssertExpectations(t)
}

func TestMembershipRejectsNonNumericIDs(t *testing.T) {
	router := membershipRouter(NewMockAclStore(), NewMockClientsStore(), NewMockGroupsStore(), NewMockSecretSeriesStore())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/memberships/clients/abc/groups/2", nil))

	// The route pattern only admits numeric ids.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
