package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/rayrc/keywhiz/pkg/server/store"
)

// MockAclStore implements store.AclStore for testing using testify/mock
type MockAclStore struct {
	mock.Mock
}

func NewMockAclStore() *MockAclStore {
	return &MockAclStore{}
}

func (m *MockAclStore) AllowAccess(secretID, groupID int64) error {
	args := m.Called(secretID, groupID)
	return args.Error(0)
}

func (m *MockAclStore) RevokeAccess(secretID, groupID int64) error {
	args := m.Called(secretID, groupID)
	return args.Error(0)
}

func (m *MockAclStore) EnrollClient(clientID, groupID int64) error {
	args := m.Called(clientID, groupID)
	return args.Error(0)
}

func (m *MockAclStore) EvictClient(clientID, groupID int64) error {
	args := m.Called(clientID, groupID)
	return args.Error(0)
}

func (m *MockAclStore) GetGroupsForSecret(secretID int64) ([]store.Group, error) {
	args := m.Called(secretID)
	return args.Get(0).([]store.Group), args.Error(1)
}

func (m *MockAclStore) GetGroupsForClient(clientID int64) ([]store.Group, error) {
	args := m.Called(clientID)
	return args.Get(0).([]store.Group), args.Error(1)
}

func (m *MockAclStore) GetClientsForGroup(groupID int64) ([]store.Client, error) {
	args := m.Called(groupID)
	return args.Get(0).([]store.Client), args.Error(1)
}

func (m *MockAclStore) GetClientsForSecret(secretID int64) ([]store.Client, error) {
	args := m.Called(secretID)
	return args.Get(0).([]store.Client), args.Error(1)
}

func (m *MockAclStore) GetSanitizedSecretsForGroup(groupID int64) ([]store.SanitizedSecret, error) {
	args := m.Called(groupID)
	return args.Get(0).([]store.SanitizedSecret), args.Error(1)
}

func (m *MockAclStore) GetSanitizedSecretsForClient(clientID int64) ([]store.SanitizedSecret, error) {
	args := m.Called(clientID)
	return args.Get(0).([]store.SanitizedSecret), args.Error(1)
}

func (m *MockAclStore) GetSecretSeriesFor(clientID int64, name string) (*store.SecretSeries, error) {
	args := m.Called(clientID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.SecretSeries), args.Error(1)
}

func (m *MockAclStore) GetSanitizedSecretFor(clientID int64, name string) (*store.SanitizedSecret, error) {
	args := m.Called(clientID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.SanitizedSecret), args.Error(1)
}

func (m *MockAclStore) CountGrants() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAclStore) CountMemberships() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAclStore) Transaction(fn func(store.AclStore) error) error {
	args := m.Called(fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}

// MockClientsStore implements store.ClientsStore for testing using testify/mock
type MockClientsStore struct {
	mock.Mock
}

func NewMockClientsStore() *MockClientsStore {
	return &MockClientsStore{}
}

func (m *MockClientsStore) CreateClient(name, description, createdBy string) (*store.Client, error) {
	args := m.Called(name, description, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Client), args.Error(1)
}

func (m *MockClientsStore) GetClient(name string) (*store.Client, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Client), args.Error(1)
}

func (m *MockClientsStore) GetClientByID(id int64) (*store.Client, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Client), args.Error(1)
}

func (m *MockClientsStore) ListClients() ([]store.Client, error) {
	args := m.Called()
	return args.Get(0).([]store.Client), args.Error(1)
}

func (m *MockClientsStore) DeleteClient(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockGroupsStore implements store.GroupsStore for testing using testify/mock
type MockGroupsStore struct {
	mock.Mock
}

func NewMockGroupsStore() *MockGroupsStore {
	return &MockGroupsStore{}
}

func (m *MockGroupsStore) CreateGroup(name, description, createdBy string) (*store.Group, error) {
	args := m.Called(name, description, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Group), args.Error(1)
}

func (m *MockGroupsStore) GetGroup(name string) (*store.Group, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Group), args.Error(1)
}

func (m *MockGroupsStore) GetGroupByID(id int64) (*store.Group, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Group), args.Error(1)
}

func (m *MockGroupsStore) ListGroups() ([]store.Group, error) {
	args := m.Called()
	return args.Get(0).([]store.Group), args.Error(1)
}

func (m *MockGroupsStore) DeleteGroup(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockSecretSeriesStore implements store.SecretSeriesStore for testing using testify/mock
type MockSecretSeriesStore struct {
	mock.Mock
}

func NewMockSecretSeriesStore() *MockSecretSeriesStore {
	return &MockSecretSeriesStore{}
}

func (m *MockSecretSeriesStore) CreateSecretSeries(name, description, createdBy string) (*store.SecretSeries, error) {
	args := m.Called(name, description, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.SecretSeries), args.Error(1)
}

func (m *MockSecretSeriesStore) GetSecretSeries(name string) (*store.SecretSeries, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.SecretSeries), args.Error(1)
}

func (m *MockSecretSeriesStore) GetSecretSeriesByID(id int64) (*store.SecretSeries, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.SecretSeries), args.Error(1)
}

func (m *MockSecretSeriesStore) ListSecretSeries() ([]store.SecretSeries, error) {
	args := m.Called()
	return args.Get(0).([]store.SecretSeries), args.Error(1)
}

func (m *MockSecretSeriesStore) DeleteSecretSeries(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
