package aclfile

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rayrc/keywhiz/pkg/model"
	"github.com/rayrc/keywhiz/pkg/server/store"
	gormstore "github.com/rayrc/keywhiz/pkg/server/store/gorm"
)

// Ensure GormStore implements Store
var _ Store = (*GormStore)(nil)

// GormStore implements Store over the GORM stores.
type GormStore struct {
	db      *gorm.DB
	acl     store.AclStore
	clients store.ClientsStore
	groups  store.GroupsStore
	secrets store.SecretSeriesStore
}

// NewGormStore creates a new GormStore.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:      db,
		acl:     gormstore.NewAclStore(db),
		clients: gormstore.NewClientsStore(db),
		groups:  gormstore.NewGroupsStore(db),
		secrets: gormstore.NewSecretSeriesStore(db),
	}
}

// Transaction wraps operations in a database transaction.
func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

// Snapshot reads the current graph state, name-addressed.
func (s *GormStore) Snapshot() (*Snapshot, error) {
	snap := NewSnapshot()

	clients, err := s.clients.ListClients()
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	for _, c := range clients {
		snap.Clients[c.Name] = c.ID
	}

	groups, err := s.groups.ListGroups()
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	for _, g := range groups {
		snap.Groups[g.Name] = g.ID
	}

	secrets, err := s.secrets.ListSecretSeries()
	if err != nil {
		return nil, fmt.Errorf("failed to list secrets: %w", err)
	}
	for _, sec := range secrets {
		snap.Secrets[sec.Name] = sec.ID
	}

	var memberships []edgeRow
	err = s.db.Model(&model.Membership{}).
		Select("c.name AS from_name, g.name AS to_name").
		Joins("JOIN clients c ON c.id = memberships.client_id").
		Joins("JOIN groups g ON g.id = memberships.group_id").
		Scan(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	for _, e := range memberships {
		snap.Memberships[Edge{From: e.FromName, To: e.ToName}] = true
	}

	var grants []edgeRow
	err = s.db.Model(&model.AccessGrant{}).
		Select("sec.name AS from_name, g.name AS to_name").
		Joins("JOIN secrets sec ON sec.id = accessgrants.secret_id").
		Joins("JOIN groups g ON g.id = accessgrants.group_id").
		Scan(&grants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}
	for _, e := range grants {
		snap.Grants[Edge{From: e.FromName, To: e.ToName}] = true
	}

	return snap, nil
}

type edgeRow struct {
	FromName string
	ToName   string
}

// CreateClient creates a client and returns its id.
func (s *GormStore) CreateClient(name, description, creator string) (int64, error) {
	client, err := s.clients.CreateClient(name, description, creator)
	if err != nil {
		return 0, err
	}
	return client.ID, nil
}

// CreateGroup creates a group and returns its id.
func (s *GormStore) CreateGroup(name, description, creator string) (int64, error) {
	group, err := s.groups.CreateGroup(name, description, creator)
	if err != nil {
		return 0, err
	}
	return group.ID, nil
}

// CreateSecret creates a secret series and returns its id.
func (s *GormStore) CreateSecret(name, description, creator string) (int64, error) {
	secret, err := s.secrets.CreateSecretSeries(name, description, creator)
	if err != nil {
		return 0, err
	}
	return secret.ID, nil
}

// EnrollClient adds a client to a group
func (s *GormStore) EnrollClient(clientID, groupID int64) error {
	return s.acl.EnrollClient(clientID, groupID)
}

// EvictClient removes a client from a group
func (s *GormStore) EvictClient(clientID, groupID int64) error {
	return s.acl.EvictClient(clientID, groupID)
}

// AllowAccess grants a group access to a secret
func (s *GormStore) AllowAccess(secretID, groupID int64) error {
	return s.acl.AllowAccess(secretID, groupID)
}

// RevokeAccess removes a group's access to a secret
func (s *GormStore) RevokeAccess(secretID, groupID int64) error {
	return s.acl.RevokeAccess(secretID, groupID)
}
