package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rayrc/keywhiz/pkg/model"
	"github.com/rayrc/keywhiz/pkg/server/store"
)

// Ensure ClientsStore implements store.ClientsStore
var _ store.ClientsStore = (*ClientsStore)(nil)

// ClientsStore implements store.ClientsStore using GORM
type ClientsStore struct {
	db *gorm.DB
}

// NewClientsStore creates a new ClientsStore
func NewClientsStore(db *gorm.DB) *ClientsStore {
	return &ClientsStore{db: db}
}

// CreateClient creates a client
func (s *ClientsStore) CreateClient(name, description, createdBy string) (*store.Client, error) {
	client := model.Client{
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
		UpdatedBy:   createdBy,
	}
	if err := s.db.Create(&client).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return clientFromModel(client), nil
}

// GetClient retrieves a client by name, nil if absent
func (s *ClientsStore) GetClient(name string) (*store.Client, error) {
	var client model.Client
	err := s.db.Where("name = ?", name).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return clientFromModel(client), nil
}

// GetClientByID retrieves a client by id, nil if absent
func (s *ClientsStore) GetClientByID(id int64) (*store.Client, error) {
	var client model.Client
	err := s.db.Where("id = ?", id).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return clientFromModel(client), nil
}

// ListClients returns all clients ordered by id
func (s *ClientsStore) ListClients() ([]store.Client, error) {
	var models []model.Client
	if err := s.db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	clients := make([]store.Client, 0, len(models))
	for _, m := range models {
		clients = append(clients, *clientFromModel(m))
	}
	return clients, nil
}

// DeleteClient removes a client. Memberships go with it via the schema's
// ON DELETE CASCADE.
func (s *ClientsStore) DeleteClient(id int64) error {
	return s.db.Exec(`DELETE FROM clients WHERE id = ?`, id).Error
}

func clientFromModel(m model.Client) *store.Client {
	return &store.Client{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CreatedBy:   m.CreatedBy,
		UpdatedBy:   m.UpdatedBy,
	}
}
