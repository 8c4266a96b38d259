package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rayrc/keywhiz/pkg/model"
	"github.com/rayrc/keywhiz/pkg/server/store"
)

// Ensure GroupsStore implements store.GroupsStore
var _ store.GroupsStore = (*GroupsStore)(nil)

// GroupsStore implements store.GroupsStore using GORM
type GroupsStore struct {
	db *gorm.DB
}

// NewGroupsStore creates a new GroupsStore
func NewGroupsStore(db *gorm.DB) *GroupsStore {
	return &GroupsStore{db: db}
}

// CreateGroup creates a group
func (s *GroupsStore) CreateGroup(name, description, createdBy string) (*store.Group, error) {
	group := model.Group{
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
		UpdatedBy:   createdBy,
	}
	if err := s.db.Create(&group).Error; err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return groupFromModel(group), nil
}

// GetGroup retrieves a group by name, nil if absent
func (s *GroupsStore) GetGroup(name string) (*store.Group, error) {
	var group model.Group
	err := s.db.Where("name = ?", name).First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return groupFromModel(group), nil
}

// GetGroupByID retrieves a group by id, nil if absent
func (s *GroupsStore) GetGroupByID(id int64) (*store.Group, error) {
	var group model.Group
	err := s.db.Where("id = ?", id).First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return groupFromModel(group), nil
}

// ListGroups returns all groups ordered by id
func (s *GroupsStore) ListGroups() ([]store.Group, error) {
	var models []model.Group
	if err := s.db.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	groups := make([]store.Group, 0, len(models))
	for _, m := range models {
		groups = append(groups, *groupFromModel(m))
	}
	return groups, nil
}

// DeleteGroup removes a group. Every membership and grant referencing it
// goes with it via the schema's ON DELETE CASCADE, atomically with the row.
func (s *GroupsStore) DeleteGroup(id int64) error {
	return s.db.Exec(`DELETE FROM groups WHERE id = ?`, id).Error
}

func groupFromModel(m model.Group) *store.Group {
	return &store.Group{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CreatedBy:   m.CreatedBy,
		UpdatedBy:   m.UpdatedBy,
	}
}
