package gorm

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/rayrc/keywhiz/pkg/server/store"
)

// Ensure AclStore implements store.AclStore
var _ store.AclStore = (*AclStore)(nil)

// AclStore implements store.AclStore using GORM
type AclStore struct {
	db *gorm.DB
}

// NewAclStore creates a new AclStore
func NewAclStore(db *gorm.DB) *AclStore {
	return &AclStore{db: db}
}

// Transaction runs fn against a transactional copy of the store.
func (s *AclStore) Transaction(fn func(store.AclStore) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&AclStore{db: tx})
	})
}

// AllowAccess grants a group read access to a secret. The insert is
// conflict-tolerant so that re-granting never fails and never races a
// concurrent grant of the same pair.
func (s *AclStore) AllowAccess(secretID, groupID int64) error {
	return s.db.Exec(`
		INSERT INTO accessgrants (secret_id, group_id)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING
	`, secretID, groupID).Error
}

// RevokeAccess removes a group's access to a secret
func (s *AclStore) RevokeAccess(secretID, groupID int64) error {
	return s.db.Exec(`DELETE FROM accessgrants WHERE secret_id = ? AND group_id = ?`, secretID, groupID).Error
}

// EnrollClient adds a client to a group
func (s *AclStore) EnrollClient(clientID, groupID int64) error {
	return s.db.Exec(`
		INSERT INTO memberships (client_id, group_id)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING
	`, clientID, groupID).Error
}

// EvictClient removes a client from a group
func (s *AclStore) EvictClient(clientID, groupID int64) error {
	return s.db.Exec(`DELETE FROM memberships WHERE client_id = ? AND group_id = ?`, clientID, groupID).Error
}

// GetGroupsForSecret returns the groups holding a grant on the secret
func (s *AclStore) GetGroupsForSecret(secretID int64) ([]store.Group, error) {
	rows, err := s.scanEntities(`
		SELECT g.id, g.name, g.description, g.created_at, g.updated_at, g.created_by, g.updated_by
		FROM groups g
		JOIN accessgrants ag ON ag.group_id = g.id
		WHERE ag.secret_id = ?
		ORDER BY g.id
	`, secretID)
	if err != nil {
		return nil, err
	}
	return groupsFromRows(rows), nil
}

// GetGroupsForClient returns the groups the client is enrolled in
func (s *AclStore) GetGroupsForClient(clientID int64) ([]store.Group, error) {
	rows, err := s.scanEntities(`
		SELECT g.id, g.name, g.description, g.created_at, g.updated_at, g.created_by, g.updated_by
		FROM groups g
		JOIN memberships m ON m.group_id = g.id
		WHERE m.client_id = ?
		ORDER BY g.id
	`, clientID)
	if err != nil {
		return nil, err
	}
	return groupsFromRows(rows), nil
}

// GetClientsForGroup returns the clients enrolled in the group
func (s *AclStore) GetClientsForGroup(groupID int64) ([]store.Client, error) {
	rows, err := s.scanEntities(`
		SELECT c.id, c.name, c.description, c.created_at, c.updated_at, c.created_by, c.updated_by
		FROM clients c
		JOIN memberships m ON m.client_id = c.id
		WHERE m.group_id = ?
		ORDER BY c.id
	`, groupID)
	if err != nil {
		return nil, err
	}
	return clientsFromRows(rows), nil
}

// GetClientsForSecret returns every client that can read the secret. The
// DISTINCT collapses clients reachable through more than one group.
func (s *AclStore) GetClientsForSecret(secretID int64) ([]store.Client, error) {
	rows, err := s.scanEntities(`
		SELECT DISTINCT c.id, c.name, c.description, c.created_at, c.updated_at, c.created_by, c.updated_by
		FROM clients c
		JOIN memberships m ON m.client_id = c.id
		JOIN accessgrants ag ON ag.group_id = m.group_id
		WHERE ag.secret_id = ?
		ORDER BY c.id
	`, secretID)
	if err != nil {
		return nil, err
	}
	return clientsFromRows(rows), nil
}

// GetSanitizedSecretsForGroup returns the secrets granted to the group
func (s *AclStore) GetSanitizedSecretsForGroup(groupID int64) ([]store.SanitizedSecret, error) {
	rows, err := s.scanEntities(`
		SELECT s.id, s.name, s.description, s.created_at, s.updated_at, s.created_by, s.updated_by
		FROM secrets s
		JOIN accessgrants ag ON ag.secret_id = s.id
		WHERE ag.group_id = ?
		ORDER BY s.id
	`, groupID)
	if err != nil {
		return nil, err
	}
	secrets := make([]store.SanitizedSecret, 0, len(rows))
	for _, row := range rows {
		secrets = append(secrets, store.SanitizedSecret{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
			CreatedBy:   row.CreatedBy,
			UpdatedBy:   row.UpdatedBy,
		})
	}
	return secrets, nil
}

// GetSanitizedSecretsForClient returns the secrets the client can read. The
// GROUP BY keys the result on the secret id, so a secret reachable through
// several groups appears once, carrying all of their names.
func (s *AclStore) GetSanitizedSecretsForClient(clientID int64) ([]store.SanitizedSecret, error) {
	var rows []sanitizedRow
	err := s.db.Raw(`
		SELECT s.id, s.name, s.description, s.created_at, s.updated_at, s.created_by, s.updated_by,
		       array_agg(g.name ORDER BY g.name) AS groups
		FROM secrets s
		JOIN accessgrants ag ON ag.secret_id = s.id
		JOIN groups g ON g.id = ag.group_id
		JOIN memberships m ON m.group_id = g.id
		WHERE m.client_id = ?
		GROUP BY s.id, s.name, s.description, s.created_at, s.updated_at, s.created_by, s.updated_by
		ORDER BY s.id
	`, clientID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	secrets := make([]store.SanitizedSecret, 0, len(rows))
	for _, row := range rows {
		secrets = append(secrets, row.sanitized())
	}
	return secrets, nil
}

// GetSecretSeriesFor returns the named secret series if the client can read
// it. Missing and unauthorized both come back nil.
func (s *AclStore) GetSecretSeriesFor(clientID int64, name string) (*store.SecretSeries, error) {
	var row entityRow
	err := s.db.Raw(`
		SELECT DISTINCT s.id, s.name, s.description, s.created_at, s.updated_at, s.created_by, s.updated_by
		FROM secrets s
		JOIN accessgrants ag ON ag.secret_id = s.id
		JOIN memberships m ON m.group_id = ag.group_id
		WHERE m.client_id = ? AND s.name = ?
	`, clientID, name).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &store.SecretSeries{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		CreatedBy:   row.CreatedBy,
		UpdatedBy:   row.UpdatedBy,
	}, nil
}

// GetSanitizedSecretFor is GetSecretSeriesFor with group names attached
func (s *AclStore) GetSanitizedSecretFor(clientID int64, name string) (*store.SanitizedSecret, error) {
	var row sanitizedRow
	err := s.db.Raw(`
		SELECT s.id, s.name, s.description, s.created_at, s.updated_at, s.created_by, s.updated_by,
		       array_agg(g.name ORDER BY g.name) AS groups
		FROM secrets s
		JOIN accessgrants ag ON ag.secret_id = s.id
		JOIN groups g ON g.id = ag.group_id
		JOIN memberships m ON m.group_id = g.id
		WHERE m.client_id = ? AND s.name = ?
		GROUP BY s.id, s.name, s.description, s.created_at, s.updated_at, s.created_by, s.updated_by
	`, clientID, name).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	sanitized := row.sanitized()
	return &sanitized, nil
}

// CountGrants returns the number of rows in accessgrants
func (s *AclStore) CountGrants() (int64, error) {
	var count int64
	err := s.db.Raw(`SELECT COUNT(*) FROM accessgrants`).Scan(&count).Error
	return count, err
}

// CountMemberships returns the number of rows in memberships
func (s *AclStore) CountMemberships() (int64, error) {
	var count int64
	err := s.db.Raw(`SELECT COUNT(*) FROM memberships`).Scan(&count).Error
	return count, err
}

// entityRow is the scan target shared by clients, groups, and secrets, which
// carry identical metadata columns.
type entityRow struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
	UpdatedBy   string
}

type sanitizedRow struct {
	entityRow
	Groups pq.StringArray `gorm:"column:groups;type:text[]"`
}

func (r sanitizedRow) sanitized() store.SanitizedSecret {
	return store.SanitizedSecret{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		CreatedBy:   r.CreatedBy,
		UpdatedBy:   r.UpdatedBy,
		Groups:      r.Groups,
	}
}

func (s *AclStore) scanEntities(query string, args ...interface{}) ([]entityRow, error) {
	var rows []entityRow
	if err := s.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func groupsFromRows(rows []entityRow) []store.Group {
	groups := make([]store.Group, 0, len(rows))
	for _, row := range rows {
		groups = append(groups, store.Group{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
			CreatedBy:   row.CreatedBy,
			UpdatedBy:   row.UpdatedBy,
		})
	}
	return groups
}

func clientsFromRows(rows []entityRow) []store.Client {
	clients := make([]store.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, store.Client{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
			CreatedBy:   row.CreatedBy,
			UpdatedBy:   row.UpdatedBy,
		})
	}
	return clients
}
