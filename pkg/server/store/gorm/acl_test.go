package gorm

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowAccess(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	mock.ExpectExec(`INSERT INTO accessgrants`).
		WithArgs(int64(10), int64(20)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Second grant of the same pair hits the conflict clause and changes nothing.
	mock.ExpectExec(`INSERT INTO accessgrants`).
		WithArgs(int64(10), int64(20)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, acl.AllowAccess(10, 20))
	require.NoError(t, acl.AllowAccess(10, 20))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevokeAccess(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	mock.ExpectExec(`DELETE FROM accessgrants WHERE secret_id = \$1 AND group_id = \$2`).
		WithArgs(int64(10), int64(20)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM accessgrants`).
		WithArgs(int64(10), int64(20)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, acl.RevokeAccess(10, 20))
	require.NoError(t, acl.RevokeAccess(10, 20))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollClient(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	mock.ExpectExec(`INSERT INTO memberships`).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, acl.EnrollClient(1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEvictClient(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	mock.ExpectExec(`DELETE FROM memberships WHERE client_id = \$1 AND group_id = \$2`).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, acl.EvictClient(1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMutationErrorsPropagate(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	boom := errors.New("connection reset")
	mock.ExpectExec(`INSERT INTO memberships`).WillReturnError(boom)

	err := acl.EnrollClient(1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestGetGroupsForClient(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	now := time.Now()
	rows := sqlmock.NewRows(entityColumns).
		AddRow(int64(2), "frontend", "web tier", now, now, "admin", "admin").
		AddRow(int64(5), "infra", "", now, now, "admin", "admin")
	mock.ExpectQuery(`SELECT g.id, .* FROM groups g\s+JOIN memberships m ON m.group_id = g.id`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	groups, err := acl.GetGroupsForClient(1)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, int64(2), groups[0].ID)
	assert.Equal(t, "frontend", groups[0].Name)
	assert.Equal(t, "web tier", groups[0].Description)
	assert.Equal(t, "infra", groups[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGroupsForSecret(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	now := time.Now()
	rows := sqlmock.NewRows(entityColumns).
		AddRow(int64(3), "ops", "", now, now, "admin", "admin")
	mock.ExpectQuery(`SELECT g.id, .* FROM groups g\s+JOIN accessgrants ag ON ag.group_id = g.id`).
		WithArgs(int64(9)).
		WillReturnRows(rows)

	groups, err := acl.GetGroupsForSecret(9)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "ops", groups[0].Name)
}

func TestGetClientsForSecretIsDistinct(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	now := time.Now()
	rows := sqlmock.NewRows(entityColumns).
		AddRow(int64(1), "web-frontend", "", now, now, "admin", "admin")
	mock.ExpectQuery(`(?s)SELECT DISTINCT c.id, .* FROM clients c`).
		WithArgs(int64(9)).
		WillReturnRows(rows)

	clients, err := acl.GetClientsForSecret(9)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "web-frontend", clients[0].Name)
}

func TestGetSanitizedSecretsForClient(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	now := time.Now()
	columns := append(append([]string{}, entityColumns...), "groups")
	rows := sqlmock.NewRows(columns).
		AddRow(int64(9), "db-password", "primary db", now, now, "admin", "admin", "{frontend,infra}")
	mock.ExpectQuery(`SELECT s.id, .* array_agg\(g.name ORDER BY g.name\) AS groups`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	secrets, err := acl.GetSanitizedSecretsForClient(1)
	require.NoError(t, err)
	require.Len(t, secrets, 1)
	assert.Equal(t, "db-password", secrets[0].Name)
	assert.Equal(t, []string{"frontend", "infra"}, secrets[0].Groups)
}

func TestGetSanitizedSecretsForGroup(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	now := time.Now()
	rows := sqlmock.NewRows(entityColumns).
		AddRow(int64(9), "db-password", "", now, now, "admin", "admin")
	mock.ExpectQuery(`SELECT s.id, .* FROM secrets s\s+JOIN accessgrants ag ON ag.secret_id = s.id`).
		WithArgs(int64(2)).
		WillReturnRows(rows)

	secrets, err := acl.GetSanitizedSecretsForGroup(2)
	require.NoError(t, err)
	require.Len(t, secrets, 1)
	assert.Equal(t, "db-password", secrets[0].Name)
	assert.Empty(t, secrets[0].Groups)
}

func TestGetSecretSeriesForAbsentIsNil(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	// Missing secret and unauthorized client produce the same empty result.
	mock.ExpectQuery(`(?s)SELECT DISTINCT s.id, .* FROM secrets s`).
		WithArgs(int64(1), "nonexistent").
		WillReturnRows(sqlmock.NewRows(entityColumns))

	series, err := acl.GetSecretSeriesFor(1, "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, series)
}

func TestGetSecretSeriesFor(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	now := time.Now()
	rows := sqlmock.NewRows(entityColumns).
		AddRow(int64(9), "db-password", "primary db", now, now, "admin", "admin")
	mock.ExpectQuery(`(?s)SELECT DISTINCT s.id, .* FROM secrets s`).
		WithArgs(int64(1), "db-password").
		WillReturnRows(rows)

	series, err := acl.GetSecretSeriesFor(1, "db-password")
	require.NoError(t, err)
	require.NotNil(t, series)
	assert.Equal(t, int64(9), series.ID)
	assert.Equal(t, "db-password", series.Name)
}

func TestGetSanitizedSecretForCarriesGroupNames(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	now := time.Now()
	columns := append(append([]string{}, entityColumns...), "groups")
	rows := sqlmock.NewRows(columns).
		AddRow(int64(9), "db-password", "", now, now, "admin", "admin", "{frontend}")
	mock.ExpectQuery(`SELECT s.id, .* array_agg\(g.name ORDER BY g.name\) AS groups`).
		WithArgs(int64(1), "db-password").
		WillReturnRows(rows)

	secret, err := acl.GetSanitizedSecretFor(1, "db-password")
	require.NoError(t, err)
	require.NotNil(t, secret)
	assert.Equal(t, []string{"frontend"}, secret.Groups)
}

func TestCounts(t *testing.T) {
	db, mock := newMockDB(t)
	acl := NewAclStore(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM accessgrants`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM memberships`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	grants, err := acl.CountGrants()
	require.NoError(t, err)
	assert.Equal(t, int64(3), grants)

	memberships, err := acl.CountMemberships()
	require.NoError(t, err)
	assert.Equal(t, int64(2), memberships)
}
