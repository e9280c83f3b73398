package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SRSager/bucks-county-fence/models"
)

func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *SessionStore) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewSessionStore(mock)
}

func TestSessionStoreSaveUpserts(t *testing.T) {
	mock, store := newMockStore(t)
	mock.ExpectExec("INSERT INTO form_sessions").
		WithArgs("visitor-1", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.Save(context.Background(), "visitor-1", models.Lead{FirstName: "Jane"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionStoreLoadAbsentKey(t *testing.T) {
	mock, store := newMockStore(t)
	mock.ExpectQuery("SELECT record FROM form_sessions").
		WithArgs("visitor-1").
		WillReturnError(pgx.ErrNoRows)

	lead, err := store.Load(context.Background(), "visitor-1")
	require.NoError(t, err)
	assert.Nil(t, lead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionStoreLoadRoundTrip(t *testing.T) {
	mock, store := newMockStore(t)
	mock.ExpectQuery("SELECT record FROM form_sessions").
		WithArgs("visitor-1").
		WillReturnRows(pgxmock.NewRows([]string{"record"}).
			AddRow([]byte(`{"firstName":"Jane","fencePurpose":["privacy"]}`)))

	lead, err := store.Load(context.Background(), "visitor-1")
	require.NoError(t, err)
	require.NotNil(t, lead)
	assert.Equal(t, "Jane", lead.FirstName)
	assert.Equal(t, []string{"privacy"}, lead.FencePurpose)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionStoreLoadCorruptRecord(t *testing.T) {
	mock, store := newMockStore(t)
	mock.ExpectQuery("SELECT record FROM form_sessions").
		WithArgs("visitor-1").
		WillReturnRows(pgxmock.NewRows([]string{"record"}).AddRow([]byte(`{not json`)))

	lead, err := store.Load(context.Background(), "visitor-1")
	assert.Error(t, err)
	assert.Nil(t, lead)
}

func TestSessionStoreDelete(t *testing.T) {
	mock, store := newMockStore(t)
	mock.ExpectExec("DELETE FROM form_sessions").
		WithArgs("visitor-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, store.Delete(context.Background(), "visitor-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
