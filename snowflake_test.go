package snowbase

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOpen returns an openFunc that hands out the given db regardless
// of DSN.
func mockOpen(db *sql.DB) openFunc {
	return func(dsn string) (*sql.DB, error) { return db, nil }
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	return db, mock
}

func TestBuildConfig(t *testing.T) {
	c := NewConnector(30 * time.Second)

	t.Run("optional fields omitted when empty", func(t *testing.T) {
		cfg := c.BuildConfig(ConnectionParams{Account: "acct1", Username: "u", Password: "p"})
		assert.Equal(t, "acct1", cfg.Account)
		assert.Equal(t, "u", cfg.User)
		assert.Equal(t, "p", cfg.Password)
		assert.Empty(t, cfg.Role)
		assert.Empty(t, cfg.Warehouse)
		assert.Equal(t, 30*time.Second, cfg.LoginTimeout)
	})

	t.Run("optional fields set when provided", func(t *testing.T) {
		cfg := c.BuildConfig(ConnectionParams{
			Account: "acct1", Username: "u", Password: "p",
			Role: "ANALYST", Warehouse: "WH1",
		})
		assert.Equal(t, "ANALYST", cfg.Role)
		assert.Equal(t, "WH1", cfg.Warehouse)
	})
}

func TestConnectorConnect(t *testing.T) {
	t.Run("ping failure closes the handle and propagates", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing().WillReturnError(errors.New("auth failed"))
		mock.ExpectClose()

		c := NewConnector(0)
		c.open = mockOpen(db)

		conn, err := c.Connect(context.Background(), ConnectionParams{Account: "a", Username: "u", Password: "p"})
		assert.Nil(t, conn)
		assert.ErrorContains(t, err, "auth failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("successful connect yields a usable session", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing()

		c := NewConnector(0)
		c.open = mockOpen(db)

		conn, err := c.Connect(context.Background(), ConnectionParams{Account: "a", Username: "u", Password: "p"})
		require.NoError(t, err)
		defer conn.Close()
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConnExecute(t *testing.T) {
	t.Run("materializes rows as maps", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT ID, NAME FROM T")).
			WillReturnRows(sqlmock.NewRows([]string{"ID", "NAME"}).
				AddRow(int64(1), "alpha").
				AddRow(int64(2), []byte("beta")))

		c := NewConnector(0)
		c.open = mockOpen(db)
		conn, err := c.Connect(context.Background(), ConnectionParams{Account: "a", Username: "u", Password: "p"})
		require.NoError(t, err)
		defer conn.Close()

		res, err := conn.Execute(context.Background(), "SELECT ID, NAME FROM T")
		require.NoError(t, err)
		assert.Equal(t, "SELECT ID, NAME FROM T", res.Statement.SQLText)
		require.Len(t, res.Statement.Columns, 2)
		assert.Equal(t, "ID", res.Statement.Columns[0].Name)
		require.Len(t, res.Rows, 2)
		assert.Equal(t, int64(1), res.Rows[0]["ID"])
		assert.Equal(t, "alpha", res.Rows[0]["NAME"])
		// byte slices come back as strings, not base64
		assert.Equal(t, "beta", res.Rows[1]["NAME"])
	})

	t.Run("query error propagates", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing()
		mock.ExpectQuery("SELECT BAD").WillReturnError(errors.New("syntax error"))

		c := NewConnector(0)
		c.open = mockOpen(db)
		conn, err := c.Connect(context.Background(), ConnectionParams{Account: "a", Username: "u", Password: "p"})
		require.NoError(t, err)
		defer conn.Close()

		_, err = conn.Execute(context.Background(), "SELECT BAD")
		assert.ErrorContains(t, err, "syntax error")
	})
}

func TestConnSessionID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectPing()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT CURRENT_SESSION()")).
		WillReturnRows(sqlmock.NewRows([]string{"CURRENT_SESSION()"}).AddRow("123"))

	c := NewConnector(0)
	c.open = mockOpen(db)
	conn, err := c.Connect(context.Background(), ConnectionParams{Account: "a", Username: "u", Password: "p"})
	require.NoError(t, err)
	defer conn.Close()

	id, err := conn.SessionID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123", id)
}
