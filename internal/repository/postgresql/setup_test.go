package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to TEST_DATABASE_URL, applies the schema and truncates
// every table. Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, postgresql.EnsureSchema(ctx, db))
	_, err = db.Exec(ctx, `TRUNCATE TABLE payroll_records, leave_requests, attendances, users CASCADE`)
	require.NoError(t, err)
	_, err = db.Exec(ctx, `ALTER SEQUENCE user_id_seq RESTART`)
	require.NoError(t, err)
	return db
}
