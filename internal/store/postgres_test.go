package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/wms/internal/database"
	"github.com/vangoframework/wms/internal/domain"
	"github.com/vangoframework/wms/internal/store"
)

// newPostgres connects to WMS_TEST_DATABASE_URL, skipping when it is unset.
// Tables are dropped first so each test starts from the fixtures.
func newPostgres(t *testing.T) *store.Postgres {
	t.Helper()
	url := os.Getenv("WMS_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("WMS_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Pool.Exec(ctx, "DROP TABLE IF EXISTS employees, work_items")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))

	f, err := store.DefaultFixtures()
	require.NoError(t, err)
	pg := store.NewPostgres(db)
	require.NoError(t, pg.Seed(ctx, f))
	return pg
}

func TestPostgres_Seed(t *testing.T) {
	ctx := context.Background()
	pg := newPostgres(t)

	employees, err := pg.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 8)
	assert.Equal(t, "emp001", employees[0].ID)

	items, err := pg.ListWorkItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, domain.Won(29_363_000), items[0].TotalCost())

	// Seeding twice does not duplicate rows
	f, err := store.DefaultFixtures()
	require.NoError(t, err)
	require.NoError(t, pg.Seed(ctx, f))
	employees, err = pg.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 8)
}

func TestPostgres_EmployeeCRUD(t *testing.T) {
	ctx := context.Background()
	pg := newPostgres(t)

	created, err := pg.CreateEmployee(ctx, domain.Employee{
		Name:       "신입",
		Birthdate:  "2001-02-03",
		Contact:    "010-1111-2222",
		Position:   domain.PositionStaff,
		Department: domain.DepartmentHVAC,
		Status:     domain.EmployeeActive,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	created.Status = domain.EmployeeResigned
	require.NoError(t, pg.UpdateEmployee(ctx, created))

	got, err := pg.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EmployeeResigned, got.Status)

	require.NoError(t, pg.DeleteEmployee(ctx, created.ID))
	_, err = pg.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, pg.DeleteEmployee(ctx, created.ID), store.ErrNotFound)
	assert.ErrorIs(t, pg.UpdateEmployee(ctx, created), store.ErrNotFound)
}
