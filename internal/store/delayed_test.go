package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/wms/internal/domain"
	"github.com/vangoframework/wms/internal/store"
)

func TestDelayed_WritesWait(t *testing.T) {
	ctx := context.Background()
	d := store.NewDelayed(newMemory(t), 20*time.Millisecond)

	start := time.Now()
	_, err := d.CreateEmployee(ctx, domain.Employee{Name: "대기"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	all, err := d.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 9)
}

func TestDelayed_Cancelled(t *testing.T) {
	m := newMemory(t)
	d := store.NewDelayed(m, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, d.DeleteEmployee(ctx, "emp001"), context.Canceled)
	assert.ErrorIs(t, d.UpdateEmployee(ctx, domain.Employee{ID: "emp001"}), context.Canceled)

	// Nothing reached the wrapped repository
	_, err := m.GetEmployee(context.Background(), "emp001")
	assert.NoError(t, err)
}

func TestDelayed_NoDelay(t *testing.T) {
	d := store.NewDelayed(newMemory(t), 0)

	require.NoError(t, d.DeleteEmployee(context.Background(), "emp001"))
	_, err := d.GetEmployee(context.Background(), "emp001")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
