package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priceboard/backend/internal/domain"
)

func TestCreateAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.Create(ctx, domain.SupplierInput{
		Name:        "Mayorista Norte",
		RawListText: "APPLE IPHONE 13\n128GB $700",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Mayorista Norte", created.Name)
	assert.NotEmpty(t, created.LastUpdated)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.RawListText, got.RawListText)
}

func TestCreateRequiresName(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Create(context.Background(), domain.SupplierInput{RawListText: "128GB $100"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestGetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestListOrdersByName(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, name := range []string{"Zeta Import", "Alfa Distribuciones", "Norte SRL"} {
		_, err := s.Create(ctx, domain.SupplierInput{Name: name})
		require.NoError(t, err)
	}

	suppliers, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 3)
	assert.Equal(t, "Alfa Distribuciones", suppliers[0].Name)
	assert.Equal(t, "Norte SRL", suppliers[1].Name)
	assert.Equal(t, "Zeta Import", suppliers[2].Name)
}

func TestUpdate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	// Fixed clock so the re-stamp is observable
	stamps := []time.Time{
		time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 2, 12, 30, 0, 0, time.UTC),
	}
	calls := 0
	s.now = func() time.Time {
		ts := stamps[calls]
		calls++
		return ts
	}

	created, err := s.Create(ctx, domain.SupplierInput{Name: "Norte SRL", RawListText: "old"})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, domain.SupplierInput{Name: "Norte SRL", RawListText: "new list"})
	require.NoError(t, err)
	assert.Equal(t, "new list", updated.RawListText)
	assert.Equal(t, "02/08/2026 12:30", updated.LastUpdated)
	assert.NotEqual(t, created.LastUpdated, updated.LastUpdated)
}

func TestUpdateMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Update(context.Background(), "no-such-id", domain.SupplierInput{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.Create(ctx, domain.SupplierInput{Name: "Norte SRL"})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Size())

	require.NoError(t, s.Delete(ctx, created.ID))
	assert.Equal(t, 0, s.Size())

	assert.ErrorIs(t, s.Delete(ctx, created.ID), domain.ErrSupplierNotFound)
}
