package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-registry/internal/domain"
	"github.com/jhoicas/customer-registry/internal/domain/entity"
	"github.com/jhoicas/customer-registry/internal/infrastructure/memory"
)

func TestCompanyStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCompanyStore(entity.Company{ID: "c1", Name: "ACME", Classification: entity.ClassificationBronze})

	t.Run("GetByID devuelve copia", func(t *testing.T) {
		c, err := store.GetByID(ctx, "c1")
		require.NoError(t, err)
		require.NotNil(t, c)
		c.Name = "otro"

		again, err := store.GetByID(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "ACME", again.Name)
	})

	t.Run("GetByID inexistente devuelve nil sin error", func(t *testing.T) {
		c, err := store.GetByID(ctx, "nope")
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("Create rechaza nombres duplicados", func(t *testing.T) {
		err := store.Create(ctx, &entity.Company{ID: "c2", Name: "acme"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("List ordena y pagina", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, &entity.Company{ID: "c3", Name: "Beta"}))
		require.NoError(t, store.Create(ctx, &entity.Company{ID: "c4", Name: "Alfa"}))

		list, err := store.List(ctx, 2, 0)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "ACME", list[0].Name)
		assert.Equal(t, "Alfa", list[1].Name)

		list, err = store.List(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Beta", list[0].Name)

		list, err = store.List(ctx, 2, 10)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestCustomerStore(t *testing.T) {
	store := memory.NewCustomerStore()
	c := entity.NewCustomer("first", "last", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), "a@b.c",
		entity.Company{ID: "c1", Name: "VeryImportantClient"}, decimal.NullDecimal{})

	store.AddCustomer(context.Background(), c)
	store.AddCustomer(context.Background(), c)

	got := store.Snapshot()
	require.Len(t, got, 2, "no se detectan duplicados")
	assert.Equal(t, c, got[0])
	assert.False(t, got[0].HasCreditLimit)
}
