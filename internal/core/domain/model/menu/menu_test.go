package menu_test

import (
	"testing"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id, name string, price float64) menu.Item {
	t.Helper()
	item, err := menu.NewItem(id, name, kernel.MoneyFromFloat(price), "mains")
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should build a valid item", func(t *testing.T) {
		item := mustItem(t, "pz-1", " Margherita ", 9.5)

		require.NoError(t, item.Validate())
		assert.Equal(t, "pz-1", item.ID())
		assert.Equal(t, "Margherita", item.Name())
		assert.Equal(t, "9.50", item.Price().String())
		assert.Equal(t, "mains", item.Category())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		_, err := menu.NewItem("", "", kernel.MoneyFromFloat(-1), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "menu item id")
		assert.Contains(t, err.Error(), "menu item name")
		assert.Contains(t, err.Error(), "menu item price")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var item menu.Item

		assert.Equal(t, menu.ErrItemIsNotConstructed, item.Validate())
	})
}

func TestCatalog_Match(t *testing.T) {
	margherita := mustItem(t, "pz-1", "Margherita", 9)
	diavola := mustItem(t, "pz-2", "Diavola", 11)
	catalog := menu.NewCatalog([]menu.Item{margherita, diavola})

	t.Run("matches by identifier first", func(t *testing.T) {
		got, ok := catalog.Match("pz-2", "Margherita")

		require.True(t, ok)
		assert.Equal(t, "pz-2", got.ID())
	})

	t.Run("falls back to name when identifier drifted", func(t *testing.T) {
		got, ok := catalog.Match("legacy-77", "Margherita")

		require.True(t, ok)
		assert.Equal(t, "pz-1", got.ID())
	})

	t.Run("reports no match", func(t *testing.T) {
		_, ok := catalog.Match("x", "Calzone")

		assert.False(t, ok)
	})

	t.Run("get ignores names", func(t *testing.T) {
		_, ok := catalog.Get("Margherita")
		assert.False(t, ok)

		got, ok := catalog.Get("pz-1")
		require.True(t, ok)
		assert.Equal(t, "Margherita", got.Name())
	})
}

func TestResolveKeys(t *testing.T) {
	item := mustItem(t, "pz-1", "Margherita", 9)

	assert.Equal(t, []string{"id:pz-1", "name:Margherita"}, menu.ResolveKeys(item))
	assert.Equal(t, menu.ResolveKeys(item), menu.LineKeys("pz-1", "Margherita"))
}
