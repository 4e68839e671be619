package repository

import (
	"testing"

	"github.com/juju/errors"
	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"github.com/linskybing/storeops-go/internal/domain/item"
	"github.com/linskybing/storeops-go/internal/domain/user"
	"github.com/linskybing/storeops-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueViolationIsAlreadyExists(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))

	require.NoError(t, repos.Category.CreateCategory(&catalog.Category{Name: "Dairy", Type: "inventory"}))
	err := repos.Category.CreateCategory(&catalog.Category{Name: "Dairy", Type: "inventory"})
	assert.True(t, errors.Is(err, errors.AlreadyExists), "got %v", err)
	require.NoError(t, repos.Category.CreateCategory(&catalog.Category{Name: "Dairy", Type: "equipment"}))

	require.NoError(t, repos.User.SaveUser(&user.User{Username: "alice", Password: "x", Role: user.RoleStaff}))
	err = repos.User.SaveUser(&user.User{Username: "alice", Password: "y", Role: user.RoleStaff})
	assert.True(t, errors.Is(err, errors.AlreadyExists), "got %v", err)

	require.NoError(t, repos.Packaging.CreatePackaging(&catalog.Packaging{Name: "Crate"}))
	err = repos.Packaging.CreatePackaging(&catalog.Packaging{Name: "Crate"})
	assert.True(t, errors.Is(err, errors.AlreadyExists), "got %v", err)
}

func TestInventorySearchTreatsWildcardsLiterally(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	for _, it := range []item.InventoryItem{
		{Name: "Milk 100%", UnitOfMeasure: "Liters", UnitsPerPackage: "12"},
		{Name: "Bread", UnitOfMeasure: "Pieces", UnitsPerPackage: "1"},
		{Name: "Cold_brew", UnitOfMeasure: "Bottles", UnitsPerPackage: "6"},
		{Name: "Cold brew", UnitOfMeasure: "Bottles", UnitsPerPackage: "6"},
	} {
		it := it
		require.NoError(t, repos.Inventory.CreateInventoryItem(&it))
	}

	search := func(text string) []string {
		rows, total, err := repos.Inventory.ListInventoryItems(item.InventoryFilter{Page: 1, Limit: 10, Search: text})
		require.NoError(t, err)
		assert.Equal(t, int64(len(rows)), total)
		names := make([]string, 0, len(rows))
		for _, r := range rows {
			names = append(names, r.Name)
		}
		return names
	}

	assert.Equal(t, []string{"Milk 100%"}, search("%"))
	assert.Equal(t, []string{"Cold_brew"}, search("_"))
	assert.ElementsMatch(t, []string{"Cold_brew", "Cold brew"}, search("COLD"))
	assert.Empty(t, search(`\`))
}
