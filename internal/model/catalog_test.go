package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nimbushr/catalog/internal/model"
)

func TestActiveItemsSortsAndFilters(t *testing.T) {
	catalog := &model.ConfigCatalog{
		Items: []model.CatalogItem{
			{ID: uuid.New(), Name: "Sales", IsActive: true, SortOrder: 2},
			{ID: uuid.New(), Name: "Retired", IsActive: false, SortOrder: 0},
			{ID: uuid.New(), Name: "Engineering", IsActive: true, SortOrder: 0},
			{ID: uuid.New(), Name: "Finance", IsActive: true, SortOrder: 1},
		},
	}

	active := catalog.ActiveItems()

	names := make([]string, 0, len(active))
	for _, it := range active {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"Engineering", "Finance", "Sales"}, names)
}

func TestActiveItemsKeepsStorageOrderOnTies(t *testing.T) {
	catalog := &model.ConfigCatalog{
		Items: []model.CatalogItem{
			{ID: uuid.New(), Name: "First", IsActive: true, SortOrder: 0},
			{ID: uuid.New(), Name: "Second", IsActive: true, SortOrder: 0},
			{ID: uuid.New(), Name: "Third", IsActive: true, SortOrder: 0},
		},
	}

	active := catalog.ActiveItems()
	assert.Equal(t, "First", active[0].Name)
	assert.Equal(t, "Second", active[1].Name)
	assert.Equal(t, "Third", active[2].Name)
}

func TestHasActiveNamed(t *testing.T) {
	eng := model.CatalogItem{ID: uuid.New(), Name: "Engineering", IsActive: true}
	retired := model.CatalogItem{ID: uuid.New(), Name: "Old Dept", IsActive: false}
	catalog := &model.ConfigCatalog{Items: []model.CatalogItem{eng, retired}}

	assert.True(t, catalog.HasActiveNamed("Engineering", uuid.Nil))
	assert.True(t, catalog.HasActiveNamed("  ENGINEERING  ", uuid.Nil))
	assert.False(t, catalog.HasActiveNamed("Old Dept", uuid.Nil))
	assert.False(t, catalog.HasActiveNamed("Engineering", eng.ID))
}

func TestValidConfigType(t *testing.T) {
	for _, ct := range model.ConfigTypes {
		assert.True(t, model.ValidConfigType(string(ct)))
	}
	assert.False(t, model.ValidConfigType("holidays"))
	assert.False(t, model.ValidConfigType(""))
	assert.False(t, model.ValidConfigType("Departments"))
}

func TestFindItem(t *testing.T) {
	item := model.CatalogItem{ID: uuid.New(), Name: "Engineering"}
	catalog := &model.ConfigCatalog{Items: []model.CatalogItem{item}}

	found := catalog.FindItem(item.ID)
	assert.NotNil(t, found)
	assert.Equal(t, "Engineering", found.Name)

	assert.Nil(t, catalog.FindItem(uuid.New()))
}
