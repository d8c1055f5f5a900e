package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemCreateDefaultsAndValidation(t *testing.T) {
	db := newTestDB(t)
	s := NewItemService(repository.NewItemRepository(db))

	it, err := s.Create(&ItemIn{Name: "Soup", Price: decimal.RequireFromString("4.00")})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemTypeMain, it.Type)
	assert.Equal(t, entity.ItemStatusDraft, it.Status)

	_, err = s.Create(&ItemIn{Name: "Bad", Type: "brunch"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))

	_, err = s.Create(&ItemIn{Name: "Bad", Status: "archived"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))

	_, err = s.Create(&ItemIn{Name: "Bad", Price: decimal.RequireFromString("-1")})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
}

func TestItemListPublishedOnly(t *testing.T) {
	db := newTestDB(t)
	s := NewItemService(repository.NewItemRepository(db))

	seedItem(t, db, "Draft Dish", "5.00", entity.ItemStatusDraft)
	seedItem(t, db, "Live Dish", "5.00", entity.ItemStatusPublished)

	published, err := s.List(true)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "Live Dish", published[0].Name)

	all, err := s.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestItemPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	s := NewItemService(repository.NewItemRepository(db))
	it := seedItem(t, db, "Cake", "6.00", entity.ItemStatusDraft)

	status := entity.ItemStatusPublished
	updated, err := s.Update(it.ID, &ItemUpdateIn{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusPublished, updated.Status)
	assert.Equal(t, "Cake", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("6.00")))

	badType := "brunch"
	_, err = s.Update(it.ID, &ItemUpdateIn{Type: &badType})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))

	_, err = s.Update(9999, &ItemUpdateIn{Status: &status})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestItemDelete(t *testing.T) {
	db := newTestDB(t)
	s := NewItemService(repository.NewItemRepository(db))
	it := seedItem(t, db, "Soup", "4.00", entity.ItemStatusPublished)

	require.NoError(t, s.Delete(it.ID))

	err := s.Delete(it.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
