package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(
		db,
		repository.NewCartRepository(db),
		repository.NewItemRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestCartReplaceAndGet(t *testing.T) {
	db := newTestDB(t)
	s := newCartService(db)
	u := seedUser(t, db, "cart@example.com")
	burger := seedItem(t, db, "Burger", "10.00", entity.ItemStatusPublished)
	soda := seedItem(t, db, "Soda", "5.50", entity.ItemStatusPublished)

	lines, err := s.Replace(u.ID, []CartLineIn{
		{ItemID: burger.ID, Qty: 2},
		{ItemID: soda.ID, Qty: 1},
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, burger.ID, lines[0].Item.ItemID)
	assert.True(t, lines[0].LineTotal.Equal(decimal.RequireFromString("20.00")))

	got, subtotal, err := s.Get(u.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.True(t, subtotal.Equal(decimal.RequireFromString("25.50")), "subtotal = %s", subtotal)

	// Replace is wholesale: the old lines are gone.
	lines, err = s.Replace(u.ID, []CartLineIn{{ItemID: soda.ID, Qty: 3}})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Qty)
}

func TestCartReplaceValidation(t *testing.T) {
	db := newTestDB(t)
	s := newCartService(db)
	u := seedUser(t, db, "validate@example.com")
	draft := seedItem(t, db, "Secret Dish", "9.00", entity.ItemStatusDraft)
	ok := seedItem(t, db, "Soup", "4.00", entity.ItemStatusPublished)

	_, err := s.Replace(u.ID, []CartLineIn{{ItemID: ok.ID, Qty: 0}})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))

	_, err = s.Replace(u.ID, []CartLineIn{{ItemID: 9999, Qty: 1}})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = s.Replace(u.ID, []CartLineIn{{ItemID: draft.ID, Qty: 1}})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))

	_, err = s.Replace(8888, []CartLineIn{{ItemID: ok.ID, Qty: 1}})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCartSnapshotSurvivesItemEdit(t *testing.T) {
	db := newTestDB(t)
	s := newCartService(db)
	u := seedUser(t, db, "snapshot@example.com")
	it := seedItem(t, db, "Cake", "6.00", entity.ItemStatusPublished)

	_, err := s.Replace(u.ID, []CartLineIn{{ItemID: it.ID, Qty: 1}})
	require.NoError(t, err)

	require.NoError(t, db.Model(&entity.Item{}).Where("id = ?", it.ID).
		Updates(map[string]any{"price": decimal.RequireFromString("9.99"), "name": "Fancy Cake"}).Error)

	lines, subtotal, err := s.Get(u.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Cake", lines[0].Item.Name)
	assert.True(t, lines[0].Item.Price.Equal(decimal.RequireFromString("6.00")))
	assert.True(t, subtotal.Equal(decimal.RequireFromString("6.00")))
}

func TestCartClear(t *testing.T) {
	db := newTestDB(t)
	s := newCartService(db)
	u := seedUser(t, db, "clear@example.com")
	it := seedItem(t, db, "Soup", "4.00", entity.ItemStatusPublished)

	_, err := s.Replace(u.ID, []CartLineIn{{ItemID: it.ID, Qty: 2}})
	require.NoError(t, err)

	require.NoError(t, s.Clear(u.ID))

	lines, subtotal, err := s.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.True(t, subtotal.IsZero())
}

func TestCartReplaceEmptyClears(t *testing.T) {
	db := newTestDB(t)
	s := newCartService(db)
	u := seedUser(t, db, "emptyreplace@example.com")
	it := seedItem(t, db, "Soup", "4.00", entity.ItemStatusPublished)

	_, err := s.Replace(u.ID, []CartLineIn{{ItemID: it.ID, Qty: 1}})
	require.NoError(t, err)

	lines, err := s.Replace(u.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
