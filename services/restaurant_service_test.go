package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestRestaurantGetMissing(t *testing.T) {
	db := newTestDB(t)
	s := NewRestaurantService(repository.NewRestaurantRepository(db))

	_, err := s.Get()
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRestaurantUpdateCreatesSingleton(t *testing.T) {
	db := newTestDB(t)
	s := NewRestaurantService(repository.NewRestaurantRepository(db))

	hours := entity.OpeningHours{"monday": {12, 13}}
	rest, err := s.Update(&RestaurantUpdateIn{
		Name:         strptr("Cucumber Corner"),
		OpeningHours: &hours,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RestaurantID, rest.ID)
	assert.Equal(t, "Cucumber Corner", rest.Name)

	// Partial merge: phone only, everything else untouched.
	rest, err = s.Update(&RestaurantUpdateIn{Phone: strptr("555-0101")})
	require.NoError(t, err)
	assert.Equal(t, "Cucumber Corner", rest.Name)
	assert.Equal(t, "555-0101", rest.Phone)
	assert.Equal(t, []int{12, 13}, rest.OpeningHours.Data()["monday"])

	var count int64
	require.NoError(t, db.Model(&entity.Restaurant{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "updates must never create a second profile")
}

func TestRestaurantUpdateValidatesHours(t *testing.T) {
	db := newTestDB(t)
	s := NewRestaurantService(repository.NewRestaurantRepository(db))

	bad := entity.OpeningHours{"funday": {12}}
	_, err := s.Update(&RestaurantUpdateIn{OpeningHours: &bad})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))

	outOfRange := entity.OpeningHours{"monday": {25}}
	_, err = s.Update(&RestaurantUpdateIn{OpeningHours: &outOfRange})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
}
