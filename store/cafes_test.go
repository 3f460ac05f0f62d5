// cafes_test.go - Tests for the cafe listings repository

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cafe-backend/apperr"
	"go-cafe-backend/models"
)

func TestCreateCafe(t *testing.T) {
	db := testDB(t)
	cafes := NewCafes(db)
	author := seedUser(t, db, "author@example.com", models.RoleMember)

	cafe, err := cafes.Create(author.ID, validCafeInput("Blue Bottle"))
	require.NoError(t, err)
	assert.Equal(t, "Blue Bottle", cafe.Name)
	assert.Equal(t, author.ID, cafe.AuthorID)
	assert.NotZero(t, cafe.ID)
}

func TestCreateCafeDuplicateName(t *testing.T) {
	db := testDB(t)
	cafes := NewCafes(db)
	author := seedUser(t, db, "author@example.com", models.RoleMember)

	_, err := cafes.Create(author.ID, validCafeInput("Blue Bottle"))
	require.NoError(t, err)

	_, err = cafes.Create(author.ID, validCafeInput("Blue Bottle"))
	assert.ErrorIs(t, err, apperr.ErrDuplicateName)

	var count int64
	require.NoError(t, db.Model(&models.Cafe{}).Where("name = ?", "Blue Bottle").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateCafeValidation(t *testing.T) {
	db := testDB(t)
	cafes := NewCafes(db)
	author := seedUser(t, db, "author@example.com", models.RoleMember)

	tests := []struct {
		name   string
		mutate func(*CafeInput)
	}{
		{"missing name", func(in *CafeInput) { in.Name = "" }},
		{"missing url", func(in *CafeInput) { in.URL = "" }},
		{"missing address", func(in *CafeInput) { in.Address = "" }},
		{"missing city", func(in *CafeInput) { in.City = "" }},
		{"missing open time", func(in *CafeInput) { in.OpenTime = "" }},
		{"coffee rating off scale", func(in *CafeInput) { in.CoffeeRating = "great" }},
		{"wifi rating off scale", func(in *CafeInput) { in.WifiRating = "☕" }},
		{"power rating off scale", func(in *CafeInput) { in.PowerOutletRating = "🔌🔌🔌🔌🔌🔌" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCafeInput("Valid Cafe")
			tt.mutate(&input)
			_, err := cafes.Create(author.ID, input)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestCafeByID(t *testing.T) {
	db := testDB(t)
	cafes := NewCafes(db)
	author := seedUser(t, db, "author@example.com", models.RoleMember)

	created, err := cafes.Create(author.ID, validCafeInput("Lookup Cafe"))
	require.NoError(t, err)

	found, err := cafes.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lookup Cafe", found.Name)

	_, err = cafes.ByID(9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListCafesCreationOrder(t *testing.T) {
	db := testDB(t)
	cafes := NewCafes(db)
	author := seedUser(t, db, "author@example.com", models.RoleMember)

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := cafes.Create(author.ID, validCafeInput(name))
		require.NoError(t, err)
	}

	listed, err := cafes.List()
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "First", listed[0].Name)
	assert.Equal(t, "Second", listed[1].Name)
	assert.Equal(t, "Third", listed[2].Name)
}
