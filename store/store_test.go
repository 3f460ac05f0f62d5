// store_test.go - Shared test setup for the store package

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-cafe-backend/database"
	"go-cafe-backend/models"
)

// testDB opens a fresh on-disk database under the test temp dir, migrated
// like production.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

// seedUser inserts a user directly, bypassing the first-user role grant.
func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "x", Name: "Test User", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func validCafeInput(name string) CafeInput {
	return CafeInput{
		Name:              name,
		URL:               "https://example.com/cafe.jpg",
		Address:           "1 Main St",
		City:              "Portland",
		State:             "OR",
		Zip:               "97201",
		OpenTime:          "8AM",
		ClosingTime:       "5:30PM",
		CoffeeRating:      "☕☕☕",
		WifiRating:        "💪💪",
		PowerOutletRating: "🔌🔌🔌",
	}
}
