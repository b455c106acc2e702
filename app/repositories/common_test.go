package repositories

import (
	"testing"
	"time"

	"github.com/shramana263/neighbourlink/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens a throwaway Badger store and registers cleanup.
func setupTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := OpenDB("")
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func testPost(userID string) *models.Post {
	return &models.Post{
		UserID:      userID,
		Type:        models.PostTypeRequest,
		Title:       "Need a ladder",
		Description: "Borrowing a ladder for the weekend to clean gutters",
		Category:    "tools",
		CreatedAt:   time.Now(),
	}
}

func testUser(email string) *models.User {
	return &models.User{
		Name:         "Asha Rao",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
}
