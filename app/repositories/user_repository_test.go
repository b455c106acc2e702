package repositories

import (
	"testing"
	"time"

	"github.com/shramana263/neighbourlink/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndLookup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	user := testUser("asha@example.com")
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)

	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", byID.Email)

	byEmail, err := repo.GetByEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	// Index lookups are case-insensitive on the email.
	byEmail, err = repo.GetByEmail("Asha@Example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserEmailUniqueness(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	require.NoError(t, repo.Create(testUser("asha@example.com")))
	err := repo.Create(testUser("asha@example.com"))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserUpdateEmailMovesIndex(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	user := testUser("asha@example.com")
	require.NoError(t, repo.Create(user))

	user.Email = "asha.rao@example.com"
	require.NoError(t, repo.Update(user))

	_, err := repo.GetByEmail("asha@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := repo.GetByEmail("asha.rao@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestSessionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerSessionRepository(db)

	session := &models.Session{
		Token:     "tok-1",
		UserID:    "user-1",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(session))

	got, err := repo.Get("tok-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)

	require.NoError(t, repo.Delete("tok-1"))
	_, err = repo.Get("tok-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionExpiredRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerSessionRepository(db)

	session := &models.Session{
		Token:     "tok-old",
		UserID:    "user-1",
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	assert.Error(t, repo.Create(session))
}
