package repositories

import (
	"errors"
	"sync"
	"testing"

	"github.com/shramana263/neighbourlink/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := testPost("user-1")
	require.NoError(t, repo.Create(post))
	assert.NotEmpty(t, post.ID)
	assert.NotNil(t, post.Responders)

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, "user-1", got.UserID)
	assert.Empty(t, got.Responders)
}

func TestPostGetNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	_, err := repo.GetByID("does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostCreateRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := testPost("user-1")
	post.Title = "ab"
	assert.Error(t, repo.Create(post))
}

func TestPostList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(testPost("user-1")))
	}

	posts, err := repo.List(3, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	posts, err = repo.List(10, 3)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = repo.List(10, 99)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := testPost("user-1")
	require.NoError(t, repo.Create(post))

	post.Title = "Need a tall ladder"
	require.NoError(t, repo.Update(post))

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Need a tall ladder", got.Title)

	require.NoError(t, repo.Delete(post.ID))
	_, err = repo.GetByID(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(post.ID), ErrNotFound)
}

func TestPostMutate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := testPost("user-1")
	require.NoError(t, repo.Create(post))

	committed, err := repo.Mutate(post.ID, func(p *models.Post) error {
		return p.AddResponder(models.Responder{UserID: "user-2"})
	})
	require.NoError(t, err)
	require.Len(t, committed.Responders, 1)
	assert.Equal(t, "user-2", committed.Responders[0].UserID)
	assert.False(t, committed.Responders[0].Accepted)

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Responders, 1)
}

func TestPostMutateNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	_, err := repo.Mutate("does-not-exist", func(p *models.Post) error {
		return nil
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostMutateDeliberateAbortNotRetried(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := testPost("user-1")
	require.NoError(t, repo.Create(post))

	bodyRuns := 0
	wantErr := errors.New("business rule violated")
	_, err := repo.Mutate(post.ID, func(p *models.Post) error {
		bodyRuns++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, bodyRuns)

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Responders)
}

func TestPostMutateConcurrentAppends(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	post := testPost("owner")
	require.NoError(t, repo.Create(post))

	// Racing mutators must all land: conflicting commits re-run against
	// fresh state instead of overwriting each other.
	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			userID := string(rune('a' + n))
			_, errs[n] = repo.Mutate(post.ID, func(p *models.Post) error {
				return p.AddResponder(models.Responder{UserID: userID})
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Responders, writers)

	seen := map[string]bool{}
	for _, r := range got.Responders {
		assert.False(t, seen[r.UserID], "duplicate responder %s", r.UserID)
		seen[r.UserID] = true
	}
}

func TestPostGetRejectsMalformedDocument(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerPostRepository(db)

	// Write garbage straight into the store under a post key.
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey("broken"), []byte(`{"id":"broken"}`))
	}))

	_, err := repo.GetByID("broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
