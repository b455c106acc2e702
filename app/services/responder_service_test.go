package services

import (
	"sync"
	"testing"
	"time"

	"github.com/shramana263/neighbourlink/app/models"
	"github.com/shramana263/neighbourlink/app/repositories"
	"github.com/shramana263/neighbourlink/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedPush struct {
	userID  string
	payload interface{}
}

type recordingPusher struct {
	mutex  sync.Mutex
	pushes []capturedPush
}

func (p *recordingPusher) Push(userID string, payload interface{}) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.pushes = append(p.pushes, capturedPush{userID: userID, payload: payload})
}

func newTestResponderService() (*ResponderService, *mock.PostRepository, *mock.UserRepository, *recordingPusher) {
	postRepo := mock.NewPostRepository()
	userRepo := mock.NewUserRepository()
	pusher := &recordingPusher{}
	notifications := NewNotificationService(mock.NewNotificationRepository(), pusher)
	return NewResponderService(postRepo, userRepo, notifications), postRepo, userRepo, pusher
}

func newStoredPost(t *testing.T, repo *mock.PostRepository, ownerID string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:      ownerID,
		Type:        models.PostTypeRequest,
		Title:       "Need a ladder",
		Description: "Borrowing a ladder for the weekend to clean gutters",
		Category:    "tools",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(post))
	return post
}

func TestSubmitAppendsResponder(t *testing.T) {
	svc, postRepo, _, _ := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	got, err := svc.Submit(post.ID, "user-a")
	require.NoError(t, err)
	require.Len(t, got.Responders, 1)
	assert.Equal(t, "user-a", got.Responders[0].UserID)
	assert.False(t, got.Responders[0].Accepted)
}

func TestSubmitDuplicateRejected(t *testing.T) {
	svc, postRepo, _, _ := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	_, err := svc.Submit(post.ID, "user-a")
	require.NoError(t, err)

	// Second submit surfaces the business error and appends nothing.
	_, err = svc.Submit(post.ID, "user-a")
	assert.ErrorIs(t, err, ErrAlreadyResponded)

	stored, err := postRepo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Responders, 1)
}

func TestSubmitPreservesCallOrder(t *testing.T) {
	svc, postRepo, _, _ := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	_, err := svc.Submit(post.ID, "user-a")
	require.NoError(t, err)
	got, err := svc.Submit(post.ID, "user-b")
	require.NoError(t, err)

	require.Len(t, got.Responders, 2)
	assert.Equal(t, "user-a", got.Responders[0].UserID)
	assert.Equal(t, "user-b", got.Responders[1].UserID)
}

func TestSubmitUnauthenticated(t *testing.T) {
	svc, postRepo, _, _ := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	_, err := svc.Submit(post.ID, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSubmitPostNotFound(t *testing.T) {
	svc, _, _, _ := newTestResponderService()

	_, err := svc.Submit("does-not-exist", "user-a")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSubmitSelfResponseRejected(t *testing.T) {
	svc, postRepo, _, _ := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	_, err := svc.Submit(post.ID, "owner")
	assert.ErrorIs(t, err, ErrSelfResponse)

	stored, err := postRepo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Responders)
}

func TestSubmitMirrorsProfileFields(t *testing.T) {
	svc, postRepo, userRepo, _ := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	user := &models.User{
		ID:           "user-a",
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		Phone:        "555-0101",
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, userRepo.Create(user))

	got, err := svc.Submit(post.ID, "user-a")
	require.NoError(t, err)
	require.Len(t, got.Responders, 1)
	assert.Equal(t, "Asha Rao", got.Responders[0].Name)
	assert.Equal(t, "555-0101", got.Responders[0].Phone)
}

func TestSubmitSucceedsWithoutProfile(t *testing.T) {
	svc, postRepo, _, _ := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	// No profile stored for user-a; the mirror read fails independently
	// of the committed append.
	got, err := svc.Submit(post.ID, "user-a")
	require.NoError(t, err)
	require.Len(t, got.Responders, 1)
	assert.Empty(t, got.Responders[0].Name)
}

func TestSubmitNotifiesOwner(t *testing.T) {
	svc, postRepo, _, pusher := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	_, err := svc.Submit(post.ID, "user-a")
	require.NoError(t, err)

	require.Len(t, pusher.pushes, 1)
	assert.Equal(t, "owner", pusher.pushes[0].userID)
	notification := pusher.pushes[0].payload.(*models.Notification)
	assert.Equal(t, models.NotificationResponseReceived, notification.Type)
	assert.Equal(t, post.ID, notification.PostID)
}

func TestAcceptTargetsExactlyOne(t *testing.T) {
	svc, postRepo, _, _ := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	_, err := svc.Submit(post.ID, "user-a")
	require.NoError(t, err)
	_, err = svc.Submit(post.ID, "user-b")
	require.NoError(t, err)

	got, err := svc.Accept(post.ID, "owner", "user-a")
	require.NoError(t, err)
	require.Len(t, got.Responders, 2)
	assert.True(t, got.Responders[0].Accepted)
	assert.False(t, got.Responders[1].Accepted)
}

func TestAcceptResponderNotFound(t *testing.T) {
	svc, postRepo, _, _ := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	_, err := svc.Submit(post.ID, "user-a")
	require.NoError(t, err)

	_, err = svc.Accept(post.ID, "owner", "nonexistent-user")
	assert.ErrorIs(t, err, ErrResponderNotFound)

	stored, err := postRepo.GetByID(post.ID)
	require.NoError(t, err)
	assert.False(t, stored.Responders[0].Accepted)
}

func TestAcceptPostNotFound(t *testing.T) {
	svc, _, _, _ := newTestResponderService()

	_, err := svc.Accept("does-not-exist", "owner", "user-a")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAcceptRequiresOwnership(t *testing.T) {
	svc, postRepo, _, _ := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	_, err := svc.Submit(post.ID, "user-a")
	require.NoError(t, err)

	_, err = svc.Accept(post.ID, "user-b", "user-a")
	assert.ErrorIs(t, err, ErrNotOwner)

	stored, err := postRepo.GetByID(post.ID)
	require.NoError(t, err)
	assert.False(t, stored.Responders[0].Accepted)
}

func TestAcceptIsMonotonic(t *testing.T) {
	svc, postRepo, _, _ := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	_, err := svc.Submit(post.ID, "user-a")
	require.NoError(t, err)

	_, err = svc.Accept(post.ID, "owner", "user-a")
	require.NoError(t, err)

	// Accepting again never flips the flag back.
	got, err := svc.Accept(post.ID, "owner", "user-a")
	require.NoError(t, err)
	assert.True(t, got.Responders[0].Accepted)
}

func TestAcceptNotifiesResponder(t *testing.T) {
	svc, postRepo, _, pusher := newTestResponderService()
	post := newStoredPost(t, postRepo, "owner")

	_, err := svc.Submit(post.ID, "user-a")
	require.NoError(t, err)

	_, err = svc.Accept(post.ID, "owner", "user-a")
	require.NoError(t, err)

	require.Len(t, pusher.pushes, 2)
	assert.Equal(t, "user-a", pusher.pushes[1].userID)
	notification := pusher.pushes[1].payload.(*models.Notification)
	assert.Equal(t, models.NotificationResponseAccepted, notification.Type)
}

// Concurrent submitters racing on one post document, against the real store:
// every distinct user lands exactly once and a duplicate loses with the
// business error, regardless of interleaving.
func TestSubmitConcurrentAgainstBadger(t *testing.T) {
	db, err := repositories.OpenDB("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	postRepo := repositories.NewBadgerPostRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)
	svc := NewResponderService(postRepo, userRepo, nil)

	post := &models.Post{
		UserID:      "owner",
		Type:        models.PostTypeOffer,
		Title:       "Free moving boxes",
		Description: "A stack of sturdy boxes left over from our move",
		Category:    "household",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, postRepo.Create(post))

	users := []string{"user-a", "user-b", "user-c", "user-d"}
	var wg sync.WaitGroup
	for _, id := range users {
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(actor string) {
				defer wg.Done()
				_, serr := svc.Submit(post.ID, actor)
				if serr != nil {
					assert.ErrorIs(t, serr, ErrAlreadyResponded)
				}
			}(id)
		}
	}
	wg.Wait()

	stored, err := postRepo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Responders, len(users))

	seen := map[string]bool{}
	for _, r := range stored.Responders {
		assert.False(t, seen[r.UserID])
		seen[r.UserID] = true
	}
}
