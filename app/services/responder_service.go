package services

import (
	"fmt"
	"time"

	"github.com/shramana263/neighbourlink/app/models"
	"github.com/shramana263/neighbourlink/app/repositories"
)

// ResponderService implements the responder workflow: users attach themselves
// to a post's responder list, and the post owner marks one responder as
// accepted. All mutations go through the post repository's read-modify-write
// transaction, so uniqueness and ownership checks re-execute against fresh
// document state whenever a commit loses the optimistic-concurrency race.
type ResponderService struct {
	postRepo      repositories.PostRepository
	userRepo      repositories.UserRepository
	notifications *NotificationService
}

// NewResponderService creates a new ResponderService. notifications may be
// nil in tests that do not care about fan-out.
func NewResponderService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, notifications *NotificationService) *ResponderService {
	return &ResponderService{
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// Submit appends actorID to the post's responder list. It fails with
// ErrUnauthenticated when no actor is given, repositories.ErrNotFound when
// the post does not exist, ErrSelfResponse when the actor owns the post and
// ErrAlreadyResponded when the actor already appears in the list. The three
// business errors abort the transaction deliberately and are never retried.
func (s *ResponderService) Submit(postID, actorID string) (*models.Post, error) {
	if actorID == "" {
		return nil, ErrUnauthenticated
	}

	post, err := s.postRepo.Mutate(postID, func(post *models.Post) error {
		if post.IsOwner(actorID) {
			return ErrSelfResponse
		}
		if post.HasResponder(actorID) {
			return ErrAlreadyResponded
		}
		return post.AddResponder(models.Responder{
			UserID:      actorID,
			Accepted:    false,
			RespondedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	// Display mirror: fill the new entry with profile fields from a read
	// outside the transaction. Stale or missing profile data never fails
	// the submit.
	if user, uerr := s.userRepo.GetByID(actorID); uerr == nil {
		if r := post.FindResponder(actorID); r != nil {
			r.Name = user.Name
			r.Phone = user.Phone
			r.PhotoRef = user.PhotoRef
		}
	}

	if s.notifications != nil {
		s.notifications.Notify(post.UserID, models.NotificationResponseReceived,
			"New response to your post",
			fmt.Sprintf("Someone offered to help with %q", post.Title),
			post.ID)
	}

	return post, nil
}

// Accept flips the target responder's accepted flag to true, leaving every
// other entry untouched. Ownership is re-checked inside the transaction;
// trusting callers to gate the action is not a security boundary. Accepting
// an already-accepted responder is a no-op success, so the flag only ever
// moves from pending to accepted.
func (s *ResponderService) Accept(postID, actorID, targetID string) (*models.Post, error) {
	if actorID == "" {
		return nil, ErrUnauthenticated
	}

	post, err := s.postRepo.Mutate(postID, func(post *models.Post) error {
		if !post.IsOwner(actorID) {
			return ErrNotOwner
		}
		replaced, aerr := post.AcceptResponder(targetID)
		if aerr != nil {
			return ErrResponderNotFound
		}
		// Full-slice replace computed from the fresh in-transaction
		// read; a conflicting commit recomputes it from current state.
		post.Responders = replaced
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifications != nil {
		s.notifications.Notify(targetID, models.NotificationResponseAccepted,
			"Your offer to help was accepted",
			fmt.Sprintf("The owner of %q accepted your response", post.Title),
			post.ID)
	}

	return post, nil
}
