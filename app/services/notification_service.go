package services

import (
	"log"

	"github.com/shramana263/neighbourlink/app/models"
	"github.com/shramana263/neighbourlink/app/repositories"
)

// Pusher delivers a payload to a connected user, dropping it silently when
// the user has no live connection. Implemented by the websocket hub.
type Pusher interface {
	Push(userID string, payload interface{})
}

// NotificationService persists notifications and pushes them to connected
// recipients.
type NotificationService struct {
	repo   repositories.NotificationRepository
	pusher Pusher
}

// NewNotificationService creates a new NotificationService. pusher may be
// nil when no live delivery channel exists.
func NewNotificationService(repo repositories.NotificationRepository, pusher Pusher) *NotificationService {
	return &NotificationService{repo: repo, pusher: pusher}
}

// Notify stores a notification for userID and pushes it if they are
// connected. Delivery is best-effort: a storage failure is logged, never
// propagated into the operation that triggered the notification.
func (s *NotificationService) Notify(userID, kind, title, body, postID string) {
	notification := &models.Notification{
		UserID: userID,
		Type:   kind,
		Title:  title,
		Body:   body,
		PostID: postID,
	}
	notification.BeforeCreate()

	if err := s.repo.Create(notification); err != nil {
		log.Printf("failed to store notification for %s: %v", userID, err)
		return
	}
	if s.pusher != nil {
		s.pusher.Push(userID, notification)
	}
}

// List retrieves a page of the user's notifications, newest first
func (s *NotificationService) List(userID string, page, perPage int) ([]*models.Notification, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	return s.repo.ListByUser(userID, perPage, (page-1)*perPage)
}

// MarkRead flips a notification's read flag for its recipient
func (s *NotificationService) MarkRead(userID, id string) (*models.Notification, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.repo.MarkRead(id, userID)
}
