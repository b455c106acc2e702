package repositories

import (
	"fmt"
	"sort"

	"github.com/shramana263/neighbourlink/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerNotificationRepository implements NotificationRepository using BadgerDB
type BadgerNotificationRepository struct {
	db *badger.DB
}

// NewBadgerNotificationRepository creates a new BadgerNotificationRepository
func NewBadgerNotificationRepository(db *badger.DB) *BadgerNotificationRepository {
	return &BadgerNotificationRepository{db: db}
}

func notificationKey(id string) []byte {
	return []byte(fmt.Sprintf("%s%s", NotificationKeyPrefix, id))
}

// Create stores a notification
func (r *BadgerNotificationRepository) Create(notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	notification.BeforeCreate()

	if err := notification.Validate(); err != nil {
		return err
	}

	return runUpdate(r.db, func(txn *badger.Txn) error {
		return setEntity(txn, notificationKey(notification.ID), notification)
	})
}

// ListByUser retrieves a user's notifications ordered newest first
func (r *BadgerNotificationRepository) ListByUser(userID string, limit, offset int) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(NotificationKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var notification models.Notification
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &notification)
			})
			if err != nil {
				return err
			}
			if notification.UserID == userID {
				notifications = append(notifications, &notification)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	if offset >= len(notifications) {
		return []*models.Notification{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(notifications) {
		end = len(notifications)
	}
	return notifications[offset:end], nil
}

// MarkRead flips the read flag inside a read-modify-write transaction. Only
// the recipient may mark their own notification.
func (r *BadgerNotificationRepository) MarkRead(id, userID string) (*models.Notification, error) {
	var marked *models.Notification

	err := runUpdate(r.db, func(txn *badger.Txn) error {
		marked = nil

		var notification models.Notification
		if err := getEntity(txn, notificationKey(id), &notification); err != nil {
			return err
		}
		if notification.UserID != userID {
			return ErrNotFound
		}
		notification.Read = true
		if err := setEntity(txn, notificationKey(id), &notification); err != nil {
			return err
		}
		marked = &notification
		return nil
	})
	if err != nil {
		return nil, err
	}
	return marked, nil
}
