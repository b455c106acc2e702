package repositories

import (
	"fmt"
	"time"

	"github.com/shramana263/neighbourlink/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerSessionRepository implements SessionRepository using BadgerDB.
// Session documents carry a Badger TTL matching their expiry so stale
// tokens age out of the store on their own.
type BadgerSessionRepository struct {
	db *badger.DB
}

// NewBadgerSessionRepository creates a new BadgerSessionRepository
func NewBadgerSessionRepository(db *badger.DB) *BadgerSessionRepository {
	return &BadgerSessionRepository{db: db}
}

func sessionKey(token string) []byte {
	return []byte(fmt.Sprintf("%s%s", SessionKeyPrefix, token))
}

// Create stores a session token
func (r *BadgerSessionRepository) Create(session *models.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	data, err := marshalEntity(session)
	if err != nil {
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	return runUpdate(r.db, func(txn *badger.Txn) error {
		entry := badger.NewEntry(sessionKey(session.Token), data).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

// Get resolves a token to its session, treating expired sessions as missing
func (r *BadgerSessionRepository) Get(token string) (*models.Session, error) {
	var session models.Session
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, sessionKey(token), &session)
	})
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, ErrNotFound
	}
	return &session, nil
}

// Delete removes a session token
func (r *BadgerSessionRepository) Delete(token string) error {
	return runUpdate(r.db, func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(token))
	})
}
