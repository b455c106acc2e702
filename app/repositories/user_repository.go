package repositories

import (
	"fmt"
	"strings"

	"github.com/shramana263/neighbourlink/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerUserRepository implements UserRepository using BadgerDB. Email
// uniqueness is kept by a secondary index key (useremail:<email> -> user id)
// written in the same transaction as the user document.
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

func userKey(id string) []byte {
	return []byte(fmt.Sprintf("%s%s", UserKeyPrefix, id))
}

func userEmailKey(email string) []byte {
	return []byte(fmt.Sprintf("%s%s", UserEmailKeyPrefix, strings.ToLower(email)))
}

// Create creates a new user, failing with ErrDuplicate if the email is taken
func (r *BadgerUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.BeforeCreate()

	if err := user.Validate(); err != nil {
		return err
	}

	return runUpdate(r.db, func(txn *badger.Txn) error {
		emailKey := userEmailKey(user.Email)
		_, err := txn.Get(emailKey)
		if err == nil {
			return ErrDuplicate
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		if err := txn.Set(emailKey, []byte(user.ID)); err != nil {
			return err
		}
		return setEntity(txn, userKey(user.ID), user)
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, userKey(id), &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user through the email index
func (r *BadgerUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userEmailKey(email))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}
		return getEntity(txn, userKey(id), &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates an existing user. Email changes rewrite the index key.
func (r *BadgerUserRepository) Update(user *models.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	return runUpdate(r.db, func(txn *badger.Txn) error {
		key := userKey(user.ID)

		var existing models.User
		if err := getEntity(txn, key, &existing); err != nil {
			return err
		}

		if !strings.EqualFold(existing.Email, user.Email) {
			_, err := txn.Get(userEmailKey(user.Email))
			if err == nil {
				return ErrDuplicate
			}
			if err != badger.ErrKeyNotFound {
				return err
			}
			if err := txn.Delete(userEmailKey(existing.Email)); err != nil {
				return err
			}
			if err := txn.Set(userEmailKey(user.Email), []byte(user.ID)); err != nil {
				return err
			}
		}

		return setEntity(txn, key, user)
	})
}
