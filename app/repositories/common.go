package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
	// ErrConflict is returned when a read-modify-write transaction keeps
	// losing the optimistic-concurrency race and the retry budget runs out.
	ErrConflict = errors.New("transaction conflict")
)

const (
	// Key prefixes for different document types
	PostKeyPrefix         = "post:"
	UserKeyPrefix         = "user:"
	UserEmailKeyPrefix    = "useremail:"
	SessionKeyPrefix      = "session:"
	SkillKeyPrefix        = "skill:"
	VolunteerKeyPrefix    = "volunteer:"
	VolunteerUserPrefix   = "volunteeruser:"
	BusinessKeyPrefix     = "business:"
	NotificationKeyPrefix = "notification:"
)

// maxTxnRetries bounds the automatic retry of transactions that abort with
// badger.ErrConflict. Deliberate aborts (business-rule errors returned by the
// transaction body) are never retried.
const maxTxnRetries = 10

// OpenDB opens the Badger store at path. An empty path (or the literal
// "test_db") opens a throwaway store in a fresh temporary directory, used by
// tests for isolation.
func OpenDB(path string) (*badger.DB, error) {
	if path == "" || path == "test_db" {
		tempPath, err := os.MkdirTemp("", "neighbourlink_test_db_")
		if err != nil {
			return nil, fmt.Errorf("error creating temp dir: %v", err)
		}
		path = tempPath
	}
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1)
	return badger.Open(opts)
}

// runUpdate executes fn as a read-modify-write transaction. When the commit
// loses an optimistic-concurrency race Badger reports badger.ErrConflict and
// the whole body is re-executed against fresh document state, up to
// maxTxnRetries attempts. Any other error from fn aborts without retry.
func runUpdate(db *badger.DB, fn func(txn *badger.Txn) error) error {
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		err := db.Update(fn)
		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		return err
	}
	return ErrConflict
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}

// getEntity reads the document at key into entity, mapping a missing key to
// ErrNotFound.
func getEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, entity)
	})
}

// setEntity marshals entity and writes it at key.
func setEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	data, err := marshalEntity(entity)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}
