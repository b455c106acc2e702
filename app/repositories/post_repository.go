package repositories

import (
	"fmt"
	"sort"

	"github.com/shramana263/neighbourlink/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

func postKey(id string) []byte {
	return []byte(fmt.Sprintf("%s%s", PostKeyPrefix, id))
}

// Create creates a new post
func (r *BadgerPostRepository) Create(post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return err
	}

	return runUpdate(r.db, func(txn *badger.Txn) error {
		return setEntity(txn, postKey(post.ID), post)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, postKey(id), &post)
	})
	if err != nil {
		return nil, err
	}

	// A stored document that no longer decodes into a valid post is
	// malformed, not "empty"; reject it rather than defaulting fields.
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("malformed post document %s: %w", id, err)
	}
	return &post, nil
}

// List retrieves posts ordered newest first
func (r *BadgerPostRepository) List(limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	if offset >= len(posts) {
		return []*models.Post{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end], nil
}

// Update updates an existing post
func (r *BadgerPostRepository) Update(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	return runUpdate(r.db, func(txn *badger.Txn) error {
		key := postKey(post.ID)

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return setEntity(txn, key, post)
	})
}

// Delete deletes a post by ID
func (r *BadgerPostRepository) Delete(id string) error {
	return runUpdate(r.db, func(txn *badger.Txn) error {
		key := postKey(id)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

// Mutate reads the post inside a transaction, applies fn to the decoded
// document and writes the result back. Conflicting commits re-run the whole
// body against current state, so checks made by fn (responder uniqueness,
// ownership) hold under concurrent mutators. Errors returned by fn are
// deliberate aborts and propagate unchanged.
func (r *BadgerPostRepository) Mutate(id string, fn func(post *models.Post) error) (*models.Post, error) {
	var committed *models.Post

	err := runUpdate(r.db, func(txn *badger.Txn) error {
		committed = nil

		var post models.Post
		if err := getEntity(txn, postKey(id), &post); err != nil {
			return err
		}
		if err := post.Validate(); err != nil {
			return fmt.Errorf("malformed post document %s: %w", id, err)
		}

		if err := fn(&post); err != nil {
			return err
		}

		if err := post.Validate(); err != nil {
			return err
		}
		if err := setEntity(txn, postKey(id), &post); err != nil {
			return err
		}
		committed = &post
		return nil
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}
