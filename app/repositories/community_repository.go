package repositories

import (
	"fmt"
	"sort"

	"github.com/shramana263/neighbourlink/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerSkillRepository implements SkillRepository using BadgerDB
type BadgerSkillRepository struct {
	db *badger.DB
}

// NewBadgerSkillRepository creates a new BadgerSkillRepository
func NewBadgerSkillRepository(db *badger.DB) *BadgerSkillRepository {
	return &BadgerSkillRepository{db: db}
}

func skillKey(id string) []byte {
	return []byte(fmt.Sprintf("%s%s", SkillKeyPrefix, id))
}

// Create creates a new shared skill
func (r *BadgerSkillRepository) Create(skill *models.Skill) error {
	if skill.ID == "" {
		skill.ID = uuid.NewString()
	}
	skill.BeforeCreate()

	if err := skill.Validate(); err != nil {
		return err
	}

	return runUpdate(r.db, func(txn *badger.Txn) error {
		return setEntity(txn, skillKey(skill.ID), skill)
	})
}

// GetByID retrieves a skill by ID
func (r *BadgerSkillRepository) GetByID(id string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, skillKey(id), &skill)
	})
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// List retrieves skills ordered newest first
func (r *BadgerSkillRepository) List(limit, offset int) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(SkillKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var skill models.Skill
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &skill)
			})
			if err != nil {
				return err
			}
			skills = append(skills, &skill)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].CreatedAt.After(skills[j].CreatedAt)
	})
	return paginateSkills(skills, limit, offset), nil
}

func paginateSkills(skills []*models.Skill, limit, offset int) []*models.Skill {
	if offset >= len(skills) {
		return []*models.Skill{}
	}
	end := offset + limit
	if limit <= 0 || end > len(skills) {
		end = len(skills)
	}
	return skills[offset:end]
}

// BadgerVolunteerRepository implements VolunteerRepository using BadgerDB.
// One registration per user, held by a volunteeruser:<userId> index key
// written in the same transaction as the registration itself.
type BadgerVolunteerRepository struct {
	db *badger.DB
}

// NewBadgerVolunteerRepository creates a new BadgerVolunteerRepository
func NewBadgerVolunteerRepository(db *badger.DB) *BadgerVolunteerRepository {
	return &BadgerVolunteerRepository{db: db}
}

func volunteerKey(id string) []byte {
	return []byte(fmt.Sprintf("%s%s", VolunteerKeyPrefix, id))
}

func volunteerUserKey(userID string) []byte {
	return []byte(fmt.Sprintf("%s%s", VolunteerUserPrefix, userID))
}

// Create registers a volunteer, failing with ErrDuplicate if the user is
// already registered
func (r *BadgerVolunteerRepository) Create(volunteer *models.Volunteer) error {
	if volunteer.ID == "" {
		volunteer.ID = uuid.NewString()
	}
	volunteer.BeforeCreate()

	if err := volunteer.Validate(); err != nil {
		return err
	}

	return runUpdate(r.db, func(txn *badger.Txn) error {
		indexKey := volunteerUserKey(volunteer.UserID)
		_, err := txn.Get(indexKey)
		if err == nil {
			return ErrDuplicate
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		if err := txn.Set(indexKey, []byte(volunteer.ID)); err != nil {
			return err
		}
		return setEntity(txn, volunteerKey(volunteer.ID), volunteer)
	})
}

// GetByUser retrieves a user's registration through the index
func (r *BadgerVolunteerRepository) GetByUser(userID string) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(volunteerUserKey(userID))
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
		return getEntity(txn, volunteerKey(id), &volunteer)
	})
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// List retrieves volunteer registrations ordered newest first
func (r *BadgerVolunteerRepository) List(limit, offset int) ([]*models.Volunteer, error) {
	var volunteers []*models.Volunteer
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(VolunteerKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var volunteer models.Volunteer
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &volunteer)
			})
			if err != nil {
				return err
			}
			volunteers = append(volunteers, &volunteer)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(volunteers, func(i, j int) bool {
		return volunteers[i].CreatedAt.After(volunteers[j].CreatedAt)
	})
	if offset >= len(volunteers) {
		return []*models.Volunteer{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(volunteers) {
		end = len(volunteers)
	}
	return volunteers[offset:end], nil
}

// BadgerBusinessRepository implements BusinessRepository using BadgerDB
type BadgerBusinessRepository struct {
	db *badger.DB
}

// NewBadgerBusinessRepository creates a new BadgerBusinessRepository
func NewBadgerBusinessRepository(db *badger.DB) *BadgerBusinessRepository {
	return &BadgerBusinessRepository{db: db}
}

func businessKey(id string) []byte {
	return []byte(fmt.Sprintf("%s%s", BusinessKeyPrefix, id))
}

// Create creates a new business profile
func (r *BadgerBusinessRepository) Create(business *models.Business) error {
	if business.ID == "" {
		business.ID = uuid.NewString()
	}
	business.BeforeCreate()

	if err := business.Validate(); err != nil {
		return err
	}

	return runUpdate(r.db, func(txn *badger.Txn) error {
		return setEntity(txn, businessKey(business.ID), business)
	})
}

// GetByID retrieves a business by ID
func (r *BadgerBusinessRepository) GetByID(id string) (*models.Business, error) {
	var business models.Business
	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, businessKey(id), &business)
	})
	if err != nil {
		return nil, err
	}
	return &business, nil
}

// List retrieves business profiles ordered newest first
func (r *BadgerBusinessRepository) List(limit, offset int) ([]*models.Business, error) {
	var businesses []*models.Business
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(BusinessKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var business models.Business
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &business)
			})
			if err != nil {
				return err
			}
			businesses = append(businesses, &business)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(businesses, func(i, j int) bool {
		return businesses[i].CreatedAt.After(businesses[j].CreatedAt)
	})
	if offset >= len(businesses) {
		return []*models.Business{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(businesses) {
		end = len(businesses)
	}
	return businesses[offset:end], nil
}

// Update updates an existing business profile
func (r *BadgerBusinessRepository) Update(business *models.Business) error {
	if err := business.Validate(); err != nil {
		return err
	}

	return runUpdate(r.db, func(txn *badger.Txn) error {
		key := businessKey(business.ID)
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return setEntity(txn, key, business)
	})
}
