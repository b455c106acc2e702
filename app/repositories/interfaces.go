package repositories

import "github.com/shramana263/neighbourlink/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List(limit, offset int) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error
	// Mutate runs fn against a fresh read of the post inside a
	// read-modify-write transaction and commits the mutated document.
	// The body re-executes on optimistic-concurrency conflicts; an error
	// returned by fn aborts the transaction without retry. On success the
	// committed post is returned.
	Mutate(id string, fn func(post *models.Post) error) (*models.Post, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// SessionRepository defines the interface for session token storage
type SessionRepository interface {
	Create(session *models.Session) error
	Get(token string) (*models.Session, error)
	Delete(token string) error
}

// SkillRepository defines the interface for shared-skill data access
type SkillRepository interface {
	Create(skill *models.Skill) error
	GetByID(id string) (*models.Skill, error)
	List(limit, offset int) ([]*models.Skill, error)
}

// VolunteerRepository defines the interface for volunteer registrations
type VolunteerRepository interface {
	Create(volunteer *models.Volunteer) error
	GetByUser(userID string) (*models.Volunteer, error)
	List(limit, offset int) ([]*models.Volunteer, error)
}

// BusinessRepository defines the interface for business profiles
type BusinessRepository interface {
	Create(business *models.Business) error
	GetByID(id string) (*models.Business, error)
	List(limit, offset int) ([]*models.Business, error)
	Update(business *models.Business) error
}

// NotificationRepository defines the interface for user notifications
type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListByUser(userID string, limit, offset int) ([]*models.Notification, error)
	MarkRead(id, userID string) (*models.Notification, error)
}
