// Package mock provides in-memory repository implementations for tests.
package mock

import (
	"sort"
	"sync"
	"time"

	"github.com/shramana263/neighbourlink/app/models"
	"github.com/shramana263/neighbourlink/app/repositories"

	"github.com/google/uuid"
)

// PostRepository is an in-memory PostRepository.
type PostRepository struct {
	posts map[string]*models.Post
	mutex sync.RWMutex
}

// NewPostRepository creates an empty in-memory post repository
func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]*models.Post)}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.Post)
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	post.BeforeCreate()
	clone := clonePost(post)
	m.posts[post.ID] = clone
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return clonePost(post), nil
}

func (m *PostRepository) List(limit, offset int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, post := range m.posts {
		posts = append(posts, clonePost(post))
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

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = clonePost(post)
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) Mutate(id string, fn func(post *models.Post) error) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	working := clonePost(post)
	if err := fn(working); err != nil {
		return nil, err
	}
	m.posts[id] = working
	return clonePost(working), nil
}

func clonePost(post *models.Post) *models.Post {
	clone := *post
	clone.Responders = append([]models.Responder(nil), post.Responders...)
	clone.PhotoRefs = append([]string(nil), post.PhotoRefs...)
	if post.Coordinates != nil {
		coords := *post.Coordinates
		clone.Coordinates = &coords
	}
	return &clone
}

// UserRepository is an in-memory UserRepository.
type UserRepository struct {
	users   map[string]*models.User
	byEmail map[string]string
	mutex   sync.RWMutex
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, taken := m.byEmail[user.Email]; taken {
		return repositories.ErrDuplicate
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.BeforeCreate()
	clone := *user
	m.users[user.ID] = &clone
	m.byEmail[user.Email] = user.ID
	return nil
}

func (m *UserRepository) GetByID(id string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *UserRepository) GetByEmail(email string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	id, exists := m.byEmail[email]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *m.users[id]
	return &clone, nil
}

func (m *UserRepository) Update(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	existing, exists := m.users[user.ID]
	if !exists {
		return repositories.ErrNotFound
	}
	if existing.Email != user.Email {
		if _, taken := m.byEmail[user.Email]; taken {
			return repositories.ErrDuplicate
		}
		delete(m.byEmail, existing.Email)
		m.byEmail[user.Email] = user.ID
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

// SessionRepository is an in-memory SessionRepository.
type SessionRepository struct {
	sessions map[string]*models.Session
	mutex    sync.RWMutex
}

// NewSessionRepository creates an empty in-memory session repository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*models.Session)}
}

func (m *SessionRepository) Create(session *models.Session) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	clone := *session
	m.sessions[session.Token] = &clone
	return nil
}

func (m *SessionRepository) Get(token string) (*models.Session, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	session, exists := m.sessions[token]
	if !exists || session.Expired(time.Now()) {
		return nil, repositories.ErrNotFound
	}
	clone := *session
	return &clone, nil
}

func (m *SessionRepository) Delete(token string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.sessions, token)
	return nil
}

// SkillRepository is an in-memory SkillRepository.
type SkillRepository struct {
	skills map[string]*models.Skill
	mutex  sync.RWMutex
}

// NewSkillRepository creates an empty in-memory skill repository
func NewSkillRepository() *SkillRepository {
	return &SkillRepository{skills: make(map[string]*models.Skill)}
}

func (m *SkillRepository) Create(skill *models.Skill) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if skill.ID == "" {
		skill.ID = uuid.NewString()
	}
	skill.BeforeCreate()
	clone := *skill
	m.skills[skill.ID] = &clone
	return nil
}

func (m *SkillRepository) GetByID(id string) (*models.Skill, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	skill, exists := m.skills[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *skill
	return &clone, nil
}

func (m *SkillRepository) List(limit, offset int) ([]*models.Skill, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var skills []*models.Skill
	for _, skill := range m.skills {
		clone := *skill
		skills = append(skills, &clone)
	}
	sort.Slice(skills, func(i, j int) bool {
		return skills[i].CreatedAt.After(skills[j].CreatedAt)
	})
	if offset >= len(skills) {
		return []*models.Skill{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(skills) {
		end = len(skills)
	}
	return skills[offset:end], nil
}

// VolunteerRepository is an in-memory VolunteerRepository.
type VolunteerRepository struct {
	volunteers map[string]*models.Volunteer
	byUser     map[string]string
	mutex      sync.RWMutex
}

// NewVolunteerRepository creates an empty in-memory volunteer repository
func NewVolunteerRepository() *VolunteerRepository {
	return &VolunteerRepository{
		volunteers: make(map[string]*models.Volunteer),
		byUser:     make(map[string]string),
	}
}

func (m *VolunteerRepository) Create(volunteer *models.Volunteer) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, taken := m.byUser[volunteer.UserID]; taken {
		return repositories.ErrDuplicate
	}
	if volunteer.ID == "" {
		volunteer.ID = uuid.NewString()
	}
	volunteer.BeforeCreate()
	clone := *volunteer
	m.volunteers[volunteer.ID] = &clone
	m.byUser[volunteer.UserID] = volunteer.ID
	return nil
}

func (m *VolunteerRepository) GetByUser(userID string) (*models.Volunteer, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	id, exists := m.byUser[userID]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *m.volunteers[id]
	return &clone, nil
}

func (m *VolunteerRepository) List(limit, offset int) ([]*models.Volunteer, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var volunteers []*models.Volunteer
	for _, volunteer := range m.volunteers {
		clone := *volunteer
		volunteers = append(volunteers, &clone)
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

// BusinessRepository is an in-memory BusinessRepository.
type BusinessRepository struct {
	businesses map[string]*models.Business
	mutex      sync.RWMutex
}

// NewBusinessRepository creates an empty in-memory business repository
func NewBusinessRepository() *BusinessRepository {
	return &BusinessRepository{businesses: make(map[string]*models.Business)}
}

func (m *BusinessRepository) Create(business *models.Business) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if business.ID == "" {
		business.ID = uuid.NewString()
	}
	business.BeforeCreate()
	clone := *business
	m.businesses[business.ID] = &clone
	return nil
}

func (m *BusinessRepository) GetByID(id string) (*models.Business, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	business, exists := m.businesses[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	clone := *business
	return &clone, nil
}

func (m *BusinessRepository) List(limit, offset int) ([]*models.Business, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var businesses []*models.Business
	for _, business := range m.businesses {
		clone := *business
		businesses = append(businesses, &clone)
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

func (m *BusinessRepository) Update(business *models.Business) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.businesses[business.ID]; !exists {
		return repositories.ErrNotFound
	}
	clone := *business
	m.businesses[business.ID] = &clone
	return nil
}

// NotificationRepository is an in-memory NotificationRepository.
type NotificationRepository struct {
	notifications map[string]*models.Notification
	mutex         sync.RWMutex
}

// NewNotificationRepository creates an empty in-memory notification repository
func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{notifications: make(map[string]*models.Notification)}
}

func (m *NotificationRepository) Create(notification *models.Notification) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	notification.BeforeCreate()
	clone := *notification
	m.notifications[notification.ID] = &clone
	return nil
}

func (m *NotificationRepository) ListByUser(userID string, limit, offset int) ([]*models.Notification, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var notifications []*models.Notification
	for _, notification := range m.notifications {
		if notification.UserID == userID {
			clone := *notification
			notifications = append(notifications, &clone)
		}
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

func (m *NotificationRepository) MarkRead(id, userID string) (*models.Notification, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	notification, exists := m.notifications[id]
	if !exists || notification.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	notification.Read = true
	clone := *notification
	return &clone, nil
}
