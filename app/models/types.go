package models

import "time"

// Post types.
const (
	PostTypeRequest = "request"
	PostTypeOffer   = "offer"
)

// Urgency levels for request posts.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Notification types emitted by the responder workflow.
const (
	NotificationResponseReceived = "response_received"
	NotificationResponseAccepted = "response_accepted"
	NotificationPostNearby       = "post_nearby"
)

// Coordinates is a geographic point attached to posts and businesses.
type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// User represents a registered neighbor.
type User struct {
	ID           string    `json:"id" validate:"required"`
	Name         string    `json:"name" validate:"required,min=2,max=80"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-" validate:"required"`
	Phone        string    `json:"phone" validate:"max=20"`
	Address      string    `json:"address" validate:"max=200"`
	PhotoRef     string    `json:"photoRef" validate:"-"`
	CreatedAt    time.Time `json:"createdAt" validate:"required"`
}

// Responder records one user's intent to help with a Post. It is embedded in
// the post document, never stored on its own. Name, Phone and PhotoRef are
// display copies taken from the user profile at response time; they may be
// stale or empty without affecting the workflow.
type Responder struct {
	UserID      string    `json:"userId" validate:"required"`
	Accepted    bool      `json:"accepted"`
	Name        string    `json:"name" validate:"-"`
	Phone       string    `json:"phone" validate:"-"`
	PhotoRef    string    `json:"photoRef" validate:"-"`
	RespondedAt time.Time `json:"respondedAt" validate:"-"`
}

// Post is a resource request or offer owned by one user.
type Post struct {
	ID           string       `json:"id" validate:"required"`
	UserID       string       `json:"userId" validate:"required"`
	Type         string       `json:"type" validate:"required,oneof=request offer"`
	Title        string       `json:"title" validate:"required,min=3,max=100"`
	Description  string       `json:"description" validate:"required,min=10,max=2000"`
	Category     string       `json:"category" validate:"required,max=50"`
	Urgency      string       `json:"urgency" validate:"omitempty,oneof=low medium high"`
	Location     string       `json:"location" validate:"max=200"`
	Coordinates  *Coordinates `json:"coordinates,omitempty" validate:"omitempty"`
	PhotoRefs    []string     `json:"photoRefs,omitempty" validate:"-"`
	VisibilityKm float64      `json:"visibilityKm" validate:"gte=0"`
	DurationDays int          `json:"durationDays" validate:"gte=0"`
	Anonymous    bool         `json:"anonymous"`
	Responders   []Responder  `json:"responders" validate:"-"`
	CreatedAt    time.Time    `json:"createdAt" validate:"required"`
}

// Skill is a capability a user offers to the neighborhood.
type Skill struct {
	ID           string    `json:"id" validate:"required"`
	UserID       string    `json:"userId" validate:"required"`
	Title        string    `json:"title" validate:"required,min=3,max=100"`
	Description  string    `json:"description" validate:"required,min=10,max=1000"`
	Category     string    `json:"category" validate:"required,max=50"`
	Availability string    `json:"availability" validate:"max=200"`
	Contact      string    `json:"contact" validate:"max=100"`
	CreatedAt    time.Time `json:"createdAt" validate:"required"`
}

// Volunteer is a user's registration as an available helper. At most one
// registration exists per user.
type Volunteer struct {
	ID           string    `json:"id" validate:"required"`
	UserID       string    `json:"userId" validate:"required"`
	Name         string    `json:"name" validate:"required,min=2,max=80"`
	Contact      string    `json:"contact" validate:"required,max=100"`
	Skills       []string  `json:"skills" validate:"-"`
	Availability string    `json:"availability" validate:"max=200"`
	Areas        []string  `json:"areas" validate:"-"`
	CreatedAt    time.Time `json:"createdAt" validate:"required"`
}

// Business is a small business profile managed by its owner.
type Business struct {
	ID          string       `json:"id" validate:"required"`
	OwnerID     string       `json:"ownerId" validate:"required"`
	Name        string       `json:"name" validate:"required,min=2,max=100"`
	Description string       `json:"description" validate:"max=2000"`
	Category    string       `json:"category" validate:"required,max=50"`
	Address     string       `json:"address" validate:"max=200"`
	Coordinates *Coordinates `json:"coordinates,omitempty" validate:"omitempty"`
	Phone       string       `json:"phone" validate:"max=20"`
	PhotoRefs   []string     `json:"photoRefs,omitempty" validate:"-"`
	Verified    bool         `json:"verified"`
	CreatedAt   time.Time    `json:"createdAt" validate:"required"`
}

// Notification is a message delivered to one user.
type Notification struct {
	ID        string    `json:"id" validate:"required"`
	UserID    string    `json:"userId" validate:"required"`
	Type      string    `json:"type" validate:"required,oneof=response_received response_accepted post_nearby"`
	Title     string    `json:"title" validate:"required,max=120"`
	Body      string    `json:"body" validate:"max=500"`
	PostID    string    `json:"postId" validate:"-"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// Session maps an opaque bearer token to a user.
type Session struct {
	Token     string    `json:"token" validate:"required"`
	UserID    string    `json:"userId" validate:"required"`
	ExpiresAt time.Time `json:"expiresAt" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}
