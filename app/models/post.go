package models

import (
	"errors"
	"time"
)

// Validate checks if the post meets all validation requirements. A stored
// document that fails validation is treated as malformed rather than patched
// up with defaults.
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.Responders == nil {
		p.Responders = []Responder{}
	}
}

// FindResponder returns the responder entry for userID, or nil if the user
// has not responded to this post.
func (p *Post) FindResponder(userID string) *Responder {
	for i := range p.Responders {
		if p.Responders[i].UserID == userID {
			return &p.Responders[i]
		}
	}
	return nil
}

// HasResponder reports whether userID already appears in the responder list.
func (p *Post) HasResponder(userID string) bool {
	return p.FindResponder(userID) != nil
}

// AddResponder appends a responder entry, enforcing per-post uniqueness.
func (p *Post) AddResponder(r Responder) error {
	if r.UserID == "" {
		return errors.New("responder userId cannot be empty")
	}
	if p.HasResponder(r.UserID) {
		return errors.New("responder already exists")
	}
	p.Responders = append(p.Responders, r)
	return nil
}

// AcceptResponder returns a copy of the responder list with the matched
// entry's Accepted flag set to true and every other entry unchanged. The
// original slice is not modified. Accepting an already-accepted responder is
// a no-op; the flag never transitions back to false.
func (p *Post) AcceptResponder(userID string) ([]Responder, error) {
	idx := -1
	for i := range p.Responders {
		if p.Responders[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, errors.New("responder not found")
	}

	replaced := make([]Responder, len(p.Responders))
	copy(replaced, p.Responders)
	replaced[idx].Accepted = true
	return replaced, nil
}

// IsOwner reports whether userID owns this post.
func (p *Post) IsOwner(userID string) bool {
	return p.UserID == userID
}
