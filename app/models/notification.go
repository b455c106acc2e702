package models

import (
	"errors"
	"time"
)

// Validate checks if the notification meets all validation requirements
func (n *Notification) Validate() error {
	if err := validate.Struct(n); err != nil {
		return err
	}

	if n.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (n *Notification) BeforeCreate() {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
}

// Validate checks if the session is well formed and not expired.
func (s *Session) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	return nil
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
