package models

import (
	"errors"
	"time"
)

// Validate checks if the skill meets all validation requirements
func (s *Skill) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}

	if s.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (s *Skill) BeforeCreate() {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
}

// Validate checks if the volunteer registration meets all validation requirements
func (v *Volunteer) Validate() error {
	if err := validate.Struct(v); err != nil {
		return err
	}

	if v.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (v *Volunteer) BeforeCreate() {
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	if v.Skills == nil {
		v.Skills = []string{}
	}
	if v.Areas == nil {
		v.Areas = []string{}
	}
}

// Validate checks if the business profile meets all validation requirements
func (b *Business) Validate() error {
	if err := validate.Struct(b); err != nil {
		return err
	}

	if b.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (b *Business) BeforeCreate() {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
}
