package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{
			name: "valid user",
			user: &User{
				ID:           "user-1",
				Name:         "Asha Rao",
				Email:        "asha@example.com",
				PasswordHash: "x",
				CreatedAt:    time.Now(),
			},
			wantErr: false,
		},
		{
			name: "invalid email",
			user: &User{
				ID:           "user-1",
				Name:         "Asha Rao",
				Email:        "not-an-email",
				PasswordHash: "x",
				CreatedAt:    time.Now(),
			},
			wantErr: true,
		},
		{
			name: "name too short",
			user: &User{
				ID:           "user-1",
				Name:         "A",
				Email:        "asha@example.com",
				PasswordHash: "x",
				CreatedAt:    time.Now(),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserPassword(t *testing.T) {
	user := &User{}

	err := user.SetPassword("short")
	assert.Error(t, err)

	err = user.SetPassword("correct horse battery")
	assert.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)

	assert.True(t, user.CheckPassword("correct horse battery"))
	assert.False(t, user.CheckPassword("wrong password"))
}

func TestUserPublic(t *testing.T) {
	user := &User{ID: "user-1", Name: "Asha Rao", PasswordHash: "secret"}
	pub := user.Public()
	assert.Empty(t, pub.PasswordHash)
	assert.Equal(t, "secret", user.PasswordHash)
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	s := &Session{Token: "t", UserID: "user-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(2*time.Hour)))
}
