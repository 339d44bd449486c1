package auth

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned by store lookups that match nothing.
var ErrUserNotFound = errors.New("user not found")

// UserStore persists identity profile documents.
type UserStore interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUID(ctx context.Context, uid string) (*User, error)
	UpdateProfile(ctx context.Context, uid string, p Profile) error
}
