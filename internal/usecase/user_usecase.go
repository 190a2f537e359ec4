// Package usecase defines the application's use case interfaces and their
// input/output shapes. Delivery layers depend on these interfaces; the
// implementations live in impl.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RegisterUserInput carries the data needed to create a new account.
type RegisterUserInput struct {
	Email    string
	Password string
}

// LoginInput carries the credentials for a login check.
type LoginInput struct {
	Email    string
	Password string
}

// UserOutput is the external representation of an account, with the password
// hash stripped and the profile flattened in.
type UserOutput struct {
	ID          uuid.UUID
	Email       string
	ProfileID   uuid.UUID
	Memberships []string
	CreatedAt   time.Time
}

// UserUsecase defines the interface for account management use cases.
type UserUsecase interface {
	// RegisterUser creates a new account with an empty membership profile.
	// A duplicate email is a conflict.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*UserOutput, error)

	// Login verifies credentials and returns the account. No session or token
	// is created.
	Login(ctx context.Context, input *LoginInput) (*UserOutput, error)

	// DeleteUser removes the account and everything hanging off it, in one
	// transaction: the user's votes are retracted from perk counters first so
	// the ledger and counters stay consistent.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
