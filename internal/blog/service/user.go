package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/inkwell-press/inkwell/internal/blog/domain"
	"github.com/inkwell-press/inkwell/internal/blog/store"
	"github.com/inkwell-press/inkwell/pkg/cryptox"
	"github.com/inkwell-press/inkwell/pkg/idx"
)

var validate = validator.New()

// UserService owns account registration and credential verification.
type UserService struct {
	Store store.Store
}

type registerInput struct {
	Username string `validate:"required,min=4"`
	Password string `validate:"required"`
}

// Register creates a new account. The plaintext password is hashed with a
// random per-password salt and discarded; it is never persisted or logged.
// Duplicate usernames lose atomically on the store's unique index, so two
// concurrent registrations can never both succeed.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.Account, error) {
	if err := validate.Struct(registerInput{Username: username, Password: password}); err != nil {
		return domain.Account{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrUsernameTaken
		}
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

// Login verifies the credentials and returns the account on success.
// Unknown usernames and wrong passwords are distinct results because the
// HTTP contract reports them with different statuses.
func (s *UserService) Login(ctx context.Context, username, password string) (domain.Account, error) {
	account, err := s.Store.Accounts().GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrUserNotFound
		}
		return domain.Account{}, fmt.Errorf("lookup account: %w", err)
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		return domain.Account{}, ErrBadCredentials
	}

	return account, nil
}
