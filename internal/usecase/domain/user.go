package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUser stores a new account with a bcrypt password hash.
func (u *Usecase) RegisterUser(ctx context.Context, user entities.User, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if user.Email == "" || !strings.Contains(user.Email, "@") {
		return nil, entities.NewValidationError("email", "a valid email is required")
	}
	if !user.Role.Valid() {
		return nil, entities.NewValidationError("role", "unknown role "+string(user.Role))
	}
	if len(password) < 8 {
		return nil, entities.NewValidationError("password", "password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.IsActive = true

	created, err := u.repo.CreateUser(ctx, user, string(hash))
	if err != nil {
		return nil, err
	}
	u.log.Infow("user registered", "user_id", created.ID, "role", created.Role)
	return created, nil
}

// GetUserByEmail returns an account by email.
func (u *Usecase) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	return u.repo.UserByEmail(ctx, email)
}

// OrganizationDevelopers lists the active developers of an organization.
func (u *Usecase) OrganizationDevelopers(ctx context.Context, orgID string) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if orgID == "" {
		return nil, fmt.Errorf("%w: organization_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.OrganizationDevelopers(ctx, orgID)
}
