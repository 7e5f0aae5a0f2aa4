package domain

import (
	"context"
	"fmt"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
)

// CreateOrganization creates an organization with the actor as admin.
func (u *Usecase) CreateOrganization(ctx context.Context, actorEmail string, org entities.Organization) (*entities.Organization, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if org.Name == "" {
		return nil, entities.NewValidationError("name", "name is required")
	}
	actor, err := u.repo.UserByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	org.AdminID = actor.ID

	created, err := u.repo.CreateOrganization(ctx, org)
	if err != nil {
		return nil, err
	}
	u.log.Infow("organization created", "organization_id", created.ID, "admin", actorEmail)
	return created, nil
}

// GetOrganization returns an organization by id.
func (u *Usecase) GetOrganization(ctx context.Context, orgID string) (*entities.Organization, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if orgID == "" {
		return nil, fmt.Errorf("%w: organization_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.Organization(ctx, orgID)
}

// OrganizationsForUser lists the organizations the user belongs to.
func (u *Usecase) OrganizationsForUser(ctx context.Context, email string) ([]entities.Organization, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return u.repo.OrganizationsForUser(ctx, user.ID)
}

// AddOrganizationMembers enrolls the users with the given emails.
func (u *Usecase) AddOrganizationMembers(ctx context.Context, orgID string, emails []string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if orgID == "" {
		return fmt.Errorf("%w: organization_id is required", entities.ErrInvalidArgument)
	}
	if len(emails) == 0 {
		return entities.NewValidationError("members", "at least one member email is required")
	}

	users, err := u.repo.UsersByEmails(ctx, emails)
	if err != nil {
		return err
	}
	if len(users) != len(emails) {
		return fmt.Errorf("%w: one or more users not found", entities.ErrUserNotFound)
	}
	ids := make([]string, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}
	return u.repo.AddOrganizationMembers(ctx, orgID, ids)
}

// GetOrganizationStats aggregates counters for one organization.
func (u *Usecase) GetOrganizationStats(ctx context.Context, orgID string) (entities.OrganizationStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if orgID == "" {
		return entities.OrganizationStats{}, fmt.Errorf("%w: organization_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.OrganizationStats(ctx, orgID)
}
