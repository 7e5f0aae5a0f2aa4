package domain

import (
	"context"
	"fmt"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
)

// CreateProject creates a project. Only admins and project managers
// may create projects; the actor becomes the manager when none is set.
func (u *Usecase) CreateProject(ctx context.Context, actorEmail string, project entities.Project) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if project.Name == "" {
		return nil, entities.NewValidationError("name", "name is required")
	}
	if project.OrganizationID == "" {
		return nil, entities.NewValidationError("organization_id", "organization_id is required")
	}

	actor, err := u.repo.UserByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	if actor.Role != entities.RoleAdmin && actor.Role != entities.RoleProjectManager {
		return nil, fmt.Errorf("%w: only admins and project managers can create projects", entities.ErrPermissionDenied)
	}
	if project.ManagerID == "" && actor.Role == entities.RoleProjectManager {
		project.ManagerID = actor.ID
	}

	created, err := u.repo.CreateProject(ctx, project)
	if err != nil {
		return nil, err
	}
	u.log.Infow("project created", "project_id", created.ID, "actor", actorEmail)
	return created, nil
}

// GetProject returns a project by id.
func (u *Usecase) GetProject(ctx context.Context, projectID string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.Project(ctx, projectID)
}

// ProjectsByOrganization lists an organization's projects.
func (u *Usecase) ProjectsByOrganization(ctx context.Context, orgID string) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if orgID == "" {
		return nil, fmt.Errorf("%w: organization_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ProjectsByOrganization(ctx, orgID)
}

// AssignUsersToProject adds the users with the given emails to the
// project membership.
func (u *Usecase) AssignUsersToProject(ctx context.Context, projectID string, emails []string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	if len(emails) == 0 {
		return entities.NewValidationError("users", "at least one user email is required")
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
	return u.repo.AssignProjectUsers(ctx, projectID, ids)
}

// GetProjectStats aggregates bug counters for a project.
func (u *Usecase) GetProjectStats(ctx context.Context, projectID string) (entities.ProjectStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return entities.ProjectStats{}, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ProjectStats(ctx, projectID)
}
