// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user directory operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User, passwordHash string) (*entities.User, error)
	UserByEmail(ctx context.Context, email string) (*entities.User, error)
	UsersByEmails(ctx context.Context, emails []string) ([]entities.User, error)
	OrganizationDevelopers(ctx context.Context, orgID string) ([]entities.User, error)
}

// OrganizationInterface exposes organization operations.
type OrganizationInterface interface {
	CreateOrganization(ctx context.Context, org entities.Organization) (*entities.Organization, error)
	Organization(ctx context.Context, id string) (*entities.Organization, error)
	OrganizationsForUser(ctx context.Context, userID string) ([]entities.Organization, error)
	AddOrganizationMembers(ctx context.Context, orgID string, userIDs []string) error
	OrganizationStats(ctx context.Context, orgID string) (entities.OrganizationStats, error)
}

// ProjectInterface exposes project operations.
type ProjectInterface interface {
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	Project(ctx context.Context, id string) (*entities.Project, error)
	ProjectsByOrganization(ctx context.Context, orgID string) ([]entities.Project, error)
	AssignProjectUsers(ctx context.Context, projectID string, userIDs []string) error
	ProjectStats(ctx context.Context, projectID string) (entities.ProjectStats, error)
	ProjectIDsForUser(ctx context.Context, userID string) ([]string, error)
}

// BugInterface exposes the authoritative bug store. Mutating methods
// serialize on the bug row via SELECT ... FOR UPDATE.
type BugInterface interface {
	CreateBug(ctx context.Context, bug entities.Bug) (*entities.Bug, error)
	Bug(ctx context.Context, id string) (*entities.Bug, error)
	UpdateBug(ctx context.Context, id string, actor entities.User, patch entities.BugPatch) (*entities.Bug, error)
	UpdateBugStatus(ctx context.Context, id string, status entities.BugStatus) (*entities.Bug, error)
	AssignDevelopers(ctx context.Context, id string, emails []string, requireSkillMatch bool) (*entities.Bug, error)
	BugsByProjectPage(ctx context.Context, filter entities.BugSearchFilter, ids []string) (entities.BugPage, error)
	BugsForUser(ctx context.Context, user entities.User, page, size int) (entities.BugPage, error)
	AssignedBugsInProject(ctx context.Context, projectID, developerID string, page, size int) (entities.BugPage, error)
	BugsByProject(ctx context.Context, projectID string) ([]entities.Bug, error)
	AllBugs(ctx context.Context) ([]entities.Bug, error)
}

// StatsInterface exposes aggregated statistics operations.
type StatsInterface interface {
	BugStatistics(ctx context.Context, projectID string) ([]entities.StatusCount, error)
	BugStatisticsForProjects(ctx context.Context, projectIDs []string) ([]entities.StatusCount, error)
	BugStatisticsAll(ctx context.Context) ([]entities.StatusCount, error)
}

// CommentInterface exposes comment operations.
type CommentInterface interface {
	CreateComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error)
	CommentsByBug(ctx context.Context, bugID string) ([]entities.Comment, error)
	UpdateComment(ctx context.Context, id, actorID, content string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, id, actorID string) error
}

// NotificationInterface exposes stored in-app notifications.
type NotificationInterface interface {
	CreateNotifications(ctx context.Context, msg entities.NotificationMessage) error
	NotificationsForUser(ctx context.Context, userID string) ([]entities.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}
