package usecase

import (
	"context"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
)

// BugUsecaseInterface abstracts bug lifecycle operations for the delivery layer.
type BugUsecaseInterface interface {
	CreateBug(ctx context.Context, actorEmail string, bug entities.Bug) (*entities.Bug, error)
	GetBug(ctx context.Context, bugID string) (*entities.Bug, error)
	UpdateBug(ctx context.Context, bugID, actorEmail string, patch entities.BugPatch) (*entities.Bug, error)
	UpdateBugStatus(ctx context.Context, bugID string, status entities.BugStatus, actorEmail string) (*entities.Bug, error)
	AssignBugToDevelopers(ctx context.Context, bugID string, emails []string) (*entities.Bug, error)
	SearchBugsInProject(ctx context.Context, filter entities.BugSearchFilter) (entities.BugPage, error)
	BugsForUser(ctx context.Context, email string, page, size int) (entities.BugPage, error)
	AssignedBugs(ctx context.Context, projectID, developerEmail string, page, size int) (entities.BugPage, error)
	GetBugStatistics(ctx context.Context, projectID string) ([]entities.StatusCount, error)
	GetBugStatisticsForUser(ctx context.Context, email string) ([]entities.StatusCount, error)
	ReindexProject(ctx context.Context, projectID string) (int, error)
	ReindexAll(ctx context.Context) (int, error)
	AnalyzeBug(ctx context.Context, bugID string) (*entities.BugAnalysis, error)
}

// UserUsecaseInterface abstracts user directory operations.
type UserUsecaseInterface interface {
	RegisterUser(ctx context.Context, user entities.User, password string) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	OrganizationDevelopers(ctx context.Context, orgID string) ([]entities.User, error)
}

// OrganizationUsecaseInterface abstracts organization operations.
type OrganizationUsecaseInterface interface {
	CreateOrganization(ctx context.Context, actorEmail string, org entities.Organization) (*entities.Organization, error)
	GetOrganization(ctx context.Context, orgID string) (*entities.Organization, error)
	OrganizationsForUser(ctx context.Context, email string) ([]entities.Organization, error)
	AddOrganizationMembers(ctx context.Context, orgID string, emails []string) error
	GetOrganizationStats(ctx context.Context, orgID string) (entities.OrganizationStats, error)
}

// ProjectUsecaseInterface abstracts project operations.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, actorEmail string, project entities.Project) (*entities.Project, error)
	GetProject(ctx context.Context, projectID string) (*entities.Project, error)
	ProjectsByOrganization(ctx context.Context, orgID string) ([]entities.Project, error)
	AssignUsersToProject(ctx context.Context, projectID string, emails []string) error
	GetProjectStats(ctx context.Context, projectID string) (entities.ProjectStats, error)
}

// CommentUsecaseInterface abstracts comment operations.
type CommentUsecaseInterface interface {
	AddComment(ctx context.Context, actorEmail, bugID, content string) (*entities.Comment, error)
	CommentsForBug(ctx context.Context, bugID string) ([]entities.Comment, error)
	EditComment(ctx context.Context, commentID, actorEmail, content string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, commentID, actorEmail string) error
}

// NotificationUsecaseInterface abstracts stored notification operations.
type NotificationUsecaseInterface interface {
	NotificationsForUser(ctx context.Context, email string) ([]entities.Notification, error)
	UnreadNotificationCount(ctx context.Context, email string) (int64, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, email string) error
}
