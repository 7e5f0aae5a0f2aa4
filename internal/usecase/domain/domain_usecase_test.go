package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
	"github.com/Swayam792/Bugwise-Backend/internal/notifier"
	"github.com/Swayam792/Bugwise-Backend/internal/repository"
	"github.com/Swayam792/Bugwise-Backend/internal/search"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateUser(ctx context.Context, user entities.User, passwordHash string) (*entities.User, error) {
	args := m.Called(ctx, user, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) UserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) UsersByEmails(ctx context.Context, emails []string) ([]entities.User, error) {
	args := m.Called(ctx, emails)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) OrganizationDevelopers(ctx context.Context, orgID string) ([]entities.User, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) CreateOrganization(ctx context.Context, org entities.Organization) (*entities.Organization, error) {
	args := m.Called(ctx, org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Organization), args.Error(1)
}

func (m *repoMock) Organization(ctx context.Context, id string) (*entities.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Organization), args.Error(1)
}

func (m *repoMock) OrganizationsForUser(ctx context.Context, userID string) ([]entities.Organization, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Organization), args.Error(1)
}

func (m *repoMock) AddOrganizationMembers(ctx context.Context, orgID string, userIDs []string) error {
	return m.Called(ctx, orgID, userIDs).Error(0)
}

func (m *repoMock) OrganizationStats(ctx context.Context, orgID string) (entities.OrganizationStats, error) {
	args := m.Called(ctx, orgID)
	return args.Get(0).(entities.OrganizationStats), args.Error(1)
}

func (m *repoMock) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) Project(ctx context.Context, id string) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) ProjectsByOrganization(ctx context.Context, orgID string) ([]entities.Project, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) AssignProjectUsers(ctx context.Context, projectID string, userIDs []string) error {
	return m.Called(ctx, projectID, userIDs).Error(0)
}

func (m *repoMock) ProjectStats(ctx context.Context, projectID string) (entities.ProjectStats, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(entities.ProjectStats), args.Error(1)
}

func (m *repoMock) ProjectIDsForUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *repoMock) CreateBug(ctx context.Context, bug entities.Bug) (*entities.Bug, error) {
	args := m.Called(ctx, bug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bug), args.Error(1)
}

func (m *repoMock) Bug(ctx context.Context, id string) (*entities.Bug, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bug), args.Error(1)
}

func (m *repoMock) UpdateBug(ctx context.Context, id string, actor entities.User, patch entities.BugPatch) (*entities.Bug, error) {
	args := m.Called(ctx, id, actor, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bug), args.Error(1)
}

func (m *repoMock) UpdateBugStatus(ctx context.Context, id string, status entities.BugStatus) (*entities.Bug, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bug), args.Error(1)
}

func (m *repoMock) AssignDevelopers(ctx context.Context, id string, emails []string, requireSkillMatch bool) (*entities.Bug, error) {
	args := m.Called(ctx, id, emails, requireSkillMatch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Bug), args.Error(1)
}

func (m *repoMock) BugsByProjectPage(ctx context.Context, filter entities.BugSearchFilter, ids []string) (entities.BugPage, error) {
	args := m.Called(ctx, filter, ids)
	return args.Get(0).(entities.BugPage), args.Error(1)
}

func (m *repoMock) BugsForUser(ctx context.Context, user entities.User, page, size int) (entities.BugPage, error) {
	args := m.Called(ctx, user, page, size)
	return args.Get(0).(entities.BugPage), args.Error(1)
}

func (m *repoMock) AssignedBugsInProject(ctx context.Context, projectID, developerID string, page, size int) (entities.BugPage, error) {
	args := m.Called(ctx, projectID, developerID, page, size)
	return args.Get(0).(entities.BugPage), args.Error(1)
}

func (m *repoMock) BugsByProject(ctx context.Context, projectID string) ([]entities.Bug, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Bug), args.Error(1)
}

func (m *repoMock) AllBugs(ctx context.Context) ([]entities.Bug, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Bug), args.Error(1)
}

func (m *repoMock) BugStatistics(ctx context.Context, projectID string) ([]entities.StatusCount, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.StatusCount), args.Error(1)
}

func (m *repoMock) BugStatisticsForProjects(ctx context.Context, projectIDs []string) ([]entities.StatusCount, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.StatusCount), args.Error(1)
}

func (m *repoMock) BugStatisticsAll(ctx context.Context) ([]entities.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.StatusCount), args.Error(1)
}

func (m *repoMock) CreateComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *repoMock) CommentsByBug(ctx context.Context, bugID string) ([]entities.Comment, error) {
	args := m.Called(ctx, bugID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Comment), args.Error(1)
}

func (m *repoMock) UpdateComment(ctx context.Context, id, actorID, content string) (*entities.Comment, error) {
	args := m.Called(ctx, id, actorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *repoMock) DeleteComment(ctx context.Context, id, actorID string) error {
	return m.Called(ctx, id, actorID).Error(0)
}

func (m *repoMock) CreateNotifications(ctx context.Context, msg entities.NotificationMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *repoMock) NotificationsForUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Notification), args.Error(1)
}

func (m *repoMock) UnreadCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repoMock) MarkRead(ctx context.Context, notificationID string) error {
	return m.Called(ctx, notificationID).Error(0)
}

func (m *repoMock) MarkAllRead(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type indexMock struct{ mock.Mock }

var _ search.Index = (*indexMock)(nil)

func (m *indexMock) IndexBug(doc search.Document) error { return m.Called(doc).Error(0) }
func (m *indexMock) DeleteBug(id string) error          { return m.Called(id).Error(0) }
func (m *indexMock) Close() error                       { return nil }

func (m *indexMock) SearchInProject(projectID, term string, limit int) ([]string, error) {
	args := m.Called(projectID, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *indexMock) AssignedTo(developerID string) ([]string, error) {
	args := m.Called(developerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *indexMock) Similar(title, excludeID string, limit int) ([]search.Document, error) {
	args := m.Called(title, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]search.Document), args.Error(1)
}

type pubMock struct{ mock.Mock }

var _ notifier.Publisher = (*pubMock)(nil)

func (m *pubMock) Publish(ctx context.Context, msg entities.NotificationMessage) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *pubMock) Close() error { return nil }

func newUsecase(repo *repoMock, index *indexMock, pub *pubMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, index, pub, nil, time.Second, false)
}

func TestUsecase_CreateBugValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &indexMock{}, nil)

	_, err := uc.CreateBug(context.Background(), "r@x.com", entities.Bug{Description: "d", Severity: entities.SeverityLow, ProjectID: "p1"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	var verr *entities.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "title")
	repo.AssertNotCalled(t, "CreateBug", mock.Anything, mock.Anything)
}

func TestUsecase_CreateBugUnknownProject(t *testing.T) {
	repo := &repoMock{}
	index := &indexMock{}
	uc := newUsecase(repo, index, nil)

	repo.On("UserByEmail", mock.Anything, "r@x.com").Return(&entities.User{ID: "u1", Email: "r@x.com"}, nil)
	repo.On("CreateBug", mock.Anything, mock.Anything).Return(nil, entities.ErrProjectNotFound)

	_, err := uc.CreateBug(context.Background(), "r@x.com", entities.Bug{
		Title: "t", Description: "d", Severity: entities.SeverityHigh, ProjectID: "missing",
	})
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
	index.AssertNotCalled(t, "IndexBug", mock.Anything)
}

func TestUsecase_CreateBugStartsNewAndProjects(t *testing.T) {
	repo := &repoMock{}
	index := &indexMock{}
	uc := newUsecase(repo, index, nil)

	created := &entities.Bug{ID: "b1", Title: "t", Status: entities.StatusNew, ProjectID: "p1"}
	repo.On("UserByEmail", mock.Anything, "r@x.com").Return(&entities.User{ID: "u1"}, nil)
	repo.On("CreateBug", mock.Anything, mock.MatchedBy(func(b entities.Bug) bool {
		return b.Status == entities.StatusNew && b.ReportedByID == "u1"
	})).Return(created, nil)
	index.On("IndexBug", mock.MatchedBy(func(doc search.Document) bool {
		return doc.ID == "b1" && doc.Status == string(entities.StatusNew)
	})).Return(nil)

	bug, err := uc.CreateBug(context.Background(), "r@x.com", entities.Bug{
		Title: "t", Description: "d", Severity: entities.SeverityHigh, ProjectID: "p1",
	})
	require.NoError(t, err)
	require.Equal(t, created, bug)
	repo.AssertExpectations(t)
	index.AssertExpectations(t)
}

func TestUsecase_CreateBugIndexFailureNonFatal(t *testing.T) {
	repo := &repoMock{}
	index := &indexMock{}
	uc := newUsecase(repo, index, nil)

	created := &entities.Bug{ID: "b1", Title: "t", Status: entities.StatusNew}
	repo.On("UserByEmail", mock.Anything, "r@x.com").Return(&entities.User{ID: "u1"}, nil)
	repo.On("CreateBug", mock.Anything, mock.Anything).Return(created, nil)
	index.On("IndexBug", mock.Anything).Return(errors.New("index unavailable"))

	bug, err := uc.CreateBug(context.Background(), "r@x.com", entities.Bug{
		Title: "t", Description: "d", Severity: entities.SeverityLow, ProjectID: "p1",
	})
	require.NoError(t, err)
	require.Equal(t, created, bug)
}

func TestUsecase_UpdateBugPermissionDenied(t *testing.T) {
	repo := &repoMock{}
	index := &indexMock{}
	uc := newUsecase(repo, index, nil)

	repo.On("UserByEmail", mock.Anything, "dev@x.com").Return(&entities.User{ID: "u2", Role: entities.RoleDeveloper}, nil)
	repo.On("UpdateBug", mock.Anything, "b1", mock.Anything, mock.Anything).
		Return(nil, entities.ErrPermissionDenied)

	_, err := uc.UpdateBug(context.Background(), "b1", "dev@x.com", entities.BugPatch{
		Title: "new", Description: "details", Severity: entities.SeverityLow,
	})
	require.ErrorIs(t, err, entities.ErrPermissionDenied)
	index.AssertNotCalled(t, "IndexBug", mock.Anything)
}

func TestUsecase_UpdateBugValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &indexMock{}, nil)

	for name, patch := range map[string]entities.BugPatch{
		"empty title":       {Description: "details", Severity: entities.SeverityLow},
		"empty description": {Title: "new", Severity: entities.SeverityLow},
		"unknown severity":  {Title: "new", Description: "details", Severity: "URGENT"},
	} {
		_, err := uc.UpdateBug(context.Background(), "b1", "dev@x.com", patch)

		var verr *entities.ValidationError
		require.ErrorAs(t, err, &verr, name)
	}
	repo.AssertNotCalled(t, "UpdateBug", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateBugStatusNotifiesParticipants(t *testing.T) {
	repo := &repoMock{}
	index := &indexMock{}
	pub := &pubMock{}
	uc := newUsecase(repo, index, pub)

	updated := &entities.Bug{
		ID: "b1", Title: "t", Status: entities.StatusInProgress, ReportedByID: "u9",
		AssignedDevelopers: []entities.User{{ID: "u2"}, {ID: "u3"}},
	}
	repo.On("UserByEmail", mock.Anything, "tester@x.com").Return(&entities.User{ID: "u9", Role: entities.RoleTester}, nil)
	repo.On("UpdateBugStatus", mock.Anything, "b1", entities.StatusInProgress).Return(updated, nil)
	index.On("IndexBug", mock.Anything).Return(nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(msg entities.NotificationMessage) bool {
		return msg.Type == entities.NotificationBugStatusChanged &&
			len(msg.Recipients) == 3
	})).Return(nil)

	_, err := uc.UpdateBugStatus(context.Background(), "b1", entities.StatusInProgress, "tester@x.com")
	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestUsecase_UpdateBugStatusUnknownActor(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &indexMock{}, nil)

	repo.On("UserByEmail", mock.Anything, "ghost@x.com").Return(nil, entities.ErrUserNotFound)

	_, err := uc.UpdateBugStatus(context.Background(), "b1", entities.StatusInProgress, "ghost@x.com")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	repo.AssertNotCalled(t, "UpdateBugStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateBugStatusRejectedLeavesProjectionAlone(t *testing.T) {
	repo := &repoMock{}
	index := &indexMock{}
	pub := &pubMock{}
	uc := newUsecase(repo, index, pub)

	repo.On("UserByEmail", mock.Anything, "tester@x.com").Return(&entities.User{ID: "u9", Role: entities.RoleTester}, nil)
	repo.On("UpdateBugStatus", mock.Anything, "b1", entities.StatusInProgress).
		Return(nil, entities.NewValidationError("status", entities.MsgClosedBugsReopenOnly))

	_, err := uc.UpdateBugStatus(context.Background(), "b1", entities.StatusInProgress, "tester@x.com")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	index.AssertNotCalled(t, "IndexBug", mock.Anything)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUsecase_AssignBugValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &indexMock{}, nil)

	_, err := uc.AssignBugToDevelopers(context.Background(), "b1", nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "AssignDevelopers", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_AssignBugNotifiesAssignees(t *testing.T) {
	repo := &repoMock{}
	index := &indexMock{}
	pub := &pubMock{}
	uc := newUsecase(repo, index, pub)

	updated := &entities.Bug{
		ID: "b1", Title: "t", Status: entities.StatusOpen,
		AssignedDevelopers: []entities.User{{ID: "u2", Email: "d@x.com"}},
	}
	repo.On("AssignDevelopers", mock.Anything, "b1", []string{"d@x.com"}, false).Return(updated, nil)
	index.On("IndexBug", mock.MatchedBy(func(doc search.Document) bool {
		return doc.Status == string(entities.StatusOpen)
	})).Return(nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(msg entities.NotificationMessage) bool {
		return msg.Type == entities.NotificationBugAssigned && len(msg.Recipients) == 1
	})).Return(nil)

	bug, err := uc.AssignBugToDevelopers(context.Background(), "b1", []string{"d@x.com"})
	require.NoError(t, err)
	require.Equal(t, entities.StatusOpen, bug.Status)
	repo.AssertExpectations(t)
	index.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestUsecase_SearchWithTermEmptyHits(t *testing.T) {
	repo := &repoMock{}
	index := &indexMock{}
	uc := newUsecase(repo, index, nil)

	index.On("SearchInProject", "p1", "crash", searchLimit).Return([]string{}, nil)

	page, err := uc.SearchBugsInProject(context.Background(), entities.BugSearchFilter{
		ProjectID: "p1", Term: "crash", Size: 10,
	})
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Zero(t, page.Total)
	repo.AssertNotCalled(t, "BugsByProjectPage", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_SearchWithTermFiltersByHits(t *testing.T) {
	repo := &repoMock{}
	index := &indexMock{}
	uc := newUsecase(repo, index, nil)

	index.On("SearchInProject", "p1", "crash", searchLimit).Return([]string{"b1", "b2"}, nil)
	repo.On("BugsByProjectPage", mock.Anything, mock.Anything, []string{"b1", "b2"}).
		Return(entities.BugPage{Items: []entities.Bug{{ID: "b1"}}, Total: 1}, nil)

	page, err := uc.SearchBugsInProject(context.Background(), entities.BugSearchFilter{
		ProjectID: "p1", Term: "crash", Size: 10,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	repo.AssertExpectations(t)
}

func TestUsecase_StatisticsForAdminSeesAll(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &indexMock{}, nil)

	repo.On("UserByEmail", mock.Anything, "a@x.com").Return(&entities.User{ID: "u1", Role: entities.RoleAdmin}, nil)
	repo.On("BugStatisticsAll", mock.Anything).
		Return([]entities.StatusCount{{Status: entities.StatusNew, Count: 3}}, nil)

	counts, err := uc.GetBugStatisticsForUser(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, counts, 1)
	repo.AssertNotCalled(t, "ProjectIDsForUser", mock.Anything, mock.Anything)
}

func TestUsecase_StatisticsForUserWithoutProjects(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &indexMock{}, nil)

	repo.On("UserByEmail", mock.Anything, "d@x.com").Return(&entities.User{ID: "u2", Role: entities.RoleDeveloper}, nil)
	repo.On("ProjectIDsForUser", mock.Anything, "u2").Return([]string{}, nil)

	counts, err := uc.GetBugStatisticsForUser(context.Background(), "d@x.com")
	require.NoError(t, err)
	require.Empty(t, counts)
	repo.AssertNotCalled(t, "BugStatisticsForProjects", mock.Anything, mock.Anything)
}

func TestUsecase_ReindexProject(t *testing.T) {
	repo := &repoMock{}
	index := &indexMock{}
	uc := newUsecase(repo, index, nil)

	repo.On("BugsByProject", mock.Anything, "p1").
		Return([]entities.Bug{{ID: "b1"}, {ID: "b2"}}, nil)
	index.On("IndexBug", mock.Anything).Return(nil).Twice()

	n, err := uc.ReindexProject(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, 2, n)
	index.AssertExpectations(t)
}

func TestUsecase_RegisterUserValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &indexMock{}, nil)

	_, err := uc.RegisterUser(context.Background(), entities.User{Email: "bad", Role: entities.RoleDeveloper}, "longenough")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.RegisterUser(context.Background(), entities.User{Email: "d@x.com", Role: entities.RoleDeveloper}, "short")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_AnalyzeBugDisabled(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo, &indexMock{}, nil)

	_, err := uc.AnalyzeBug(context.Background(), "b1")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}
