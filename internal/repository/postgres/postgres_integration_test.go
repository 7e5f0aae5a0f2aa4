package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/Swayam792/Bugwise-Backend/config"
	"github.com/Swayam792/Bugwise-Backend/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	admin    entities.User
	manager  entities.User
	backend  entities.User
	frontend entities.User
	tester   entities.User
	org      entities.Organization
	project  entities.Project
}

func TestBugLifecycleIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	fx := seed(t, ctx, repo)

	_, err := repo.CreateBug(ctx, entities.Bug{
		Title: "Login broken", Description: "500 on submit",
		Severity: entities.SeverityHigh, ProjectID: "missing", ReportedByID: fx.tester.ID,
	})
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	bug, err := repo.CreateBug(ctx, entities.Bug{
		Title: "Login broken", Description: "500 on submit",
		Severity: entities.SeverityHigh, Status: entities.StatusNew,
		ProjectID: fx.project.ID, ReportedByID: fx.tester.ID,
		RequiredDeveloperTypes: []entities.DeveloperType{entities.DeveloperBackend},
	})
	require.NoError(t, err)
	require.Equal(t, entities.StatusNew, bug.Status)
	require.Equal(t, fx.project.Name, bug.ProjectName)
	require.Equal(t, fx.org.ID, bug.OrganizationID)
	require.Equal(t, fx.manager.ID, bug.ProjectManagerID)
	require.Equal(t, fx.tester.Email, bug.ReportedByEmail)

	// Unassigned developer may not update; the manager may.
	_, err = repo.UpdateBug(ctx, bug.ID, fx.backend, entities.BugPatch{
		Title: "x", Description: "y", Severity: entities.SeverityLow,
	})
	require.ErrorIs(t, err, entities.ErrPermissionDenied)

	unchanged, err := repo.Bug(ctx, bug.ID)
	require.NoError(t, err)
	require.Equal(t, "Login broken", unchanged.Title)

	updated, err := repo.UpdateBug(ctx, bug.ID, fx.manager, entities.BugPatch{
		Title: "Login broken on Safari", Description: "500 on submit",
		Severity: entities.SeverityCritical,
	})
	require.NoError(t, err)
	require.Equal(t, "Login broken on Safari", updated.Title)
	require.Equal(t, entities.SeverityCritical, updated.Severity)

	_, err = repo.AssignDevelopers(ctx, bug.ID, []string{"ghost@x.com"}, false)
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	// Skill match on: the frontend developer does not fit a backend bug.
	_, err = repo.AssignDevelopers(ctx, bug.ID, []string{fx.frontend.Email}, true)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	assigned, err := repo.AssignDevelopers(ctx, bug.ID, []string{fx.backend.Email}, true)
	require.NoError(t, err)
	require.Equal(t, entities.StatusOpen, assigned.Status)
	require.Len(t, assigned.AssignedDevelopers, 1)
	require.Equal(t, fx.backend.ID, assigned.AssignedDevelopers[0].ID)

	// Reassignment replaces the whole set.
	reassigned, err := repo.AssignDevelopers(ctx, bug.ID, []string{fx.frontend.Email, fx.backend.Email}, false)
	require.NoError(t, err)
	require.Len(t, reassigned.AssignedDevelopers, 2)

	// Now assigned, the backend developer may update.
	_, err = repo.UpdateBug(ctx, bug.ID, fx.backend, entities.BugPatch{
		Title: "Login broken on Safari", Description: "500 on submit, cookie related",
		Severity: entities.SeverityCritical,
	})
	require.NoError(t, err)

	_, err = repo.UpdateBugStatus(ctx, bug.ID, entities.StatusInProgress)
	require.NoError(t, err)
	_, err = repo.UpdateBugStatus(ctx, bug.ID, entities.StatusClosed)
	require.NoError(t, err)

	_, err = repo.UpdateBugStatus(ctx, bug.ID, entities.StatusInProgress)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	locked, err := repo.Bug(ctx, bug.ID)
	require.NoError(t, err)
	require.Equal(t, entities.StatusClosed, locked.Status)

	reopened, err := repo.UpdateBugStatus(ctx, bug.ID, entities.StatusReopened)
	require.NoError(t, err)
	require.Equal(t, entities.StatusReopened, reopened.Status)
}

func TestBugQueriesIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	fx := seed(t, ctx, repo)

	first, err := repo.CreateBug(ctx, entities.Bug{
		Title: "Crash on save", Description: "NPE", Severity: entities.SeverityHigh,
		Status: entities.StatusNew, ProjectID: fx.project.ID, ReportedByID: fx.tester.ID,
	})
	require.NoError(t, err)
	second, err := repo.CreateBug(ctx, entities.Bug{
		Title: "Slow dashboard", Description: "8s load", Severity: entities.SeverityMedium,
		Status: entities.StatusNew, ProjectID: fx.project.ID, ReportedByID: fx.tester.ID,
	})
	require.NoError(t, err)

	_, err = repo.AssignDevelopers(ctx, first.ID, []string{fx.backend.Email}, false)
	require.NoError(t, err)

	page, err := repo.BugsByProjectPage(ctx, entities.BugSearchFilter{
		ProjectID: fx.project.ID, Page: 0, Size: 10,
	}, nil)
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)

	open := entities.StatusOpen
	page, err = repo.BugsByProjectPage(ctx, entities.BugSearchFilter{
		ProjectID: fx.project.ID, Status: &open, Page: 0, Size: 10,
	}, nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, first.ID, page.Items[0].ID)

	page, err = repo.BugsByProjectPage(ctx, entities.BugSearchFilter{
		ProjectID: fx.project.ID, Page: 0, Size: 10,
	}, []string{second.ID})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, second.ID, page.Items[0].ID)

	adminPage, err := repo.BugsForUser(ctx, fx.admin, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, adminPage.Total)

	devPage, err := repo.BugsForUser(ctx, fx.backend, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, devPage.Total)

	assignedPage, err := repo.AssignedBugsInProject(ctx, fx.project.ID, fx.backend.ID, 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, assignedPage.Total)
	require.Equal(t, first.ID, assignedPage.Items[0].ID)

	counts, err := repo.BugStatistics(ctx, fx.project.ID)
	require.NoError(t, err)
	byStatus := map[entities.BugStatus]int64{}
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	require.EqualValues(t, 1, byStatus[entities.StatusNew])
	require.EqualValues(t, 1, byStatus[entities.StatusOpen])

	projStats, err := repo.ProjectStats(ctx, fx.project.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, projStats.TotalBugs)
	require.EqualValues(t, 2, projStats.OpenBugs)

	orgStats, err := repo.OrganizationStats(ctx, fx.org.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, orgStats.ProjectCount)
	require.EqualValues(t, 2, orgStats.BugCount)
	require.EqualValues(t, 5, orgStats.UserCount)

	all, err := repo.AllBugs(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	ids, err := repo.ProjectIDsForUser(ctx, fx.backend.ID)
	require.NoError(t, err)
	require.Equal(t, []string{fx.project.ID}, ids)
}

func TestCommentsAndNotificationsIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	fx := seed(t, ctx, repo)

	bug, err := repo.CreateBug(ctx, entities.Bug{
		Title: "Crash on save", Description: "NPE", Severity: entities.SeverityHigh,
		Status: entities.StatusNew, ProjectID: fx.project.ID, ReportedByID: fx.tester.ID,
	})
	require.NoError(t, err)

	_, err = repo.CreateComment(ctx, entities.Comment{BugID: "missing", AuthorID: fx.tester.ID, Content: "hi"})
	require.ErrorIs(t, err, entities.ErrBugNotFound)

	comment, err := repo.CreateComment(ctx, entities.Comment{
		BugID: bug.ID, AuthorID: fx.tester.ID, Content: "reproduced on staging",
	})
	require.NoError(t, err)
	require.Equal(t, fx.tester.Email, comment.AuthorEmail)

	_, err = repo.UpdateComment(ctx, comment.ID, fx.backend.ID, "edited")
	require.ErrorIs(t, err, entities.ErrPermissionDenied)

	edited, err := repo.UpdateComment(ctx, comment.ID, fx.tester.ID, "reproduced on staging and prod")
	require.NoError(t, err)
	require.Equal(t, "reproduced on staging and prod", edited.Content)

	list, err := repo.CommentsByBug(ctx, bug.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	err = repo.DeleteComment(ctx, comment.ID, fx.backend.ID)
	require.ErrorIs(t, err, entities.ErrPermissionDenied)
	require.NoError(t, repo.DeleteComment(ctx, comment.ID, fx.tester.ID))

	msg := entities.NotificationMessage{
		Type:       entities.NotificationBugAssigned,
		Message:    "You have been assigned to bug 'Crash on save'",
		BugID:      bug.ID,
		Recipients: []string{fx.backend.ID, fx.frontend.ID},
	}
	require.NoError(t, repo.CreateNotifications(ctx, msg))

	stored, err := repo.NotificationsForUser(ctx, fx.backend.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.False(t, stored[0].Read)

	unread, err := repo.UnreadCount(ctx, fx.backend.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, unread)

	require.NoError(t, repo.MarkRead(ctx, stored[0].ID))
	unread, err = repo.UnreadCount(ctx, fx.backend.ID)
	require.NoError(t, err)
	require.Zero(t, unread)

	require.ErrorIs(t, repo.MarkRead(ctx, "missing"), entities.ErrNotificationNotFound)

	require.NoError(t, repo.MarkAllRead(ctx, fx.frontend.ID))
	unread, err = repo.UnreadCount(ctx, fx.frontend.ID)
	require.NoError(t, err)
	require.Zero(t, unread)
}

func TestDuplicateInsertsIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	fx := seed(t, ctx, repo)

	_, err := repo.CreateUser(ctx, entities.User{
		Email: fx.tester.Email, FirstName: "Other", LastName: "Tester",
		Role: entities.RoleTester,
	}, "hash")
	require.ErrorIs(t, err, entities.ErrUserExists)

	_, err = repo.CreateOrganization(ctx, entities.Organization{
		Name: fx.org.Name, Description: "second org with the same name", AdminID: fx.admin.ID,
	})
	require.ErrorIs(t, err, entities.ErrOrganizationExists)
}

func seed(t *testing.T, ctx context.Context, repo *Postgres) fixture {
	t.Helper()

	newUser := func(email string, role entities.UserRole, devType entities.DeveloperType) entities.User {
		u, err := repo.CreateUser(ctx, entities.User{
			Email: email, FirstName: "Test", LastName: "User",
			Role: role, DeveloperType: devType,
		}, "hash")
		require.NoError(t, err)
		return *u
	}

	fx := fixture{
		admin:    newUser("admin@x.com", entities.RoleAdmin, ""),
		manager:  newUser("manager@x.com", entities.RoleProjectManager, ""),
		backend:  newUser("backend@x.com", entities.RoleDeveloper, entities.DeveloperBackend),
		frontend: newUser("frontend@x.com", entities.RoleDeveloper, entities.DeveloperFrontend),
		tester:   newUser("tester@x.com", entities.RoleTester, ""),
	}

	org, err := repo.CreateOrganization(ctx, entities.Organization{
		Name: "Acme", Description: "test org", AdminID: fx.admin.ID,
	})
	require.NoError(t, err)
	fx.org = *org

	members := []string{fx.manager.ID, fx.backend.ID, fx.frontend.ID, fx.tester.ID}
	require.NoError(t, repo.AddOrganizationMembers(ctx, org.ID, members))

	project, err := repo.CreateProject(ctx, entities.Project{
		Name: "Checkout", Description: "payment flow",
		OrganizationID: org.ID, ManagerID: fx.manager.ID,
	})
	require.NoError(t, err)
	fx.project = *project

	require.NoError(t, repo.AssignProjectUsers(ctx, project.ID,
		[]string{fx.backend.ID, fx.frontend.ID, fx.tester.ID}))

	return fx
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=bugwise_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "bugwise_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=bugwise_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
