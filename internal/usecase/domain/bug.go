// Package domain contains application services orchestrating the bug
// lifecycle: authoritative writes to the store followed by best-effort
// projection updates and notification events.
package domain

import (
	"context"
	"fmt"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
	"github.com/Swayam792/Bugwise-Backend/internal/search"
)

// searchLimit caps how many index hits feed the store page filter.
const searchLimit = 1000

// CreateBug stores a new bug reported by the actor. The bug always
// starts in status NEW.
func (u *Usecase) CreateBug(ctx context.Context, actorEmail string, bug entities.Bug) (*entities.Bug, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if bug.Title == "" {
		return nil, entities.NewValidationError("title", "title is required")
	}
	if bug.Description == "" {
		return nil, entities.NewValidationError("description", "description is required")
	}
	if !bug.Severity.Valid() {
		return nil, entities.NewValidationError("severity", "unknown severity "+string(bug.Severity))
	}
	if bug.ProjectID == "" {
		return nil, entities.NewValidationError("project_id", "project_id is required")
	}

	actor, err := u.repo.UserByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	bug.ReportedByID = actor.ID
	bug.Status = entities.StatusNew

	created, err := u.repo.CreateBug(ctx, bug)
	if err != nil {
		return nil, err
	}
	u.syncIndex(created)
	u.log.Infow("bug created", "bug_id", created.ID, "project_id", created.ProjectID)
	return created, nil
}

// GetBug returns a bug by id.
func (u *Usecase) GetBug(ctx context.Context, bugID string) (*entities.Bug, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if bugID == "" {
		return nil, fmt.Errorf("%w: bug_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.Bug(ctx, bugID)
}

// UpdateBug applies descriptive changes on behalf of the actor. The
// store enforces the assignee/manager/admin rule under the row lock.
func (u *Usecase) UpdateBug(ctx context.Context, bugID, actorEmail string, patch entities.BugPatch) (*entities.Bug, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if bugID == "" {
		return nil, fmt.Errorf("%w: bug_id is required", entities.ErrInvalidArgument)
	}
	if patch.Title == "" {
		return nil, entities.NewValidationError("title", "title is required")
	}
	if patch.Description == "" {
		return nil, entities.NewValidationError("description", "description is required")
	}
	if !patch.Severity.Valid() {
		return nil, entities.NewValidationError("severity", "unknown severity "+string(patch.Severity))
	}
	actor, err := u.repo.UserByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}

	updated, err := u.repo.UpdateBug(ctx, bugID, *actor, patch)
	if err != nil {
		return nil, err
	}
	u.syncIndex(updated)
	u.log.Infow("bug updated", "bug_id", bugID, "actor", actorEmail)
	return updated, nil
}

// UpdateBugStatus moves a bug through its lifecycle on behalf of the
// actor. Any member may transition a bug; only the CLOSED state
// constrains the next status. Assigned developers are notified.
func (u *Usecase) UpdateBugStatus(ctx context.Context, bugID string, status entities.BugStatus, actorEmail string) (*entities.Bug, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if bugID == "" {
		return nil, fmt.Errorf("%w: bug_id is required", entities.ErrInvalidArgument)
	}
	if _, err := u.repo.UserByEmail(ctx, actorEmail); err != nil {
		return nil, err
	}

	updated, err := u.repo.UpdateBugStatus(ctx, bugID, status)
	if err != nil {
		return nil, err
	}
	u.syncIndex(updated)
	u.publish(ctx, entities.NotificationMessage{
		Type:       entities.NotificationBugStatusChanged,
		Message:    fmt.Sprintf("Bug '%s' moved to %s", updated.Title, updated.Status),
		BugID:      updated.ID,
		Recipients: recipientIDs(updated),
	})
	u.log.Infow("bug status updated", "bug_id", bugID, "status", status, "actor", actorEmail)
	return updated, nil
}

// AssignBugToDevelopers replaces the assignee set with the given
// developers and forces the bug into status OPEN.
func (u *Usecase) AssignBugToDevelopers(ctx context.Context, bugID string, emails []string) (*entities.Bug, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if bugID == "" {
		return nil, fmt.Errorf("%w: bug_id is required", entities.ErrInvalidArgument)
	}
	if len(emails) == 0 {
		return nil, entities.NewValidationError("developers", "at least one developer email is required")
	}

	updated, err := u.repo.AssignDevelopers(ctx, bugID, emails, u.requireSkillMatch)
	if err != nil {
		return nil, err
	}
	u.syncIndex(updated)
	u.publish(ctx, entities.NotificationMessage{
		Type:       entities.NotificationBugAssigned,
		Message:    fmt.Sprintf("You have been assigned to bug '%s'", updated.Title),
		BugID:      updated.ID,
		Recipients: assigneeIDs(updated),
	})
	u.log.Infow("bug assigned", "bug_id", bugID, "developers", emails)
	return updated, nil
}

// SearchBugsInProject pages a project's bugs. A non-empty term is
// resolved through the search index first; the resulting ids filter
// the authoritative page.
func (u *Usecase) SearchBugsInProject(ctx context.Context, filter entities.BugSearchFilter) (entities.BugPage, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.ProjectID == "" {
		return entities.BugPage{}, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	if filter.Size <= 0 {
		filter.Size = 10
	}
	if filter.Page < 0 {
		filter.Page = 0
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return entities.BugPage{}, entities.NewValidationError("status", "unknown status "+string(*filter.Status))
	}

	var ids []string
	if filter.Term != "" {
		var err error
		ids, err = u.index.SearchInProject(filter.ProjectID, filter.Term, searchLimit)
		if err != nil {
			return entities.BugPage{}, fmt.Errorf("search index: %w", err)
		}
		if len(ids) == 0 {
			return entities.BugPage{Page: filter.Page, Size: filter.Size, Items: []entities.Bug{}}, nil
		}
	}
	return u.repo.BugsByProjectPage(ctx, filter, ids)
}

// GetBugStatistics returns per-status counts for one project.
func (u *Usecase) GetBugStatistics(ctx context.Context, projectID string) ([]entities.StatusCount, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.BugStatistics(ctx, projectID)
}

// GetBugStatisticsForUser returns per-status counts scoped by role:
// admins see everything, everyone else their managed and joined projects.
func (u *Usecase) GetBugStatisticsForUser(ctx context.Context, email string) ([]entities.StatusCount, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.Role == entities.RoleAdmin {
		return u.repo.BugStatisticsAll(ctx)
	}

	projectIDs, err := u.repo.ProjectIDsForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(projectIDs) == 0 {
		return []entities.StatusCount{}, nil
	}
	return u.repo.BugStatisticsForProjects(ctx, projectIDs)
}

// BugsForUser pages the bugs visible to the user.
func (u *Usecase) BugsForUser(ctx context.Context, email string, page, size int) (entities.BugPage, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if size <= 0 {
		size = 10
	}
	user, err := u.repo.UserByEmail(ctx, email)
	if err != nil {
		return entities.BugPage{}, err
	}
	return u.repo.BugsForUser(ctx, *user, page, size)
}

// AssignedBugs pages the developer's assigned bugs within a project.
func (u *Usecase) AssignedBugs(ctx context.Context, projectID, developerEmail string, page, size int) (entities.BugPage, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return entities.BugPage{}, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	if size <= 0 {
		size = 10
	}
	dev, err := u.repo.UserByEmail(ctx, developerEmail)
	if err != nil {
		return entities.BugPage{}, err
	}
	return u.repo.AssignedBugsInProject(ctx, projectID, dev.ID, page, size)
}

// ReindexProject rebuilds the search projection for one project from
// the authoritative store and returns the number of indexed bugs.
func (u *Usecase) ReindexProject(ctx context.Context, projectID string) (int, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return 0, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	bugs, err := u.repo.BugsByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	return u.reindex(bugs)
}

// ReindexAll rebuilds the whole search projection from the store.
func (u *Usecase) ReindexAll(ctx context.Context) (int, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	bugs, err := u.repo.AllBugs(ctx)
	if err != nil {
		return 0, err
	}
	return u.reindex(bugs)
}

func (u *Usecase) reindex(bugs []entities.Bug) (int, error) {
	for i := range bugs {
		if err := u.index.IndexBug(search.DocumentFromBug(&bugs[i])); err != nil {
			return i, fmt.Errorf("index bug %s: %w", bugs[i].ID, err)
		}
	}
	u.log.Infow("reindex finished", "bugs", len(bugs))
	return len(bugs), nil
}

// syncIndex projects the bug into the search index. The store already
// committed; an index failure is logged and never fails the request.
func (u *Usecase) syncIndex(bug *entities.Bug) {
	if u.index == nil {
		return
	}
	if err := u.index.IndexBug(search.DocumentFromBug(bug)); err != nil {
		u.log.Warnw("failed to project bug into search index", "error", err, "bug_id", bug.ID)
	}
}

// publish emits a notification event. Delivery is best-effort; a
// broker failure is logged and never fails the request.
func (u *Usecase) publish(ctx context.Context, msg entities.NotificationMessage) {
	if u.publisher == nil || len(msg.Recipients) == 0 {
		return
	}
	if err := u.publisher.Publish(ctx, msg); err != nil {
		u.log.Warnw("failed to publish notification", "error", err, "bug_id", msg.BugID)
	}
}

func assigneeIDs(bug *entities.Bug) []string {
	ids := make([]string, 0, len(bug.AssignedDevelopers))
	for _, dev := range bug.AssignedDevelopers {
		ids = append(ids, dev.ID)
	}
	return ids
}

// recipientIDs is the assignee set plus the reporter, deduplicated.
func recipientIDs(bug *entities.Bug) []string {
	ids := assigneeIDs(bug)
	if bug.ReportedByID != "" && !bug.IsAssignedTo(bug.ReportedByID) {
		ids = append(ids, bug.ReportedByID)
	}
	return ids
}
