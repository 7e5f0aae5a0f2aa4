package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	bugBaseQuery = `
SELECT b.id, b.title, b.description, b.status, b.severity, b.bug_type,
       b.project_id, p.name, p.organization_id, o.name,
       COALESCE(p.manager_id, ''), COALESCE(m.first_name || ' ' || m.last_name, ''),
       b.reported_by_id, r.email,
       b.expected_time_hours, b.actual_time_hours, b.created_at, b.updated_at
FROM bugs b
JOIN projects p ON p.id = b.project_id
JOIN organizations o ON o.id = p.organization_id
LEFT JOIN users m ON m.id = p.manager_id
JOIN users r ON r.id = b.reported_by_id`

	selectBugQuery = bugBaseQuery + `
WHERE b.id = $1`

	lockBugQuery = `SELECT status FROM bugs WHERE id=$1 FOR UPDATE`

	projectExistsQuery = `SELECT true FROM projects WHERE id=$1`

	insertBugQuery = `
INSERT INTO bugs(id, title, description, status, severity, bug_type, project_id, reported_by_id, expected_time_hours)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

	updateBugQuery = `
UPDATE bugs SET title=$2, description=$3, severity=$4,
       bug_type = COALESCE($5, bug_type),
       expected_time_hours = COALESCE($6, expected_time_hours),
       actual_time_hours = COALESCE($7, actual_time_hours),
       updated_at = NOW()
WHERE id=$1`

	updateBugStatusQuery = `UPDATE bugs SET status=$2, updated_at=NOW() WHERE id=$1`

	bugAssigneesQuery = `
SELECT u.id, u.email, u.first_name, u.last_name, u.role, COALESCE(u.developer_type, ''), u.is_active
FROM bug_developers bd
JOIN users u ON u.id = bd.developer_id
WHERE bd.bug_id = $1
ORDER BY u.email`

	bugRequiredTypesQuery = `SELECT developer_type FROM bug_required_developer_types WHERE bug_id=$1 ORDER BY developer_type`

	deleteBugAssigneesQuery      = `DELETE FROM bug_developers WHERE bug_id=$1`
	insertBugAssigneeQuery       = `INSERT INTO bug_developers(bug_id, developer_id) VALUES ($1,$2)`
	deleteBugRequiredTypesQuery  = `DELETE FROM bug_required_developer_types WHERE bug_id=$1`
	insertBugRequiredTypeQuery   = `INSERT INTO bug_required_developer_types(bug_id, developer_type) VALUES ($1,$2)`
	assignBugStatusOpenQuery     = `UPDATE bugs SET status='OPEN', updated_at=NOW() WHERE id=$1`
	selectUsersByEmailsQuery     = `
SELECT id, email, first_name, last_name, role, COALESCE(developer_type, ''), is_active
FROM users WHERE email = ANY($1)`
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateBug inserts a new bug after resolving its project.
func (p *Postgres) CreateBug(ctx context.Context, bug entities.Bug) (res *entities.Bug, err error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, projectExistsQuery, bug.ProjectID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("project lookup: %w", err)
	}

	id := newID()
	if _, err := tx.Exec(ctx, insertBugQuery,
		id, bug.Title, bug.Description, entities.StatusNew, bug.Severity,
		nullable(string(bug.BugType)), bug.ProjectID, bug.ReportedByID, bug.ExpectedTimeHours,
	); err != nil {
		p.log.Errorw("failed to insert bug", "error", err, "project_id", bug.ProjectID)
		return nil, fmt.Errorf("insert bug: %w", err)
	}

	for _, t := range bug.RequiredDeveloperTypes {
		if _, err := tx.Exec(ctx, insertBugRequiredTypeQuery, id, string(t)); err != nil {
			return nil, fmt.Errorf("insert required type: %w", err)
		}
	}

	created, err := p.loadBug(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("bug created", "bug_id", id, "project_id", bug.ProjectID)
	return created, nil
}

// Bug returns a bug with its project, reporter and assignee details.
func (p *Postgres) Bug(ctx context.Context, id string) (*entities.Bug, error) {
	return p.loadBug(ctx, p.db, id)
}

// UpdateBug overwrites mutable descriptive fields under a row lock after
// the authorization check.
func (p *Postgres) UpdateBug(ctx context.Context, id string, actor entities.User, patch entities.BugPatch) (res *entities.Bug, err error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status entities.BugStatus
	if err := tx.QueryRow(ctx, lockBugQuery, id).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBugNotFound
		}
		return nil, fmt.Errorf("lock bug: %w", err)
	}

	bug, err := p.loadBug(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if !entities.CanUpdateBug(actor, bug) {
		p.log.Warnw("bug update denied", "bug_id", id, "actor", actor.Email)
		return nil, fmt.Errorf("%w: user does not have permission to update this bug", entities.ErrPermissionDenied)
	}

	if _, err := tx.Exec(ctx, updateBugQuery,
		id, patch.Title, patch.Description, patch.Severity,
		bugTypeArg(patch.BugType), patch.ExpectedTimeHours, patch.ActualTimeHours,
	); err != nil {
		p.log.Errorw("failed to update bug", "error", err, "bug_id", id)
		return nil, fmt.Errorf("update bug: %w", err)
	}

	if patch.RequiredDeveloperTypes != nil {
		if _, err := tx.Exec(ctx, deleteBugRequiredTypesQuery, id); err != nil {
			return nil, fmt.Errorf("clear required types: %w", err)
		}
		for _, t := range patch.RequiredDeveloperTypes {
			if _, err := tx.Exec(ctx, insertBugRequiredTypeQuery, id, string(t)); err != nil {
				return nil, fmt.Errorf("insert required type: %w", err)
			}
		}
	}

	updated, err := p.loadBug(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("bug updated", "bug_id", id, "actor", actor.Email)
	return updated, nil
}

// UpdateBugStatus applies a status transition under a row lock.
func (p *Postgres) UpdateBugStatus(ctx context.Context, id string, status entities.BugStatus) (res *entities.Bug, err error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current entities.BugStatus
	if err := tx.QueryRow(ctx, lockBugQuery, id).Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBugNotFound
		}
		return nil, fmt.Errorf("lock bug: %w", err)
	}

	if err := entities.ValidateStatusTransition(current, status); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, updateBugStatusQuery, id, status); err != nil {
		p.log.Errorw("failed to update bug status", "error", err, "bug_id", id)
		return nil, fmt.Errorf("update bug status: %w", err)
	}

	updated, err := p.loadBug(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("bug status updated", "bug_id", id, "from", current, "to", status)
	return updated, nil
}

// AssignDevelopers replaces the assignee set and forces status OPEN.
func (p *Postgres) AssignDevelopers(ctx context.Context, id string, emails []string, requireSkillMatch bool) (res *entities.Bug, err error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status entities.BugStatus
	if err := tx.QueryRow(ctx, lockBugQuery, id).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBugNotFound
		}
		return nil, fmt.Errorf("lock bug: %w", err)
	}

	bug, err := p.loadBug(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	developers, err := p.usersByEmails(ctx, tx, emails)
	if err != nil {
		return nil, err
	}

	if requireSkillMatch {
		for _, dev := range developers {
			if err := entities.ValidateDeveloperAssignment(bug, dev); err != nil {
				return nil, err
			}
		}
	}

	if _, err := tx.Exec(ctx, deleteBugAssigneesQuery, id); err != nil {
		return nil, fmt.Errorf("clear assignees: %w", err)
	}
	for _, dev := range developers {
		if _, err := tx.Exec(ctx, insertBugAssigneeQuery, id, dev.ID); err != nil {
			p.log.Errorw("failed to insert assignee", "error", err, "bug_id", id, "developer_id", dev.ID)
			return nil, fmt.Errorf("insert assignee: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, assignBugStatusOpenQuery, id); err != nil {
		return nil, fmt.Errorf("set status open: %w", err)
	}

	updated, err := p.loadBug(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("bug assigned", "bug_id", id, "developers", emails)
	return updated, nil
}

// BugsByProjectPage returns one page of project bugs, optionally
// restricted to the given ids (from a search hit list) and a status.
func (p *Postgres) BugsByProjectPage(ctx context.Context, filter entities.BugSearchFilter, ids []string) (entities.BugPage, error) {
	where := []string{"b.project_id = $1"}
	args := []any{filter.ProjectID}

	if len(ids) > 0 {
		args = append(args, ids)
		where = append(where, fmt.Sprintf("b.id = ANY($%d)", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where = append(where, fmt.Sprintf("b.status = $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")
	return p.pageBugs(ctx, cond, args, filter.Page, filter.Size)
}

// BugsForUser returns role-scoped bugs: admins see every bug across
// their organizations, everyone else sees managed plus assigned projects.
func (p *Postgres) BugsForUser(ctx context.Context, user entities.User, page, size int) (entities.BugPage, error) {
	if user.Role == entities.RoleAdmin {
		cond := `p.organization_id IN (SELECT organization_id FROM organization_users WHERE user_id = $1)`
		return p.pageBugs(ctx, cond, []any{user.ID}, page, size)
	}

	cond := `b.project_id IN (
SELECT project_id FROM project_users WHERE user_id = $1
UNION
SELECT id FROM projects WHERE manager_id = $1)`
	return p.pageBugs(ctx, cond, []any{user.ID}, page, size)
}

// AssignedBugsInProject returns the developer's assigned bugs within a project.
func (p *Postgres) AssignedBugsInProject(ctx context.Context, projectID, developerID string, page, size int) (entities.BugPage, error) {
	cond := `b.project_id = $1 AND b.id IN (SELECT bug_id FROM bug_developers WHERE developer_id = $2)`
	return p.pageBugs(ctx, cond, []any{projectID, developerID}, page, size)
}

// BugsByProject returns every bug of a project, for reindexing.
func (p *Postgres) BugsByProject(ctx context.Context, projectID string) ([]entities.Bug, error) {
	return p.listBugs(ctx, bugBaseQuery+` WHERE b.project_id = $1 ORDER BY b.created_at`, projectID)
}

// AllBugs returns every stored bug, for a full reindex.
func (p *Postgres) AllBugs(ctx context.Context) ([]entities.Bug, error) {
	return p.listBugs(ctx, bugBaseQuery+` ORDER BY b.created_at`)
}

func (p *Postgres) pageBugs(ctx context.Context, cond string, args []any, page, size int) (entities.BugPage, error) {
	res := entities.BugPage{Page: page, Size: size, Items: make([]entities.Bug, 0, size)}

	countQuery := `SELECT COUNT(*) FROM bugs b JOIN projects p ON p.id = b.project_id WHERE ` + cond
	if err := p.db.QueryRow(ctx, countQuery, args...).Scan(&res.Total); err != nil {
		return res, fmt.Errorf("count bugs: %w", err)
	}

	pageArgs := append(append([]any{}, args...), size, page*size)
	listQuery := fmt.Sprintf("%s WHERE %s ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d",
		bugBaseQuery, cond, len(args)+1, len(args)+2)

	items, err := p.listBugs(ctx, listQuery, pageArgs...)
	if err != nil {
		return res, err
	}
	res.Items = items
	return res, nil
}

func (p *Postgres) listBugs(ctx context.Context, query string, args ...any) ([]entities.Bug, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select bugs: %w", err)
	}
	defer rows.Close()

	bugs := make([]entities.Bug, 0)
	for rows.Next() {
		bug, err := scanBug(rows)
		if err != nil {
			p.log.Errorw("failed to scan bug", "error", err)
			return nil, err
		}
		bugs = append(bugs, *bug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bugs: %w", err)
	}

	for i := range bugs {
		if err := p.loadBugRelations(ctx, p.db, &bugs[i]); err != nil {
			return nil, err
		}
	}
	return bugs, nil
}

func (p *Postgres) loadBug(ctx context.Context, q querier, id string) (*entities.Bug, error) {
	bug, err := scanBug(q.QueryRow(ctx, selectBugQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBugNotFound
		}
		return nil, fmt.Errorf("get bug: %w", err)
	}
	if err := p.loadBugRelations(ctx, q, bug); err != nil {
		return nil, err
	}
	return bug, nil
}

func (p *Postgres) loadBugRelations(ctx context.Context, q querier, bug *entities.Bug) error {
	rows, err := q.Query(ctx, bugAssigneesQuery, bug.ID)
	if err != nil {
		return fmt.Errorf("select assignees: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var u entities.User
		var devType string
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &devType, &u.IsActive); err != nil {
			return fmt.Errorf("scan assignee: %w", err)
		}
		u.DeveloperType = entities.DeveloperType(devType)
		bug.AssignedDevelopers = append(bug.AssignedDevelopers, u)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate assignees: %w", err)
	}

	typeRows, err := q.Query(ctx, bugRequiredTypesQuery, bug.ID)
	if err != nil {
		return fmt.Errorf("select required types: %w", err)
	}
	defer typeRows.Close()
	for typeRows.Next() {
		var t string
		if err := typeRows.Scan(&t); err != nil {
			return fmt.Errorf("scan required type: %w", err)
		}
		bug.RequiredDeveloperTypes = append(bug.RequiredDeveloperTypes, entities.DeveloperType(t))
	}
	if err := typeRows.Err(); err != nil {
		return fmt.Errorf("iterate required types: %w", err)
	}
	return nil
}

func (p *Postgres) usersByEmails(ctx context.Context, q querier, emails []string) ([]entities.User, error) {
	rows, err := q.Query(ctx, selectUsersByEmailsQuery, emails)
	if err != nil {
		return nil, fmt.Errorf("select users by emails: %w", err)
	}
	defer rows.Close()

	found := make(map[string]entities.User, len(emails))
	for rows.Next() {
		var u entities.User
		var devType string
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &devType, &u.IsActive); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.DeveloperType = entities.DeveloperType(devType)
		found[u.Email] = u
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	users := make([]entities.User, 0, len(emails))
	seen := make(map[string]bool, len(emails))
	for _, email := range emails {
		if seen[email] {
			continue
		}
		seen[email] = true
		u, ok := found[email]
		if !ok {
			return nil, fmt.Errorf("%w: %s", entities.ErrUserNotFound, email)
		}
		users = append(users, u)
	}
	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBug(row rowScanner) (*entities.Bug, error) {
	var bug entities.Bug
	var bugType *string
	if err := row.Scan(
		&bug.ID, &bug.Title, &bug.Description, &bug.Status, &bug.Severity, &bugType,
		&bug.ProjectID, &bug.ProjectName, &bug.OrganizationID, &bug.OrganizationName,
		&bug.ProjectManagerID, &bug.ProjectManagerName,
		&bug.ReportedByID, &bug.ReportedByEmail,
		&bug.ExpectedTimeHours, &bug.ActualTimeHours, &bug.CreatedAt, &bug.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if bugType != nil {
		bug.BugType = entities.BugType(*bugType)
	}
	return &bug, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func bugTypeArg(t *entities.BugType) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}
