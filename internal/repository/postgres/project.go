package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	projectBaseQuery = `
SELECT p.id, p.name, p.description, p.status,
       p.organization_id, o.name,
       COALESCE(p.manager_id, ''), COALESCE(m.first_name || ' ' || m.last_name, ''),
       p.created_at, p.updated_at
FROM projects p
JOIN organizations o ON o.id = p.organization_id
LEFT JOIN users m ON m.id = p.manager_id`

	selectProjectQuery = projectBaseQuery + `
WHERE p.id = $1`

	selectProjectsByOrgQuery = projectBaseQuery + `
WHERE p.organization_id = $1
ORDER BY p.created_at DESC`

	insertProjectQuery = `
INSERT INTO projects(id, name, description, status, organization_id, manager_id)
VALUES ($1,$2,$3,$4,$5,$6)`

	insertProjectUserQuery = `
INSERT INTO project_users(project_id, user_id) VALUES ($1,$2)
ON CONFLICT DO NOTHING`

	projectStatsQuery = `
SELECT status, COUNT(*) FROM bugs WHERE project_id=$1 GROUP BY status ORDER BY status`

	projectIDsForUserQuery = `
SELECT project_id FROM project_users WHERE user_id=$1
UNION
SELECT id FROM projects WHERE manager_id=$1`
)

// CreateProject inserts a project into its organization.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT true FROM organizations WHERE id=$1`, project.OrganizationID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("organization lookup: %w", err)
	}

	id := newID()
	status := project.Status
	if status == "" {
		status = entities.ProjectActive
	}
	if _, err := tx.Exec(ctx, insertProjectQuery,
		id, project.Name, project.Description, status,
		project.OrganizationID, nullable(project.ManagerID),
	); err != nil {
		p.log.Errorw("failed to insert project", "error", err, "name", project.Name)
		return nil, fmt.Errorf("insert project: %w", err)
	}

	created, err := p.loadProject(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("project created", "project_id", id, "organization_id", project.OrganizationID)
	return created, nil
}

// Project returns a project by id.
func (p *Postgres) Project(ctx context.Context, id string) (*entities.Project, error) {
	return p.loadProject(ctx, p.db, id)
}

// ProjectsByOrganization lists projects of an organization.
func (p *Postgres) ProjectsByOrganization(ctx context.Context, orgID string) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, selectProjectsByOrgQuery, orgID)
	if err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		pr, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// AssignProjectUsers adds users to the project membership.
func (p *Postgres) AssignProjectUsers(ctx context.Context, projectID string, userIDs []string) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, projectExistsQuery, projectID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrProjectNotFound
		}
		return fmt.Errorf("project lookup: %w", err)
	}

	for _, userID := range userIDs {
		if _, err := tx.Exec(ctx, insertProjectUserQuery, projectID, userID); err != nil {
			p.log.Errorw("failed to assign project user", "error", err, "project_id", projectID, "user_id", userID)
			return fmt.Errorf("assign project user: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// ProjectStats aggregates bug counters for one project.
func (p *Postgres) ProjectStats(ctx context.Context, projectID string) (entities.ProjectStats, error) {
	project, err := p.loadProject(ctx, p.db, projectID)
	if err != nil {
		return entities.ProjectStats{}, err
	}

	stats := entities.ProjectStats{ProjectID: project.ID, ProjectName: project.Name}
	rows, err := p.db.Query(ctx, projectStatsQuery, projectID)
	if err != nil {
		return stats, fmt.Errorf("project stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sc entities.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return stats, fmt.Errorf("scan project stat: %w", err)
		}
		stats.ByStatus = append(stats.ByStatus, sc)
		stats.TotalBugs += sc.Count
		if sc.Status != entities.StatusClosed && sc.Status != entities.StatusResolved {
			stats.OpenBugs += sc.Count
		}
	}
	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("iterate project stats: %w", err)
	}
	return stats, nil
}

// ProjectIDsForUser returns ids of projects the user belongs to or manages.
func (p *Postgres) ProjectIDsForUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := p.db.Query(ctx, projectIDsForUserQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("select user projects: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user projects: %w", err)
	}
	return ids, nil
}

func (p *Postgres) loadProject(ctx context.Context, q querier, id string) (*entities.Project, error) {
	project, err := scanProject(q.QueryRow(ctx, selectProjectQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

func scanProject(row rowScanner) (*entities.Project, error) {
	var pr entities.Project
	if err := row.Scan(
		&pr.ID, &pr.Name, &pr.Description, &pr.Status,
		&pr.OrganizationID, &pr.OrganizationName,
		&pr.ManagerID, &pr.ManagerName,
		&pr.CreatedAt, &pr.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pr, nil
}
