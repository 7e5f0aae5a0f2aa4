package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertOrgQuery = `
INSERT INTO organizations(id, name, description, admin_id) VALUES ($1,$2,$3,$4)`

	selectOrgQuery = `
SELECT id, name, description, admin_id, created_at, updated_at
FROM organizations WHERE id = $1`

	selectOrgsForUserQuery = `
SELECT o.id, o.name, o.description, o.admin_id, o.created_at, o.updated_at
FROM organizations o
JOIN organization_users ou ON ou.organization_id = o.id
WHERE ou.user_id = $1
ORDER BY o.created_at DESC`

	insertOrgUserQuery = `
INSERT INTO organization_users(organization_id, user_id) VALUES ($1,$2)
ON CONFLICT DO NOTHING`

	orgStatsQuery = `
SELECT
    (SELECT COUNT(*) FROM projects WHERE organization_id = $1),
    (SELECT COUNT(*) FROM organization_users WHERE organization_id = $1),
    (SELECT COUNT(*) FROM bugs b JOIN projects p ON p.id = b.project_id WHERE p.organization_id = $1)`
)

// CreateOrganization inserts an organization and enrolls its admin as a member.
func (p *Postgres) CreateOrganization(ctx context.Context, org entities.Organization) (*entities.Organization, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := newID()
	if _, err := tx.Exec(ctx, insertOrgQuery, id, org.Name, org.Description, org.AdminID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrOrganizationExists
		}
		p.log.Errorw("failed to insert organization", "error", err, "name", org.Name)
		return nil, fmt.Errorf("insert organization: %w", err)
	}

	if _, err := tx.Exec(ctx, insertOrgUserQuery, id, org.AdminID); err != nil {
		return nil, fmt.Errorf("enroll admin: %w", err)
	}

	created, err := p.loadOrganization(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("organization created", "organization_id", id, "name", org.Name)
	return created, nil
}

// Organization returns an organization by id.
func (p *Postgres) Organization(ctx context.Context, id string) (*entities.Organization, error) {
	return p.loadOrganization(ctx, p.db, id)
}

// OrganizationsForUser lists organizations the user belongs to.
func (p *Postgres) OrganizationsForUser(ctx context.Context, userID string) ([]entities.Organization, error) {
	rows, err := p.db.Query(ctx, selectOrgsForUserQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("select organizations: %w", err)
	}
	defer rows.Close()

	orgs := make([]entities.Organization, 0)
	for rows.Next() {
		var o entities.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.AdminID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		orgs = append(orgs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate organizations: %w", err)
	}
	return orgs, nil
}

// AddOrganizationMembers enrolls users into the organization.
func (p *Postgres) AddOrganizationMembers(ctx context.Context, orgID string, userIDs []string) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := p.loadOrganization(ctx, tx, orgID); err != nil {
		return err
	}

	for _, userID := range userIDs {
		if _, err := tx.Exec(ctx, insertOrgUserQuery, orgID, userID); err != nil {
			p.log.Errorw("failed to enroll member", "error", err, "organization_id", orgID, "user_id", userID)
			return fmt.Errorf("enroll member: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// OrganizationStats aggregates counters across the organization.
func (p *Postgres) OrganizationStats(ctx context.Context, orgID string) (entities.OrganizationStats, error) {
	if _, err := p.loadOrganization(ctx, p.db, orgID); err != nil {
		return entities.OrganizationStats{}, err
	}

	stats := entities.OrganizationStats{OrganizationID: orgID}
	if err := p.db.QueryRow(ctx, orgStatsQuery, orgID).
		Scan(&stats.ProjectCount, &stats.UserCount, &stats.BugCount); err != nil {
		return stats, fmt.Errorf("organization stats: %w", err)
	}
	return stats, nil
}

func (p *Postgres) loadOrganization(ctx context.Context, q querier, id string) (*entities.Organization, error) {
	var o entities.Organization
	err := q.QueryRow(ctx, selectOrgQuery, id).
		Scan(&o.ID, &o.Name, &o.Description, &o.AdminID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &o, nil
}
