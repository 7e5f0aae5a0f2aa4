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
	insertUserQuery = `
INSERT INTO users(id, email, first_name, last_name, password_hash, role, developer_type, is_active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	selectUserByEmailQuery = `
SELECT id, email, first_name, last_name, role, COALESCE(developer_type, ''), is_active
FROM users WHERE email = $1`

	selectOrgDevelopersQuery = `
SELECT u.id, u.email, u.first_name, u.last_name, u.role, COALESCE(u.developer_type, ''), u.is_active
FROM organization_users ou
JOIN users u ON u.id = ou.user_id
WHERE ou.organization_id = $1 AND u.role = 'DEVELOPER' AND u.is_active
ORDER BY u.email`
)

// CreateUser inserts a new account.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User, passwordHash string) (*entities.User, error) {
	id := newID()
	if _, err := p.db.Exec(ctx, insertUserQuery,
		id, user.Email, user.FirstName, user.LastName, passwordHash,
		user.Role, nullable(string(user.DeveloperType)), true,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrUserExists
		}
		p.log.Errorw("failed to insert user", "error", err, "email", user.Email)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	user.ID = id
	user.IsActive = true
	p.log.Infow("user created", "user_id", id, "email", user.Email, "role", user.Role)
	return &user, nil
}

// UserByEmail resolves a user by their unique email.
func (p *Postgres) UserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var u entities.User
	var devType string
	err := p.db.QueryRow(ctx, selectUserByEmailQuery, email).
		Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &devType, &u.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	u.DeveloperType = entities.DeveloperType(devType)
	return &u, nil
}

// UsersByEmails resolves a set of users; every email must exist.
func (p *Postgres) UsersByEmails(ctx context.Context, emails []string) ([]entities.User, error) {
	return p.usersByEmails(ctx, p.db, emails)
}

// OrganizationDevelopers lists active developers of an organization.
func (p *Postgres) OrganizationDevelopers(ctx context.Context, orgID string) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, selectOrgDevelopersQuery, orgID)
	if err != nil {
		return nil, fmt.Errorf("select org developers: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		var devType string
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &devType, &u.IsActive); err != nil {
			return nil, fmt.Errorf("scan developer: %w", err)
		}
		u.DeveloperType = entities.DeveloperType(devType)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate developers: %w", err)
	}
	return users, nil
}
