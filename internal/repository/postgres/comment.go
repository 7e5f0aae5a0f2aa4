package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertCommentQuery = `
INSERT INTO comments(id, bug_id, author_id, content) VALUES ($1,$2,$3,$4)`

	selectCommentQuery = `
SELECT c.id, c.bug_id, c.author_id, u.email, c.content, c.created_at, c.updated_at
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.id = $1`

	selectCommentsByBugQuery = `
SELECT c.id, c.bug_id, c.author_id, u.email, c.content, c.created_at, c.updated_at
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.bug_id = $1
ORDER BY c.created_at`

	updateCommentQuery = `
UPDATE comments SET content=$3, updated_at=NOW() WHERE id=$1 AND author_id=$2`

	deleteCommentQuery = `DELETE FROM comments WHERE id=$1 AND author_id=$2`

	bugExistsQuery = `SELECT true FROM bugs WHERE id=$1`
)

// CreateComment attaches a comment to an existing bug.
func (p *Postgres) CreateComment(ctx context.Context, comment entities.Comment) (*entities.Comment, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, bugExistsQuery, comment.BugID).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBugNotFound
		}
		return nil, fmt.Errorf("bug lookup: %w", err)
	}

	id := newID()
	if _, err := tx.Exec(ctx, insertCommentQuery, id, comment.BugID, comment.AuthorID, comment.Content); err != nil {
		p.log.Errorw("failed to insert comment", "error", err, "bug_id", comment.BugID)
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created, err := p.loadComment(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

// CommentsByBug lists a bug's comments oldest first.
func (p *Postgres) CommentsByBug(ctx context.Context, bugID string) ([]entities.Comment, error) {
	rows, err := p.db.Query(ctx, selectCommentsByBugQuery, bugID)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer rows.Close()

	comments := make([]entities.Comment, 0)
	for rows.Next() {
		var c entities.Comment
		if err := rows.Scan(&c.ID, &c.BugID, &c.AuthorID, &c.AuthorEmail, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

// UpdateComment edits the content; only the author may do so.
func (p *Postgres) UpdateComment(ctx context.Context, id, actorID, content string) (*entities.Comment, error) {
	tag, err := p.db.Exec(ctx, updateCommentQuery, id, actorID, content)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the comment is gone or the actor is not the author.
		if _, err := p.loadComment(ctx, p.db, id); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: only the author may edit a comment", entities.ErrPermissionDenied)
	}
	return p.loadComment(ctx, p.db, id)
}

// DeleteComment removes a comment; only the author may do so.
func (p *Postgres) DeleteComment(ctx context.Context, id, actorID string) error {
	tag, err := p.db.Exec(ctx, deleteCommentQuery, id, actorID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := p.loadComment(ctx, p.db, id); err != nil {
			return err
		}
		return fmt.Errorf("%w: only the author may delete a comment", entities.ErrPermissionDenied)
	}
	return nil
}

func (p *Postgres) loadComment(ctx context.Context, q querier, id string) (*entities.Comment, error) {
	var c entities.Comment
	err := q.QueryRow(ctx, selectCommentQuery, id).
		Scan(&c.ID, &c.BugID, &c.AuthorID, &c.AuthorEmail, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}
