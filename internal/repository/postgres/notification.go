package postgres

import (
	"context"
	"fmt"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertNotificationQuery = `
INSERT INTO user_notifications(id, user_id, type, message, bug_id)
VALUES ($1,$2,$3,$4,$5)`

	selectNotificationsQuery = `
SELECT id, user_id, type, message, COALESCE(bug_id, ''), read, created_at
FROM user_notifications
WHERE user_id = $1
ORDER BY created_at DESC`

	unreadCountQuery = `
SELECT COUNT(*) FROM user_notifications WHERE user_id=$1 AND NOT read`

	markReadQuery    = `UPDATE user_notifications SET read=TRUE WHERE id=$1`
	markAllReadQuery = `UPDATE user_notifications SET read=TRUE WHERE user_id=$1 AND NOT read`
)

// CreateNotifications stores one notification row per recipient.
func (p *Postgres) CreateNotifications(ctx context.Context, msg entities.NotificationMessage) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, userID := range msg.Recipients {
		if _, err := tx.Exec(ctx, insertNotificationQuery,
			newID(), userID, msg.Type, msg.Message, nullable(msg.BugID),
		); err != nil {
			p.log.Errorw("failed to insert notification", "error", err, "user_id", userID)
			return fmt.Errorf("insert notification: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// NotificationsForUser lists stored notifications newest first.
func (p *Postgres) NotificationsForUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	rows, err := p.db.Query(ctx, selectNotificationsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("select notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]entities.Notification, 0)
	for rows.Next() {
		var n entities.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.BugID, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications for a user.
func (p *Postgres) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := p.db.QueryRow(ctx, unreadCountQuery, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}
	return count, nil
}

// MarkRead flags a single notification as read.
func (p *Postgres) MarkRead(ctx context.Context, notificationID string) error {
	tag, err := p.db.Exec(ctx, markReadQuery, notificationID)
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead flags every unread notification of a user as read.
func (p *Postgres) MarkAllRead(ctx context.Context, userID string) error {
	if _, err := p.db.Exec(ctx, markAllReadQuery, userID); err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}
