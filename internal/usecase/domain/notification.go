package domain

import (
	"context"
	"fmt"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
)

// NotificationsForUser lists the user's stored notifications newest first.
func (u *Usecase) NotificationsForUser(ctx context.Context, email string) ([]entities.Notification, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return u.repo.NotificationsForUser(ctx, user.ID)
}

// UnreadNotificationCount returns the user's unread notification count.
func (u *Usecase) UnreadNotificationCount(ctx context.Context, email string) (int64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.UserByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	return u.repo.UnreadCount(ctx, user.ID)
}

// MarkNotificationRead marks one notification as read.
func (u *Usecase) MarkNotificationRead(ctx context.Context, notificationID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if notificationID == "" {
		return fmt.Errorf("%w: notification_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.MarkRead(ctx, notificationID)
}

// MarkAllNotificationsRead marks every notification of the user as read.
func (u *Usecase) MarkAllNotificationsRead(ctx context.Context, email string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.UserByEmail(ctx, email)
	if err != nil {
		return err
	}
	return u.repo.MarkAllRead(ctx, user.ID)
}
