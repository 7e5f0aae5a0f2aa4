// Package entities contains core business entities.
package entities

import "time"

// NotificationType enumerates notification kinds.
type NotificationType string

const (
	NotificationBugAssigned      NotificationType = "BUG_ASSIGNED"
	NotificationBugStatusChanged NotificationType = "BUG_STATUS_CHANGED"
	NotificationCommentAdded     NotificationType = "COMMENT_ADDED"
)

// Notification is a stored in-app notification for one user.
type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Message   string
	BugID     string
	Read      bool
	CreatedAt time.Time
}

// NotificationMessage is the wire payload published to the broker.
// Recipients are user ids; the consumer fans the message out into one
// stored notification per recipient.
type NotificationMessage struct {
	Type       NotificationType `json:"type"`
	Message    string           `json:"message"`
	BugID      string           `json:"bug_id,omitempty"`
	Recipients []string         `json:"recipients"`
}
