// Package entities contains core business entities.
package entities

import "time"

// Comment is a remark on a bug. The author never changes; only the
// author may edit the content.
type Comment struct {
	ID          string
	BugID       string
	AuthorID    string
	AuthorEmail string
	Content     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
