// Package entities contains core business entities.
package entities

import "time"

// ProjectStatus enumerates project states.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectArchived  ProjectStatus = "ARCHIVED"
)

// Project groups bugs under one organization and manager.
type Project struct {
	ID               string
	Name             string
	Description      string
	Status           ProjectStatus
	OrganizationID   string
	OrganizationName string
	ManagerID        string
	ManagerName      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Organization owns projects and members.
type Organization struct {
	ID          string
	Name        string
	Description string
	AdminID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
