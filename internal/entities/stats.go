// Package entities contains core business entities.
package entities

// StatusCount is one row of a per-status bug breakdown.
type StatusCount struct {
	Status BugStatus `json:"status"`
	Count  int64     `json:"count"`
}

// ProjectStats aggregates counters for a single project.
type ProjectStats struct {
	ProjectID   string        `json:"project_id"`
	ProjectName string        `json:"project_name"`
	TotalBugs   int64         `json:"total_bugs"`
	OpenBugs    int64         `json:"open_bugs"`
	ByStatus    []StatusCount `json:"by_status"`
}

// OrganizationStats aggregates counters for an organization.
type OrganizationStats struct {
	OrganizationID string `json:"organization_id"`
	ProjectCount   int64  `json:"project_count"`
	UserCount      int64  `json:"user_count"`
	BugCount       int64  `json:"bug_count"`
}
