// Package dto defines HTTP transport request and response models.
package dto

import "time"

// ErrorCode classifies error responses for clients.
type ErrorCode string

const (
	NOTFOUND         ErrorCode = "NOT_FOUND"
	VALIDATIONFAILED ErrorCode = "VALIDATION_FAILED"
	PERMISSIONDENIED ErrorCode = "PERMISSION_DENIED"
	CONFLICT         ErrorCode = "CONFLICT"
	INTERNAL         ErrorCode = "INTERNAL_ERROR"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the error code, message and optional field map.
type ErrorBody struct {
	Code    ErrorCode         `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// User is the transport view of an account.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Role          string `json:"role"`
	DeveloperType string `json:"developer_type,omitempty"`
	IsActive      bool   `json:"is_active"`
}

// RegisterUserRequest creates an account.
type RegisterUserRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Role          string `json:"role"`
	DeveloperType string `json:"developer_type,omitempty"`
}

// Bug is the transport view of a bug.
type Bug struct {
	ID                     string    `json:"id"`
	Title                  string    `json:"title"`
	Description            string    `json:"description"`
	Status                 string    `json:"status"`
	Severity               string    `json:"severity"`
	BugType                string    `json:"bug_type,omitempty"`
	ProjectID              string    `json:"project_id"`
	ProjectName            string    `json:"project_name"`
	OrganizationID         string    `json:"organization_id"`
	OrganizationName       string    `json:"organization_name"`
	ReportedByID           string    `json:"reported_by_id"`
	ReportedByEmail        string    `json:"reported_by_email"`
	AssignedDevelopers     []User    `json:"assigned_developers"`
	RequiredDeveloperTypes []string  `json:"required_developer_types,omitempty"`
	ExpectedTimeHours      *int      `json:"expected_time_hours,omitempty"`
	ActualTimeHours        *int      `json:"actual_time_hours,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// CreateBugRequest reports a new bug.
type CreateBugRequest struct {
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	Severity               string   `json:"severity"`
	BugType                string   `json:"bug_type,omitempty"`
	ProjectID              string   `json:"project_id"`
	RequiredDeveloperTypes []string `json:"required_developer_types,omitempty"`
	ExpectedTimeHours      *int     `json:"expected_time_hours,omitempty"`
}

// UpdateBugRequest changes descriptive bug fields.
type UpdateBugRequest struct {
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	Severity               string   `json:"severity"`
	BugType                *string  `json:"bug_type,omitempty"`
	ExpectedTimeHours      *int     `json:"expected_time_hours,omitempty"`
	ActualTimeHours        *int     `json:"actual_time_hours,omitempty"`
	RequiredDeveloperTypes []string `json:"required_developer_types,omitempty"`
}

// UpdateBugStatusRequest moves a bug to a new lifecycle state.
type UpdateBugStatusRequest struct {
	Status string `json:"status"`
}

// AssignDevelopersRequest replaces the assignee set.
type AssignDevelopersRequest struct {
	DeveloperEmails []string `json:"developer_emails"`
}

// BugPage is one page of bugs plus paging metadata.
type BugPage struct {
	Items []Bug `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// StatusCount is one row of a per-status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// BugAnalysis is the AI triage response.
type BugAnalysis struct {
	BugID                  string   `json:"bug_id"`
	SuggestedType          string   `json:"suggested_type"`
	RequiredDeveloperTypes []string `json:"required_developer_types"`
	EstimatedHours         int      `json:"estimated_hours"`
	SuggestedDevelopers    []string `json:"suggested_developers"`
}

// ReindexResponse reports a projection rebuild.
type ReindexResponse struct {
	IndexedBugs int `json:"indexed_bugs"`
}

// Organization is the transport view of an organization.
type Organization struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AdminID     string    `json:"admin_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateOrganizationRequest creates an organization.
type CreateOrganizationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AddMembersRequest enrolls users into an organization.
type AddMembersRequest struct {
	MemberEmails []string `json:"member_emails"`
}

// OrganizationStats aggregates counters for an organization.
type OrganizationStats struct {
	OrganizationID string `json:"organization_id"`
	ProjectCount   int64  `json:"project_count"`
	UserCount      int64  `json:"user_count"`
	BugCount       int64  `json:"bug_count"`
}

// Project is the transport view of a project.
type Project struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	OrganizationID   string    `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	ManagerID        string    `json:"manager_id,omitempty"`
	ManagerName      string    `json:"manager_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateProjectRequest creates a project.
type CreateProjectRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	OrganizationID string `json:"organization_id"`
	ManagerID      string `json:"manager_id,omitempty"`
}

// AssignUsersRequest adds users to a project.
type AssignUsersRequest struct {
	UserEmails []string `json:"user_emails"`
}

// ProjectStats aggregates bug counters for a project.
type ProjectStats struct {
	ProjectID   string        `json:"project_id"`
	ProjectName string        `json:"project_name"`
	TotalBugs   int64         `json:"total_bugs"`
	OpenBugs    int64         `json:"open_bugs"`
	ByStatus    []StatusCount `json:"by_status"`
}

// Comment is the transport view of a bug comment.
type Comment struct {
	ID          string    `json:"id"`
	BugID       string    `json:"bug_id"`
	AuthorID    string    `json:"author_id"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCommentRequest adds a comment to a bug.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest rewrites a comment.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// Notification is the transport view of a stored notification.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	BugID     string    `json:"bug_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// UnreadCountResponse reports the unread notification count.
type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
