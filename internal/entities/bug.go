// Package entities contains core business entities.
package entities

import "time"

// BugStatus enumerates bug lifecycle states.
type BugStatus string

const (
	// StatusNew marks a freshly reported bug.
	StatusNew BugStatus = "NEW"
	// StatusAssigned marks a bug handed to developers.
	StatusAssigned BugStatus = "ASSIGNED"
	// StatusOpen marks a bug accepted for work.
	StatusOpen BugStatus = "OPEN"
	// StatusInProgress marks a bug being fixed.
	StatusInProgress BugStatus = "IN_PROGRESS"
	// StatusResolved marks a bug with a candidate fix.
	StatusResolved BugStatus = "RESOLVED"
	// StatusTesting marks a bug under verification.
	StatusTesting BugStatus = "TESTING"
	// StatusClosed marks a finished bug.
	StatusClosed BugStatus = "CLOSED"
	// StatusReopened marks a closed bug brought back.
	StatusReopened BugStatus = "REOPENED"
)

// Valid reports whether the status is a known lifecycle state.
func (s BugStatus) Valid() bool {
	switch s {
	case StatusNew, StatusAssigned, StatusOpen, StatusInProgress,
		StatusResolved, StatusTesting, StatusClosed, StatusReopened:
		return true
	}
	return false
}

// BugSeverity enumerates impact levels.
type BugSeverity string

const (
	SeverityLow      BugSeverity = "LOW"
	SeverityMedium   BugSeverity = "MEDIUM"
	SeverityHigh     BugSeverity = "HIGH"
	SeverityCritical BugSeverity = "CRITICAL"
)

// Valid reports whether the severity is known.
func (s BugSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// BugType classifies the affected area.
type BugType string

const (
	BugTypeFrontend    BugType = "FRONTEND"
	BugTypeBackend     BugType = "BACKEND"
	BugTypeIntegration BugType = "INTEGRATION"
	BugTypePerformance BugType = "PERFORMANCE"
	BugTypeSecurity    BugType = "SECURITY"
	BugTypeOther       BugType = "OTHER"
)

// Bug is the authoritative defect record.
type Bug struct {
	ID                     string
	Title                  string
	Description            string
	Status                 BugStatus
	Severity               BugSeverity
	BugType                BugType
	ProjectID              string
	ProjectName            string
	OrganizationID         string
	OrganizationName       string
	ProjectManagerID       string
	ProjectManagerName     string
	ReportedByID           string
	ReportedByEmail        string
	AssignedDevelopers     []User
	RequiredDeveloperTypes []DeveloperType
	ExpectedTimeHours      *int
	ActualTimeHours        *int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsAssignedTo reports whether the user is in the assignee set.
func (b *Bug) IsAssignedTo(userID string) bool {
	for _, d := range b.AssignedDevelopers {
		if d.ID == userID {
			return true
		}
	}
	return false
}

// BugPatch carries the mutable descriptive fields of an update.
type BugPatch struct {
	Title                  string
	Description            string
	Severity               BugSeverity
	BugType                *BugType
	ExpectedTimeHours      *int
	ActualTimeHours        *int
	RequiredDeveloperTypes []DeveloperType
}

// BugPage is one page of bugs with the total match count.
type BugPage struct {
	Items []Bug
	Total int64
	Page  int
	Size  int
}

// BugAnalysis is the AI triage result for a bug.
type BugAnalysis struct {
	BugID                  string
	SuggestedType          BugType
	RequiredDeveloperTypes []DeveloperType
	EstimatedHours         int
	SuggestedDevelopers    []string
}

// BugSearchFilter narrows a project bug listing.
type BugSearchFilter struct {
	ProjectID string
	Term      string
	Status    *BugStatus
	Page      int
	Size      int
}
