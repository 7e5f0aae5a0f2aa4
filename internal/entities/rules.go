// Package entities contains core business entities.
package entities

// MsgClosedBugsReopenOnly is the transition rule message surfaced to callers.
const MsgClosedBugsReopenOnly = "Closed bugs can only be reopened"

// ValidateStatusTransition enforces the lifecycle rule: a CLOSED bug
// accepts only REOPENED as its next status. Every other transition in
// the graph is permitted.
func ValidateStatusTransition(current, next BugStatus) error {
	if !next.Valid() {
		return NewValidationError("status", "unknown status "+string(next))
	}
	if current == StatusClosed && next != StatusReopened {
		return NewValidationError("status", MsgClosedBugsReopenOnly)
	}
	return nil
}

// CanUpdateBug reports whether the actor may modify the bug's
// descriptive fields: an assigned developer, the manager of the bug's
// project, or an admin.
func CanUpdateBug(actor User, bug *Bug) bool {
	if actor.Role == RoleAdmin {
		return true
	}
	if bug.IsAssignedTo(actor.ID) {
		return true
	}
	return actor.Role == RoleProjectManager && bug.ProjectManagerID == actor.ID
}

// ValidateDeveloperAssignment checks a candidate assignee against the
// bug's required developer types. The skill check only applies when
// the bug declares required types.
func ValidateDeveloperAssignment(bug *Bug, dev User) error {
	if dev.Role != RoleDeveloper {
		return NewValidationError("developers",
			"User "+dev.Email+" must have developer role for bug assignment")
	}
	if len(bug.RequiredDeveloperTypes) == 0 {
		return nil
	}
	for _, t := range bug.RequiredDeveloperTypes {
		if dev.DeveloperType == t {
			return nil
		}
	}
	return NewValidationError("developers",
		"Developer "+dev.Email+" doesn't have required skills for this bug")
}
