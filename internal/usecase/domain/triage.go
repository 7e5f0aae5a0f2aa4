package domain

import (
	"context"
	"fmt"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
	"github.com/Swayam792/Bugwise-Backend/internal/search"
)

// similarBugLimit caps the past bugs fed into the assignee suggestion.
const similarBugLimit = 5

// AnalyzeBug runs AI triage over a bug: suggested type, required
// developer skills, a time estimate and ranked assignee candidates.
// The type and skill steps must succeed; the estimate and candidate
// steps degrade gracefully when the model or index cannot help.
func (u *Usecase) AnalyzeBug(ctx context.Context, bugID string) (*entities.BugAnalysis, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if u.triage == nil {
		return nil, fmt.Errorf("%w: AI analysis is disabled", entities.ErrInvalidArgument)
	}
	if bugID == "" {
		return nil, fmt.Errorf("%w: bug_id is required", entities.ErrInvalidArgument)
	}

	bug, err := u.repo.Bug(ctx, bugID)
	if err != nil {
		return nil, err
	}

	bugType, err := u.triage.SuggestBugType(ctx, bug.Title, bug.Description)
	if err != nil {
		return nil, fmt.Errorf("suggest bug type: %w", err)
	}
	devTypes, err := u.triage.SuggestDeveloperTypes(ctx, bugType)
	if err != nil {
		return nil, fmt.Errorf("suggest developer types: %w", err)
	}

	analysis := &entities.BugAnalysis{
		BugID:                  bug.ID,
		SuggestedType:          bugType,
		RequiredDeveloperTypes: devTypes,
	}

	bug.BugType = bugType
	hours, err := u.triage.EstimateHours(ctx, bug)
	if err != nil {
		u.log.Warnw("failed to estimate fix time", "error", err, "bug_id", bugID)
	} else {
		analysis.EstimatedHours = hours
	}

	candidates, err := u.repo.OrganizationDevelopers(ctx, bug.OrganizationID)
	if err != nil {
		u.log.Warnw("failed to load candidate developers", "error", err, "bug_id", bugID)
		return analysis, nil
	}

	var similar []search.Document
	if u.index != nil {
		similar, err = u.index.Similar(bug.Title, bug.ID, similarBugLimit)
		if err != nil {
			u.log.Warnw("failed to load similar bugs", "error", err, "bug_id", bugID)
		}
	}

	developers, err := u.triage.SuggestDevelopers(ctx, bug, candidates, similar)
	if err != nil {
		u.log.Warnw("failed to suggest developers", "error", err, "bug_id", bugID)
		return analysis, nil
	}
	analysis.SuggestedDevelopers = developers
	return analysis, nil
}
