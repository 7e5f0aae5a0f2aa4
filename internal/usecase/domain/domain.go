package domain

import (
	"context"
	"time"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
	"github.com/Swayam792/Bugwise-Backend/internal/notifier"
	"github.com/Swayam792/Bugwise-Backend/internal/repository"
	"github.com/Swayam792/Bugwise-Backend/internal/search"

	"go.uber.org/zap"
)

// Triager is the AI analysis port. A nil Triager disables AnalyzeBug.
type Triager interface {
	SuggestBugType(ctx context.Context, title, description string) (entities.BugType, error)
	SuggestDeveloperTypes(ctx context.Context, bugType entities.BugType) ([]entities.DeveloperType, error)
	EstimateHours(ctx context.Context, bug *entities.Bug) (int, error)
	SuggestDevelopers(ctx context.Context, bug *entities.Bug, candidates []entities.User, similar []search.Document) ([]string, error)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx               context.Context
	log               *zap.SugaredLogger
	repo              repository.Repository
	index             search.Index
	publisher         notifier.Publisher
	triage            Triager
	timeout           time.Duration
	requireSkillMatch bool
}

// New constructs a new usecase layer with its dependencies. The
// publisher and triage ports may be nil; the matching side effects are
// then skipped.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	index search.Index,
	publisher notifier.Publisher,
	triage Triager,
	timeout time.Duration,
	requireSkillMatch bool,
) *Usecase {
	return &Usecase{
		ctx:               ctx,
		log:               log,
		repo:              repo,
		index:             index,
		publisher:         publisher,
		triage:            triage,
		timeout:           timeout,
		requireSkillMatch: requireSkillMatch,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
