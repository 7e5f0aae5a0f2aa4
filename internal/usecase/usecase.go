package usecase

import (
	"context"
	"time"

	"github.com/Swayam792/Bugwise-Backend/internal/notifier"
	"github.com/Swayam792/Bugwise-Backend/internal/repository"
	"github.com/Swayam792/Bugwise-Backend/internal/search"
	"github.com/Swayam792/Bugwise-Backend/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	BugUsecaseInterface
	UserUsecaseInterface
	OrganizationUsecaseInterface
	ProjectUsecaseInterface
	CommentUsecaseInterface
	NotificationUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	index search.Index,
	publisher notifier.Publisher,
	triage domain.Triager,
	timeout time.Duration,
	requireSkillMatch bool,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, index, publisher, triage, timeout, requireSkillMatch)
}
