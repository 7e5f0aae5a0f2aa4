package domain

import (
	"context"
	"fmt"

	"github.com/Swayam792/Bugwise-Backend/internal/entities"
)

// AddComment stores a comment on a bug and notifies the bug's
// participants except the author.
func (u *Usecase) AddComment(ctx context.Context, actorEmail, bugID, content string) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if bugID == "" {
		return nil, fmt.Errorf("%w: bug_id is required", entities.ErrInvalidArgument)
	}
	if content == "" {
		return nil, entities.NewValidationError("content", "content is required")
	}

	actor, err := u.repo.UserByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	created, err := u.repo.CreateComment(ctx, entities.Comment{
		BugID:    bugID,
		AuthorID: actor.ID,
		Content:  content,
	})
	if err != nil {
		return nil, err
	}

	if bug, err := u.repo.Bug(ctx, bugID); err == nil {
		recipients := make([]string, 0)
		for _, id := range recipientIDs(bug) {
			if id != actor.ID {
				recipients = append(recipients, id)
			}
		}
		u.publish(ctx, entities.NotificationMessage{
			Type:       entities.NotificationCommentAdded,
			Message:    fmt.Sprintf("New comment on bug '%s'", bug.Title),
			BugID:      bugID,
			Recipients: recipients,
		})
	}
	return created, nil
}

// CommentsForBug lists a bug's comments oldest first.
func (u *Usecase) CommentsForBug(ctx context.Context, bugID string) ([]entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if bugID == "" {
		return nil, fmt.Errorf("%w: bug_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.CommentsByBug(ctx, bugID)
}

// EditComment rewrites a comment's content. Only the author may edit.
func (u *Usecase) EditComment(ctx context.Context, commentID, actorEmail, content string) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if commentID == "" {
		return nil, fmt.Errorf("%w: comment_id is required", entities.ErrInvalidArgument)
	}
	if content == "" {
		return nil, entities.NewValidationError("content", "content is required")
	}
	actor, err := u.repo.UserByEmail(ctx, actorEmail)
	if err != nil {
		return nil, err
	}
	return u.repo.UpdateComment(ctx, commentID, actor.ID, content)
}

// DeleteComment removes a comment. Only the author may delete.
func (u *Usecase) DeleteComment(ctx context.Context, commentID, actorEmail string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if commentID == "" {
		return fmt.Errorf("%w: comment_id is required", entities.ErrInvalidArgument)
	}
	actor, err := u.repo.UserByEmail(ctx, actorEmail)
	if err != nil {
		return err
	}
	return u.repo.DeleteComment(ctx, commentID, actor.ID)
}
