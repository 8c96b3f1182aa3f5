package request

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/request/workflow"
)

// AddComment appends a comment authored by the actor. The comment starts
// unread for everybody, the author included.
func (s *Service) AddComment(ctx context.Context, actor domain.Actor, input AddCommentInput) (*domain.Comment, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var comment domain.Comment
	_, err := s.mutate(ctx, input.RequestID, func(req *domain.Request, now time.Time) error {
		var addErr error
		comment, addErr = workflow.AddComment(req, actor.Name, input.Text, workflow.CanComment(req.Kind, actor.Role), now)
		return addErr
	})
	if err != nil {
		s.metrics.CommandFailed("add_comment", err)
		return nil, err
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("request_id", input.RequestID.String()),
		slog.String("comment_id", comment.ID.String()),
		slog.String("actor", actor.Name),
	)

	return &comment, nil
}

// MarkCommentsRead adds the user to the readers of every comment of the
// request and returns how many comments changed. Repeating it is a no-op.
// Only an admin may mark comments read on behalf of somebody else.
func (s *Service) MarkCommentsRead(ctx context.Context, actor domain.Actor, input MarkReadInput) (int, error) {
	if err := checkActor(actor); err != nil {
		return 0, err
	}
	if err := input.Validate(); err != nil {
		return 0, err
	}

	userID := input.UserID
	if userID == actor.ID || userID == uuid.Nil {
		userID = actor.ID
	} else if !actor.Role.AtLeast(domain.RoleAdmin) {
		return 0, &domain.PermissionError{Action: "mark comments read for another user", Required: domain.RoleAdmin, Actual: actor.Role}
	}

	var changed int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.requests.GetByIDForUpdate(txCtx, input.RequestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		changed = workflow.MarkAllRead(req, userID)
		if changed == 0 {
			return nil
		}

		req.UpdatedAt = s.now()
		if _, err := s.requests.Save(txCtx, req); err != nil {
			return fmt.Errorf("save request: %w", err)
		}
		return nil
	})
	if err != nil {
		s.metrics.CommandFailed("mark_comments_read", err)
		return 0, err
	}

	if changed > 0 {
		s.log.InfoContext(ctx, "comments marked read",
			slog.String("request_id", input.RequestID.String()),
			slog.String("user_id", userID.String()),
			slog.Int("count", changed),
		)
	}

	return changed, nil
}
