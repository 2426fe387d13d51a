package workers

import (
	"context"
	"log/slog"
	"time"

	application "inkwell/contexts/publishing/post-service/application"
	"inkwell/contexts/publishing/post-service/ports"
)

// PublishScheduler sweeps unpublished posts whose publish time has passed
// and flips them live.
type PublishScheduler struct {
	Posts  ports.PostRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (j PublishScheduler) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)
	now := time.Now().UTC()
	if j.Clock != nil {
		now = j.Clock.Now().UTC()
	}

	published, err := j.Posts.PublishDue(ctx, now)
	if err != nil {
		logger.Error("publish sweep failed",
			"event", "post_publish_sweep_failed",
			"module", "publishing/post-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if published > 0 {
		logger.Info("publish sweep completed",
			"event", "post_publish_sweep_completed",
			"module", "publishing/post-service",
			"layer", "worker",
			"published_count", published,
		)
	}
	return nil
}
