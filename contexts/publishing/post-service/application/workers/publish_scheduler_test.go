package workers

import (
	"context"
	"testing"
	"time"

	"inkwell/contexts/publishing/post-service/adapters/memory"
	"inkwell/contexts/publishing/post-service/ports"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestRunOncePublishesDuePosts(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Minute)
	later := now.Add(time.Minute)

	if _, err := store.Create(context.Background(), ports.CreatePostInput{Title: "due", PublishedAt: &due}); err != nil {
		t.Fatalf("seed create returned error: %v", err)
	}
	if _, err := store.Create(context.Background(), ports.CreatePostInput{Title: "later", PublishedAt: &later}); err != nil {
		t.Fatalf("seed create returned error: %v", err)
	}

	job := PublishScheduler{
		Posts: store,
		Clock: fixedClock{now: now},
	}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("run once returned error: %v", err)
	}

	first, err := store.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if !first.Published {
		t.Fatal("expected due post to be published")
	}

	second, err := store.GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if second.Published {
		t.Fatal("expected later post to stay unpublished")
	}
}

func TestRunOnceIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Minute)

	if _, err := store.Create(context.Background(), ports.CreatePostInput{Title: "due", PublishedAt: &due}); err != nil {
		t.Fatalf("seed create returned error: %v", err)
	}

	job := PublishScheduler{
		Posts: store,
		Clock: fixedClock{now: now},
	}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("first run returned error: %v", err)
	}

	published, err := store.PublishDue(context.Background(), now)
	if err != nil {
		t.Fatalf("publish due returned error: %v", err)
	}
	if published != 0 {
		t.Fatalf("expected second sweep to publish nothing, got %d", published)
	}
}
