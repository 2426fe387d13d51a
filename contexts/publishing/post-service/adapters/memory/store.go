package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"inkwell/contexts/publishing/post-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/post-service/domain/errors"
	"inkwell/contexts/publishing/post-service/ports"
)

// Store is an in-memory post repository used by tests and the in-memory
// module. Ids are assigned sequentially, matching the store-assigned integer
// id contract.
type Store struct {
	mu     sync.RWMutex
	posts  map[int64]entities.Post
	nextID int64
}

func NewStore() *Store {
	return &Store{
		posts:  map[int64]entities.Post{},
		nextID: 1,
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) List(_ context.Context, query ports.ListQuery) ([]entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.posts))
	for id := range s.posts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	items := make([]entities.Post, 0, len(ids))
	skipped := 0
	for _, id := range ids {
		post := s.posts[id]
		if query.Published != nil && post.Published != *query.Published {
			continue
		}
		if skipped < query.Skip {
			skipped++
			continue
		}
		if len(items) == query.Limit {
			break
		}
		items = append(items, post)
	}
	return items, nil
}

func (s *Store) Create(_ context.Context, input ports.CreatePostInput) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.posts[id] = entities.Post{
		ID:          id,
		Title:       input.Title,
		Content:     input.Content,
		Published:   input.Published,
		PublishedAt: copyTime(input.PublishedAt),
	}
	return id, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}
	return post, nil
}

func (s *Store) Update(_ context.Context, id int64, input ports.UpdatePostInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil
	}
	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Published != nil {
		post.Published = *input.Published
	}
	if input.PublishedAt != nil {
		post.PublishedAt = copyTime(input.PublishedAt)
	}
	s.posts[id] = post
	return nil
}

func (s *Store) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.posts, id)
	return nil
}

func (s *Store) CountByID(_ context.Context, id int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.posts[id]; ok {
		return 1, nil
	}
	return 0, nil
}

func (s *Store) PublishDue(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var published int64
	for id, post := range s.posts {
		if post.Published || post.PublishedAt == nil || post.PublishedAt.After(now) {
			continue
		}
		post.Published = true
		s.posts[id] = post
		published++
	}
	return published, nil
}

func copyTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	copied := value.UTC()
	return &copied
}
