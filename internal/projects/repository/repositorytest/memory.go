// Package repositorytest provides in-memory stores for tests.
package repositorytest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/deepak92201/Portfolio/internal/projects/domain"
)

// ProjectStore is an in-process project store with the same contract as
// repository.ProjectRepository.
type ProjectStore struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.Project
	now    func() time.Time
}

func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		items: make(map[int64]domain.Project),
		now:   time.Now,
	}
}

// Len reports how many projects are stored.
func (r *ProjectStore) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *ProjectStore) List(_ context.Context) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Project, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *ProjectStore) Get(_ context.Context, id int64) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *ProjectStore) Create(_ context.Context, in domain.ProjectInput) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p := domain.Project{
		ID:          r.nextID,
		Title:       in.Title,
		Description: in.Description,
		TechStack:   in.TechStack,
		GithubURL:   in.GithubURL,
		LiveURL:     in.LiveURL,
		CreatedAt:   r.now().UTC(),
	}
	r.items[p.ID] = p
	return &p, nil
}

func (r *ProjectStore) Update(_ context.Context, id int64, in domain.ProjectInput) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Title = in.Title
	p.Description = in.Description
	p.TechStack = in.TechStack
	p.GithubURL = in.GithubURL
	p.LiveURL = in.LiveURL
	r.items[id] = p
	return &p, nil
}

func (r *ProjectStore) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
