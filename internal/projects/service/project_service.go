package service

import (
	"context"

	"github.com/deepak92201/Portfolio/internal/projects/domain"
)

// Repository is the persistence contract the service needs.
// *repository.ProjectRepository satisfies it.
type Repository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectService handles project-related business logic
type ProjectService struct {
	repo Repository
}

// NewProjectService creates a new project service
func NewProjectService(repo Repository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// List returns all projects, newest first
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Project{}
	}
	return items, nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the input before it reaches the store
func (s *ProjectService) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in)
}

// Update replaces all editable fields of an existing project. Empty values
// are stored as given; only Create enforces required fields.
func (s *ProjectService) Update(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
