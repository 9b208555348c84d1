package http

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/deepak92201/Portfolio/internal/projects/domain"
)

// ProjectService is satisfied by *service.ProjectService.
type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc ProjectService
	log logrus.FieldLogger
}

func New(svc ProjectService, log logrus.FieldLogger) *Handler {
	return &Handler{svc: svc, log: log}
}
