package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deepak92201/Portfolio/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects.
// Every method is a single statement, so each is atomic for its row.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, title, description, tech_stack, github_url, live_url, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanProject(row scanner) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.TechStack, &p.GithubURL, &p.LiveURL, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every project, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT ` + projectColumns + `
FROM projects
ORDER BY created_at DESC, id DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return p, nil
}

// Create inserts a project and returns it with the assigned id and creation time.
func (r *ProjectRepository) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	const q = `
INSERT INTO projects (title, description, tech_stack, github_url, live_url)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q,
		in.Title, in.Description, in.TechStack, in.GithubURL, in.LiveURL))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// Update replaces the editable fields. id and created_at are left alone.
func (r *ProjectRepository) Update(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error) {
	const q = `
UPDATE projects
SET title = $2, description = $3, tech_stack = $4, github_url = $5, live_url = $6
WHERE id = $1
RETURNING ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q,
		id, in.Title, in.Description, in.TechStack, in.GithubURL, in.LiveURL))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update project %d: %w", id, err)
	}
	return p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM projects WHERE id = $1;`

	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
