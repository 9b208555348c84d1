package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/deepak92201/Portfolio/internal/auth/domain"
)

const uniqueViolation = "23505"

// AccountRepository reads and seeds admin accounts in Postgres.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetByUsername matches the username exactly, case included.
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminAccount, error) {
	const q = `
SELECT id, username, password_hash, created_at
FROM admin_accounts
WHERE username = $1;
`
	var a domain.AdminAccount
	err := r.db.QueryRowContext(ctx, q, username).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

func (r *AccountRepository) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM admin_accounts;`

	var n int
	if err := r.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

// Create stores an account with an already hashed password.
func (r *AccountRepository) Create(ctx context.Context, username, passwordHash string) (*domain.AdminAccount, error) {
	const q = `
INSERT INTO admin_accounts (username, password_hash)
VALUES ($1, $2)
RETURNING id, username, password_hash, created_at;
`
	var a domain.AdminAccount
	err := r.db.QueryRowContext(ctx, q, username, passwordHash).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return &a, nil
}
