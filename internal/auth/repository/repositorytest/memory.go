// Package repositorytest provides in-memory stores for tests.
package repositorytest

import (
	"context"
	"sync"
	"time"

	"github.com/deepak92201/Portfolio/internal/auth/domain"
)

// AccountStore keeps admin accounts in process, following the contract of
// repository.AccountRepository.
type AccountStore struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[string]domain.AdminAccount
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]domain.AdminAccount)}
}

func (r *AccountStore) GetByUsername(_ context.Context, username string) (*domain.AdminAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}

func (r *AccountStore) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts), nil
}

func (r *AccountStore) Create(_ context.Context, username, passwordHash string) (*domain.AdminAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[username]; ok {
		return nil, domain.ErrAccountExists
	}
	r.nextID++
	a := domain.AdminAccount{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.accounts[username] = a
	return &a, nil
}
