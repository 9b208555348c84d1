package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/deepak92201/Portfolio/internal/auth/domain"
)

// AccountStore is satisfied by *repository.AccountRepository.
type AccountStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.AdminAccount, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, username, passwordHash string) (*domain.AdminAccount, error)
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// AdminSeed describes the admin created on first boot. PasswordHash, when
// set, must already be a bcrypt hash and is stored as is.
type AdminSeed struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

type AuthService struct {
	accounts AccountStore
	tokens   *TokenManager
	log      logrus.FieldLogger

	// mu guards dummyHash, which is compared against when the username does
	// not exist so both failure paths pay for one bcrypt comparison at the
	// same cost.
	mu        sync.RWMutex
	dummyHash []byte
}

func NewAuthService(accounts AccountStore, tokens *TokenManager, log logrus.FieldLogger) (*AuthService, error) {
	s := &AuthService{
		accounts: accounts,
		tokens:   tokens,
		log:      log,
	}
	if err := s.setDummyCost(bcrypt.DefaultCost); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *AuthService) unknownUserHash() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dummyHash
}

func (s *AuthService) setDummyCost(cost int) error {
	s.mu.RLock()
	current := s.dummyHash
	s.mu.RUnlock()
	if current != nil {
		if c, err := bcrypt.Cost(current); err == nil && c == cost {
			return nil
		}
	}

	h, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cost)
	if err != nil {
		return fmt.Errorf("generate unknown-user hash: %w", err)
	}
	s.mu.Lock()
	s.dummyHash = h
	s.mu.Unlock()
	return nil
}

// matchStoredCost aligns the unknown-user hash with the cost of the admin's
// stored hash.
func (s *AuthService) matchStoredCost(hash string) error {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return fmt.Errorf("read stored hash cost: %w", err)
	}
	return s.setDummyCost(cost)
}

// Login verifies the credentials and returns a signed admin token.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		_ = bcrypt.CompareHashAndPassword(s.unknownUserHash(), []byte(password))
		return nil, domain.ErrInvalidCredentials
	case err != nil:
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(account.Username, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

// EnsureAdmin creates the seed account when no admin exists yet. It reports
// whether an account was created. Either way the unknown-user hash is
// brought to the cost of the admin's stored hash.
func (s *AuthService) EnsureAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	n, err := s.accounts.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, s.matchExisting(ctx, seed.Username)
	}

	if strings.TrimSpace(seed.Username) == "" {
		return false, errors.New("admin seed: username is required")
	}

	hash := seed.PasswordHash
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return false, fmt.Errorf("admin seed: password_hash is not a bcrypt hash: %w", err)
		}
	} else {
		if seed.Password == "" {
			return false, errors.New("admin seed: password is required")
		}
		b, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return false, fmt.Errorf("admin seed: hash password: %w", err)
		}
		hash = string(b)
	}

	if _, err := s.accounts.Create(ctx, seed.Username, hash); err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return false, s.matchExisting(ctx, seed.Username)
		}
		return false, err
	}
	if err := s.matchStoredCost(hash); err != nil {
		return false, err
	}

	s.log.WithField("username", seed.Username).Info("admin account seeded")
	return true, nil
}

func (s *AuthService) matchExisting(ctx context.Context, username string) error {
	account, err := s.accounts.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		s.log.WithField("username", username).Warn("seed admin not found, keeping default unknown-user hash cost")
		return nil
	case err != nil:
		return err
	}
	return s.matchStoredCost(account.PasswordHash)
}

// LoadSeedFile reads an AdminSeed from a YAML file.
func LoadSeedFile(path string) (AdminSeed, error) {
	var seed AdminSeed

	data, err := os.ReadFile(path)
	if err != nil {
		return seed, fmt.Errorf("read admin seed file: %w", err)
	}
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return seed, fmt.Errorf("parse admin seed file: %w", err)
	}
	if seed.Username == "" || (seed.Password == "" && seed.PasswordHash == "") {
		return seed, fmt.Errorf("admin seed file %s: username and password or password_hash are required", path)
	}
	return seed, nil
}
