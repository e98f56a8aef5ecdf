package memory

import (
	"alcyxob/trainer-console/internal/domain"
	"alcyxob/trainer-console/internal/idgen"
	"alcyxob/trainer-console/internal/repository"
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// userRepository keeps trainer accounts, keyed by ID with a unique email index.
type userRepository struct {
	mu      sync.RWMutex
	ids     idgen.Generator
	byID    map[string]domain.User
	byEmail map[string]string
}

func NewUserRepository(ids idgen.Generator) repository.UserRepository {
	return &userRepository{
		ids:     ids,
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

// Create inserts a new user. Emails are compared case-insensitively.
func (r *userRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	if user.Email == "" || user.PasswordHash == "" {
		return "", errors.New("user email and password hash are required")
	}
	key := strings.ToLower(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[key]; taken {
		return "", repository.ErrDuplicate
	}
	user.ID = r.ids.NewID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.byID[user.ID] = *user
	r.byEmail[key] = user.ID
	return user.ID, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}
