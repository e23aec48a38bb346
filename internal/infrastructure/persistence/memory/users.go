package memory

import (
	"context"
	"sync"

	"jobmatch/internal/domain/user"
)

type UserRepository struct {
	mu      sync.RWMutex
	order   []string
	byID    map[string]user.User
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]user.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	email := user.NormalizeEmail(u.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; ok {
		return user.ErrEmailTaken
	}
	u.Email = email
	r.byID[u.ID] = u
	r.byEmail[email] = u.ID
	r.order = append(r.order, u.ID)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[user.NormalizeEmail(email)]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *UserRepository) List(_ context.Context, role user.Role) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.order))
	for _, id := range r.order {
		u := r.byID[id]
		if role != "" && u.Role != role {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

type TokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{tokens: make(map[string]string)}
}

func (r *TokenRepository) Save(_ context.Context, token, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = userID
	return nil
}

func (r *TokenRepository) UserID(_ context.Context, token string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.tokens[token]
	if !ok {
		return "", user.ErrTokenUnknown
	}
	return id, nil
}
