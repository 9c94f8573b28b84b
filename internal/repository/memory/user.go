package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
)

type userRepositoryImpl struct {
	mu     sync.RWMutex
	users  map[string]user.User
	nextID int
}

func NewUserRepository() user.UserRepository {
	return &userRepositoryImpl{users: make(map[string]user.User)}
}

// Create implements user.UserRepository. An empty ID is assigned the next
// numeric id.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.User{}, user.ErrUserEmailExists
		}
	}

	if u.ID == "" {
		r.nextID++
		u.ID = strconv.Itoa(r.nextID)
	}
	if n, err := strconv.Atoi(u.ID); err == nil && n > r.nextID {
		r.nextID = n
	}
	if _, exists := r.users[u.ID]; exists {
		return user.User{}, user.ErrUserEmailExists
	}

	r.users[u.ID] = u
	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// GetByEmail implements user.UserRepository. Matching is case-insensitive.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// List implements user.UserRepository, ordered by id.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return lessID(users[i].ID, users[j].ID) })
	return users, nil
}

// Count implements user.UserRepository.
func (r *userRepositoryImpl) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

// UpdateProfile implements user.UserRepository.
func (r *userRepositoryImpl) UpdateProfile(ctx context.Context, id string, req user.UpdateProfileRequest) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		u.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		u.Address = strings.TrimSpace(*req.Address)
	}
	r.users[id] = u
	return u, nil
}

// UpdatePhoto implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePhoto(ctx context.Context, id string, photo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Photo = &photo
	r.users[id] = u
	return nil
}

// UpdateSalary implements user.UserRepository.
func (r *userRepositoryImpl) UpdateSalary(ctx context.Context, id string, salary float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Salary = salary
	r.users[id] = u
	return nil
}
