package memory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/pkg/errors"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// cloneUser copies a stored user so callers never alias stored state, the
// same contract facilityView gives for facilities.
func cloneUser(u *model.User) *model.User {
	out := *u
	if u.FacilityID != nil {
		id := *u.FacilityID
		out.FacilityID = &id
	}
	return &out
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, user.Username) {
			return errors.Conflict("username already taken")
		}
		if strings.EqualFold(u.Email, user.Email) {
			return errors.Conflict("email already registered")
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users = append(s.users, user)
	s.usersByID[user.ID] = user
	s.reportGauges()
	return nil
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.usersByID[id]
	if !ok {
		return nil, errors.NotFound("user")
	}
	return cloneUser(u), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return cloneUser(u), nil
		}
	}
	return nil, errors.NotFound("user")
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, errors.NotFound("user")
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.usersByID[user.ID]
	if !ok {
		return errors.NotFound("user")
	}
	user.UpdatedAt = time.Now()
	*stored = *user
	return nil
}

func (r *userRepository) List(ctx context.Context, filter *model.UserFilter) ([]*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*model.User{}
	for _, u := range s.users {
		if filter != nil {
			if filter.Role != "" && u.Role != filter.Role {
				continue
			}
			if filter.FacilityID != uuid.Nil && (u.FacilityID == nil || *u.FacilityID != filter.FacilityID) {
				continue
			}
		}
		out = append(out, cloneUser(u))
	}
	return out, nil
}
