package repository

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/topraklif/deals-api/internal/domain"
	"github.com/topraklif/deals-api/pkg/utils"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository keeps the stand-in authenticated-user records, keyed by
// the identity the external provider asserts.
type UserRepository interface {
	UpsertByProvider(user domain.User) (*domain.User, error)
	GetByID(userID string) (*domain.User, error)
}

type userRepository struct {
	mu         sync.RWMutex
	byID       map[string]domain.User
	byIdentity map[string]string
}

func NewUserRepository() UserRepository {
	return &userRepository{
		byID:       make(map[string]domain.User),
		byIdentity: make(map[string]string),
	}
}

func (r *userRepository) UpsertByProvider(user domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity := user.Provider + ":" + user.Subject

	if existingID, ok := r.byIdentity[identity]; ok {
		existing := r.byID[existingID]
		existing.Email = user.Email
		existing.DisplayName = user.DisplayName
		existing.PhotoURL = user.PhotoURL
		r.byID[existingID] = existing
		return &existing, nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "generate user id")
	}

	user.ID = id
	user.CreatedAt = time.Now()
	r.byID[id] = user
	r.byIdentity[identity] = id

	return &user, nil
}

func (r *userRepository) GetByID(userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[userID]
	if !ok {
		return nil, errors.Wrapf(ErrUserNotFound, "id %q", userID)
	}
	return &user, nil
}
