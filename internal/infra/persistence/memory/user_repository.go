package memory

import (
	"context"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/partnership"
	"localdrop/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	run runner
}

// NewUserRepository returns a user repository outside any transaction.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{run: store.locked}
}

func (repo *userRepository) CreateUser(_ context.Context, user *entity.User) error {
	return repo.run(func(s *state) error {
		key := emailKey(user.Email)
		if _, taken := s.emails[key]; taken {
			return repository.ErrDuplicateEmail
		}
		if _, exists := s.users[user.ID]; exists {
			return repository.ErrDuplicateEmail
		}

		stored := cloneUser(user)
		if stored.PartnerBusinesses == nil {
			stored.PartnerBusinesses = []entity.UserPartnerBusiness{}
		}
		s.users[user.ID] = stored
		s.emails[key] = user.ID

		return nil
	})
}

func (repo *userRepository) FindUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	var found *entity.User
	err := repo.run(func(s *state) error {
		user, ok := s.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = cloneUser(user)

		return nil
	})

	return found, err
}

func (repo *userRepository) AppendPartnerBusiness(_ context.Context, userID uuid.UUID, entry entity.UserPartnerBusiness) error {
	return repo.mutate(userID, func(user *entity.User) error {
		if partnership.HasActiveEntry(user.PartnerBusinesses, entry.BusinessRefID) {
			return repository.ErrActivePartnerEntry
		}
		user.PartnerBusinesses = partnership.UpsertUserPartner(user.PartnerBusinesses, entry)

		return nil
	})
}

func (repo *userRepository) UpsertPartnerBusiness(_ context.Context, userID uuid.UUID, entry entity.UserPartnerBusiness) error {
	return repo.mutate(userID, func(user *entity.User) error {
		user.PartnerBusinesses = partnership.UpsertUserPartner(user.PartnerBusinesses, entry)

		return nil
	})
}

func (repo *userRepository) RemovePartnerBusiness(_ context.Context, userID uuid.UUID, businessRefID string) error {
	return repo.mutate(userID, func(user *entity.User) error {
		user.PartnerBusinesses = partnership.RemoveUserPartner(user.PartnerBusinesses, businessRefID)

		return nil
	})
}

func (repo *userRepository) mutate(userID uuid.UUID, f func(*entity.User) error) error {
	return repo.run(func(s *state) error {
		user, ok := s.users[userID]
		if !ok {
			return repository.ErrUserNotFound
		}

		if err := f(user); err != nil {
			return err
		}
		user.UpdatedAt = time.Now().UTC()

		return nil
	})
}
