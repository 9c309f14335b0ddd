package postgres

import (
	"context"
	"slices"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/partnership"
	"localdrop/internal/domain/repository"
	"localdrop/internal/errors"
	"localdrop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new user. The unique email index rejects duplicates.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return storageError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByID retrieves a single user with their partner list.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storageError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// AppendPartnerBusiness adds a pending entry unless an active one for the business exists.
func (repo *userRepository) AppendPartnerBusiness(ctx context.Context, userID uuid.UUID, entry entity.UserPartnerBusiness) error {
	return repo.mutatePartners(ctx, userID, func(entries []entity.UserPartnerBusiness) ([]entity.UserPartnerBusiness, error) {
		if partnership.HasActiveEntry(entries, entry.BusinessRefID) {
			return nil, repository.ErrActivePartnerEntry
		}

		return partnership.UpsertUserPartner(entries, entry), nil
	})
}

// UpsertPartnerBusiness replaces the entry for the same business in place, or appends it.
func (repo *userRepository) UpsertPartnerBusiness(ctx context.Context, userID uuid.UUID, entry entity.UserPartnerBusiness) error {
	return repo.mutatePartners(ctx, userID, func(entries []entity.UserPartnerBusiness) ([]entity.UserPartnerBusiness, error) {
		return partnership.UpsertUserPartner(entries, entry), nil
	})
}

// RemovePartnerBusiness drops every entry for the business.
func (repo *userRepository) RemovePartnerBusiness(ctx context.Context, userID uuid.UUID, businessRefID string) error {
	return repo.mutatePartners(ctx, userID, func(entries []entity.UserPartnerBusiness) ([]entity.UserPartnerBusiness, error) {
		return partnership.RemoveUserPartner(entries, businessRefID), nil
	})
}

// mutatePartners locks the user row in a (nested) transaction so concurrent list edits serialize.
func (repo *userRepository) mutatePartners(
	ctx context.Context,
	userID uuid.UUID,
	mutate func([]entity.UserPartnerBusiness) ([]entity.UserPartnerBusiness, error),
) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userM model.UserModel
		if err := tx.Clauses(lockForUpdate).
			Where("id = ?", userID).
			First(&userM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrUserNotFound
			}

			return storageError(err, "failed to lock user")
		}

		entries, err := mutate(userM.PartnerBusinesses)
		if err != nil {
			return err
		}

		if err := tx.Model(&userM).
			Update("partner_businesses", datatypes.NewJSONSlice(nonNil(entries))).Error; err != nil {
			return storageError(err, "failed to update partner businesses")
		}

		return nil
	})
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                data.ID,
		Email:             data.Email,
		DisplayName:       data.DisplayName,
		PartnerBusinesses: nonNil(slices.Clone([]entity.UserPartnerBusiness(data.PartnerBusinesses))),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                data.ID,
		Email:             data.Email,
		DisplayName:       data.DisplayName,
		PartnerBusinesses: datatypes.NewJSONSlice(nonNil(data.PartnerBusinesses)),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
