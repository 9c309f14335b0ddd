package firestore

import (
	"context"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/partnership"
	"localdrop/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	s *session
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{s: newSession(client)}
}

func (repo *userRepository) ref(id uuid.UUID) *firestore.DocumentRef {
	return repo.s.collection(usersCollection).Doc(id.String())
}

// CreateUser stores the user together with the claim on their email address.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	stampCreated(&user.CreatedAt, &user.UpdatedAt)
	doc := fromUserDomain(user)

	return repo.s.atomic(ctx, "failed to create user", func(tx *session) error {
		claimRef := tx.collection(emailClaimsCollection).Doc(emailClaimID(user.Email))
		_, claimed, err := getDoc[emailClaimDoc](ctx, tx, claimRef)
		if err != nil {
			return err
		}
		if claimed {
			return repository.ErrDuplicateEmail
		}

		if err := putDoc(tx, claimRef, &emailClaimDoc{UserID: doc.ID}); err != nil {
			return err
		}

		return putDoc(tx, repo.ref(user.ID), doc)
	})
}

// FindUserByID retrieves a user by their unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	doc, found, err := getDoc[userDoc](ctx, repo.s, repo.ref(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(doc), nil
}

// AppendPartnerBusiness adds entry unless an active entry for the same business exists.
func (repo *userRepository) AppendPartnerBusiness(ctx context.Context, userID uuid.UUID, entry entity.UserPartnerBusiness) error {
	return repo.mutatePartners(ctx, userID, "failed to append partner business", func(user *entity.User) error {
		if partnership.HasActiveEntry(user.PartnerBusinesses, entry.BusinessRefID) {
			return repository.ErrActivePartnerEntry
		}
		user.PartnerBusinesses = partnership.UpsertUserPartner(user.PartnerBusinesses, entry)

		return nil
	})
}

// UpsertPartnerBusiness replaces the entry for the same business in place, or appends it.
func (repo *userRepository) UpsertPartnerBusiness(ctx context.Context, userID uuid.UUID, entry entity.UserPartnerBusiness) error {
	return repo.mutatePartners(ctx, userID, "failed to upsert partner business", func(user *entity.User) error {
		user.PartnerBusinesses = partnership.UpsertUserPartner(user.PartnerBusinesses, entry)

		return nil
	})
}

// RemovePartnerBusiness removes the entry for the business, if any.
func (repo *userRepository) RemovePartnerBusiness(ctx context.Context, userID uuid.UUID, businessRefID string) error {
	return repo.mutatePartners(ctx, userID, "failed to remove partner business", func(user *entity.User) error {
		user.PartnerBusinesses = partnership.RemoveUserPartner(user.PartnerBusinesses, businessRefID)

		return nil
	})
}

func (repo *userRepository) mutatePartners(ctx context.Context, userID uuid.UUID, details string, change func(*entity.User) error) error {
	return repo.s.atomic(ctx, details, func(tx *session) error {
		ref := repo.ref(userID)
		doc, found, err := getDoc[userDoc](ctx, tx, ref)
		if err != nil {
			return err
		}
		if !found {
			return repository.ErrUserNotFound
		}

		user := toUserDomain(doc)
		if err := change(user); err != nil {
			return err
		}
		user.UpdatedAt = time.Now().UTC()

		return putDoc(tx, ref, fromUserDomain(user))
	})
}
