package firestore

import (
	"context"
	"slices"
	"strings"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/partnership"
	"localdrop/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	s *session
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(client *firestore.Client) repository.BusinessRepository {
	return &businessRepository{s: newSession(client)}
}

func (repo *businessRepository) ref(id string) *firestore.DocumentRef {
	return repo.s.collection(businessesCollection).Doc(id)
}

// CreateBusiness stores the business under its own identifier.
func (repo *businessRepository) CreateBusiness(ctx context.Context, business *entity.Business) error {
	stampCreated(&business.CreatedAt, &business.UpdatedAt)
	doc := fromBusinessDomain(business)

	return repo.s.atomic(ctx, "failed to create business", func(tx *session) error {
		ref := repo.ref(business.ID)
		_, found, err := getDoc[businessDoc](ctx, tx, ref)
		if err != nil {
			return err
		}
		if found {
			return repository.ErrDuplicateBusiness
		}

		return putDoc(tx, ref, doc)
	})
}

// FindBusinessByID retrieves a business by its identifier.
func (repo *businessRepository) FindBusinessByID(ctx context.Context, id string) (*entity.Business, error) {
	doc, found, err := getDoc[businessDoc](ctx, repo.s, repo.ref(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrBusinessNotFound
	}

	return toBusinessDomain(doc), nil
}

// FindBusinessesWithinBounds runs a latitude band query on geo_point and keeps the points inside the
// box's longitude ranges. Geo points order by latitude first, so the band bounds use the extreme
// longitudes.
func (repo *businessRepository) FindBusinessesWithinBounds(ctx context.Context, box entity.BoundingBox) ([]*entity.Business, error) {
	query := repo.s.collection(businessesCollection).
		Where("geo_point", ">=", &latlng.LatLng{Latitude: box.SouthwestCorner.Latitude, Longitude: -180}).
		Where("geo_point", "<=", &latlng.LatLng{Latitude: box.NortheastCorner.Latitude, Longitude: 180})

	snaps, err := repo.s.query(ctx, query, "failed to find businesses within bounds")
	if err != nil {
		return nil, err
	}

	docs, err := decodeAll[businessDoc](snaps)
	if err != nil {
		return nil, err
	}

	businesses := make([]*entity.Business, 0, len(docs))
	for _, doc := range docs {
		business := toBusinessDomain(doc)
		if box.Contains(business.Location.GeoPoint) {
			businesses = append(businesses, business)
		}
	}
	slices.SortFunc(businesses, func(a, b *entity.Business) int {
		return strings.Compare(a.ID, b.ID)
	})

	return businesses, nil
}

// UpdateBusinessProfile rewrites the document with the profile fields replaced. The partner list is
// carried over from the same transaction's read.
func (repo *businessRepository) UpdateBusinessProfile(ctx context.Context, id string, update *entity.BusinessProfileUpdate) error {
	return repo.mutate(ctx, id, "failed to update business profile", func(business *entity.Business) {
		business.ApplyProfileUpdate(update)
	})
}

// UpsertPartner replaces the partner entry for the same user in place, or appends it.
func (repo *businessRepository) UpsertPartner(ctx context.Context, businessID string, entry entity.BusinessPartner) error {
	return repo.mutate(ctx, businessID, "failed to upsert business partner", func(business *entity.Business) {
		business.Partners = partnership.UpsertBusinessPartner(business.Partners, entry)
	})
}

func (repo *businessRepository) mutate(ctx context.Context, id, details string, change func(*entity.Business)) error {
	return repo.s.atomic(ctx, details, func(tx *session) error {
		ref := repo.ref(id)
		doc, found, err := getDoc[businessDoc](ctx, tx, ref)
		if err != nil {
			return err
		}
		if !found {
			return repository.ErrBusinessNotFound
		}

		business := toBusinessDomain(doc)
		change(business)
		business.UpdatedAt = time.Now().UTC()

		return putDoc(tx, ref, fromBusinessDomain(business))
	})
}

// stampCreated fills creation timestamps the caller left unset.
func stampCreated(createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = *createdAt
	}
}
