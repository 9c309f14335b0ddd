package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/partnership"
	"localdrop/internal/domain/repository"
)

type businessRepository struct {
	run runner
}

// NewBusinessRepository returns a business repository outside any transaction.
func NewBusinessRepository(store *Store) repository.BusinessRepository {
	return &businessRepository{run: store.locked}
}

func (repo *businessRepository) CreateBusiness(_ context.Context, business *entity.Business) error {
	return repo.run(func(s *state) error {
		if _, exists := s.businesses[business.ID]; exists {
			return repository.ErrDuplicateBusiness
		}

		stored := cloneBusiness(business)
		if stored.Partners == nil {
			stored.Partners = []entity.BusinessPartner{}
		}
		s.businesses[business.ID] = stored

		return nil
	})
}

func (repo *businessRepository) FindBusinessByID(_ context.Context, id string) (*entity.Business, error) {
	var found *entity.Business
	err := repo.run(func(s *state) error {
		business, ok := s.businesses[id]
		if !ok {
			return repository.ErrBusinessNotFound
		}
		found = cloneBusiness(business)

		return nil
	})

	return found, err
}

func (repo *businessRepository) FindBusinessesWithinBounds(_ context.Context, box entity.BoundingBox) ([]*entity.Business, error) {
	var found []*entity.Business
	err := repo.run(func(s *state) error {
		found = make([]*entity.Business, 0)
		for _, business := range s.businesses {
			if box.Contains(business.Location.GeoPoint) {
				found = append(found, cloneBusiness(business))
			}
		}

		return nil
	})

	slices.SortFunc(found, func(a, b *entity.Business) int {
		return strings.Compare(a.ID, b.ID)
	})

	return found, err
}

func (repo *businessRepository) UpdateBusinessProfile(_ context.Context, id string, update *entity.BusinessProfileUpdate) error {
	return repo.run(func(s *state) error {
		business, ok := s.businesses[id]
		if !ok {
			return repository.ErrBusinessNotFound
		}

		business.ApplyProfileUpdate(update)
		business.UpdatedAt = time.Now().UTC()

		return nil
	})
}

func (repo *businessRepository) UpsertPartner(_ context.Context, businessID string, entry entity.BusinessPartner) error {
	return repo.run(func(s *state) error {
		business, ok := s.businesses[businessID]
		if !ok {
			return repository.ErrBusinessNotFound
		}

		business.Partners = partnership.UpsertBusinessPartner(business.Partners, entry)
		business.UpdatedAt = time.Now().UTC()

		return nil
	})
}
