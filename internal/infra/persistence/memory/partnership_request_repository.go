package memory

import (
	"context"
	"slices"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/repository"

	"github.com/google/uuid"
)

type partnershipRequestRepository struct {
	run runner
}

// NewPartnershipRequestRepository returns a request repository outside any transaction.
func NewPartnershipRequestRepository(store *Store) repository.PartnershipRequestRepository {
	return &partnershipRequestRepository{run: store.locked}
}

func (repo *partnershipRequestRepository) CreateRequest(_ context.Context, request *entity.PartnershipRequest) error {
	return repo.run(func(s *state) error {
		s.requests[request.ID] = cloneRequest(request)

		return nil
	})
}

func (repo *partnershipRequestRepository) FindRequestByID(_ context.Context, id uuid.UUID) (*entity.PartnershipRequest, error) {
	var found *entity.PartnershipRequest
	err := repo.run(func(s *state) error {
		request, ok := s.requests[id]
		if !ok {
			return repository.ErrPartnershipRequestNotFound
		}
		found = cloneRequest(request)

		return nil
	})

	return found, err
}

func (repo *partnershipRequestRepository) FindLatestRequestForPair(_ context.Context, userID uuid.UUID, businessRefID string) (*entity.PartnershipRequest, error) {
	var latest *entity.PartnershipRequest
	err := repo.run(func(s *state) error {
		for _, request := range s.requests {
			if !request.BelongsTo(userID, businessRefID) {
				continue
			}
			if latest == nil || newerRequest(request, latest) {
				latest = request
			}
		}
		if latest == nil {
			return repository.ErrPartnershipRequestNotFound
		}
		latest = cloneRequest(latest)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return latest, nil
}

func (repo *partnershipRequestRepository) FindRequestsByAccountRef(_ context.Context, accountRef string) ([]*entity.PartnershipRequest, error) {
	var found []*entity.PartnershipRequest
	err := repo.run(func(s *state) error {
		found = make([]*entity.PartnershipRequest, 0)
		for _, request := range s.requests {
			if slices.Contains(request.AccountKey, accountRef) {
				found = append(found, cloneRequest(request))
			}
		}

		return nil
	})

	slices.SortFunc(found, func(a, b *entity.PartnershipRequest) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return compareIDs(b.ID, a.ID)
	})

	return found, err
}

func (repo *partnershipRequestRepository) UpdateRequestStatus(_ context.Context, id uuid.UUID, from, to entity.PartnershipStatus, at time.Time) error {
	return repo.run(func(s *state) error {
		request, ok := s.requests[id]
		if !ok {
			return repository.ErrPartnershipRequestNotFound
		}

		if request.Status != from {
			return repository.ErrStatusMismatch
		}

		request.Status = to
		request.UpdatedAt = at

		return nil
	})
}

func (repo *partnershipRequestRepository) FindRequestsUpdatedSince(_ context.Context, since time.Time, limit int) ([]*entity.PartnershipRequest, error) {
	var found []*entity.PartnershipRequest
	err := repo.run(func(s *state) error {
		found = make([]*entity.PartnershipRequest, 0)
		for _, request := range s.requests {
			if !request.UpdatedAt.Before(since) {
				found = append(found, cloneRequest(request))
			}
		}

		return nil
	})

	slices.SortFunc(found, func(a, b *entity.PartnershipRequest) int {
		if c := a.UpdatedAt.Compare(b.UpdatedAt); c != 0 {
			return c
		}

		return compareIDs(a.ID, b.ID)
	})

	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	return found, err
}

// newerRequest orders by creation time, then by ID so equal timestamps still pick one record.
func newerRequest(a, b *entity.PartnershipRequest) bool {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c > 0
	}

	return compareIDs(a.ID, b.ID) > 0
}

func compareIDs(a, b uuid.UUID) int {
	return slices.Compare(a[:], b[:])
}
