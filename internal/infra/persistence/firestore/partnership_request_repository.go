package firestore

import (
	"cmp"
	"context"
	"slices"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

// partnershipRequestRepository implements the repository.PartnershipRequestRepository interface.
type partnershipRequestRepository struct {
	s *session
}

// NewPartnershipRequestRepository is the constructor for partnershipRequestRepository.
func NewPartnershipRequestRepository(client *firestore.Client) repository.PartnershipRequestRepository {
	return &partnershipRequestRepository{s: newSession(client)}
}

func (repo *partnershipRequestRepository) ref(id uuid.UUID) *firestore.DocumentRef {
	return repo.s.collection(requestsCollection).Doc(id.String())
}

// CreateRequest persists a new request record.
func (repo *partnershipRequestRepository) CreateRequest(ctx context.Context, request *entity.PartnershipRequest) error {
	stampCreated(&request.CreatedAt, &request.UpdatedAt)
	doc := fromRequestDomain(request)

	return repo.s.atomic(ctx, "failed to create partnership request", func(tx *session) error {
		return putDoc(tx, repo.ref(request.ID), doc)
	})
}

// FindRequestByID retrieves a request by its unique ID.
func (repo *partnershipRequestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.PartnershipRequest, error) {
	doc, found, err := getDoc[requestDoc](ctx, repo.s, repo.ref(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrPartnershipRequestNotFound
	}

	return toRequestDomain(doc), nil
}

// FindLatestRequestForPair retrieves the pair's most recently created request. The user's requests are
// few, so the business filter and ordering run here instead of needing a composite index.
func (repo *partnershipRequestRepository) FindLatestRequestForPair(ctx context.Context, userID uuid.UUID, businessRefID string) (*entity.PartnershipRequest, error) {
	query := repo.s.collection(requestsCollection).Where("account_key", "array-contains", entity.UserAccountRef(userID))
	requests, err := repo.find(ctx, query, "failed to find latest partnership request for pair")
	if err != nil {
		return nil, err
	}

	var latest *entity.PartnershipRequest
	for _, request := range requests {
		if !request.BelongsTo(userID, businessRefID) {
			continue
		}
		if latest == nil || newerRequest(request, latest) {
			latest = request
		}
	}
	if latest == nil {
		return nil, repository.ErrPartnershipRequestNotFound
	}

	return latest, nil
}

// FindRequestsByAccountRef lists the requests whose account key names the account, newest first.
func (repo *partnershipRequestRepository) FindRequestsByAccountRef(ctx context.Context, accountRef string) ([]*entity.PartnershipRequest, error) {
	if _, _, ok := entity.ParseAccountRef(accountRef); !ok {
		return []*entity.PartnershipRequest{}, nil
	}

	query := repo.s.collection(requestsCollection).Where("account_key", "array-contains", accountRef)
	requests, err := repo.find(ctx, query, "failed to find partnership requests by account")
	if err != nil {
		return nil, err
	}

	// Sorted here so the lookup needs no composite index.
	slices.SortFunc(requests, func(a, b *entity.PartnershipRequest) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.ID.String(), a.ID.String())
	})

	return requests, nil
}

// UpdateRequestStatus moves a request from one status to another inside a transaction.
func (repo *partnershipRequestRepository) UpdateRequestStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to entity.PartnershipStatus,
	at time.Time,
) error {
	return repo.s.atomic(ctx, "failed to update partnership request status", func(tx *session) error {
		ref := repo.ref(id)
		doc, found, err := getDoc[requestDoc](ctx, tx, ref)
		if err != nil {
			return err
		}
		if !found {
			return repository.ErrPartnershipRequestNotFound
		}
		if doc.Status != from.String() {
			return repository.ErrStatusMismatch
		}

		doc.Status = to.String()
		doc.UpdatedAt = at

		return putDoc(tx, ref, doc)
	})
}

// FindRequestsUpdatedSince lists requests changed at or after since, oldest change first.
func (repo *partnershipRequestRepository) FindRequestsUpdatedSince(ctx context.Context, since time.Time, limit int) ([]*entity.PartnershipRequest, error) {
	query := repo.s.collection(requestsCollection).
		Where("updated_at", ">=", since).
		OrderBy("updated_at", firestore.Asc).
		OrderBy(firestore.DocumentID, firestore.Asc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	return repo.find(ctx, query, "failed to find partnership requests updated since")
}

func newerRequest(a, b *entity.PartnershipRequest) bool {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c > 0
	}

	return a.ID.String() > b.ID.String()
}

func (repo *partnershipRequestRepository) find(ctx context.Context, query firestore.Query, details string) ([]*entity.PartnershipRequest, error) {
	snaps, err := repo.s.query(ctx, query, details)
	if err != nil {
		return nil, err
	}

	docs, err := decodeAll[requestDoc](snaps)
	if err != nil {
		return nil, err
	}

	requests := make([]*entity.PartnershipRequest, 0, len(docs))
	for _, doc := range docs {
		requests = append(requests, toRequestDomain(doc))
	}

	return requests, nil
}
