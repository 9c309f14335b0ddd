package postgres

import (
	"context"
	"slices"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/repository"
	"localdrop/internal/errors"
	"localdrop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// partnershipRequestRepository implements the repository.PartnershipRequestRepository interface.
type partnershipRequestRepository struct {
	db *gorm.DB
}

// NewPartnershipRequestRepository is the constructor for partnershipRequestRepository.
func NewPartnershipRequestRepository(db *gorm.DB) repository.PartnershipRequestRepository {
	return &partnershipRequestRepository{
		db: db,
	}
}

// CreateRequest persists a new request record.
func (repo *partnershipRequestRepository) CreateRequest(ctx context.Context, request *entity.PartnershipRequest) error {
	if err := repo.db.WithContext(ctx).Create(fromRequestDomain(request)).Error; err != nil {
		return storageError(err, "failed to create partnership request")
	}

	return nil
}

// FindRequestByID retrieves a request by its ID.
func (repo *partnershipRequestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.PartnershipRequest, error) {
	var requestM model.PartnershipRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnershipRequestNotFound
		}

		return nil, storageError(err, "failed to find partnership request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// FindLatestRequestForPair retrieves the pair's most recently created request.
func (repo *partnershipRequestRepository) FindLatestRequestForPair(ctx context.Context, userID uuid.UUID, businessRefID string) (*entity.PartnershipRequest, error) {
	var requestM model.PartnershipRequestModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND business_ref_id = ?", userID, businessRefID).
		Order("created_at DESC").
		Order("id DESC").
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnershipRequestNotFound
		}

		return nil, storageError(err, "failed to find latest partnership request for pair")
	}

	return toRequestDomain(&requestM), nil
}

// FindRequestsByAccountRef lists the requests naming the account on either side, newest first.
func (repo *partnershipRequestRepository) FindRequestsByAccountRef(ctx context.Context, accountRef string) ([]*entity.PartnershipRequest, error) {
	role, id, ok := entity.ParseAccountRef(accountRef)
	if !ok {
		return []*entity.PartnershipRequest{}, nil
	}

	query := repo.db.WithContext(ctx)
	switch role {
	case entity.RoleOSB:
		query = query.Where("business_ref_id = ?", id)
	case entity.RoleOSD:
		userID, err := uuid.Parse(id)
		if err != nil {
			return []*entity.PartnershipRequest{}, nil
		}
		query = query.Where("user_id = ?", userID)
	}

	var requestModels []*model.PartnershipRequestModel
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&requestModels).Error; err != nil {
		return nil, storageError(err, "failed to find partnership requests by account")
	}

	return toRequestsDomain(requestModels), nil
}

// UpdateRequestStatus moves a request from one status to another in a single conditional UPDATE.
func (repo *partnershipRequestRepository) UpdateRequestStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to entity.PartnershipStatus,
	at time.Time,
) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PartnershipRequestModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		UpdateColumns(map[string]any{
			"status":     to.String(),
			"updated_at": at,
		})

	if result.Error != nil {
		return storageError(result.Error, "failed to update partnership request status")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	// Nothing matched: tell a missing record apart from a lost race.
	if _, err := repo.FindRequestByID(ctx, id); err != nil {
		return err
	}

	return repository.ErrStatusMismatch
}

// FindRequestsUpdatedSince lists requests changed at or after since, oldest change first.
func (repo *partnershipRequestRepository) FindRequestsUpdatedSince(ctx context.Context, since time.Time, limit int) ([]*entity.PartnershipRequest, error) {
	query := repo.db.WithContext(ctx).
		Where("updated_at >= ?", since).
		Order("updated_at ASC").
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var requestModels []*model.PartnershipRequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, storageError(err, "failed to find partnership requests updated since")
	}

	return toRequestsDomain(requestModels), nil
}

// --- Mapper Functions ---

func toRequestsDomain(models []*model.PartnershipRequestModel) []*entity.PartnershipRequest {
	requests := make([]*entity.PartnershipRequest, 0, len(models))
	for _, requestM := range models {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests
}

// toRequestDomain converts a GORM PartnershipRequestModel to a domain PartnershipRequest entity.
func toRequestDomain(data *model.PartnershipRequestModel) *entity.PartnershipRequest {
	if data == nil {
		return nil
	}

	return &entity.PartnershipRequest{
		ID:               data.ID,
		AccountKey:       slices.Clone([]string(data.AccountKey)),
		BusinessSnapshot: data.BusinessSnapshot.Data(),
		UserSnapshot:     data.UserSnapshot.Data(),
		Status:           entity.PartnershipStatus(data.Status),
		Type:             data.Type,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromRequestDomain converts a domain PartnershipRequest entity to a GORM PartnershipRequestModel.
func fromRequestDomain(data *entity.PartnershipRequest) *model.PartnershipRequestModel {
	if data == nil {
		return nil
	}

	return &model.PartnershipRequestModel{
		ID:               data.ID,
		BusinessRefID:    data.BusinessRefID(),
		UserID:           data.UserID(),
		AccountKey:       datatypes.NewJSONSlice(nonNil(data.AccountKey)),
		BusinessSnapshot: datatypes.NewJSONType(data.BusinessSnapshot),
		UserSnapshot:     datatypes.NewJSONType(data.UserSnapshot),
		Status:           data.Status.String(),
		Type:             data.Type,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
