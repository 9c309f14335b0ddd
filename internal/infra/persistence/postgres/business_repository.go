package postgres

import (
	"context"
	"slices"
	"time"

	"localdrop/internal/domain/entity"
	"localdrop/internal/domain/partnership"
	"localdrop/internal/domain/repository"
	"localdrop/internal/errors"
	"localdrop/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// lockForUpdate selects rows with SELECT ... FOR UPDATE.
var lockForUpdate = clause.Locking{Strength: "UPDATE"}

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// CreateBusiness persists a new business keyed by its identifier.
func (repo *businessRepository) CreateBusiness(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBusiness
		}

		return storageError(err, "failed to create business")
	}

	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindBusinessByID retrieves a business by its identifier.
func (repo *businessRepository) FindBusinessByID(ctx context.Context, id string) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, storageError(err, "failed to find business by ID")
	}

	return toBusinessDomain(&businessM), nil
}

// FindBusinessesWithinBounds runs the broad-phase range query on the read replicas. A box crossing
// the antimeridian is split into two longitude ranges.
func (repo *businessRepository) FindBusinessesWithinBounds(ctx context.Context, box entity.BoundingBox) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	ranges := box.LongitudeRanges()
	longitude := repo.db.Where("longitude BETWEEN ? AND ?", ranges[0][0], ranges[0][1])
	for _, r := range ranges[1:] {
		longitude = longitude.Or("longitude BETWEEN ? AND ?", r[0], r[1])
	}

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("latitude BETWEEN ? AND ?", box.SouthwestCorner.Latitude, box.NortheastCorner.Latitude).
		Where(longitude).
		Order("id").
		Find(&businessModels).Error; err != nil {
		return nil, storageError(err, "failed to find businesses within bounds")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

// UpdateBusinessProfile writes only the provided columns. The partners column is never part of it.
func (repo *businessRepository) UpdateBusinessProfile(ctx context.Context, id string, update *entity.BusinessProfileUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Updates(profileColumns(update))

	if result.Error != nil {
		return storageError(result.Error, "failed to update business profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// UpsertPartner locks the business row and rewrites its partner list with the entry upserted.
func (repo *businessRepository) UpsertPartner(ctx context.Context, businessID string, entry entity.BusinessPartner) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var businessM model.BusinessModel
		if err := tx.Clauses(lockForUpdate).
			Where("id = ?", businessID).
			First(&businessM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrBusinessNotFound
			}

			return storageError(err, "failed to lock business")
		}

		partners := partnership.UpsertBusinessPartner(businessM.Partners, entry)
		if err := tx.Model(&businessM).
			Update("partners", datatypes.NewJSONSlice(partners)).Error; err != nil {
			return storageError(err, "failed to upsert business partner")
		}

		return nil
	})
}

func profileColumns(update *entity.BusinessProfileUpdate) map[string]any {
	columns := make(map[string]any)

	if update.DisplayName != nil {
		columns["display_name"] = *update.DisplayName
	}
	if update.BusinessType != nil {
		columns["business_type"] = *update.BusinessType
	}
	if update.Location != nil {
		columns["latitude"] = update.Location.GeoPoint.Latitude
		columns["longitude"] = update.Location.GeoPoint.Longitude
		columns["postal_code"] = update.Location.PostalCode
	}
	if update.IsOpen != nil {
		columns["is_open"] = *update.IsOpen
	}
	if update.DeliveryRangeMeters != nil {
		columns["delivery_range_meters"] = *update.DeliveryRangeMeters
	}
	if update.PassiveOpenEnabled != nil {
		columns["passive_open_enabled"] = *update.PassiveOpenEnabled
	}
	if update.OpeningTime != nil {
		columns["opening_time"] = datatypes.NewJSONType(*update.OpeningTime)
	}
	if update.ClosingTime != nil {
		columns["closing_time"] = datatypes.NewJSONType(*update.ClosingTime)
	}
	if update.OpeningDays != nil {
		columns["opening_days"] = datatypes.NewJSONSlice(nonNil(*update.OpeningDays))
	}

	return columns
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:           data.ID,
		DisplayName:  data.DisplayName,
		BusinessType: data.BusinessType,
		Location: entity.BusinessLocation{
			GeoPoint:   entity.GeoPoint{Latitude: data.Latitude, Longitude: data.Longitude},
			PostalCode: data.PostalCode,
		},
		IsOpen:              data.IsOpen,
		DeliveryRangeMeters: data.DeliveryRangeMeters,
		PassiveOpenEnabled:  data.PassiveOpenEnabled,
		OpeningTime:         data.OpeningTime.Data(),
		ClosingTime:         data.ClosingTime.Data(),
		OpeningDays:         slices.Clone([]time.Weekday(data.OpeningDays)),
		Partners:            nonNil(slices.Clone([]entity.BusinessPartner(data.Partners))),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:                  data.ID,
		DisplayName:         data.DisplayName,
		BusinessType:        data.BusinessType,
		Latitude:            data.Location.GeoPoint.Latitude,
		Longitude:           data.Location.GeoPoint.Longitude,
		PostalCode:          data.Location.PostalCode,
		IsOpen:              data.IsOpen,
		DeliveryRangeMeters: data.DeliveryRangeMeters,
		PassiveOpenEnabled:  data.PassiveOpenEnabled,
		OpeningTime:         datatypes.NewJSONType(data.OpeningTime),
		ClosingTime:         datatypes.NewJSONType(data.ClosingTime),
		OpeningDays:         datatypes.NewJSONSlice(nonNil(data.OpeningDays)),
		Partners:            datatypes.NewJSONSlice(nonNil(data.Partners)),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// nonNil keeps JSONB columns as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
