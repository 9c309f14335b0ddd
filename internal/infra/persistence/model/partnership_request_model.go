package model

import (
	"time"

	"localdrop/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PartnershipRequestModel mirrors the 'partnership_requests' table. The pair columns are denormalized
// out of the snapshots so account lookups use plain indexes.
type PartnershipRequestModel struct {
	ID               uuid.UUID                                   `gorm:"type:uuid;primaryKey"`
	BusinessRefID    string                                      `gorm:"type:varchar(128);not null;index"`
	UserID           uuid.UUID                                   `gorm:"type:uuid;not null;index"`
	AccountKey       datatypes.JSONSlice[string]                 `gorm:"type:jsonb;not null"`
	BusinessSnapshot datatypes.JSONType[entity.BusinessSnapshot] `gorm:"type:jsonb;not null"`
	UserSnapshot     datatypes.JSONType[entity.UserSnapshot]     `gorm:"type:jsonb;not null"`
	Status           string                                      `gorm:"type:varchar(20);not null"`
	Type             int                                         `gorm:"not null;default:1"`
	CreatedAt        time.Time                                   `gorm:"not null"`
	UpdatedAt        time.Time                                   `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PartnershipRequestModel) TableName() string {
	return "partnership_requests"
}
