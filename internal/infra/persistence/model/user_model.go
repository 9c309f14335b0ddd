package model

import (
	"time"

	"localdrop/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. The partner list is embedded as JSONB and the email carries a
// unique index.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                uuid.UUID                                       `gorm:"type:uuid;primaryKey"`
	Email             string                                          `gorm:"type:varchar(255);uniqueIndex;not null"`
	DisplayName       string                                          `gorm:"type:varchar(100);not null"`
	PartnerBusinesses datatypes.JSONSlice[entity.UserPartnerBusiness] `gorm:"type:jsonb;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
