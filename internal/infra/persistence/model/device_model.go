package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountDeviceModel is the GORM-specific struct for the 'account_devices' table.
// It represents a device registered for push notifications on behalf of an account.
type AccountDeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountRef string    `gorm:"type:varchar(200);not null;index"`
	FCMToken   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_account_devices_fcm_token,where:deleted_at IS NULL"`
	DeviceID   string    `gorm:"type:varchar(255);not null"`
	Platform   string    `gorm:"type:varchar(50);not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AccountDeviceModel) TableName() string {
	return "account_devices"
}
