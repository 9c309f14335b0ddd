package model

import (
	"time"

	"localdrop/internal/domain/entity"

	"gorm.io/datatypes"
)

// BusinessModel mirrors the 'businesses' table. The business-chosen ID is the primary key and the
// partner list is embedded as JSONB so it is read and written with the row.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type BusinessModel struct {
	ID                  string  `gorm:"type:varchar(128);primaryKey"`
	DisplayName         string  `gorm:"type:varchar(255);not null"`
	BusinessType        string  `gorm:"type:varchar(100)"`
	Latitude            float64 `gorm:"not null;index:idx_businesses_lat_lng,priority:1"`
	Longitude           float64 `gorm:"not null;index:idx_businesses_lat_lng,priority:2"`
	PostalCode          string  `gorm:"type:varchar(20)"`
	IsOpen              *bool
	DeliveryRangeMeters *float64
	PassiveOpenEnabled  *bool
	OpeningTime         datatypes.JSONType[entity.OperatingTime]    `gorm:"type:jsonb;not null"`
	ClosingTime         datatypes.JSONType[entity.OperatingTime]    `gorm:"type:jsonb;not null"`
	OpeningDays         datatypes.JSONSlice[time.Weekday]           `gorm:"type:jsonb;not null"`
	Partners            datatypes.JSONSlice[entity.BusinessPartner] `gorm:"type:jsonb;not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
