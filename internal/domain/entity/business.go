package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// BusinessLocation is where a business operates from.
type BusinessLocation struct {
	GeoPoint   GeoPoint `json:"geo_point"`   // Coordinates of the storefront.
	PostalCode string   `json:"postal_code"` // Postal code, checked against launch regions.
}

// BusinessPartner is a delivery agent's entry in a business's partner list.
type BusinessPartner struct {
	UserID uuid.UUID         `json:"user_id"` // The delivery agent.
	Status PartnershipStatus `json:"status"`  // Relationship status from the business side.
}

// Business is the OSB aggregate. Its ID is chosen by the business and is the natural primary key.
type Business struct {
	ID                  string            `json:"id"`                              // Human-chosen unique identifier.
	DisplayName         string            `json:"display_name"`                    // Name shown to customers and partners.
	BusinessType        string            `json:"business_type"`                   // Entry of the business-type taxonomy.
	Location            BusinessLocation  `json:"location"`                        // Storefront location.
	IsOpen              *bool             `json:"is_open,omitempty"`               // Manual open switch, nil means open.
	DeliveryRangeMeters *float64          `json:"delivery_range_meters,omitempty"` // Own delivery radius, nil means unbounded.
	PassiveOpenEnabled  *bool             `json:"passive_open_enabled,omitempty"`  // Accepts orders while closed, nil means enabled.
	OpeningTime         OperatingTime     `json:"opening_time"`                    // Daily opening time.
	ClosingTime         OperatingTime     `json:"closing_time"`                    // Daily closing time, may be past midnight.
	OpeningDays         []time.Weekday    `json:"opening_days"`                    // Weekdays the business opens, empty means every day.
	Partners            []BusinessPartner `json:"partners"`                        // Accepted delivery partners, in insertion order.
	CreatedAt           time.Time         `json:"created_at"`                      // Timestamp of creation.
	UpdatedAt           time.Time         `json:"updated_at"`                      // Timestamp of the last modification.
}

// OpenFlag resolves IsOpen with its default.
func (b *Business) OpenFlag() bool {
	return b.IsOpen == nil || *b.IsOpen
}

// PassiveOpen resolves PassiveOpenEnabled with its default.
func (b *Business) PassiveOpen() bool {
	return b.PassiveOpenEnabled == nil || *b.PassiveOpenEnabled
}

// OpensOn reports whether the business opens on the given weekday.
func (b *Business) OpensOn(day time.Weekday) bool {
	return len(b.OpeningDays) == 0 || slices.Contains(b.OpeningDays, day)
}

// View projects the business into its public shape.
func (b *Business) View(distanceMeters float64) *BusinessView {
	return &BusinessView{
		ID:                  b.ID,
		DisplayName:         b.DisplayName,
		BusinessType:        b.BusinessType,
		Location:            b.Location,
		IsOpen:              b.OpenFlag(),
		PassiveOpenEnabled:  b.PassiveOpen(),
		DeliveryRangeMeters: b.DeliveryRangeMeters,
		OpeningTime:         b.OpeningTime,
		ClosingTime:         b.ClosingTime,
		OpeningDays:         slices.Clone(b.OpeningDays),
		DistanceMeters:      distanceMeters,
	}
}

// BusinessView is the public projection of a Business. It omits the partner list and bookkeeping fields.
type BusinessView struct {
	ID                  string           `json:"id"`
	DisplayName         string           `json:"display_name"`
	BusinessType        string           `json:"business_type"`
	Location            BusinessLocation `json:"location"`
	IsOpen              bool             `json:"is_open"`
	PassiveOpenEnabled  bool             `json:"passive_open_enabled"`
	DeliveryRangeMeters *float64         `json:"delivery_range_meters,omitempty"`
	OpeningTime         OperatingTime    `json:"opening_time"`
	ClosingTime         OperatingTime    `json:"closing_time"`
	OpeningDays         []time.Weekday   `json:"opening_days"`
	DistanceMeters      float64          `json:"distance_meters"` // Great-circle distance to the requester; zero outside availability queries.
}

// BusinessProfileUpdate carries a partial update of the business profile. Nil fields are left untouched
// and the partner list is never part of a profile update.
type BusinessProfileUpdate struct {
	DisplayName         *string
	BusinessType        *string
	Location            *BusinessLocation
	IsOpen              *bool
	DeliveryRangeMeters *float64
	PassiveOpenEnabled  *bool
	OpeningTime         *OperatingTime
	ClosingTime         *OperatingTime
	OpeningDays         *[]time.Weekday
}

// IsEmpty reports whether the update changes nothing.
func (u *BusinessProfileUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.BusinessType == nil && u.Location == nil &&
		u.IsOpen == nil && u.DeliveryRangeMeters == nil && u.PassiveOpenEnabled == nil &&
		u.OpeningTime == nil && u.ClosingTime == nil && u.OpeningDays == nil
}

// ApplyProfileUpdate copies every field set in update onto the business. Partners are never touched.
func (b *Business) ApplyProfileUpdate(update *BusinessProfileUpdate) {
	if update.DisplayName != nil {
		b.DisplayName = *update.DisplayName
	}
	if update.BusinessType != nil {
		b.BusinessType = *update.BusinessType
	}
	if update.Location != nil {
		b.Location = *update.Location
	}
	if update.IsOpen != nil {
		v := *update.IsOpen
		b.IsOpen = &v
	}
	if update.DeliveryRangeMeters != nil {
		v := *update.DeliveryRangeMeters
		b.DeliveryRangeMeters = &v
	}
	if update.PassiveOpenEnabled != nil {
		v := *update.PassiveOpenEnabled
		b.PassiveOpenEnabled = &v
	}
	if update.OpeningTime != nil {
		b.OpeningTime = *update.OpeningTime
	}
	if update.ClosingTime != nil {
		b.ClosingTime = *update.ClosingTime
	}
	if update.OpeningDays != nil {
		b.OpeningDays = slices.Clone(*update.OpeningDays)
	}
}
