package firestore

import (
	"net/url"
	"strings"
	"time"

	"localdrop/internal/domain/entity"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/type/latlng"
)

type operatingTimeDoc struct {
	Hour              int `firestore:"hour"`
	Minute            int `firestore:"minute"`
	ZoneOffsetMinutes int `firestore:"zone_offset_minutes"`
}

type businessPartnerDoc struct {
	UserID string `firestore:"user_id"`
	Status string `firestore:"status"`
}

// businessDoc is stored under businesses/{id}. geo_point is indexed for the latitude band query.
type businessDoc struct {
	ID                  string               `firestore:"id"`
	DisplayName         string               `firestore:"display_name"`
	BusinessType        string               `firestore:"business_type"`
	GeoPoint            *latlng.LatLng       `firestore:"geo_point"`
	PostalCode          string               `firestore:"postal_code"`
	IsOpen              *bool                `firestore:"is_open"`
	DeliveryRangeMeters *float64             `firestore:"delivery_range_meters"`
	PassiveOpenEnabled  *bool                `firestore:"passive_open_enabled"`
	OpeningTime         operatingTimeDoc     `firestore:"opening_time"`
	ClosingTime         operatingTimeDoc     `firestore:"closing_time"`
	OpeningDays         []int                `firestore:"opening_days"`
	Partners            []businessPartnerDoc `firestore:"partners"`
	CreatedAt           time.Time            `firestore:"created_at"`
	UpdatedAt           time.Time            `firestore:"updated_at"`
}

type userPartnerDoc struct {
	BusinessRefID string `firestore:"business_ref_id"`
	Status        string `firestore:"status"`
}

// userDoc is stored under users/{id}.
type userDoc struct {
	ID                string           `firestore:"id"`
	Email             string           `firestore:"email"`
	DisplayName       string           `firestore:"display_name"`
	PartnerBusinesses []userPartnerDoc `firestore:"partner_businesses"`
	CreatedAt         time.Time        `firestore:"created_at"`
	UpdatedAt         time.Time        `firestore:"updated_at"`
}

// emailClaimDoc reserves an email address for one user. It is written in the same transaction as the
// user, which makes email uniqueness hold without a unique index.
type emailClaimDoc struct {
	UserID string `firestore:"user_id"`
}

type businessSnapshotDoc struct {
	ID          string `firestore:"id"`
	DisplayName string `firestore:"display_name"`
	PostalCode  string `firestore:"postal_code"`
}

type userSnapshotDoc struct {
	ID          string `firestore:"id"`
	DisplayName string `firestore:"display_name"`
	Email       string `firestore:"email"`
}

// requestDoc is stored under partnership_requests/{id}. account_key backs the array-contains lookup
// by either party.
type requestDoc struct {
	ID               string              `firestore:"id"`
	AccountKey       []string            `firestore:"account_key"`
	BusinessSnapshot businessSnapshotDoc `firestore:"business_snapshot"`
	UserSnapshot     userSnapshotDoc     `firestore:"user_snapshot"`
	Status           string              `firestore:"status"`
	Type             int                 `firestore:"type"`
	CreatedAt        time.Time           `firestore:"created_at"`
	UpdatedAt        time.Time           `firestore:"updated_at"`
}

// deviceDoc is stored under account_devices/{id}.
type deviceDoc struct {
	ID         string    `firestore:"id"`
	AccountRef string    `firestore:"account_ref"`
	FCMToken   string    `firestore:"fcm_token"`
	DeviceID   string    `firestore:"device_id"`
	Platform   string    `firestore:"platform"`
	IsActive   bool      `firestore:"is_active"`
	CreatedAt  time.Time `firestore:"created_at"`
	UpdatedAt  time.Time `firestore:"updated_at"`
}

// emailClaimID turns an address into a document ID. Case and surrounding space do not make a new
// claim, and the escaping keeps "/" out of the ID.
func emailClaimID(email string) string {
	return url.PathEscape(strings.ToLower(strings.TrimSpace(email)))
}

// parseUUID reads an identifier written by this package. A corrupt value decodes as uuid.Nil.
func parseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}

// --- Mapper Functions ---

func toOperatingTime(doc operatingTimeDoc) entity.OperatingTime {
	return entity.OperatingTime{Hour: doc.Hour, Minute: doc.Minute, ZoneOffsetMinutes: doc.ZoneOffsetMinutes}
}

func fromOperatingTime(t entity.OperatingTime) operatingTimeDoc {
	return operatingTimeDoc{Hour: t.Hour, Minute: t.Minute, ZoneOffsetMinutes: t.ZoneOffsetMinutes}
}

func toBusinessDomain(doc *businessDoc) *entity.Business {
	business := &entity.Business{
		ID:                  doc.ID,
		DisplayName:         doc.DisplayName,
		BusinessType:        doc.BusinessType,
		Location:            entity.BusinessLocation{PostalCode: doc.PostalCode},
		IsOpen:              doc.IsOpen,
		DeliveryRangeMeters: doc.DeliveryRangeMeters,
		PassiveOpenEnabled:  doc.PassiveOpenEnabled,
		OpeningTime:         toOperatingTime(doc.OpeningTime),
		ClosingTime:         toOperatingTime(doc.ClosingTime),
		OpeningDays:         make([]time.Weekday, 0, len(doc.OpeningDays)),
		Partners:            make([]entity.BusinessPartner, 0, len(doc.Partners)),
		CreatedAt:           doc.CreatedAt,
		UpdatedAt:           doc.UpdatedAt,
	}
	if doc.GeoPoint != nil {
		business.Location.GeoPoint = entity.GeoPoint{Latitude: doc.GeoPoint.GetLatitude(), Longitude: doc.GeoPoint.GetLongitude()}
	}
	for _, day := range doc.OpeningDays {
		business.OpeningDays = append(business.OpeningDays, time.Weekday(day))
	}
	for _, partner := range doc.Partners {
		business.Partners = append(business.Partners, entity.BusinessPartner{
			UserID: parseUUID(partner.UserID),
			Status: entity.PartnershipStatus(partner.Status),
		})
	}

	return business
}

func fromBusinessDomain(business *entity.Business) *businessDoc {
	doc := &businessDoc{
		ID:           business.ID,
		DisplayName:  business.DisplayName,
		BusinessType: business.BusinessType,
		GeoPoint: &latlng.LatLng{
			Latitude:  business.Location.GeoPoint.Latitude,
			Longitude: business.Location.GeoPoint.Longitude,
		},
		PostalCode:          business.Location.PostalCode,
		IsOpen:              business.IsOpen,
		DeliveryRangeMeters: business.DeliveryRangeMeters,
		PassiveOpenEnabled:  business.PassiveOpenEnabled,
		OpeningTime:         fromOperatingTime(business.OpeningTime),
		ClosingTime:         fromOperatingTime(business.ClosingTime),
		OpeningDays:         make([]int, 0, len(business.OpeningDays)),
		Partners:            make([]businessPartnerDoc, 0, len(business.Partners)),
		CreatedAt:           business.CreatedAt,
		UpdatedAt:           business.UpdatedAt,
	}
	for _, day := range business.OpeningDays {
		doc.OpeningDays = append(doc.OpeningDays, int(day))
	}
	for _, partner := range business.Partners {
		doc.Partners = append(doc.Partners, businessPartnerDoc{
			UserID: partner.UserID.String(),
			Status: partner.Status.String(),
		})
	}

	return doc
}

func toUserDomain(doc *userDoc) *entity.User {
	user := &entity.User{
		ID:                parseUUID(doc.ID),
		Email:             doc.Email,
		DisplayName:       doc.DisplayName,
		PartnerBusinesses: make([]entity.UserPartnerBusiness, 0, len(doc.PartnerBusinesses)),
		CreatedAt:         doc.CreatedAt,
		UpdatedAt:         doc.UpdatedAt,
	}
	for _, entry := range doc.PartnerBusinesses {
		user.PartnerBusinesses = append(user.PartnerBusinesses, entity.UserPartnerBusiness{
			BusinessRefID: entry.BusinessRefID,
			Status:        entity.PartnershipStatus(entry.Status),
		})
	}

	return user
}

func fromUserDomain(user *entity.User) *userDoc {
	doc := &userDoc{
		ID:                user.ID.String(),
		Email:             user.Email,
		DisplayName:       user.DisplayName,
		PartnerBusinesses: make([]userPartnerDoc, 0, len(user.PartnerBusinesses)),
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
	for _, entry := range user.PartnerBusinesses {
		doc.PartnerBusinesses = append(doc.PartnerBusinesses, userPartnerDoc{
			BusinessRefID: entry.BusinessRefID,
			Status:        entry.Status.String(),
		})
	}

	return doc
}

func toRequestDomain(doc *requestDoc) *entity.PartnershipRequest {
	return &entity.PartnershipRequest{
		ID:         parseUUID(doc.ID),
		AccountKey: append([]string(nil), doc.AccountKey...),
		BusinessSnapshot: entity.BusinessSnapshot{
			ID:          doc.BusinessSnapshot.ID,
			DisplayName: doc.BusinessSnapshot.DisplayName,
			PostalCode:  doc.BusinessSnapshot.PostalCode,
		},
		UserSnapshot: entity.UserSnapshot{
			ID:          parseUUID(doc.UserSnapshot.ID),
			DisplayName: doc.UserSnapshot.DisplayName,
			Email:       doc.UserSnapshot.Email,
		},
		Status:    entity.PartnershipStatus(doc.Status),
		Type:      doc.Type,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func fromRequestDomain(request *entity.PartnershipRequest) *requestDoc {
	return &requestDoc{
		ID:         request.ID.String(),
		AccountKey: append([]string(nil), request.AccountKey...),
		BusinessSnapshot: businessSnapshotDoc{
			ID:          request.BusinessSnapshot.ID,
			DisplayName: request.BusinessSnapshot.DisplayName,
			PostalCode:  request.BusinessSnapshot.PostalCode,
		},
		UserSnapshot: userSnapshotDoc{
			ID:          request.UserSnapshot.ID.String(),
			DisplayName: request.UserSnapshot.DisplayName,
			Email:       request.UserSnapshot.Email,
		},
		Status:    request.Status.String(),
		Type:      request.Type,
		CreatedAt: request.CreatedAt,
		UpdatedAt: request.UpdatedAt,
	}
}

func toDeviceDomain(doc *deviceDoc) *entity.AccountDevice {
	return &entity.AccountDevice{
		ID:         parseUUID(doc.ID),
		AccountRef: doc.AccountRef,
		FCMToken:   doc.FCMToken,
		DeviceID:   doc.DeviceID,
		Platform:   doc.Platform,
		IsActive:   doc.IsActive,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

func fromDeviceDomain(device *entity.AccountDevice) *deviceDoc {
	return &deviceDoc{
		ID:         device.ID.String(),
		AccountRef: device.AccountRef,
		FCMToken:   device.FCMToken,
		DeviceID:   device.DeviceID,
		Platform:   device.Platform,
		IsActive:   device.IsActive,
		CreatedAt:  device.CreatedAt,
		UpdatedAt:  device.UpdatedAt,
	}
}
