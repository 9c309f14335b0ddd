package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"localdrop/config"
	"localdrop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	partnerInviteType = "partner_invite"
	businessRefParam  = "business_ref"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// QRCodeData represents the JSON payload of a partner invite
type QRCodeData struct {
	BusinessRef string `json:"business_ref"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance. When a base URL is configured the
// code carries a link to it; otherwise it carries the JSON payload.
func NewQRCodeService(cfg *config.QRCodeConfig) (service.QRCodeService, error) {
	if cfg == nil {
		cfg = &config.QRCodeConfig{}
	}

	svc := &qrcodeService{
		size:                 cfg.Size,
		errorCorrectionLevel: parseRecoveryLevel(cfg.ErrorCorrectionLevel),
	}
	if svc.size <= 0 {
		svc.size = defaultSize
	}

	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil || base.Scheme == "" || base.Host == "" {
			return nil, errors.Errorf("invalid qrcode base URL: %q", cfg.BaseURL)
		}
		svc.baseURL = base
	}

	return svc, nil
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePartnerInviteQR generates a PNG QR code inviting delivery agents to partner with a business
func (s *qrcodeService) GeneratePartnerInviteQR(businessRefID string) ([]byte, error) {
	if businessRefID == "" {
		return nil, errors.New("business reference is required")
	}

	content, err := s.encode(businessRefID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) encode(businessRefID string) (string, error) {
	if s.baseURL != nil {
		link := *s.baseURL
		query := link.Query()
		query.Set(businessRefParam, businessRefID)
		link.RawQuery = query.Encode()

		return link.String(), nil
	}

	jsonData, err := json.Marshal(QRCodeData{BusinessRef: businessRefID, Type: partnerInviteType})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

// ParsePartnerInviteQR parses scanned QR data, in either link or JSON form, and returns the business identifier
func (s *qrcodeService) ParsePartnerInviteQR(qrData string) (string, error) {
	qrData = strings.TrimSpace(qrData)

	if strings.HasPrefix(qrData, "{") {
		var data QRCodeData
		if err := json.Unmarshal([]byte(qrData), &data); err != nil {
			return "", errors.Wrap(err, "failed to unmarshal QR code data")
		}

		if data.Type != partnerInviteType {
			return "", errors.Errorf("invalid QR code type: %s", data.Type)
		}

		if data.BusinessRef == "" {
			return "", errors.New("QR code has no business reference")
		}

		return data.BusinessRef, nil
	}

	link, err := url.Parse(qrData)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code link")
	}

	if s.baseURL != nil && (link.Host != s.baseURL.Host || link.Path != s.baseURL.Path) {
		return "", errors.Errorf("QR code link points to %s", link.Host+link.Path)
	}

	businessRef := link.Query().Get(businessRefParam)
	if businessRef == "" {
		return "", errors.New("QR code has no business reference")
	}

	return businessRef, nil
}
