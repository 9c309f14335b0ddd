package service

// QRCodeService defines the interface for partner invite QR code generation and parsing
type QRCodeService interface {
	// GeneratePartnerInviteQR generates a PNG QR code inviting delivery agents to partner with a business
	GeneratePartnerInviteQR(businessRefID string) ([]byte, error)

	// ParsePartnerInviteQR parses scanned QR data and returns the business identifier
	ParsePartnerInviteQR(qrData string) (string, error)
}
