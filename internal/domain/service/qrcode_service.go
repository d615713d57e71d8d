package service

import "github.com/google/uuid"

// QRCodeService defines the interface for affiliate referral QR codes.
type QRCodeService interface {
	// GenerateReferralQR renders a PNG QR code for an affiliate's referral link.
	GenerateReferralQR(affiliateID uuid.UUID, code string) ([]byte, error)

	// ParseReferralQR decodes scanned QR payload back to the affiliate ID.
	ParseReferralQR(qrData string) (uuid.UUID, error)
}
