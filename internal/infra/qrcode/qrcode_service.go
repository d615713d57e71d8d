package qrcode

import (
	"encoding/json"
	"fmt"

	"conectone/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the referral QR code payload.
type QRCodeData struct {
	AffiliateID string `json:"affiliate_id"`
	Code        string `json:"code"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReferralQR renders a PNG QR code for an affiliate's referral link.
func (s *qrcodeService) GenerateReferralQR(affiliateID uuid.UUID, code string) ([]byte, error) {
	data := QRCodeData{
		AffiliateID: affiliateID.String(),
		Code:        code,
		Type:        "referral",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseReferralQR decodes a scanned QR payload back to the affiliate ID.
func (s *qrcodeService) ParseReferralQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "referral" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	affiliateID, err := uuid.Parse(data.AffiliateID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse affiliate ID: %w", err)
	}

	return affiliateID, nil
}
