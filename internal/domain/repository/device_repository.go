package repository

import (
	"context"

	"conectone/internal/domain/entity"
	"conectone/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for push-device operations.
type DeviceRepository interface {
	// CreateDevice persists a new device registration.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDevicesByUser retrieves all active devices for a user.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindDevicesForUsers retrieves all active devices for a list of user IDs.
	// Used for batch fetching devices when fanning out notifications.
	FindDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken updates the push token for an existing device.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error

	// DeactivateByTokens deactivates all devices carrying one of the given
	// tokens. Used when the push provider reports tokens as invalid.
	DeactivateByTokens(ctx context.Context, tokens []string) error
}
