package handler

import (
	"net/http"

	"conectone/internal/delivery/http/middleware"
	"conectone/internal/delivery/http/response"
	"conectone/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for the notification read handlers
// and push device registration.
type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

type registerDeviceRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	DeviceID string `json:"deviceId" validate:"required"`
	Platform string `json:"platform" validate:"required"`
}

// List retrieves a page of the authenticated user's notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	page, err := h.uc.ListNotifications(c.Request().Context(), userID, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page)
}

// MarkRead marks a notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Notification marked as read")
}

// CountUnread returns the number of unread notifications for the caller.
func (h *NotificationHandler) CountUnread(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	count, err := h.uc.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]int64{"unread": count})
}

// RegisterDevice registers or refreshes a push device for the caller.
func (h *NotificationHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, device, "Device registered")
}
