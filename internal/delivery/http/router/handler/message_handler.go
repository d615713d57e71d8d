package handler

import (
	"net/http"

	"conectone/internal/delivery/http/middleware"
	"conectone/internal/delivery/http/response"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for the direct messaging handlers.
type MessageHandler struct {
	uc usecase.MessageUsecase
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

type sendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipientId" validate:"required"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body" validate:"required"`
}

// Send delivers a message from the authenticated user.
func (h *MessageHandler) Send(c echo.Context) error {
	senderID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.uc.SendMessage(c.Request().Context(), &usecase.SendMessageInput{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, message, "Message sent")
}

// Get retrieves a message for the authenticated sender or recipient.
func (h *MessageHandler) Get(c echo.Context) error {
	requesterID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	message, err := h.uc.GetMessage(c.Request().Context(), id, requesterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, message)
}

// Inbox retrieves a page of messages received by the authenticated user.
func (h *MessageHandler) Inbox(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	page, err := h.uc.ListInbox(c.Request().Context(), userID, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page)
}

// Outbox retrieves a page of messages sent by the authenticated user.
func (h *MessageHandler) Outbox(c echo.Context) error {
	userID, ok := middleware.CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	page, err := h.uc.ListOutbox(c.Request().Context(), userID, pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paged(c, page)
}

// MarkRead marks a message as read.
func (h *MessageHandler) MarkRead(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Message marked as read")
}

// CountUnread returns the number of unread messages for the caller.
func (h *MessageHandler) CountUnread(c echo.Context) error {
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

// Delete removes a message.
func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMessage(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Message deleted")
}
