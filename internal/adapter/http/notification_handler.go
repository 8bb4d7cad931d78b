package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanportal-backend/internal/usecase/notify"
)

type NotificationHandler struct{ uc *notify.Service }

func NewNotificationHandler(uc *notify.Service) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) List(c echo.Context) error {
	dto, err := h.uc.List(c.Request().Context(), actorID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id := c.Param("notification_id")
	if !reHex32.MatchString(id) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid notification_id"})
	}
	if err := h.uc.MarkRead(c.Request().Context(), id, actorID(c)); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, map[string]string{"notification_id": id})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.uc.MarkAllRead(c.Request().Context(), actorID(c)); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, map[string]string{"message": "all notifications marked read"})
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	id := c.Param("notification_id")
	if !reHex32.MatchString(id) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid notification_id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id, actorID(c)); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, map[string]string{"message": "notification deleted"})
}
