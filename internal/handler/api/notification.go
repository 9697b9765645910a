package api

import (
	"net/http"

	resdto "github.com/GoncaloFernandes8/BarbershopBackoffice/internal/handler/dto/response"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/commands"
	"github.com/GoncaloFernandes8/BarbershopBackoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	commands commands.NotificationCommands
	queries  queries.NotificationQueries
}

func NewNotificationHandler(cmd commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{commands: cmd, queries: q}
}

// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread entries"
// @Success 200 {array} queries.NotificationView
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	views, err := h.queries.List(c.Request.Context(), unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Success 200 {object} response.UnreadCountResponse
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.queries.UnreadCount(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.UnreadCountResponse{Count: count})
}

// @Summary Mark notification read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.commands.MarkRead(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} response.MarkAllReadResponse
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	updated, err := h.commands.MarkAllRead(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MarkAllReadResponse{Updated: updated})
}
