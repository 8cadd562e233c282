package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetNotifications(c *gin.Context) {
	userID, valid := parseID(c, "userId")
	if !valid {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	result, err := h.notifications.List(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		h.respondError(c, err, "Notification", "get notifications")
		return
	}
	ok(c, result)
}

func (h *Handler) GetUnreadCount(c *gin.Context) {
	userID, valid := parseID(c, "userId")
	if !valid {
		return
	}

	count, err := h.notifications.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "Notification", "count notifications")
		return
	}
	ok(c, gin.H{"unreadCount": count})
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Notification", "mark notification read")
		return
	}
	okMessage(c, "Notification marked as read", nil)
}

func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	userID, valid := parseID(c, "userId")
	if !valid {
		return
	}

	updated, err := h.notifications.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "Notification", "mark notifications read")
		return
	}
	okMessage(c, "All notifications marked as read", gin.H{"updated": updated})
}

func (h *Handler) DeleteNotification(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	if err := h.notifications.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Notification", "delete notification")
		return
	}
	okMessage(c, "Notification deleted", nil)
}
