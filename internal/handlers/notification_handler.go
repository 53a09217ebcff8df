package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/httpresp"
	"github.com/ManosLatam/marketplace-api/internal/models"
	"github.com/ManosLatam/marketplace-api/internal/timezone"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	q := h.db.
		Where("user_id = ?", currentUserID(c)).
		Order("created_at DESC").
		Limit(100)

	if c.Query("unread") == "true" {
		q = q.Where("read_at IS NULL")
	}

	var notifications []models.Notification
	if err := q.Find(&notifications).Error; err != nil {
		httperr.Internal(c, "internal_error", "No pudimos listar las notificaciones.")
		return
	}

	httpresp.List(c, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_notification_id", "ID de notificación inválido.")
		return
	}

	now := timezone.Now()
	res := h.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, currentUserID(c)).
		Update("read_at", &now)

	if res.Error != nil {
		httperr.Internal(c, "internal_error", "No pudimos actualizar la notificación.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notificación no encontrada.")
		return
	}

	httpresp.OK(c, gin.H{"read_at": now})
}
