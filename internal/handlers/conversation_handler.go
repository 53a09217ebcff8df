package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/httpresp"
	"github.com/ManosLatam/marketplace-api/internal/models"
)

type ConversationHandler struct {
	db *gorm.DB
}

func NewConversationHandler(db *gorm.DB) *ConversationHandler {
	return &ConversationHandler{db: db}
}

func (h *ConversationHandler) ListMessages(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_conversation_id", "ID de conversación inválido.")
		return
	}

	var conv models.Conversation
	if err := h.db.First(&conv, id).Error; err != nil {
		httperr.NotFound(c, "conversation_not_found", "Conversación no encontrada.")
		return
	}

	userID := currentUserID(c)
	if conv.ClientID != userID && conv.MasterID != userID {
		httperr.Forbidden(c, httperr.CodeOwnershipViolation, "No sos parte de esta conversación.")
		return
	}

	var messages []models.ConversationMessage
	err := h.db.
		Where("conversation_id = ?", id).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "No pudimos listar los mensajes.")
		return
	}

	httpresp.List(c, messages)
}

type postMessageRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

func (h *ConversationHandler) PostMessage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_conversation_id", "ID de conversación inválido.")
		return
	}

	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "El mensaje no puede estar vacío.")
		return
	}

	var conv models.Conversation
	if err := h.db.First(&conv, id).Error; err != nil {
		httperr.NotFound(c, "conversation_not_found", "Conversación no encontrada.")
		return
	}

	userID := currentUserID(c)
	if conv.ClientID != userID && conv.MasterID != userID {
		httperr.Forbidden(c, httperr.CodeOwnershipViolation, "No sos parte de esta conversación.")
		return
	}

	msg := models.ConversationMessage{
		ConversationID: conv.ID,
		SenderID:       userID,
		Content:        req.Content,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "internal_error", "No pudimos enviar el mensaje.")
		return
	}

	httpresp.Created(c, msg)
}
