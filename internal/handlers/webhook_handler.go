package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ManosLatam/marketplace-api/internal/logger"
	paymentuc "github.com/ManosLatam/marketplace-api/internal/usecase/payment"
)

// WebhookHandler receives payment notifications from the collector. The
// provider retries on non-2xx, so the endpoint always answers 200 and only
// logs what it could not apply.
type WebhookHandler struct {
	sync *paymentuc.SyncProviderPayment
}

func NewWebhookHandler(sync *paymentuc.SyncProviderPayment) *WebhookHandler {
	return &WebhookHandler{sync: sync}
}

type providerNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (h *WebhookHandler) ProviderNotification(c *gin.Context) {
	var notif providerNotification
	if err := c.ShouldBindJSON(&notif); err != nil {
		c.Status(http.StatusOK)
		return
	}

	if notif.Type != "payment" || notif.Data.ID == "" {
		c.Status(http.StatusOK)
		return
	}

	if _, err := h.sync.Execute(c.Request.Context(), notif.Data.ID); err != nil {
		logger.ErrorLogger.WithField("provider_payment_id", notif.Data.ID).
			Errorf("webhook sync failed: %v", err)
	}

	c.Status(http.StatusOK)
}
