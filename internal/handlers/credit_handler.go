package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/httpresp"
	"github.com/ManosLatam/marketplace-api/internal/models"
)

// CreditHandler grants and lists referral credits. Granting is an admin
// operation; spending happens inside the payment flow.
type CreditHandler struct {
	db *gorm.DB
}

func NewCreditHandler(db *gorm.DB) *CreditHandler {
	return &CreditHandler{db: db}
}

type grantCreditRequest struct {
	UserID uint  `json:"user_id" binding:"required"`
	Amount int64 `json:"amount" binding:"required"`
}

func (h *CreditHandler) Grant(c *gin.Context) {
	var req grantCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		httperr.BadRequest(c, "invalid_payload", "El crédito necesita usuario y monto positivo.")
		return
	}

	var user models.User
	if err := h.db.First(&user, req.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	credit := models.ReferralCredit{
		UserID: req.UserID,
		Amount: req.Amount,
	}

	if err := h.db.Create(&credit).Error; err != nil {
		httperr.Internal(c, "internal_error", "No pudimos otorgar el crédito.")
		return
	}

	httpresp.Created(c, credit)
}

func (h *CreditHandler) ListMine(c *gin.Context) {
	var credits []models.ReferralCredit
	err := h.db.
		Where("user_id = ?", currentUserID(c)).
		Order("created_at DESC").
		Find(&credits).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "No pudimos listar los créditos.")
		return
	}

	httpresp.List(c, credits)
}
