package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/httpresp"
	"github.com/ManosLatam/marketplace-api/internal/models"
	"github.com/ManosLatam/marketplace-api/internal/timezone"
	bookinguc "github.com/ManosLatam/marketplace-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type QuotationHandler struct {
	db            *gorm.DB
	createBooking *bookinguc.CreateBooking
}

func NewQuotationHandler(db *gorm.DB, createBooking *bookinguc.CreateBooking) *QuotationHandler {
	return &QuotationHandler{db: db, createBooking: createBooking}
}

// expireOnRead flips a pending quotation to expired once ValidUntil passes.
func (h *QuotationHandler) expireOnRead(q *models.Quotation) {
	if q.Status != models.QuotationPending {
		return
	}
	if timezone.Now().After(q.ValidUntil) {
		q.Status = models.QuotationExpired
		h.db.Model(q).Update("status", models.QuotationExpired)
	}
}

// ======================================================
// CREATE (master)
// ======================================================

type quotationItemRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price" binding:"required"`
}

type createQuotationRequest struct {
	ClientID   uint                   `json:"client_id" binding:"required"`
	Items      []quotationItemRequest `json:"items" binding:"required,min=1"`
	Discount   int64                  `json:"discount"`
	ValidUntil string                 `json:"valid_until" binding:"required"` // 2006-01-02
	Notes      string                 `json:"notes"`
}

func (h *QuotationHandler) Create(c *gin.Context) {
	var req createQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Datos de la cotización inválidos.")
		return
	}

	validUntil, err := timezone.ParseDateTime(req.ValidUntil, "23:59")
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha de vencimiento inválida.")
		return
	}

	var client models.User
	if err := h.db.First(&client, req.ClientID).Error; err != nil || client.Role != models.RoleClient {
		httperr.NotFound(c, "client_not_found", "Cliente no encontrado.")
		return
	}

	q := models.Quotation{
		MasterID:   currentUserID(c),
		ClientID:   req.ClientID,
		Discount:   req.Discount,
		ValidUntil: validUntil,
		Status:     models.QuotationPending,
		Notes:      req.Notes,
	}

	for _, it := range req.Items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		if it.UnitPrice <= 0 {
			httperr.BadRequest(c, "invalid_price", "Los precios deben ser mayores a cero.")
			return
		}
		line := it.UnitPrice * int64(qty)
		q.Items = append(q.Items, models.QuotationItem{
			Description: it.Description,
			Quantity:    qty,
			UnitPrice:   it.UnitPrice,
			Total:       line,
		})
		q.Subtotal += line
	}

	q.Total = q.Subtotal - q.Discount
	if q.Total <= 0 {
		httperr.BadRequest(c, "invalid_price", "El total debe ser mayor a cero.")
		return
	}

	if err := h.db.Create(&q).Error; err != nil {
		httperr.Internal(c, "internal_error", "No pudimos crear la cotización.")
		return
	}

	httpresp.Created(c, q)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *QuotationHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	var quotations []models.Quotation
	err := h.db.
		Preload("Items").
		Where("master_id = ? OR client_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&quotations).Error
	if err != nil {
		httperr.Internal(c, "internal_error", "No pudimos listar las cotizaciones.")
		return
	}

	for i := range quotations {
		h.expireOnRead(&quotations[i])
	}

	httpresp.List(c, quotations)
}

func (h *QuotationHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_quotation_id", "ID de cotización inválido.")
		return
	}

	var q models.Quotation
	if err := h.db.Preload("Items").First(&q, id).Error; err != nil {
		httperr.NotFound(c, "quotation_not_found", "Cotización no encontrada.")
		return
	}

	userID := currentUserID(c)
	if q.MasterID != userID && q.ClientID != userID {
		httperr.Forbidden(c, httperr.CodeOwnershipViolation, "No sos parte de esta cotización.")
		return
	}

	h.expireOnRead(&q)
	httpresp.OK(c, q)
}

// ======================================================
// ACCEPT / REJECT (client)
// ======================================================

type acceptQuotationRequest struct {
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	ClientAddress string `json:"client_address" binding:"required"`
	Notes         string `json:"notes"`
}

// Accept turns the quotation into a booking at the quoted total.
func (h *QuotationHandler) Accept(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_quotation_id", "ID de cotización inválido.")
		return
	}

	var req acceptQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Datos de agenda inválidos.")
		return
	}

	var q models.Quotation
	if err := h.db.First(&q, id).Error; err != nil {
		httperr.NotFound(c, "quotation_not_found", "Cotización no encontrada.")
		return
	}

	if q.ClientID != currentUserID(c) {
		httperr.Forbidden(c, httperr.CodeOwnershipViolation, "No sos parte de esta cotización.")
		return
	}

	h.expireOnRead(&q)
	if q.Status != models.QuotationPending {
		httperr.BadRequest(c, "quotation_not_pending", "La cotización ya no está disponible.")
		return
	}

	b, err := h.createBooking.Execute(c.Request.Context(), bookinguc.CreateBookingInput{
		ClientID:      q.ClientID,
		MasterID:      q.MasterID,
		TotalPrice:    q.Total,
		Date:          req.Date,
		Time:          req.Time,
		ClientAddress: req.ClientAddress,
		Notes:         req.Notes,
		QuotationID:   &q.ID,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	if err := h.db.Model(&q).Update("status", models.QuotationAccepted).Error; err != nil {
		httperr.Internal(c, "internal_error", "No pudimos actualizar la cotización.")
		return
	}
	q.Status = models.QuotationAccepted

	httpresp.Created(c, gin.H{"quotation": q, "booking": b})
}

func (h *QuotationHandler) Reject(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_quotation_id", "ID de cotización inválido.")
		return
	}

	var q models.Quotation
	if err := h.db.First(&q, id).Error; err != nil {
		httperr.NotFound(c, "quotation_not_found", "Cotización no encontrada.")
		return
	}

	if q.ClientID != currentUserID(c) {
		httperr.Forbidden(c, httperr.CodeOwnershipViolation, "No sos parte de esta cotización.")
		return
	}

	h.expireOnRead(&q)
	if q.Status != models.QuotationPending {
		httperr.BadRequest(c, "quotation_not_pending", "La cotización ya no está disponible.")
		return
	}

	if err := h.db.Model(&q).Update("status", models.QuotationRejected).Error; err != nil {
		httperr.Internal(c, "internal_error", "No pudimos actualizar la cotización.")
		return
	}
	q.Status = models.QuotationRejected

	httpresp.OK(c, q)
}
