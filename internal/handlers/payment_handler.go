package handlers

import (
	"github.com/gin-gonic/gin"

	paydomain "github.com/ManosLatam/marketplace-api/internal/domain/payment"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/httpresp"
	paymentuc "github.com/ManosLatam/marketplace-api/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	checkout  *paymentuc.Checkout
	remaining *paymentuc.RemainingPayment
	release   *paymentuc.ReleaseEscrow
	repo      paydomain.Repository
}

func NewPaymentHandler(
	checkout *paymentuc.Checkout,
	remaining *paymentuc.RemainingPayment,
	release *paymentuc.ReleaseEscrow,
	repo paydomain.Repository,
) *PaymentHandler {
	return &PaymentHandler{
		checkout:  checkout,
		remaining: remaining,
		release:   release,
		repo:      repo,
	}
}

// ======================================================
// CHECKOUT
// ======================================================

type checkoutRequest struct {
	PaymentType string `json:"payment_type" binding:"required"` // full | partial

	Token           string `json:"token"`
	PaymentMethodID string `json:"payment_method_id"`
	IssuerID        string `json:"issuer_id"`
	Installments    int    `json:"installments"`
	PayerEmail      string `json:"payer_email"`

	UseCredits bool `json:"use_credits"`
}

func (r checkoutRequest) form() paymentuc.ChargeForm {
	return paymentuc.ChargeForm{
		Token:           r.Token,
		PaymentMethodID: r.PaymentMethodID,
		IssuerID:        r.IssuerID,
		Installments:    r.Installments,
		PayerEmail:      r.PayerEmail,
		UseCredits:      r.UseCredits,
	}
}

func (h *PaymentHandler) Checkout(c *gin.Context) {
	bookingID, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "ID de reserva inválido.")
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Datos del pago inválidos.")
		return
	}

	p, err := h.checkout.Execute(c.Request.Context(), paymentuc.CheckoutInput{
		BookingID:   bookingID,
		ClientID:    currentUserID(c),
		PaymentType: paydomain.Type(req.PaymentType),
		Form:        req.form(),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, p)
}

// ======================================================
// REMAINING HALF
// ======================================================

func (h *PaymentHandler) Remaining(c *gin.Context) {
	bookingID, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "ID de reserva inválido.")
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Datos del pago inválidos.")
		return
	}

	p, err := h.remaining.Execute(c.Request.Context(), currentUserID(c), bookingID, req.form())
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, p)
}

// ======================================================
// ESCROW RELEASE
// ======================================================

func (h *PaymentHandler) ReleaseEscrow(c *gin.Context) {
	paymentID, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_payment_id", "ID de pago inválido.")
		return
	}

	p, err := h.release.Execute(c.Request.Context(), currentUserID(c), paymentID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, p)
}

// ======================================================
// LISTING / CREDITS
// ======================================================

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.repo.ListPaymentsForUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Internal(c, "internal_error", "No pudimos listar los pagos.")
		return
	}

	httpresp.List(c, payments)
}

func (h *PaymentHandler) CreditsBalance(c *gin.Context) {
	balance, err := h.repo.AvailableCredits(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Internal(c, "internal_error", "No pudimos consultar los créditos.")
		return
	}

	httpresp.OK(c, gin.H{"available_credits": balance})
}
