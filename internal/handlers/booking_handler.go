package handlers

import (
	"github.com/gin-gonic/gin"

	bookingdomain "github.com/ManosLatam/marketplace-api/internal/domain/booking"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/httpresp"
	"github.com/ManosLatam/marketplace-api/internal/models"
	bookinguc "github.com/ManosLatam/marketplace-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create         *bookinguc.CreateBooking
	accept         *bookinguc.AcceptBooking
	reject         *bookinguc.RejectBooking
	negotiate      *bookinguc.NegotiateBooking
	acceptProposal *bookinguc.AcceptProposal
	startWork      *bookinguc.StartWork
	requestReview  *bookinguc.RequestReview
	approveWork    *bookinguc.ApproveWork
	cancel         *bookinguc.CancelBooking
	repo           bookingdomain.Repository
}

func NewBookingHandler(
	create *bookinguc.CreateBooking,
	accept *bookinguc.AcceptBooking,
	reject *bookinguc.RejectBooking,
	negotiate *bookinguc.NegotiateBooking,
	acceptProposal *bookinguc.AcceptProposal,
	startWork *bookinguc.StartWork,
	requestReview *bookinguc.RequestReview,
	approveWork *bookinguc.ApproveWork,
	cancel *bookinguc.CancelBooking,
	repo bookingdomain.Repository,
) *BookingHandler {
	return &BookingHandler{
		create:         create,
		accept:         accept,
		reject:         reject,
		negotiate:      negotiate,
		acceptProposal: acceptProposal,
		startWork:      startWork,
		requestReview:  requestReview,
		approveWork:    approveWork,
		cancel:         cancel,
		repo:           repo,
	}
}

// ======================================================
// CREATE / LIST
// ======================================================

type createBookingRequest struct {
	MasterID      uint   `json:"master_id" binding:"required"`
	TotalPrice    int64  `json:"total_price" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	ClientAddress string `json:"client_address" binding:"required"`
	Notes         string `json:"notes"`
	QuotationID   *uint  `json:"quotation_id"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Datos de la reserva inválidos.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), bookinguc.CreateBookingInput{
		ClientID:      currentUserID(c),
		MasterID:      req.MasterID,
		TotalPrice:    req.TotalPrice,
		Date:          req.Date,
		Time:          req.Time,
		ClientAddress: req.ClientAddress,
		Notes:         req.Notes,
		QuotationID:   req.QuotationID,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.ListBookingsForUser(c.Request.Context(), currentUserID(c), c.Query("status"))
	if err != nil {
		httperr.Internal(c, "internal_error", "No pudimos listar las reservas.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	bookingID, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "ID de reserva inválido.")
		return
	}

	b, err := h.repo.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Reserva no encontrada.")
		return
	}

	userID := currentUserID(c)
	if b.ClientID != userID && b.MasterID != userID {
		httperr.Forbidden(c, httperr.CodeOwnershipViolation, "No sos parte de esta reserva.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// LIFECYCLE TRANSITIONS
// ======================================================

type transitionFunc func(c *gin.Context, userID, bookingID uint) (*models.Booking, error)

func (h *BookingHandler) transition(c *gin.Context, fn transitionFunc) {
	bookingID, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "ID de reserva inválido.")
		return
	}

	b, err := fn(c, currentUserID(c), bookingID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Accept(c *gin.Context) {
	h.transition(c, func(c *gin.Context, userID, bookingID uint) (*models.Booking, error) {
		return h.accept.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) Reject(c *gin.Context) {
	h.transition(c, func(c *gin.Context, userID, bookingID uint) (*models.Booking, error) {
		return h.reject.Execute(c.Request.Context(), userID, bookingID)
	})
}

type negotiateRequest struct {
	NewPrice int64  `json:"new_price" binding:"required"`
	Note     string `json:"note"`
}

func (h *BookingHandler) Negotiate(c *gin.Context) {
	bookingID, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "ID de reserva inválido.")
		return
	}

	var req negotiateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.NewPrice <= 0 {
		httperr.BadRequest(c, "invalid_payload", "La contrapropuesta necesita un precio válido.")
		return
	}

	b, err := h.negotiate.Execute(c.Request.Context(), currentUserID(c), bookingID, req.NewPrice, req.Note)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) AcceptProposal(c *gin.Context) {
	h.transition(c, func(c *gin.Context, userID, bookingID uint) (*models.Booking, error) {
		return h.acceptProposal.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) StartWork(c *gin.Context) {
	h.transition(c, func(c *gin.Context, userID, bookingID uint) (*models.Booking, error) {
		return h.startWork.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) RequestReview(c *gin.Context) {
	h.transition(c, func(c *gin.Context, userID, bookingID uint) (*models.Booking, error) {
		return h.requestReview.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) ApproveWork(c *gin.Context) {
	h.transition(c, func(c *gin.Context, userID, bookingID uint) (*models.Booking, error) {
		return h.approveWork.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, func(c *gin.Context, userID, bookingID uint) (*models.Booking, error) {
		return h.cancel.Execute(c.Request.Context(), userID, bookingID)
	})
}
