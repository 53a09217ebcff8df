package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	bookingdomain "github.com/ManosLatam/marketplace-api/internal/domain/booking"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
)

// writeBusinessError maps usecase errors onto HTTP. Anything unknown is a 500.
func writeBusinessError(c *gin.Context, err error) {

	if te, ok := bookingdomain.AsTransitionError(err); ok {
		httperr.Write(c, http.StatusUnprocessableEntity, "invalid_transition", te.Error())
		return
	}

	switch httperr.BusinessCode(err) {
	case httperr.CodeOwnershipViolation:
		httperr.Forbidden(c, httperr.CodeOwnershipViolation, "No sos parte de esta reserva.")
	case httperr.CodeConflict:
		httperr.Conflict(c, httperr.CodeConflict, "La reserva cambió, actualizá e intentá de nuevo.")
	case "payment_in_progress":
		httperr.Conflict(c, "payment_in_progress", "Ya hay un pago en curso.")
	case httperr.CodeNoPriorPartialPayment:
		httperr.BadRequest(c, httperr.CodeNoPriorPartialPayment, "No existe un pago parcial previo para esta reserva.")
	case httperr.CodeIncompleteFormData:
		httperr.BadRequest(c, httperr.CodeIncompleteFormData, "Faltan datos del medio de pago.")
	case httperr.CodePaymentProviderError:
		httperr.Write(c, http.StatusBadGateway, httperr.CodePaymentProviderError, "No pudimos procesar el pago, intentá de nuevo.")
	case "booking_not_found", "payment_not_found", "master_not_found":
		httperr.NotFound(c, httperr.BusinessCode(err), "Recurso no encontrado.")
	case "":
		httperr.Internal(c, "internal_error", "Error interno.")
	default:
		httperr.BadRequest(c, httperr.BusinessCode(err), "Operación inválida.")
	}
}
