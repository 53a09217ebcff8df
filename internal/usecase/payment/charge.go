package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	paydomain "github.com/ManosLatam/marketplace-api/internal/domain/payment"
	"github.com/ManosLatam/marketplace-api/internal/gateway"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/logger"
	"github.com/ManosLatam/marketplace-api/internal/models"
)

// ChargeForm is what the frontend's payment brick submits.
type ChargeForm struct {
	Token           string
	PaymentMethodID string
	IssuerID        string
	Installments    int
	PayerEmail      string
	UseCredits      bool
}

// executeCharge is the shared tail of the checkout and remaining flows:
// reserve credits, short-circuit when fully covered, otherwise charge the
// collector, and record the settlement verbatim. Credits are reverted on any
// failure past the reservation (compensating action).
func executeCharge(
	ctx context.Context,
	payments paydomain.Repository,
	collector gateway.Collector,
	calcIn paydomain.Input,
	b *models.Booking,
	form ChargeForm,
	isPartial bool,
	percentage int,
) (*models.Payment, error) {

	if form.UseCredits {
		credits, err := payments.AvailableCredits(ctx, b.ClientID)
		if err != nil {
			return nil, err
		}
		calcIn.CreditsAvailable = credits
	}

	br := paydomain.Calculate(calcIn)

	if br.CreditsApplied > 0 {
		reserved, err := payments.ReserveCredits(ctx, b.ClientID, b.ID, br.CreditsApplied)
		if err != nil {
			return nil, err
		}

		// Credit rows are consumed whole; recompute with what was
		// actually reserved.
		calcIn.CreditsAvailable = reserved
		br = paydomain.Calculate(calcIn)
	}

	revert := func() {
		if br.CreditsApplied == 0 {
			return
		}
		if err := payments.RevertCredits(ctx, b.ClientID, b.ID); err != nil {
			logger.ErrorLogger.Errorf("credit revert failed booking=%d: %v", b.ID, err)
		}
	}

	meta, _ := json.Marshal(br)

	p := &models.Payment{
		BookingID: b.ID,
		ClientID:  b.ClientID,
		MasterID:  b.MasterID,

		Amount:           br.Gross,
		CommissionAmount: br.PlatformFee,
		MasterAmount:     br.MasterNet,
		ProviderFee:      br.ProviderFee,
		CreditsApplied:   br.CreditsApplied,

		PaymentMethod:     br.Method,
		PaymentPercentage: percentage,
		IsPartialPayment:  isPartial,
		RemainingAmount:   br.Remaining,

		IdempotencyKey: uuid.NewString(),
		Metadata:       string(meta),
	}

	if br.AmountDue == 0 {
		// Fully covered by credits: no collector round-trip at all.
		p.PaymentMethod = paydomain.MethodCredits
		p.Status = paydomain.StatusApproved
	} else {
		if form.Token == "" || form.PaymentMethodID == "" {
			revert()
			return nil, httperr.ErrBusiness(httperr.CodeIncompleteFormData)
		}

		installments := form.Installments
		if installments <= 0 {
			installments = 1
		}

		res, err := collector.Charge(ctx, gateway.ChargeRequest{
			AmountCents:       br.AmountDue,
			Token:             form.Token,
			PaymentMethodID:   form.PaymentMethodID,
			IssuerID:          form.IssuerID,
			Installments:      installments,
			PayerEmail:        form.PayerEmail,
			Description:       fmt.Sprintf("Reserva #%d", b.ID),
			ExternalReference: p.IdempotencyKey,
		})
		if err != nil {
			revert()
			return nil, httperr.ErrBusiness(httperr.CodePaymentProviderError)
		}

		p.ProviderPaymentID = res.ProviderPaymentID
		p.Status = res.Status

		if res.Status == paydomain.StatusRejected {
			revert()
		}
	}

	if err := payments.CreatePayment(ctx, p); err != nil {
		revert()
		return nil, err
	}

	return p, nil
}
