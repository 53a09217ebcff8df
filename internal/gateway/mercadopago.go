package gateway

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
)

// ChargeRequest is the contract with the external payment collector. Amounts
// are centavos; the SDK wants currency units.
type ChargeRequest struct {
	AmountCents       int64
	Token             string
	PaymentMethodID   string
	IssuerID          string
	Installments      int
	PayerEmail        string
	Description       string
	ExternalReference string
}

type ChargeResult struct {
	ProviderPaymentID string
	Status            string // approved | pending | in_process | rejected
	StatusDetail      string
}

// Collector is the seam the payment usecases depend on; tests mock it.
type Collector interface {
	Charge(ctx context.Context, in ChargeRequest) (*ChargeResult, error)
	GetPayment(ctx context.Context, providerPaymentID string) (*ChargeResult, error)
}

// --------------------------------------------------
// Mercado Pago
// --------------------------------------------------

type MercadoPago struct {
	payments mppayment.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		payments: mppayment.NewClient(cfg),
	}, nil
}

func (g *MercadoPago) Charge(
	ctx context.Context,
	in ChargeRequest,
) (*ChargeResult, error) {

	req := mppayment.Request{
		TransactionAmount: float64(in.AmountCents) / 100,
		Token:             in.Token,
		PaymentMethodID:   in.PaymentMethodID,
		IssuerID:          in.IssuerID,
		Installments:      in.Installments,
		Description:       in.Description,
		ExternalReference: in.ExternalReference,
		Payer: &mppayment.PayerRequest{
			Email: in.PayerEmail,
		},
	}

	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &ChargeResult{
		ProviderPaymentID: strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
	}, nil
}

func (g *MercadoPago) GetPayment(
	ctx context.Context,
	providerPaymentID string,
) (*ChargeResult, error) {

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider payment id %q", providerPaymentID)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ChargeResult{
		ProviderPaymentID: strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
	}, nil
}

// Compile-time check
var _ Collector = (*MercadoPago)(nil)
