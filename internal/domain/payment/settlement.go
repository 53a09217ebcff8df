package payment

// ===============================
// Settlement Calculator
// ===============================
//
// Pure arithmetic over centavos (int64). No floats anywhere in the money
// path: commission and provider fee are basis points of the gross amount.

type Type string

const (
	TypeFull    Type = "full"
	TypePartial Type = "partial"
)

type Input struct {
	// PriceBase is the full intended price in centavos.
	PriceBase int64

	Type   Type
	Method string

	// CommissionBP is the platform cut for this transaction domain
	// (booking 5%, marketplace 12%, business contract 5% — config, not
	// constants).
	CommissionBP int64

	// ProviderFeeBP is the method-dependent collector fee. Pass-through:
	// carried for audit, never deducted from the master's net.
	ProviderFeeBP int64

	// CreditsAvailable is the payer's reserved credit balance in centavos.
	CreditsAvailable int64
}

type Breakdown struct {
	PriceBase int64 `json:"price_base"`

	// Gross is the amount actually charged in this transaction: the full
	// price, or half of it on the partial plan.
	Gross int64 `json:"gross"`

	PlatformFee int64 `json:"platform_fee"`
	ProviderFee int64 `json:"mp_fee"`
	MasterNet   int64 `json:"neto_profesional"`

	// Credits reduce only what the payer charges on the collector. The
	// master's payout is computed against the full intended price.
	CreditsApplied int64 `json:"credits_applied"`
	AmountDue      int64 `json:"amount_due"`

	// Remaining is the second half still owed on the partial plan, fixed
	// against the original price at this authorization.
	Remaining int64 `json:"remaining"`

	Type       Type   `json:"payment_type"`
	Method     string `json:"payment_method"`
	Percentage int    `json:"payment_percentage"`
}

// Calculate splits one transaction. Invariant: PlatformFee + MasterNet ==
// Gross, by construction.
func Calculate(in Input) Breakdown {
	gross := in.PriceBase
	percentage := 100
	var remaining int64

	if in.Type == TypePartial {
		gross = in.PriceBase * 50 / 100
		remaining = in.PriceBase - gross
		percentage = 50
	}

	platformFee := gross * in.CommissionBP / 10000
	providerFee := gross * in.ProviderFeeBP / 10000

	credits := in.CreditsAvailable
	if credits > gross {
		credits = gross
	}
	if credits < 0 {
		credits = 0
	}

	return Breakdown{
		PriceBase:      in.PriceBase,
		Gross:          gross,
		PlatformFee:    platformFee,
		ProviderFee:    providerFee,
		MasterNet:      gross - platformFee,
		CreditsApplied: credits,
		AmountDue:      gross - credits,
		Remaining:      remaining,
		Type:           in.Type,
		Method:         in.Method,
		Percentage:     percentage,
	}
}
