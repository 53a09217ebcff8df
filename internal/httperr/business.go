package httperr

import "errors"

// Stable business error codes surfaced to the frontend.
const (
	CodeOwnershipViolation    = "ownership_violation"
	CodeConflict              = "conflict"
	CodeNoPriorPartialPayment = "no_prior_partial_payment"
	CodePaymentProviderError  = "payment_provider_error"
	CodeIncompleteFormData    = "incomplete_form_data"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code of a BusinessError, or "" when err is not one.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
