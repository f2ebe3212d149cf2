package entities

// ErrorCode is the stable machine-readable classification of a checkout
// failure, returned to callers alongside a human-readable message.
type ErrorCode string

const (
	CodeValidation   ErrorCode = "validation_error"
	CodePersistence  ErrorCode = "persistence_error"
	CodePayment      ErrorCode = "payment_error"
	CodeCompensation ErrorCode = "compensation_failure"
	CodeInternal     ErrorCode = "internal_error"
)

type CheckoutError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func NewCheckoutError(code ErrorCode, message string, err error) *CheckoutError {
	return &CheckoutError{Code: code, Message: message, Err: err}
}

func (e *CheckoutError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}
