package utils

import "fmt"

// ErrorCode represents a vybium-algebra error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrDomain represents an operation that is invalid in its mathematical
	// domain: division by zero, a non-prime modulus, a non-invertible
	// leading coefficient, an exhausted randomized step
	ErrDomain

	// ErrIncompatibleDomain represents operands from fields or
	// characteristics that cannot be coerced into one another
	ErrIncompatibleDomain

	// ErrParse represents malformed textual input
	ErrParse

	// ErrInvalidModulus represents a modulus that does not define a field
	ErrInvalidModulus
)

// String returns the name of the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrDomain:
		return "domain error"
	case ErrIncompatibleDomain:
		return "incompatible domain"
	case ErrParse:
		return "parse error"
	case ErrInvalidModulus:
		return "invalid modulus"
	default:
		return "unknown error"
	}
}

// AlgebraError represents a vybium-algebra error
type AlgebraError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Sentinel values for errors.Is. IncompatibleDomainError and
// InvalidModulusError also match DomainError.
var (
	DomainError             = &AlgebraError{Code: ErrDomain}
	IncompatibleDomainError = &AlgebraError{Code: ErrIncompatibleDomain}
	ParseError              = &AlgebraError{Code: ErrParse}
	InvalidModulusError     = &AlgebraError{Code: ErrInvalidModulus}
)

// Error returns the error message
func (e *AlgebraError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vybium-algebra %s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("vybium-algebra %s: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *AlgebraError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *AlgebraError) Is(target error) bool {
	t, ok := target.(*AlgebraError)
	if !ok {
		return false
	}
	if e.Code == t.Code {
		return true
	}
	return t.Code == ErrDomain && (e.Code == ErrIncompatibleDomain || e.Code == ErrInvalidModulus)
}

// Errorf creates an AlgebraError with a formatted message
func Errorf(code ErrorCode, format string, args ...any) *AlgebraError {
	return &AlgebraError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an AlgebraError carrying cause
func Wrap(code ErrorCode, cause error, format string, args ...any) *AlgebraError {
	return &AlgebraError{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}
