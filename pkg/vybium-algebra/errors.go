package vybiumalgebra

import "github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"

// ErrorCode represents a vybium-algebra error code
type ErrorCode = utils.ErrorCode

const (
	// ErrUnknown represents an unknown error
	ErrUnknown = utils.ErrUnknown

	// ErrDomain represents an operation invalid in its mathematical domain
	ErrDomain = utils.ErrDomain

	// ErrIncompatibleDomain represents operands that cannot be coerced
	// into a common domain
	ErrIncompatibleDomain = utils.ErrIncompatibleDomain

	// ErrParse represents malformed textual input
	ErrParse = utils.ErrParse

	// ErrInvalidModulus represents a modulus that does not define a field
	ErrInvalidModulus = utils.ErrInvalidModulus
)

// AlgebraError represents a vybium-algebra error
type AlgebraError = utils.AlgebraError

// Sentinels for errors.Is. IncompatibleDomainError and InvalidModulusError
// also match DomainError.
var (
	DomainError             = utils.DomainError
	IncompatibleDomainError = utils.IncompatibleDomainError
	ParseError              = utils.ParseError
	InvalidModulusError     = utils.InvalidModulusError
)
