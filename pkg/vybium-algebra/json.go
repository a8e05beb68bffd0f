package vybiumalgebra

import (
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/core"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/factor"
)

type JSONEncoder = gojson.Encoder
type JSONDecoder = gojson.Decoder

var encodeOptions = []gojson.EncodeOptionFunc{gojson.DisableHTMLEscape(), gojson.DisableNormalizeUTF8()}

func MarshalJSON(val any) ([]byte, error) {
	return gojson.MarshalWithOption(val, encodeOptions...)
}

func UnmarshalJSON(data []byte, val any) error {
	return gojson.UnmarshalWithOption(data, val)
}

func NewJSONEncoder(writer io.Writer) *JSONEncoder {
	return gojson.NewEncoder(writer)
}

func NewJSONDecoder(reader io.Reader) *JSONDecoder {
	return gojson.NewDecoder(reader)
}

// FactorResult is one factor with its multiplicity
type FactorResult struct {
	Factor       string `json:"factor"`
	Multiplicity int    `json:"multiplicity"`
}

// FactorizationResult is the serializable form of a factorization
type FactorizationResult struct {
	Input   string         `json:"input"`
	Domain  string         `json:"domain"`
	Unit    string         `json:"unit,omitempty"`
	Factors []FactorResult `json:"factors"`
}

// NewIntegerResult converts an integer factorization
func NewIntegerResult(f *IntegerFactorization) *FactorizationResult {
	result := &FactorizationResult{
		Input:   f.N().String(),
		Domain:  core.ZZ.ID(),
		Factors: make([]FactorResult, 0, f.Len()),
	}
	for _, factor := range f.Factors() {
		result.Factors = append(result.Factors, FactorResult{
			Factor:       factor.Prime.String(),
			Multiplicity: factor.Exponent,
		})
	}
	return result
}

// NewPolynomialResult converts the factorization of the polynomial input
func NewPolynomialResult[E core.Element[E]](input *core.Polynomial[E], f *factor.Factorization[E]) *FactorizationResult {
	result := &FactorizationResult{
		Input:   input.String(),
		Domain:  f.Domain().ID(),
		Unit:    f.Unit.String(),
		Factors: make([]FactorResult, 0, f.Len()),
	}
	for _, factor := range f.Factors {
		result.Factors = append(result.Factors, FactorResult{
			Factor:       factor.Poly.WithVariable(input.Variable()).String(),
			Multiplicity: factor.Multiplicity,
		})
	}
	return result
}
