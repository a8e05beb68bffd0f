package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	vybiumalgebra "github.com/vybium/vybium-algebra/pkg/vybium-algebra"
)

// Request is one JSON value of input
type Request struct {
	Op       string   `json:"op"`                 // factor-integer, factor-integers, factor, irreducible, parse
	N        string   `json:"n,omitempty"`        // decimal integer for factor-integer
	Values   []string `json:"values,omitempty"`   // decimal integers for factor-integers
	P        string   `json:"p,omitempty"`        // field characteristic
	Modulus  string   `json:"modulus,omitempty"`  // extension modulus in the field variable; empty for GF(p)
	Variable string   `json:"variable,omitempty"` // polynomial variable, "x" by default
	Poly     string   `json:"poly,omitempty"`
}

// Response is one line of output
type Response struct {
	Op     string `json:"op"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type handler struct {
	engine *vybiumalgebra.Engine
}

// serve answers every request decoded from r with one JSON line on w. A
// request that cannot be decoded ends the stream after its error response.
func (h *handler) serve(r io.Reader, w io.Writer) error {
	decoder := vybiumalgebra.NewJSONDecoder(r)
	encoder := vybiumalgebra.NewJSONEncoder(w)

	for count := 1; ; count++ {
		var req Request
		var resp *Response
		decodeErr := decoder.Decode(&req)
		if errors.Is(decodeErr, io.EOF) {
			return nil
		}
		if decodeErr != nil {
			resp = &Response{Error: fmt.Sprintf("request %d: %v", count, decodeErr)}
		} else {
			log.Debugf("request %d: %s", count, req.Op)
			resp = h.handle(&req)
		}

		if resp.Error != "" {
			log.Warnf("request %d: %s", count, resp.Error)
		}
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("write response %d: %w", count, err)
		}
		if decodeErr != nil {
			return fmt.Errorf("read request %d: %w", count, decodeErr)
		}
	}
}

func (h *handler) handle(req *Request) *Response {
	result, err := h.dispatch(req)
	if err != nil {
		return &Response{Op: req.Op, Error: err.Error()}
	}
	return &Response{Op: req.Op, Result: result}
}

func (h *handler) dispatch(req *Request) (any, error) {
	switch req.Op {
	case "factor-integer":
		n, ok := new(big.Int).SetString(req.N, 10)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", req.N)
		}
		factorization, err := h.engine.FactorInteger(n)
		if err != nil {
			return nil, err
		}
		return vybiumalgebra.NewIntegerResult(factorization), nil

	case "factor-integers":
		ns := make([]*big.Int, len(req.Values))
		for i, v := range req.Values {
			n, ok := new(big.Int).SetString(v, 10)
			if !ok {
				return nil, fmt.Errorf("invalid integer %q at position %d", v, i)
			}
			ns[i] = n
		}
		factorizations, err := h.engine.FactorIntegers(ns)
		if err != nil {
			return nil, err
		}
		results := make([]*vybiumalgebra.FactorizationResult, len(factorizations))
		for i, factorization := range factorizations {
			results[i] = vybiumalgebra.NewIntegerResult(factorization)
		}
		return results, nil

	case "factor":
		if req.Modulus == "" {
			f, err := h.primePoly(req)
			if err != nil {
				return nil, err
			}
			factorization, err := h.engine.FactorPrime(f)
			if err != nil {
				return nil, err
			}
			return vybiumalgebra.NewPolynomialResult(f, factorization), nil
		}
		f, err := h.extensionPoly(req)
		if err != nil {
			return nil, err
		}
		factorization, err := h.engine.Factor(f)
		if err != nil {
			return nil, err
		}
		return vybiumalgebra.NewPolynomialResult(f, factorization), nil

	case "irreducible":
		var irreducible bool
		var err error
		if req.Modulus == "" {
			f, perr := h.primePoly(req)
			if perr != nil {
				return nil, perr
			}
			irreducible, err = f.IsIrreducible()
		} else {
			f, perr := h.extensionPoly(req)
			if perr != nil {
				return nil, perr
			}
			irreducible, err = f.IsIrreducible()
		}
		if err != nil {
			return nil, err
		}
		return map[string]bool{"irreducible": irreducible}, nil

	case "parse":
		var canonical fmt.Stringer
		var err error
		switch {
		case req.P == "":
			canonical, err = vybiumalgebra.ParseIntPoly(req.Poly, h.options(req)...)
		case req.Modulus == "":
			canonical, err = h.primePoly(req)
		default:
			canonical, err = h.extensionPoly(req)
		}
		if err != nil {
			return nil, err
		}
		return map[string]string{"poly": canonical.String()}, nil

	default:
		return nil, fmt.Errorf("unknown op %q", req.Op)
	}
}

func (h *handler) options(req *Request) []vybiumalgebra.ParseOption {
	if req.Variable == "" {
		return nil
	}
	return []vybiumalgebra.ParseOption{vybiumalgebra.WithVariable(req.Variable)}
}

func (h *handler) primePoly(req *Request) (*vybiumalgebra.PFPoly, error) {
	field, err := vybiumalgebra.NewPrimeField(req.P)
	if err != nil {
		return nil, err
	}
	return vybiumalgebra.ParsePrimePoly(req.Poly, field, h.options(req)...)
}

func (h *handler) extensionPoly(req *Request) (*vybiumalgebra.FFPoly, error) {
	field, err := vybiumalgebra.NewFiniteField(req.P, req.Modulus)
	if err != nil {
		return nil, err
	}
	return vybiumalgebra.ParseFFPoly(req.Poly, field, h.options(req)...)
}
