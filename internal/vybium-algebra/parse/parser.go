// Package parse reads polynomials written as text.
//
// The accepted grammar is
//
//	expr  := [sign] term (('+' | '-') term)*
//	term  := [coeff ['*']] [var ['^' exponent]]
//	coeff := integer | '(' inner ')'
//
// Integer literals are mapped into the target domain through its coercion
// rules. Over an extension field the inner expression of a parenthesised
// coefficient is a polynomial in the field variable, taken modulo the
// field modulus; over Z[i] it is a + b*i; elsewhere it must be constant.
// Terms of equal degree are summed.
package parse

import (
	"math/big"

	"github.com/vybium/vybium-algebra/internal/vybium-algebra/core"
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

// DefaultMaxDegree bounds the exponents a parser accepts
const DefaultMaxDegree = 1 << 16

// GaussianUnit names the imaginary unit inside Z[i] coefficients
const GaussianUnit = "i"

type options struct {
	variable  string
	maxDegree int
}

// Option configures a Parser
type Option func(*options)

// WithVariable sets the name of the indeterminate
func WithVariable(variable string) Option {
	return func(o *options) {
		o.variable = variable
	}
}

// WithMaxDegree sets the largest accepted exponent
func WithMaxDegree(degree int) Option {
	return func(o *options) {
		o.maxDegree = degree
	}
}

// Parser turns text into polynomials over a fixed domain
type Parser[E core.Element[E]] struct {
	domain core.Domain[E]
	options
}

// NewParser creates a parser for domain
func NewParser[E core.Element[E]](domain core.Domain[E], opts ...Option) *Parser[E] {
	o := options{variable: core.DefaultVariable, maxDegree: DefaultMaxDegree}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser[E]{domain: domain, options: o}
}

// Parse reads input as a polynomial over domain
func Parse[E core.Element[E]](input string, domain core.Domain[E], opts ...Option) (*core.Polynomial[E], error) {
	return NewParser(domain, opts...).Parse(input)
}

// Parse reads input as a polynomial over the parser's domain
func (p *Parser[E]) Parse(input string) (*core.Polynomial[E], error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	if tokens[0].kind == tokEOF {
		return nil, utils.Errorf(utils.ErrParse, "empty input")
	}

	s := &state[E]{parser: p, input: input, tokens: tokens}
	if err := s.expr(); err != nil {
		return nil, err
	}

	poly, err := core.NewPolynomial(p.domain, s.coefficients)
	if err != nil {
		return nil, utils.Wrap(utils.ErrParse, err, "invalid coefficients in %q", input)
	}
	return poly.WithVariable(p.variable), nil
}

// state is a single pass over one token stream
type state[E core.Element[E]] struct {
	parser       *Parser[E]
	input        string
	tokens       []token
	next         int
	coefficients []E
}

func (s *state[E]) peek() token {
	return s.tokens[s.next]
}

func (s *state[E]) advance() {
	if s.next < len(s.tokens)-1 {
		s.next++
	}
}

func (s *state[E]) unexpected(tok token, want string) error {
	if tok.kind == tokEOF {
		return utils.Errorf(utils.ErrParse, "expected %s, found end of input", want)
	}
	return utils.Errorf(utils.ErrParse, "expected %s, found %s %q at offset %d", want, tok.kind, tok.text, tok.pos)
}

func (s *state[E]) expr() error {
	negative := false
	switch s.peek().kind {
	case tokMinus:
		negative = true
		s.advance()
	case tokPlus:
		s.advance()
	}

	for {
		if err := s.term(negative); err != nil {
			return err
		}
		switch tok := s.peek(); tok.kind {
		case tokEOF:
			return nil
		case tokPlus:
			negative = false
		case tokMinus:
			negative = true
		default:
			return s.unexpected(tok, "'+', '-' or end of input")
		}
		s.advance()
	}
}

func (s *state[E]) term(negative bool) error {
	coeff := s.parser.domain.One()
	hasCoeff := false

	switch tok := s.peek(); tok.kind {
	case tokNumber:
		c, err := s.number(tok)
		if err != nil {
			return err
		}
		coeff, hasCoeff = c, true
		s.advance()
	case tokLParen:
		c, err := s.parenthesized()
		if err != nil {
			return err
		}
		coeff, hasCoeff = c, true
	}

	if hasCoeff && s.peek().kind == tokStar {
		s.advance()
		if s.peek().kind != tokIdent {
			return s.unexpected(s.peek(), "the variable after '*'")
		}
	}

	degree := 0
	if tok := s.peek(); tok.kind == tokIdent {
		if tok.text != s.parser.variable {
			return utils.Errorf(utils.ErrParse, "unknown identifier %q at offset %d, the variable is %q",
				tok.text, tok.pos, s.parser.variable)
		}
		s.advance()
		degree = 1

		if s.peek().kind == tokCaret {
			s.advance()
			d, err := s.exponent()
			if err != nil {
				return err
			}
			degree = d
		}
	} else if !hasCoeff {
		return s.unexpected(tok, "a term")
	}

	if negative {
		coeff = coeff.Neg()
	}
	s.accumulate(degree, coeff)
	return nil
}

func (s *state[E]) exponent() (int, error) {
	tok := s.peek()
	switch tok.kind {
	case tokNumber:
	case tokMinus:
		return 0, utils.Errorf(utils.ErrParse, "negative exponent at offset %d", tok.pos)
	default:
		return 0, s.unexpected(tok, "an exponent")
	}

	n, ok := new(big.Int).SetString(tok.text, 10)
	if !ok || !n.IsInt64() || n.Int64() > int64(s.parser.maxDegree) {
		return 0, utils.Errorf(utils.ErrParse, "exponent %s at offset %d exceeds the maximum degree %d",
			tok.text, tok.pos, s.parser.maxDegree)
	}
	s.advance()
	return int(n.Int64()), nil
}

func (s *state[E]) number(tok token) (E, error) {
	n, ok := new(big.Int).SetString(tok.text, 10)
	if !ok {
		var zero E
		return zero, utils.Errorf(utils.ErrParse, "malformed integer %q at offset %d", tok.text, tok.pos)
	}
	c, err := s.parser.domain.Coerce(n)
	if err != nil {
		var zero E
		return zero, utils.Wrap(utils.ErrParse, err, "cannot read %s as an element of %s", tok.text, s.parser.domain)
	}
	return c, nil
}

// parenthesized consumes '(' inner ')' and resolves inner
func (s *state[E]) parenthesized() (E, error) {
	open := s.peek()
	depth := 0
	for j := s.next; j < len(s.tokens); j++ {
		switch s.tokens[j].kind {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
			if depth == 0 {
				inner := s.input[open.pos+1 : s.tokens[j].pos]
				s.next = j + 1
				return s.parser.inner(inner, open.pos+1)
			}
		}
	}
	var zero E
	return zero, utils.Errorf(utils.ErrParse, "unbalanced '(' at offset %d", open.pos)
}

func (s *state[E]) accumulate(degree int, coeff E) {
	for len(s.coefficients) <= degree {
		s.coefficients = append(s.coefficients, s.parser.domain.Zero())
	}
	s.coefficients[degree] = s.coefficients[degree].Add(coeff)
}

// inner resolves the text of a parenthesised coefficient
func (p *Parser[E]) inner(text string, offset int) (E, error) {
	var zero E

	switch d := any(p.domain).(type) {
	case *core.FiniteField:
		residue, err := Parse[*core.PrimeFieldElement](text, d.PrimeField(),
			WithVariable(d.Variable()), WithMaxDegree(p.maxDegree))
		if err != nil {
			return zero, utils.Wrap(utils.ErrParse, err, "in coefficient at offset %d", offset)
		}
		return p.domain.Coerce(residue)

	case core.GaussianIntegers:
		parts, err := Parse[*core.Integer](text, core.ZZ, WithVariable(GaussianUnit), WithMaxDegree(1))
		if err != nil {
			return zero, utils.Wrap(utils.ErrParse, err, "in coefficient at offset %d", offset)
		}
		z := core.NewGaussianIntegerFromBig(parts.Coefficient(0).Big(), parts.Coefficient(1).Big())
		return p.domain.Coerce(z)
	}

	value, err := NewParser(p.domain, WithVariable(p.variable), WithMaxDegree(p.maxDegree)).Parse(text)
	if err != nil {
		return zero, utils.Wrap(utils.ErrParse, err, "in coefficient at offset %d", offset)
	}
	if !value.IsConstant() {
		return zero, utils.Errorf(utils.ErrParse, "coefficient (%s) at offset %d is not a constant", text, offset)
	}
	return value.Coefficient(0), nil
}
