package parse

import (
	"github.com/vybium/vybium-algebra/internal/vybium-algebra/utils"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokCaret
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokIdent:
		return "identifier"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokCaret:
		return "'^'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "token"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

var punctuation = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'^': tokCaret,
	'(': tokLParen,
	')': tokRParen,
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' }

// tokenize splits input into tokens, ending with tokEOF
func tokenize(input string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(input); {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c):
			start := i
			for i < len(input) && isDigit(input[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokNumber, text: input[start:i], pos: start})
		case isLetter(c):
			start := i
			for i < len(input) && (isLetter(input[i]) || isDigit(input[i])) {
				i++
			}
			tokens = append(tokens, token{kind: tokIdent, text: input[start:i], pos: start})
		default:
			kind, ok := punctuation[c]
			if !ok {
				return nil, utils.Errorf(utils.ErrParse, "unexpected character %q at offset %d", c, i)
			}
			tokens = append(tokens, token{kind: kind, text: string(c), pos: i})
			i++
		}
	}
	return append(tokens, token{kind: tokEOF, pos: len(input)}), nil
}
