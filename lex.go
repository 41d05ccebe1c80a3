package symexpr

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a single lexical token of an expression.
type Token struct {
	// Text is the token as it appears in the input.
	Text string
	// Kind is the lexical category of the token.
	Kind TokenKind
	// Pos is the rune column of the token's first character, starting at 1.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the lexical category of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNumber is an integer or decimal literal.
	TokenNumber
	// TokenName is a variable or function name.
	TokenName
	// TokenOp is an operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenName:
		return "Name"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the single characters which are considered operators or
// parentheses by the tokenizer.
const Operators = "()+-/*^"

// Tokenize scans src into its lexical tokens. A number literal is digits
// optionally followed by a decimal point and more digits, or a decimal point
// followed by digits. A name is a maximal run of letters. Whitespace
// separates tokens. Any other character is a *LexError.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	col := 0
	for i := 0; i < len(src); {
		r, sz := utf8.DecodeRuneInString(src[i:])
		col++
		switch {
		case unicode.IsSpace(r):
			i += sz
		case '0' <= r && r <= '9', r == '.':
			text, n, ok := scanNumber(src[i:])
			if !ok {
				return nil, &LexError{Text: text, Col: col}
			}
			toks = append(toks, Token{Text: text, Kind: TokenNumber, Pos: col})
			col += utf8.RuneCountInString(text) - 1
			i += n
		case strings.ContainsRune(Operators, r):
			kind := TokenOp
			switch r {
			case '(':
				kind = TokenOpen
			case ')':
				kind = TokenClose
			}
			toks = append(toks, Token{Text: string(r), Kind: kind, Pos: col})
			i += sz
		case unicode.IsLetter(r):
			text, n := scanName(src[i:])
			toks = append(toks, Token{Text: text, Kind: TokenName, Pos: col})
			col += utf8.RuneCountInString(text) - 1
			i += n
		default:
			return nil, &LexError{Text: string(r), Col: col}
		}
	}
	return toks, nil
}

// scanNumber scans a number literal from the start of s. The literal is
// digits with an optional fraction, or a bare fraction like ".5". A lone
// decimal point is not a number.
func scanNumber(s string) (text string, n int, ok bool) {
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	dig := i > 0
	if i < len(s) && s[i] == '.' {
		i++
		frac := false
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
			frac = true
		}
		// "5." is a number; "." alone is not.
		if !dig && !frac {
			return s[:i], i, false
		}
	}
	return s[:i], i, true
}

// scanName scans a maximal run of letters from the start of s.
func scanName(s string) (text string, n int) {
	i := 0
	for i < len(s) {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) {
			break
		}
		i += sz
	}
	return s[:i], i
}
