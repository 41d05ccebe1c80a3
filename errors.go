package symexpr

import "strconv"

// InputError is an error with position information. Every error resulting
// from invalid expression text implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the
	// error.
	Pos() int
}

// LexError indicates a character that begins no token.
type LexError struct {
	// Text is the offending text.
	Text string
	// Col is the rune column of the offending character.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// BracketError indicates mismatched parentheses.
type BracketError struct {
	// Col is the position at which the mismatch was detected.
	Col int
	// Left is the unmatched open parenthesis, if any.
	Left string
	// Right is the unmatched close parenthesis, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close parenthesis with no open parenthesis")
	}
	return errpos(err.Col, "open parenthesis with no close parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// CallError indicates a unary function name not followed by a parenthesized
// argument.
type CallError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function name.
	Func string
}

func (err *CallError) Error() string {
	return errpos(err.Col, "call of "+err.Func+" requires parentheses")
}

func (err *CallError) Pos() int {
	return err.Col
}

// OperatorError indicates a binary operator with no left operand.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator token.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "binary operator "+strconv.Quote(err.Operator)+" missing first argument")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// TokenError indicates a token that fits no grammatical role.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token text.
	Text string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unrecognized token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// EmptyError indicates a missing expression or operand.
type EmptyError struct {
	// Col is the position at which an expression was expected.
	Col int
}

func (err *EmptyError) Error() string {
	return errpos(err.Col, "expected an expression")
}

func (err *EmptyError) Pos() int {
	return err.Col
}

// DepthError indicates an expression nested more deeply than the parser
// allows.
type DepthError struct {
	// Limit is the maximum nesting depth.
	Limit int
}

func (err *DepthError) Error() string {
	return "expression nested deeper than " + strconv.Itoa(err.Limit) + " levels"
}

// ArityError indicates a node constructed with a child count outside its
// kind's bounds.
type ArityError struct {
	// Kind is the node kind being constructed.
	Kind Kind
	// Got is the number of children supplied.
	Got int
	// Min and Max are the kind's arity bounds.
	Min, Max int
}

func (err *ArityError) Error() string {
	return err.Kind.String() + " expected between " + strconv.Itoa(err.Min) + " and " + strconv.Itoa(err.Max) + " arguments, got " + strconv.Itoa(err.Got)
}

// NameError indicates a variable missing from the binding environment
// during evaluation.
type NameError struct {
	// Name is the unbound variable name.
	Name string
}

func (err *NameError) Error() string {
	return "cannot evaluate unbound variable " + strconv.Quote(err.Name)
}

// errpos prefixes a message with the column it applies to.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*EmptyError)(nil)
)
