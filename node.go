package symexpr

import (
	"math"
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. Exactly one
// of Val, Name, or Args is meaningful, selected by Kind: Num carries Val,
// Var carries Name, and every operator or function kind carries Args.
//
// Nodes are immutable by convention. Evaluate, Derivative, and Simplify
// never modify their receiver; rewritten trees may share subtrees with the
// original.
type Node struct {
	Kind Kind
	Val  float64
	Name string
	Args []*Node
}

// Kind identifies the kind of an AST node.
type Kind int8

const (
	None Kind = iota

	Num // numeric literal
	Var // variable reference

	Add // x + y
	Sub // x - y
	Mul // x * y
	Div // x / y
	Pow // x ^ y
	Neg // prefix -x

	Sin
	Cos
	Tan
	Sec
	Cot
	Csc
	Ln
	Sqrt
	Abs
	Sign
	Arcsin
)

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) || kinds[k].name == "" {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k].name
}

// class is the grammatical role of a node kind.
type class int8

const (
	classNone class = iota
	classLeaf
	classPrefix
	classBinary
	classFunc
)

// operator reports whether the class takes part in precedence decisions.
func (c class) operator() bool {
	return c == classPrefix || c == classBinary
}

// kindInfo is the static description of a node kind.
type kindInfo struct {
	name    string
	symbol  string
	class   class
	minArgs int
	maxArgs int
	prec    int8
	left    bool
	right   bool
	spaced  bool
}

// kinds describes every node kind. Precedence values are doubled relative
// to the usual 1/2/3 ladder so that unary negation can sit strictly between
// multiplication and exponentiation.
var kinds = [...]kindInfo{
	None: {name: "None"},

	Num: {name: "Num", class: classLeaf},
	Var: {name: "Var", class: classLeaf},

	Add: {name: "Add", symbol: "+", class: classBinary, minArgs: 2, maxArgs: 2, prec: 2, left: true, right: true, spaced: true},
	Sub: {name: "Sub", symbol: "-", class: classBinary, minArgs: 2, maxArgs: 2, prec: 2, left: true, spaced: true},
	Mul: {name: "Mul", symbol: "*", class: classBinary, minArgs: 2, maxArgs: 2, prec: 4, left: true, right: true},
	Div: {name: "Div", symbol: "/", class: classBinary, minArgs: 2, maxArgs: 2, prec: 4, left: true},
	Pow: {name: "Pow", symbol: "^", class: classBinary, minArgs: 2, maxArgs: 2, prec: 6, right: true},
	Neg: {name: "Neg", symbol: "-", class: classPrefix, minArgs: 1, maxArgs: 1, prec: 5, left: true},

	Sin:    {name: "Sin", symbol: "sin", class: classFunc, minArgs: 1, maxArgs: 1},
	Cos:    {name: "Cos", symbol: "cos", class: classFunc, minArgs: 1, maxArgs: 1},
	Tan:    {name: "Tan", symbol: "tan", class: classFunc, minArgs: 1, maxArgs: 1},
	Sec:    {name: "Sec", symbol: "sec", class: classFunc, minArgs: 1, maxArgs: 1},
	Cot:    {name: "Cot", symbol: "cot", class: classFunc, minArgs: 1, maxArgs: 1},
	Csc:    {name: "Csc", symbol: "csc", class: classFunc, minArgs: 1, maxArgs: 1},
	Ln:     {name: "Ln", symbol: "ln", class: classFunc, minArgs: 1, maxArgs: 1},
	Sqrt:   {name: "Sqrt", symbol: "sqrt", class: classFunc, minArgs: 1, maxArgs: 1},
	Abs:    {name: "Abs", symbol: "abs", class: classFunc, minArgs: 1, maxArgs: 1},
	Sign:   {name: "Sign", symbol: "sign", class: classFunc, minArgs: 1, maxArgs: 1},
	Arcsin: {name: "Arcsin", symbol: "arcsin", class: classFunc, minArgs: 1, maxArgs: 1},
}

// The symbol tables map surface syntax to node kinds. They are built once
// and never modified.
var (
	binaryOps  = map[string]Kind{"+": Add, "-": Sub, "*": Mul, "/": Div, "^": Pow}
	prefixOps  = map[string]Kind{"-": Neg}
	unaryFuncs = map[string]Kind{
		"sin": Sin, "cos": Cos, "tan": Tan,
		"sec": Sec, "cot": Cot, "csc": Csc,
		"ln": Ln, "sqrt": Sqrt, "abs": Abs,
		"sign": Sign, "arcsin": Arcsin,
	}
)

// Number returns a numeric literal node.
func Number(v float64) *Node {
	return &Node{Kind: Num, Val: v}
}

// Variable returns a variable reference node.
func Variable(name string) *Node {
	return &Node{Kind: Var, Name: name}
}

// NewNode constructs an operator or function node, checking that the child
// count lies within the kind's arity bounds. A violation is an *ArityError.
func NewNode(k Kind, children ...*Node) (*Node, error) {
	info := &kinds[k]
	if len(children) < info.minArgs || len(children) > info.maxArgs {
		return nil, &ArityError{Kind: k, Got: len(children), Min: info.minArgs, Max: info.maxArgs}
	}
	return &Node{Kind: k, Args: children}, nil
}

// mk is NewNode for shapes that are correct by construction.
func mk(k Kind, children ...*Node) *Node {
	n, err := NewNode(k, children...)
	if err != nil {
		panic("symexpr: " + err.Error())
	}
	return n
}

// Equal reports whether two trees are structurally equal: the same kind and
// symbol with pairwise equal children, in order. This is syntactic, not
// mathematical, equality; -(-x) is not equal to x until simplified.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.Kind != m.Kind {
		return false
	}
	switch n.Kind {
	case Num:
		return n.Val == m.Val || (math.IsNaN(n.Val) && math.IsNaN(m.Val))
	case Var:
		return n.Name == m.Name
	}
	if len(n.Args) != len(m.Args) {
		return false
	}
	for i := range n.Args {
		if !n.Args[i].Equal(m.Args[i]) {
			return false
		}
	}
	return true
}

// isNum reports whether n is the numeric literal v.
func (n *Node) isNum(v float64) bool {
	return n.Kind == Num && n.Val == v
}

// String renders the tree as minimally parenthesized infix text. A child is
// wrapped in parentheses iff it is itself an operator of lower precedence
// than its parent, or of equal precedence on a side the parent is not
// associative on, mirroring the parser's table so that a rendered tree
// parses back without redundant parentheses.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	info := &kinds[n.Kind]
	switch info.class {
	case classLeaf:
		if n.Kind == Num {
			b.WriteString(strconv.FormatFloat(n.Val, 'g', -1, 64))
		} else {
			b.WriteString(n.Name)
		}
	case classPrefix:
		b.WriteString(info.symbol)
		child := n.Args[0]
		if ci := &kinds[child.Kind]; ci.class.operator() && info.prec > ci.prec {
			b.WriteByte('(')
			child.fmt(b)
			b.WriteByte(')')
		} else {
			child.fmt(b)
		}
	case classBinary:
		fmtSide(b, n.Args[0], info, info.left)
		if info.spaced {
			b.WriteByte(' ')
		}
		b.WriteString(info.symbol)
		if info.spaced {
			b.WriteByte(' ')
		}
		fmtSide(b, n.Args[1], info, info.right)
	case classFunc:
		b.WriteString(info.symbol)
		b.WriteByte('(')
		n.Args[0].fmt(b)
		b.WriteByte(')')
	default:
		panic("symexpr: invalid node kind " + n.Kind.String())
	}
}

func fmtSide(b *strings.Builder, child *Node, parent *kindInfo, assoc bool) {
	ci := &kinds[child.Kind]
	if ci.class.operator() && (ci.prec < parent.prec || (ci.prec == parent.prec && !assoc)) {
		b.WriteByte('(')
		child.fmt(b)
		b.WriteByte(')')
		return
	}
	child.fmt(b)
}
