package symexpr

import (
	"slices"
	"strconv"
	"unicode/utf8"
)

// Expr  = Term | Expr ('+' | '-') Term
// Term  = Factor | Term ('*' | '/') Factor | Term Factor
// Factor = num | name | funcname '(' Expr ')' | '-' Factor | Factor '^' Factor | '(' Expr ')'
//
// Juxtaposed terms multiply: "2x", ")(", and "2sin(x)" all insert an
// implicit '*'. Precedence and associativity are resolved by precedence
// climbing: every recursive parse carries a limiting operator, and parsing
// extends rightward only while the next operator binds more tightly.

// maxDepth bounds parser recursion so that pathologically nested input
// fails with a *DepthError instead of exhausting the stack.
const maxDepth = 1000

// primitive is the classified grammatical role of one token.
type primitive struct {
	// leaf is the constructed node for number and variable tokens.
	leaf *Node
	// kind and class identify the operator or function otherwise.
	kind  Kind
	class class
}

// classify resolves the grammatical role of tok. hasPrev tells whether a
// left operand has already been parsed; it decides whether '-' is negation
// or subtraction. The checks happen in a fixed order: number, prefix
// operator (no left operand), binary operator, prefix operator (fallback),
// function or variable name.
func classify(tok Token, hasPrev bool) (primitive, error) {
	if tok.Kind == TokenNumber {
		// The tokenizer validated the literal; only range overflow can
		// remain, and that saturates to an infinity.
		v, _ := strconv.ParseFloat(tok.Text, 64)
		return primitive{leaf: Number(v), class: classLeaf}, nil
	}
	if !hasPrev {
		if k, ok := prefixOps[tok.Text]; ok {
			return primitive{kind: k, class: classPrefix}, nil
		}
	}
	if k, ok := binaryOps[tok.Text]; ok {
		return primitive{kind: k, class: classBinary}, nil
	}
	if hasPrev {
		if k, ok := prefixOps[tok.Text]; ok {
			return primitive{kind: k, class: classPrefix}, nil
		}
	}
	if tok.Kind == TokenName {
		if k, ok := unaryFuncs[tok.Text]; ok {
			return primitive{kind: k, class: classFunc}, nil
		}
		return primitive{leaf: Variable(tok.Text), class: classLeaf}, nil
	}
	return primitive{}, &TokenError{Col: tok.Pos, Text: tok.Text}
}

// Parse builds the AST for a token sequence, normally obtained from
// Tokenize. Malformed input fails with one of *BracketError, *CallError,
// *OperatorError, *TokenError, *EmptyError, or *DepthError; there is no
// partial result.
func Parse(tokens []Token) (*Node, error) {
	// The parser inserts implicit multiplication tokens, so work on a copy.
	p := parser{toks: slices.Clone(tokens)}
	var prev *Node
	i := 0
	for i < len(p.toks) {
		n, j, err := p.parseAt(i, None, prev)
		if err != nil {
			return nil, err
		}
		prev, i = n, j
	}
	if prev == nil {
		return nil, &EmptyError{Col: 1}
	}
	return prev, nil
}

type parser struct {
	toks  []Token
	depth int
}

// parseAt parses a subexpression beginning at token i. It extends to the
// right until the next operator binds no more tightly than limit, then
// returns the parsed node and the index of the first unconsumed token.
// prev is the already-parsed left operand, if any.
//
// Rightward extension iterates rather than recurses, so only bracket,
// call, and operand nesting counts toward maxDepth; a flat operator chain
// of any length parses at constant depth.
func (p *parser) parseAt(i int, limit Kind, prev *Node) (*Node, int, error) {
	if p.depth++; p.depth > maxDepth {
		return nil, 0, &DepthError{Limit: maxDepth}
	}
	defer func() { p.depth-- }()
	for {
		if i >= len(p.toks) {
			return nil, 0, &EmptyError{Col: p.endCol()}
		}
		tok := p.toks[i]
		var n *Node
		j := i + 1
		switch {
		case tok.Kind == TokenOpen:
			inner, k, err := p.parseAt(i+1, None, nil)
			if err != nil {
				return nil, 0, err
			}
			if k >= len(p.toks) || p.toks[k].Kind != TokenClose {
				return nil, 0, &BracketError{Col: p.colAt(k), Left: "("}
			}
			n, j = inner, k+1
		case tok.Kind == TokenClose:
			return nil, 0, &BracketError{Col: tok.Pos, Right: ")"}
		default:
			pr, err := classify(tok, prev != nil)
			if err != nil {
				return nil, 0, err
			}
			switch pr.class {
			case classLeaf:
				n = pr.leaf
			case classFunc:
				if j >= len(p.toks) || p.toks[j].Kind != TokenOpen {
					return nil, 0, &CallError{Col: tok.Pos, Func: tok.Text}
				}
				arg, k, err := p.parseAt(j+1, None, nil)
				if err != nil {
					return nil, 0, err
				}
				if k >= len(p.toks) || p.toks[k].Kind != TokenClose {
					return nil, 0, &BracketError{Col: p.colAt(k), Left: "("}
				}
				n, j = mk(pr.kind, arg), k+1
			case classPrefix:
				// The operand is parsed with the prefix operator itself as the
				// limit, so -x^2 is -(x^2) but -2x is (-2)*x.
				operand, k, err := p.parseAt(j, pr.kind, nil)
				if err != nil {
					return nil, 0, err
				}
				n, j = mk(pr.kind, operand), k
			case classBinary:
				if prev == nil {
					return nil, 0, &OperatorError{Col: tok.Pos, Operator: tok.Text}
				}
				rhs, k, err := p.parseAt(j, pr.kind, prev)
				if err != nil {
					return nil, 0, err
				}
				n, j = mk(pr.kind, prev, rhs), k
			}
		}
		// Continuation: decide whether the next token extends this node.
		if j >= len(p.toks) || p.toks[j].Kind == TokenClose {
			return n, j, nil
		}
		next := None
		if p.toks[j].Kind != TokenOpen {
			pr, err := classify(p.toks[j], true)
			if err != nil {
				return nil, 0, err
			}
			if pr.class == classBinary {
				next = pr.kind
			}
		}
		if next == None {
			// Juxtaposition is multiplication.
			p.toks = slices.Insert(p.toks, j, Token{Text: "*", Kind: TokenOp, Pos: p.toks[j].Pos})
			next = Mul
		}
		ni, li := &kinds[next], &kinds[limit]
		if ni.prec > li.prec || (ni.right && !ni.left && ni.prec == li.prec) {
			i, prev = j, n
			continue
		}
		return n, j, nil
	}
}

// colAt returns the column of token i, or the column just past the input if
// i is out of range.
func (p *parser) colAt(i int) int {
	if i < len(p.toks) {
		return p.toks[i].Pos
	}
	return p.endCol()
}

func (p *parser) endCol() int {
	if len(p.toks) == 0 {
		return 1
	}
	last := p.toks[len(p.toks)-1]
	return last.Pos + utf8.RuneCountInString(last.Text)
}
