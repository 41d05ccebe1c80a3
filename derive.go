package symexpr

// Derivative returns the structural derivative of the tree with respect to
// the variable v. Each differentiation rule simplifies its result, so the
// returned tree is already simplified.
//
// The derivative is syntactic: sign differentiates to 0 everywhere, and
// the general power rule assumes a positive base.
func (n *Node) Derivative(v string) *Node {
	switch n.Kind {
	case Num:
		return Number(0)
	case Var:
		if n.Name == v {
			return Number(1)
		}
		return Number(0)
	case Add, Sub:
		x, y := n.Args[0], n.Args[1]
		return mk(n.Kind, x.Derivative(v), y.Derivative(v)).Simplify()
	case Mul:
		// d(x*y) = x'*y + y'*x
		x, y := n.Args[0], n.Args[1]
		return mk(Add,
			mk(Mul, x.Derivative(v), y),
			mk(Mul, y.Derivative(v), x),
		).Simplify()
	case Div:
		// d(x/y) = (x'*y - y'*x) / y^2
		x, y := n.Args[0], n.Args[1]
		return mk(Div,
			mk(Sub, mk(Mul, x.Derivative(v), y), mk(Mul, y.Derivative(v), x)),
			mk(Pow, y, Number(2)),
		).Simplify()
	case Pow:
		x, y := n.Args[0], n.Args[1]
		if y.Kind == Num {
			// d(x^c) = c * x^(c-1) * x'
			return mk(Mul,
				mk(Mul, Number(y.Val), mk(Pow, x, Number(y.Val-1))),
				x.Derivative(v),
			).Simplify()
		}
		// d(x^y) = x^y * (y'*ln(x) + x'*y/x), by logarithmic
		// differentiation.
		return mk(Mul, n, mk(Add,
			mk(Mul, y.Derivative(v), mk(Ln, x)),
			mk(Div, mk(Mul, x.Derivative(v), y), x),
		)).Simplify()
	case Neg:
		return mk(Neg, n.Args[0].Derivative(v)).Simplify()
	case Sin:
		return chain(mk(Cos, n.Args[0]), n.Args[0], v)
	case Cos:
		return chain(mk(Neg, mk(Sin, n.Args[0])), n.Args[0], v)
	case Tan:
		return chain(mk(Pow, mk(Sec, n.Args[0]), Number(2)), n.Args[0], v)
	case Sec:
		x := n.Args[0]
		return chain(mk(Mul, mk(Sec, x), mk(Tan, x)), x, v)
	case Cot:
		x := n.Args[0]
		return chain(mk(Neg, mk(Pow, mk(Csc, x), Number(2))), x, v)
	case Csc:
		x := n.Args[0]
		return chain(mk(Mul, mk(Neg, mk(Csc, x)), mk(Cot, x)), x, v)
	case Ln:
		x := n.Args[0]
		return mk(Div, x.Derivative(v), x).Simplify()
	case Sqrt:
		x := n.Args[0]
		return chain(mk(Div, Number(1), mk(Mul, Number(2), mk(Sqrt, x))), x, v)
	case Abs:
		return chain(mk(Sign, n.Args[0]), n.Args[0], v)
	case Sign:
		// Zero everywhere, including the discontinuity.
		return Number(0)
	case Arcsin:
		x := n.Args[0]
		return chain(mk(Div, Number(1), mk(Sqrt, mk(Sub, Number(1), mk(Pow, x, Number(2))))), x, v)
	default:
		panic("symexpr: invalid node kind " + n.Kind.String())
	}
}

// chain multiplies an outer derivative by the derivative of the inner
// expression.
func chain(outer, inner *Node, v string) *Node {
	return mk(Mul, outer, inner.Derivative(v)).Simplify()
}
