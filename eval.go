package symexpr

import "math"

// defaultBindings are the built-in constants available to every
// evaluation. Caller bindings shadow them.
var defaultBindings = map[string]float64{
	"Pi": math.Pi,
	"E":  math.E,
}

// Evaluate reduces the tree to a number under the given binding
// environment. The environment is the caller's bindings merged over the
// built-in constants Pi and E; a nil map is an empty environment. A
// variable bound in neither is a *NameError. Trigonometric functions work
// in radians.
func (n *Node) Evaluate(bindings map[string]float64) (float64, error) {
	switch n.Kind {
	case Num:
		return n.Val, nil
	case Var:
		if v, ok := bindings[n.Name]; ok {
			return v, nil
		}
		if v, ok := defaultBindings[n.Name]; ok {
			return v, nil
		}
		return 0, &NameError{Name: n.Name}
	}
	args := make([]float64, len(n.Args))
	for i, c := range n.Args {
		v, err := c.Evaluate(bindings)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	switch n.Kind {
	case Add:
		return args[0] + args[1], nil
	case Sub:
		return args[0] - args[1], nil
	case Mul:
		return args[0] * args[1], nil
	case Div:
		return args[0] / args[1], nil
	case Pow:
		return math.Pow(args[0], args[1]), nil
	case Neg:
		return -args[0], nil
	case Sin:
		return math.Sin(args[0]), nil
	case Cos:
		return math.Cos(args[0]), nil
	case Tan:
		return math.Tan(args[0]), nil
	case Sec:
		return 1 / math.Cos(args[0]), nil
	case Cot:
		return 1 / math.Tan(args[0]), nil
	case Csc:
		return 1 / math.Sin(args[0]), nil
	case Ln:
		return math.Log(args[0]), nil
	case Sqrt:
		return math.Sqrt(args[0]), nil
	case Abs:
		return math.Abs(args[0]), nil
	case Sign:
		switch {
		case args[0] > 0:
			return 1, nil
		case args[0] < 0:
			return -1, nil
		default:
			return 0, nil
		}
	case Arcsin:
		return math.Asin(args[0]), nil
	default:
		panic("symexpr: invalid node kind " + n.Kind.String())
	}
}
