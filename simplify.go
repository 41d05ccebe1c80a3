package symexpr

// Simplify rewrites the tree into a simpler equivalent form and returns it.
// Children are simplified first; a node whose children are all numeric
// literals constant-folds to the number it evaluates to, and otherwise the
// kind's identity rules apply. Simplify is idempotent.
func (n *Node) Simplify() *Node {
	if kinds[n.Kind].class == classLeaf {
		return n
	}
	args := make([]*Node, len(n.Args))
	numeric := true
	for i, c := range n.Args {
		args[i] = c.Simplify()
		numeric = numeric && args[i].Kind == Num
	}
	s := &Node{Kind: n.Kind, Args: args}
	if numeric {
		v, _ := s.Evaluate(nil)
		return Number(v)
	}
	x := args[0]
	var y *Node
	if len(args) == 2 {
		y = args[1]
	}
	switch n.Kind {
	case Add:
		if x.isNum(0) {
			return y
		}
		if y.isNum(0) {
			return x
		}
	case Sub:
		if y.isNum(0) {
			return x
		}
		if x.isNum(0) {
			return mk(Neg, y).Simplify()
		}
	case Mul:
		if x.isNum(0) || y.isNum(0) {
			return Number(0)
		}
		if x.isNum(1) {
			return y
		}
		if y.isNum(1) {
			return x
		}
	case Div:
		if x.isNum(0) {
			return Number(0)
		}
		if y.isNum(1) {
			return x
		}
		if x.Equal(y) {
			return Number(1)
		}
	case Pow:
		if x.isNum(0) && !y.isNum(0) {
			return Number(0)
		}
		if y.isNum(0) && !x.isNum(0) {
			return Number(1)
		}
		if x.isNum(1) {
			return Number(1)
		}
		if y.isNum(1) {
			return x
		}
	case Ln:
		if x.isNum(1) {
			return Number(0)
		}
		if x.Kind == Var && x.Name == "E" {
			return Number(1)
		}
	case Neg:
		if x.Kind == Neg {
			return x.Args[0]
		}
		if x.isNum(0) {
			return x
		}
	}
	return s
}
