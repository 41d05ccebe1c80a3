package symexpr

import (
	"errors"
	"strings"
	"testing"
)

// parseString is a test shortcut for Tokenize followed by Parse.
func parseString(t *testing.T, src string) *Node {
	t.Helper()
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	n, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return n
}

// checkArity verifies that every node of a parsed tree satisfies its
// kind's arity bounds.
func checkArity(t *testing.T, n *Node) {
	t.Helper()
	info := &kinds[n.Kind]
	if len(n.Args) < info.minArgs || len(n.Args) > info.maxArgs {
		t.Errorf("%v node has %d children, want %d to %d", n.Kind, len(n.Args), info.minArgs, info.maxArgs)
	}
	for _, c := range n.Args {
		checkArity(t, c)
	}
}

func TestParse(t *testing.T) {
	x, y := Variable("x"), Variable("y")
	cases := []struct {
		src  string
		want *Node
	}{
		{"7", Number(7)},
		{"x", x},
		{"2+3*4", mk(Add, Number(2), mk(Mul, Number(3), Number(4)))},
		{"2*3+4", mk(Add, mk(Mul, Number(2), Number(3)), Number(4))},
		{"1+2+3", mk(Add, mk(Add, Number(1), Number(2)), Number(3))},
		{"2-3-4", mk(Sub, mk(Sub, Number(2), Number(3)), Number(4))},
		{"x/y/x", mk(Div, mk(Div, x, y), x)},
		{"2^3^2", mk(Pow, Number(2), mk(Pow, Number(3), Number(2)))},
		{"(2^3)^2", mk(Pow, mk(Pow, Number(2), Number(3)), Number(2))},
		// implicit multiplication
		{"2x", mk(Mul, Number(2), x)},
		{"2 x y", mk(Mul, mk(Mul, Number(2), x), y)},
		{"(1+2)(3+4)", mk(Mul, mk(Add, Number(1), Number(2)), mk(Add, Number(3), Number(4)))},
		{"2sin(x)", mk(Mul, Number(2), mk(Sin, x))},
		// prefix negation binds between * and ^
		{"-x", mk(Neg, x)},
		{"-x^2", mk(Neg, mk(Pow, x, Number(2)))},
		{"-2x", mk(Mul, mk(Neg, Number(2)), x)},
		// A '-' after a binary operator is itself binary against the
		// operand threaded into the right-hand parse.
		{"2*-3", mk(Mul, Number(2), mk(Sub, Number(2), Number(3)))},
		{"x - -1", mk(Sub, x, mk(Sub, x, Number(1)))},
		// functions
		{"sin(x)", mk(Sin, x)},
		{"sqrt(x+1)", mk(Sqrt, mk(Add, x, Number(1)))},
		{"arcsin(y)", mk(Arcsin, y)},
		// grouping
		{"(x)", x},
		{"((x))", x},
		{"2*(3+4)", mk(Mul, Number(2), mk(Add, Number(3), Number(4)))},
		{"E^(3x^2 - 42)",
			mk(Pow, Variable("E"),
				mk(Sub, mk(Mul, Number(3), mk(Pow, x, Number(2))), Number(42)))},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			got := parseString(t, c.src)
			if !got.Equal(c.want) {
				t.Errorf("Parse(%q) = %v, want %v", c.src, got, c.want)
			}
			checkArity(t, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src   string
		match func(error) bool
		name  string
	}{
		{"(1+2", asErr[*BracketError](), "BracketError"},
		{")", asErr[*BracketError](), "BracketError"},
		{"1)", asErr[*BracketError](), "BracketError"},
		{"()", asErr[*BracketError](), "BracketError"},
		{"sin x", asErr[*CallError](), "CallError"},
		{"sin", asErr[*CallError](), "CallError"},
		{"sin(x", asErr[*BracketError](), "BracketError"},
		{"*2", asErr[*OperatorError](), "OperatorError"},
		{"/", asErr[*OperatorError](), "OperatorError"},
		{"1+", asErr[*EmptyError](), "EmptyError"},
		{"", asErr[*EmptyError](), "EmptyError"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", c.src, err)
			}
			n, err := Parse(toks)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want %s", c.src, n, c.name)
			}
			if !c.match(err) {
				t.Errorf("Parse(%q) = %v, want %s", c.src, err, c.name)
			}
		})
	}
}

func asErr[T error]() func(error) bool {
	return func(err error) bool {
		var target T
		return errors.As(err, &target)
	}
}

func TestParseDepth(t *testing.T) {
	deep := strings.Repeat("(", 50) + "1" + strings.Repeat(")", 50)
	n := parseString(t, deep)
	if !n.Equal(Number(1)) {
		t.Errorf("deeply grouped 1 parsed to %v", n)
	}

	// Only nesting counts toward the limit; a flat chain of any length
	// parses.
	terms := 2 * maxDepth
	flat := strings.Repeat("1+", terms-1) + "1"
	sum := parseString(t, flat)
	if v, err := sum.Evaluate(nil); err != nil || v != float64(terms) {
		t.Errorf("flat sum of %d terms evaluated to %v, %v", terms, v, err)
	}

	abyss := strings.Repeat("(", 2*maxDepth) + "1" + strings.Repeat(")", 2*maxDepth)
	toks, err := Tokenize(abyss)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(toks)
	var derr *DepthError
	if !errors.As(err, &derr) {
		t.Fatalf("Parse of %d nested groups = %v, want *DepthError", 2*maxDepth, err)
	}
	if derr.Limit != maxDepth {
		t.Errorf("DepthError limit = %d, want %d", derr.Limit, maxDepth)
	}
}

func TestParseDoesNotConsumeTokens(t *testing.T) {
	// Parse copies the token sequence before inserting implicit
	// multiplications.
	toks, err := Tokenize("2x")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(toks); err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 {
		t.Errorf("Parse modified its argument: %v", toks)
	}
}
