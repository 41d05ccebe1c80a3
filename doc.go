// Package symexpr implements a symbolic calculator over textual algebraic
// expressions.
//
// An expression string is tokenized and parsed into an abstract syntax tree
// which supports numeric evaluation under a variable binding environment,
// structural differentiation with respect to a single variable, and
// algebraic simplification. The syntax is intended to be the math you'd
// write in your notes: "2x" is a multiplication, "sin(x)" is a function
// call, and "-2^2" is "-(2^2)".
//
// All tree operations return new trees; a Node is never mutated after
// construction, so a parsed expression may be evaluated, differentiated,
// and simplified any number of times.
package symexpr
