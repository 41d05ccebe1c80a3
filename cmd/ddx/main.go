// Ddx is an interactive differentiation prompt. Each input line is parsed
// and differentiated with respect to the -var variable, and the simplified
// derivative is printed.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/symexpr/symexpr"
	"github.com/symexpr/symexpr/internal/repl"
)

func main() {
	log.SetFlags(0)
	variable := flag.String("var", "x", "variable to differentiate with respect to")
	flag.Parse()

	err := repl.Run(repl.Config{Prompt: "ddx> ", History: ".ddx_history"}, func(line string) error {
		toks, err := symexpr.Tokenize(line)
		if err != nil {
			return err
		}
		n, err := symexpr.Parse(toks)
		if err != nil {
			return err
		}
		fmt.Println(">>>", n.Derivative(*variable))
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}
