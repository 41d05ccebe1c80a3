// Dbg is a verbose debugging prompt. For each input line it prints the
// token stream, the parse tree, the infix rendering, the simplification,
// and the derivative.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/alecthomas/repr"

	"github.com/symexpr/symexpr"
	"github.com/symexpr/symexpr/internal/repl"
)

func main() {
	log.SetFlags(0)
	variable := flag.String("var", "x", "variable to differentiate with respect to")
	flag.Parse()

	err := repl.Run(repl.Config{Prompt: "> ", History: ".dbg_history"}, func(line string) error {
		toks, err := symexpr.Tokenize(line)
		if err != nil {
			return err
		}
		texts := make([]string, len(toks))
		for i, t := range toks {
			texts[i] = t.Text
		}
		fmt.Println("tok >>", texts)
		n, err := symexpr.Parse(toks)
		if err != nil {
			return err
		}
		fmt.Println("prs >>", repr.String(n))
		fmt.Println("str >>", n)
		fmt.Println("smp >>", n.Simplify())
		fmt.Println("ddx >>", n.Derivative(*variable))
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}
