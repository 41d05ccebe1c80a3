// Evl is an interactive evaluation prompt. Each input line is parsed and
// evaluated; variables may be predefined with -given.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/symexpr/symexpr"
	"github.com/symexpr/symexpr/internal/repl"
)

func main() {
	log.SetFlags(0)
	bindings := make(map[string]float64)
	flag.Func("given", "name=value variable definition (any number of times)", func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(d[1]), 64)
		if err != nil {
			return err
		}
		bindings[strings.TrimSpace(d[0])] = v
		return nil
	})
	flag.Parse()

	err := repl.Run(repl.Config{Prompt: "evl> ", History: ".evl_history"}, func(line string) error {
		toks, err := symexpr.Tokenize(line)
		if err != nil {
			return err
		}
		n, err := symexpr.Parse(toks)
		if err != nil {
			return err
		}
		v, err := n.Evaluate(bindings)
		if err != nil {
			return err
		}
		fmt.Println(">>>", v)
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}
