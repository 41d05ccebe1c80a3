// Package repl provides the line-editing read-eval-print loop shared by the
// evl, ddx, and dbg commands.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// Config configures a loop.
type Config struct {
	// Prompt is printed before each input line.
	Prompt string
	// History names the history file kept in the user's home directory.
	// Empty disables history persistence.
	History string
}

// Run reads lines until EOF or "exit()", passing each nonempty line to
// handle. An error from handle is reported and the loop continues; only a
// terminal error ends the loop early.
func Run(cfg Config, handle func(line string) error) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if cfg.History != "" {
		if home, err := os.UserHomeDir(); err == nil {
			histPath = filepath.Join(home, cfg.History)
			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(cfg.Prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit()" {
			return nil
		}
		ln.AppendHistory(line)
		if err := handle(line); err != nil {
			fmt.Println("error:", err)
		}
	}
}
