package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mirelin/fitchproof/config"
	"github.com/mirelin/fitchproof/parser"
	"github.com/mirelin/fitchproof/verifier"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Enter proof lines interactively, re-checking after each one",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

const (
	replPrompt = "fitch> "
)

func runREPL() error {
	rl, err := readline.New(replPrompt)
	if err != nil {
		return fmt.Errorf("failed to start REPL: %w", err)
	}
	defer rl.Close()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	allowed := cfg.AllowedVars()

	var lines []string
	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		lines = append(lines, line)
		text := strings.Join(lines, "\n")

		nodes, perr := parser.Parse(text)
		if perr != nil {
			color.New(color.FgYellow).Fprintln(os.Stdout, "unparsed so far:", perr)
			continue
		}

		result := verifier.CheckRaw(nodes, allowed, logger)
		switch {
		case result.Fatal != "":
			color.New(color.FgYellow).Fprintln(os.Stdout, "incomplete so far:", result.Fatal)
		case result.Correct:
			color.New(color.FgGreen).Fprintln(os.Stdout, "correct so far")
		default:
			color.New(color.FgRed).Fprintln(os.Stdout, "violations so far:")
			for _, e := range result.Errors {
				fmt.Fprintln(os.Stdout, " -", e)
			}
		}
	}
}
