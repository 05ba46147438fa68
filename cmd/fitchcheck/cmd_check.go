package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mirelin/fitchproof/config"
	"github.com/mirelin/fitchproof/parser"
	"github.com/mirelin/fitchproof/verifier"
)

var (
	watch      bool
	jsonOutput bool
	configPath string
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a Fitch proof from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		if !watch || path == "" {
			return runCheckOnce(path)
		}
		return runCheckWatch(path)
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check the file whenever it changes")
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON instead of colored text")
	checkCmd.Flags().StringVarP(&configPath, "config", "c", ".fitchcheck.yaml", "path to the config file")
}

type checkReport struct {
	RunID   string   `json:"run_id"`
	Correct bool     `json:"correct"`
	Fatal   string   `json:"fatal,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func runCheckOnce(path string) error {
	text, err := readProofSource(path)
	if err != nil {
		return err
	}
	report := checkText(text)
	printReport(report)
	if !report.Correct {
		os.Exit(1)
	}
	return nil
}

func runCheckWatch(path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	recheck := func() {
		text, err := readProofSource(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		printReport(checkText(text))
	}
	recheck()

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) == filepath.Clean(path) && (event.Op&(fsnotify.Write|fsnotify.Create) != 0) {
				if logger != nil {
					logger.Debugw("file changed, re-checking", "path", path, "op", event.Op.String())
				}
				recheck()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)
		}
	}
}

func checkText(text string) checkReport {
	cfg, err := config.Load(configPath)
	if err != nil {
		return checkReport{RunID: uuid.NewString(), Fatal: err.Error()}
	}

	nodes, err := parser.Parse(text)
	if err != nil {
		return checkReport{RunID: uuid.NewString(), Fatal: err.Error()}
	}

	result := verifier.CheckRaw(nodes, cfg.AllowedVars(), logger)
	return checkReport{
		RunID:   uuid.NewString(),
		Correct: result.Correct,
		Fatal:   result.Fatal,
		Errors:  result.Errors,
	}
}

func readProofSource(path string) (string, error) {
	var r io.Reader
	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read proof: %w", err)
	}
	return string(data), nil
}

func printReport(report checkReport) {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
		return
	}

	if noColor {
		color.NoColor = true
	}

	if report.Fatal != "" {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stdout, "malformed proof:")
		fmt.Fprintln(os.Stdout, report.Fatal)
		return
	}
	if report.Correct {
		color.New(color.FgGreen, color.Bold).Fprintln(os.Stdout, "proof is correct")
		return
	}
	color.New(color.FgRed, color.Bold).Fprintln(os.Stdout, "proof is incorrect:")
	for _, e := range report.Errors {
		fmt.Fprintln(os.Stdout, " -", e)
	}
}
