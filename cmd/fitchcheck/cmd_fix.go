package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mirelin/fitchproof/logic"
	"github.com/mirelin/fitchproof/parser"
	"github.com/mirelin/fitchproof/verifier"
)

var fixCmd = &cobra.Command{
	Use:   "fix <file>",
	Short: "Renumber a proof's lines and rewrite its citations in place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		text, err := readProofSource(path)
		if err != nil {
			return err
		}

		nodes, err := parser.Parse(text)
		if err != nil {
			return err
		}

		verifier.FixLineNumbers(nodes)

		rewritten := renderProof(nodes)
		if err := os.WriteFile(path, []byte(rewritten), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintln(os.Stdout, "renumbered", path)
		return nil
	},
}

// renderProof is the inverse of parser.Parse for the subset of the
// format fix needs to round-trip: depth, line number, sentence, and
// justification. It does not attempt to reformat whitespace the user
// originally chose.
func renderProof(nodes []logic.ProofNode) string {
	var b strings.Builder
	for _, node := range nodes {
		b.WriteString(strings.Repeat("| ", node.Depth()-1))
		switch n := node.(type) {
		case logic.Empty:
			// blank
		case logic.FitchBar:
			b.WriteString("---")
		case logic.NumberedLine:
			fmt.Fprintf(&b, "%d. ", n.LineNum)
			if n.BoxedConstant != nil {
				fmt.Fprintf(&b, "[%s]", n.BoxedConstant.String())
			} else {
				b.WriteString(n.Sentence.String())
				if n.Justification != nil {
					b.WriteString(" : ")
					b.WriteString(renderJustification(n.Justification))
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
