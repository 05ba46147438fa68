package verifier

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mirelin/fitchproof/logic"
	"github.com/mirelin/fitchproof/normalize"
	"github.com/mirelin/fitchproof/rules"
	"github.com/mirelin/fitchproof/scope"
	"github.com/mirelin/fitchproof/subst"
	"github.com/mirelin/fitchproof/structure"
)

// Proof is a raw node sequence that has passed normalization and
// half-well-structuredness, together with its derived scope map and the
// set of atomic names treated as variables (as opposed to constants) for
// this proof. It is the only thing Check accepts.
type Proof struct {
	Nodes       []logic.ProofNode
	Lines       map[int]logic.NumberedLine
	Scope       scope.Scope
	AllowedVars subst.NameSet
}

// Construct normalizes rawNodes, checks half-well-structuredness, and
// determines scope. It returns a fatal error — wrapping whichever of
// normalize's or structure's sentinels applies — if the proof could not
// be brought into checkable shape.
func Construct(rawNodes []logic.ProofNode, allowedVars subst.NameSet, log *zap.SugaredLogger) (*Proof, error) {
	normalized, err := normalize.Normalize(rawNodes)
	if err != nil {
		if log != nil {
			log.Debugw("normalize failed", "error", err)
		}
		return nil, fmt.Errorf("malformed proof: %w", err)
	}

	if err := structure.CheckHalfWellStructured(normalized); err != nil {
		if log != nil {
			log.Debugw("structural check failed", "error", err)
		}
		return nil, fmt.Errorf("malformed proof: %w", err)
	}

	lines := make(map[int]logic.NumberedLine)
	for _, node := range normalized {
		if n, ok := logic.AsNumbered(node); ok {
			lines[n.LineNum] = n
		}
	}

	return &Proof{
		Nodes:       normalized,
		Lines:       lines,
		Scope:       scope.Determine(normalized),
		AllowedVars: allowedVars,
	}, nil
}

// ProofResult is the outcome of Check: either the proof is Correct, or it
// carries one message per violated line (Errors), or — if construction
// itself failed before any line could be checked — a single Fatal
// message and no per-line detail.
type ProofResult struct {
	Correct bool
	Fatal   string
	Errors  []string
}

// Check verifies every inference line of p against its cited material,
// using rules.Check, and accumulates every violation rather than
// stopping at the first.
func Check(p *Proof, log *zap.SugaredLogger) ProofResult {
	ctx := func(lineNum int) rules.Context {
		return rules.Context{
			Lines:       p.Lines,
			Visible:     p.Scope[lineNum],
			AllowedVars: p.AllowedVars,
		}
	}

	var errs []string
	var prevMeaningful logic.ProofNode
	prevPremise := false // prevMeaningful is a genuine premise
	for _, node := range p.Nodes {
		if _, isEmpty := node.(logic.Empty); isEmpty {
			continue
		}

		line, ok := logic.AsNumbered(node)
		if !ok {
			prevMeaningful = node
			prevPremise = false
			continue
		}

		if !line.IsInference() {
			// A boxed-constant premise is always genuine: structure.go
			// only ever lets one sit immediately after a SubproofOpen.
			// Otherwise a justification-less line is a genuine premise
			// only at the very start of the proof, right after another
			// genuine premise, or right after a SubproofOpen; anywhere
			// else (after a bar, an inference, or a closed subproof) it's
			// an inference the user never finished justifying.
			_, afterOpen := prevMeaningful.(logic.SubproofOpen)
			if line.IntroducesBoxedConstant() || prevMeaningful == nil || afterOpen || prevPremise {
				prevMeaningful = node
				prevPremise = true
				continue
			}
			errs = append(errs, fmt.Sprintf("line %d is missing a justification", line.LineNum))
			prevMeaningful = node
			prevPremise = false
			continue
		}

		prevPremise = false
		if line.Sentence == nil {
			errs = append(errs, fmt.Sprintf("line %d: inference has no sentence to check", line.LineNum))
			prevMeaningful = node
			continue
		}
		if err := rules.Check(ctx(line.LineNum), line.LineNum, line.Sentence, line.Justification); err != nil {
			if log != nil {
				log.Debugw("line failed", "line", line.LineNum, "error", err)
			}
			errs = append(errs, err.Error())
		}
		prevMeaningful = node
	}

	return ProofResult{
		Correct: len(errs) == 0,
		Errors:  errs,
	}
}

// CheckRaw is the convenience entry point combining Construct and Check:
// given raw parser output, it produces the final ProofResult directly,
// reporting construction failures as ProofResult.Fatal.
func CheckRaw(rawNodes []logic.ProofNode, allowedVars subst.NameSet, log *zap.SugaredLogger) ProofResult {
	p, err := Construct(rawNodes, allowedVars, log)
	if err != nil {
		return ProofResult{Fatal: err.Error()}
	}
	return Check(p, log)
}
