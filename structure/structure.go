package structure

import (
	"fmt"

	"github.com/mirelin/fitchproof/logic"
)

// CheckHalfWellStructured enforces the adjacency rules of spec.md §4.2 and
// the 1,2,3,... line-numbering law over a normalized node sequence (one
// that has already been through normalize.Normalize). It returns the
// first violation found, or nil if the proof is half-well-formed.
func CheckHalfWellStructured(nodes []logic.ProofNode) error {
	// 1. An all-Empty proof has nothing to check.
	firstIdx, ok := nextMeaningful(nodes, 0)
	if !ok {
		return ErrEmptyProof
	}

	// 2. A proof may open with a Fitch bar (no premises) or a premise.
	switch n := nodes[firstIdx].(type) {
	case logic.FitchBar:
		// ok
	case logic.NumberedLine:
		if n.IsInference() {
			return fmt.Errorf("on line %d: %w", n.LineNum, ErrBadStart)
		}
		if n.IntroducesBoxedConstant() {
			return fmt.Errorf("on line %d: %w", n.LineNum, ErrMisplacedBoxedConstant)
		}
	default:
		return ErrBadStart
	}

	// 3. Walk every node and check its allowed successors.
	for i, node := range nodes {
		switch n := node.(type) {
		case logic.Empty:
			// no constraint

		case logic.FitchBar:
			nextIdx, ok := nextMeaningful(nodes, i+1)
			if !ok {
				return ErrBarEndsProof
			}
			if !allowedAfterBar(nodes[nextIdx]) {
				return ErrBarSuccessor
			}

		case logic.SubproofOpen:
			premIdx, ok := nextMeaningful(nodes, i+1)
			if !ok {
				return ErrDanglingSubproof
			}
			premise, isNumbered := logic.AsNumbered(nodes[premIdx])
			if !isNumbered || premise.IsInference() {
				return ErrSubproofShape
			}
			barIdx, ok := nextMeaningful(nodes, premIdx+1)
			if !ok {
				return ErrDanglingSubproof
			}
			if !logic.IsFitchBar(nodes[barIdx]) {
				return ErrSubproofShape
			}

		case logic.SubproofClose:
			nextIdx, ok := nextMeaningful(nodes, i+1)
			if ok && !allowedAfterBar(nodes[nextIdx]) {
				return ErrCloseSuccessor
			}

		case logic.NumberedLine:
			if err := checkNumberedSuccessor(nodes, i, n); err != nil {
				return err
			}
		}
	}

	// 4. Line numbers must be exactly 1, 2, 3, ... in document order.
	prevNum := 0
	for _, node := range nodes {
		n, ok := logic.AsNumbered(node)
		if !ok {
			continue
		}
		if n.LineNum != prevNum+1 {
			return fmt.Errorf("on line %d: %w (expected %d)", n.LineNum, ErrLineNumbering, prevNum+1)
		}
		prevNum = n.LineNum
	}

	return nil
}

// checkNumberedSuccessor validates what may follow an inference, a plain
// premise, or a boxed-constant premise.
func checkNumberedSuccessor(nodes []logic.ProofNode, i int, n logic.NumberedLine) error {
	switch {
	case n.IsInference():
		nextIdx, ok := nextMeaningful(nodes, i+1)
		if !ok {
			return nil // an inference may end the proof
		}
		switch next := nodes[nextIdx].(type) {
		case logic.NumberedLine:
			if next.IsInference() {
				return nil
			}
			if next.IntroducesBoxedConstant() {
				return fmt.Errorf("on line %d: %w", n.LineNum, ErrMisplacedBoxedConstant)
			}
			return nil
		case logic.SubproofOpen, logic.SubproofClose:
			return nil
		case logic.FitchBar:
			return fmt.Errorf("on line %d: %w", n.LineNum, ErrBarAfterInference)
		default:
			return nil
		}

	case n.IntroducesBoxedConstant():
		nextIdx, ok := nextMeaningful(nodes, i+1)
		if !ok {
			return fmt.Errorf("on line %d: %w", n.LineNum, ErrPremiseEndsProof)
		}
		if !logic.IsFitchBar(nodes[nextIdx]) {
			return fmt.Errorf("on line %d: %w", n.LineNum, ErrBoxedConstantNeedsBar)
		}
		return nil

	default: // a plain premise, or an inference the user hasn't justified yet
		nextIdx, ok := nextMeaningful(nodes, i+1)
		if !ok {
			return nil // a plain premise may end the proof
		}
		switch next := nodes[nextIdx].(type) {
		case logic.FitchBar, logic.SubproofOpen, logic.SubproofClose:
			return nil
		case logic.NumberedLine:
			if next.IntroducesBoxedConstant() && !next.IsInference() {
				return fmt.Errorf("on line %d: %w", n.LineNum, ErrMisplacedBoxedConstant)
			}
			return nil
		default:
			return nil
		}
	}
}

// allowedAfterBar reports whether node is a valid successor to a Fitch
// bar or a closed subproof: an inference, a new subproof, or an
// unfinished inference (a premise without a boxed constant).
func allowedAfterBar(node logic.ProofNode) bool {
	switch n := node.(type) {
	case logic.NumberedLine:
		if n.IsInference() {
			return true
		}
		return !n.IntroducesBoxedConstant()
	case logic.SubproofOpen:
		return true
	default:
		return false
	}
}

// nextMeaningful returns the index of the first node at or after idx that
// is not an Empty line.
func nextMeaningful(nodes []logic.ProofNode, idx int) (int, bool) {
	for ; idx < len(nodes); idx++ {
		if _, isEmpty := nodes[idx].(logic.Empty); !isEmpty {
			return idx, true
		}
	}
	return 0, false
}
