package normalize

import (
	"fmt"

	"github.com/mirelin/fitchproof/logic"
)

// Normalize interleaves synthetic SubproofOpen/SubproofClose markers into
// rawNodes, producing the canonical sequence the rest of the checker
// operates on. It fails fatally if rawNodes already contains structural
// markers, or if any two adjacent nodes differ in depth by more than one.
func Normalize(rawNodes []logic.ProofNode) ([]logic.ProofNode, error) {
	normalized := make([]logic.ProofNode, 0, len(rawNodes)*2)
	prevDepth := 1
	lastLineNum := 0

	for _, node := range rawNodes {
		if logic.IsStructural(node) {
			return nil, ErrAlreadyStructured
		}

		depth := node.Depth()

		switch {
		case depth == prevDepth+1:
			normalized = append(normalized, logic.SubproofOpen{NodeDepth: depth})
		case depth+1 == prevDepth:
			normalized = append(normalized, logic.SubproofClose{NodeDepth: prevDepth})
		case depth != prevDepth:
			return nil, fmt.Errorf("%w: near line %d, you cannot open or close two subproofs in the same step", ErrIndentationJump, lastLineNum+1)
		}

		if numbered, ok := logic.AsNumbered(node); ok {
			lastLineNum = numbered.LineNum
		}

		normalized = append(normalized, node)
		prevDepth = depth
	}

	return normalized, nil
}
