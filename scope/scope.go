package scope

import "github.com/mirelin/fitchproof/logic"

// Visibility is what a single inference line may cite: a set of earlier
// line numbers, and a set of already-closed subproof ranges.
type Visibility struct {
	Lines     []int
	Subproofs []logic.SubproofRange
}

// HasLine reports whether lineNum is directly visible.
func (v Visibility) HasLine(lineNum int) bool {
	for _, n := range v.Lines {
		if n == lineNum {
			return true
		}
	}
	return false
}

// HasSubproof reports whether the given (begin, end) subproof is visible.
func (v Visibility) HasSubproof(r logic.SubproofRange) bool {
	for _, s := range v.Subproofs {
		if s == r {
			return true
		}
	}
	return false
}

// Scope maps each inference line number to what it may cite. Premise
// lines and placeholder lines have no entry.
type Scope map[int]Visibility

// Determine computes the Scope of a normalized node sequence.
func Determine(nodes []logic.ProofNode) Scope {
	result := make(Scope)

	for idx, node := range nodes {
		line, ok := logic.AsNumbered(node)
		if !ok || !line.IsInference() {
			continue
		}

		result[line.LineNum] = visibilityAt(nodes, idx)
	}

	return result
}

// visibilityAt computes the Visibility for the inference at position idx
// by walking backward over nodes[0:idx].
func visibilityAt(nodes []logic.ProofNode, idx int) Visibility {
	var vis Visibility
	depth := 0
	var pendingEnds []int // stack of end-line numbers for subproofs closed during the walk

	for j := idx - 1; j >= 0; j-- {
		switch n := nodes[j].(type) {
		case logic.SubproofClose:
			depth++
			endLine := lastNumberedBefore(nodes, j)
			pendingEnds = append(pendingEnds, endLine)

		case logic.SubproofOpen:
			if depth > 0 {
				depth--
				beginLine := firstNumberedAfter(nodes, j)
				endLine := pendingEnds[len(pendingEnds)-1]
				pendingEnds = pendingEnds[:len(pendingEnds)-1]
				if depth == 0 {
					vis.Subproofs = append(vis.Subproofs, logic.SubproofRange{Begin: beginLine, End: endLine})
				}
			}

		case logic.NumberedLine:
			if depth == 0 {
				vis.Lines = append(vis.Lines, n.LineNum)
			}
		}
	}

	return vis
}

// lastNumberedBefore returns the line number of the nearest NumberedLine
// strictly before idx.
func lastNumberedBefore(nodes []logic.ProofNode, idx int) int {
	for j := idx - 1; j >= 0; j-- {
		if n, ok := logic.AsNumbered(nodes[j]); ok {
			return n.LineNum
		}
	}
	return 0
}

// firstNumberedAfter returns the line number of the nearest NumberedLine
// strictly after idx.
func firstNumberedAfter(nodes []logic.ProofNode, idx int) int {
	for j := idx + 1; j < len(nodes); j++ {
		if n, ok := logic.AsNumbered(nodes[j]); ok {
			return n.LineNum
		}
	}
	return 0
}
