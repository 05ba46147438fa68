package logic

// ProofNode is a tagged union over the elements of a linearized Fitch
// proof. NumberedLine is the only variant that carries a line number;
// SubproofOpen and SubproofClose are synthetic markers inserted by the
// normalize package and must never appear in parser output.
type ProofNode interface {
	isProofNode()
	// Depth reports the node's nesting depth (1 = outermost).
	Depth() int
}

// NumberedLine is a premise, an inference, or a placeholder (a line the
// user has not finished writing): Sentence may be absent on a
// constant-only subproof premise, and Justification is absent on a
// premise (or an unfinished inference, which the structural validator
// treats identically to a premise for adjacency purposes).
type NumberedLine struct {
	LineNum       int
	NodeDepth     int
	Sentence      Formula // nil if not yet written, or a constant-only premise
	Justification Justification
	BoxedConstant Term // non-nil when this premise introduces an eigenvariable
}

func (NumberedLine) isProofNode()  {}
func (n NumberedLine) Depth() int  { return n.NodeDepth }

// IsInference reports whether this line carries a justification.
func (n NumberedLine) IsInference() bool { return n.Justification != nil }

// IntroducesBoxedConstant reports whether this premise introduces an
// eigenvariable.
func (n NumberedLine) IntroducesBoxedConstant() bool { return n.BoxedConstant != nil }

// FitchBar separates a subproof's premises from its body.
type FitchBar struct{ NodeDepth int }

func (FitchBar) isProofNode() {}
func (f FitchBar) Depth() int { return f.NodeDepth }

// Empty is a scope-bar-only blank line.
type Empty struct{ NodeDepth int }

func (Empty) isProofNode() {}
func (e Empty) Depth() int { return e.NodeDepth }

// SubproofOpen is a synthetic marker inserted immediately before the
// numbered line that serves as a new subproof's premise.
type SubproofOpen struct{ NodeDepth int }

func (SubproofOpen) isProofNode() {}
func (s SubproofOpen) Depth() int { return s.NodeDepth }

// SubproofClose is a synthetic marker inserted when a subproof scope
// closes, immediately before the next node at the shallower depth.
type SubproofClose struct{ NodeDepth int }

func (SubproofClose) isProofNode() {}
func (s SubproofClose) Depth() int { return s.NodeDepth }

// AsNumbered returns node as a NumberedLine value if it is one.
func AsNumbered(node ProofNode) (NumberedLine, bool) {
	n, ok := node.(NumberedLine)
	return n, ok
}

// IsStructural reports whether node is a synthetic SubproofOpen/Close
// marker (as opposed to something the parser could have produced).
func IsStructural(node ProofNode) bool {
	switch node.(type) {
	case SubproofOpen, SubproofClose:
		return true
	default:
		return false
	}
}

// IsFitchBar reports whether node is a FitchBar.
func IsFitchBar(node ProofNode) bool {
	_, ok := node.(FitchBar)
	return ok
}
