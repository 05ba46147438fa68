// Package parser converts plain Fitch proof text into []logic.ProofNode.
//
// Format
//
//	Each physical line is one ProofNode. Leading "| " groups (one per
//	nesting level beyond the first) set the node's depth; a bare "---" or
//	"===" at a given depth is a FitchBar; a blank line is Empty.
//	Everything else must be a numbered line:
//
//	  N. sentence : justification
//
//	sentence is parsed by a recursive-descent formula parser with
//	standard precedence (¬ > ∧ > ∨ > → > ↔; ASCII spellings ~ & | -> <->
//	accepted as aliases of the Unicode connectives). A premise omits the
//	justification:
//
//	  1. P & Q
//
//	A premise introducing a boxed (eigenvariable) constant writes the
//	constant in brackets instead of a sentence:
//
//	  2. [c]
//
//	justification is a keyword optionally followed by line numbers or
//	subproof ranges (m-n):
//
//	  3. P : AndElim 1
//	  4. P -> Q : ImpliesIntro 2-3
//
// This parser is deliberately simple: it only has to produce
// syntactically well formed ProofNodes. All semantic validation —
// whether a justification's citations actually support its conclusion —
// is the core packages' job, not this one's.
package parser
