// Package fitchproof is a natural-deduction proof checker for first-order
// logic presented in Fitch style.
//
// It reads a textual transcription of a student's Fitch proof and reports,
// line by line, whether each inference is valid, whether premises and
// subproof structure are well formed, and whether citations respect Fitch's
// scoping discipline.
//
// The checker is organized as a small pipeline, leaves first:
//
//	logic/      — algebraic data model: Term, Formula, Justification, ProofNode
//	normalize/  — turns a flat depth-tagged line list into a node sequence with
//	              synthetic subproof-open/close markers
//	structure/  — the half-well-formedness validator (premise/bar/inference
//	              adjacency, line numbering)
//	scope/      — computes which earlier lines and closed subproofs each
//	              inference may cite
//	subst/      — capture-avoiding substitution, alpha-equivalence, occurrence
//	              analysis
//	rules/      — one verification routine per inference rule
//	verifier/   — drives construction, validation, and per-line rule dispatch
//
// Parsing proof text into nodes and the command-line front end are kept
// outside the core and live in parser/ and cmd/fitchcheck respectively.
// Instructor-template matching and LaTeX export are not implemented.
//
//	go get github.com/mirelin/fitchproof
package fitchproof
