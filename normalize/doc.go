// Package normalize turns a flat, depth-tagged list of logic.ProofNode
// values (as a parser would produce: only NumberedLine, FitchBar, and
// Empty variants) into the canonical sequence the rest of the checker
// consumes, by interleaving synthetic SubproofOpen / SubproofClose
// markers at every depth transition.
//
// Algorithm
//
//	Traverse the input in document order, carrying prevDepth (initially
//	1, the outermost level). For a node at depth d:
//	  - d == prevDepth+1: emit SubproofOpen{d} immediately before the node
//	  - d+1 == prevDepth: emit SubproofClose{prevDepth} immediately before
//	  - d == prevDepth:   emit nothing
//	  - otherwise:        fatal error, the indentation jump is too large
//
// A node already carrying a SubproofOpen/SubproofClose marker is a
// programming error in the caller (normalize is meant to run exactly
// once, directly on parser output) and is also rejected fatally.
package normalize
