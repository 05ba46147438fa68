// Package verifier assembles the normalize, structure, scope, and rules
// packages into the end-to-end check described by spec.md §4: construct a
// Proof from raw parser output, then check it line by line, collecting
// every violation rather than stopping at the first one.
//
// What
//
//   - Construct builds a Proof from raw, unstructured ProofNodes: it runs
//     normalize.Normalize, then structure.CheckHalfWellStructured, then
//     scope.Determine. A fatal error at any of these stages aborts
//     construction entirely — scope.Determine assumes a half-well-formed
//     proof and its output is meaningless otherwise.
//   - Check walks every inference line of a constructed Proof and calls
//     rules.Check, accumulating one message per violated line rather than
//     stopping at the first.
//   - FixLineNumbers (fixlines.go) renumbers a raw node sequence and its
//     citations, letting a caller insert or delete lines by line number
//     alone.
//
// Errors
//
//	Construction failures (normalize/structure) are fatal: the proof
//	could not even be parsed into a checkable shape, so ProofResult.Fatal
//	carries a single message and Errors is empty. Rule violations found
//	during Check are recoverable: every violated line is reported, and
//	ProofResult.Correct is false only if at least one was found.
package verifier
