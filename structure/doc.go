// Package structure implements the half-well-formedness validator: the
// adjacency rules between premises, Fitch bars, inferences, and subproof
// markers, plus the line-numbering law. A proof that is half-well-formed
// is not necessarily fully correct (rule 4.5 contracts and scope are
// checked separately), but it is structurally sound enough that every
// numbered line can be looked at in isolation without panicking.
//
// Half-well-formedness is deliberately permissive about one thing: a
// premise appearing after a Fitch bar is allowed here. That represents
// an inference the student has not yet written a justification for, and
// letting it through means the per-line checker (package rules via
// verifier) can still report a helpful "missing justification" error
// instead of aborting the whole analysis.
//
// Violations of these rules are FATAL: only the first one found is
// reported, and no further analysis of the proof is attempted (mirroring
// spec.md §7's three-tier error model).
package structure
