package rules

import "errors"

// ErrNotInScope indicates a justification cited a line or subproof the
// citing line cannot see (spec.md §4.5).
var ErrNotInScope = errors.New("rules: not in scope")

// ErrNoFormula indicates a justification cited a line that carries no
// formula (a placeholder, or a constant-only premise).
var ErrNoFormula = errors.New("rules: cannot cite a line without a formula")

// ErrRuleViolation is the generic sentinel wrapped by every schema
// mismatch; callers should read the formatted message for specifics and
// use errors.Is(err, ErrRuleViolation) only to classify the error class.
var ErrRuleViolation = errors.New("rules: rule contract violated")
