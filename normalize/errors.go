package normalize

import "errors"

// ErrAlreadyStructured indicates the input already contains synthetic
// SubproofOpen/SubproofClose markers. Normalize must run exactly once,
// directly on parser output.
var ErrAlreadyStructured = errors.New("normalize: input already contains structural markers")

// ErrIndentationJump indicates a depth change of more than one level
// between adjacent nodes — opening or closing two subproofs in a single
// step, which Fitch notation cannot express.
var ErrIndentationJump = errors.New("normalize: indentation jump too large")
