package structure

import "errors"

// ErrEmptyProof indicates every node in the proof was an Empty line.
var ErrEmptyProof = errors.New("structure: proof is empty")

// ErrBadStart indicates the first meaningful node is neither a Fitch bar
// nor a premise.
var ErrBadStart = errors.New("structure: proof must start with premises or a Fitch bar")

// ErrBarEndsProof indicates a proof ending directly on a Fitch bar.
var ErrBarEndsProof = errors.New("structure: proof ends with a Fitch bar")

// ErrBarSuccessor indicates a Fitch bar is not followed by an inference,
// an unfinished inference, or a new subproof.
var ErrBarSuccessor = errors.New("structure: a Fitch bar must be followed by an inference or a new subproof")

// ErrSubproofShape indicates an opened subproof does not consist of
// exactly one premise followed by a Fitch bar.
var ErrSubproofShape = errors.New("structure: a subproof must open with exactly one premise followed by a Fitch bar")

// ErrDanglingSubproof indicates the proof ends right after a subproof is
// opened, before that subproof's premise and Fitch bar are both present.
// A proof whose last lines sit inside a subproof that has its premise and
// bar is not rejected.
var ErrDanglingSubproof = errors.New("structure: proof ends with an unclosed subproof")

// ErrCloseSuccessor indicates a closed subproof is not followed by an
// inference, an unfinished inference, or a new subproof.
var ErrCloseSuccessor = errors.New("structure: a closed subproof must be followed by an inference or a new subproof")

// ErrBarAfterInference indicates a Fitch bar directly follows an
// inference line (the bar belongs only at the top of a subproof body).
var ErrBarAfterInference = errors.New("structure: a Fitch bar cannot directly follow an inference")

// ErrMisplacedBoxedConstant indicates a boxed constant was introduced
// outside of a subproof's opening premise.
var ErrMisplacedBoxedConstant = errors.New("structure: a boxed constant may only be introduced as a subproof's premise")

// ErrPremiseEndsProof indicates the proof ends directly after a premise
// that introduced a boxed constant (it must be followed by a Fitch bar).
var ErrPremiseEndsProof = errors.New("structure: proof cannot end immediately after introducing a boxed constant")

// ErrBoxedConstantNeedsBar indicates a boxed-constant premise is not
// immediately followed by a Fitch bar.
var ErrBoxedConstantNeedsBar = errors.New("structure: a boxed constant premise must be followed by a Fitch bar")

// ErrLineNumbering indicates numbered lines do not run 1, 2, 3, ... in
// document order.
var ErrLineNumbering = errors.New("structure: line numbers must start at 1 and increase by one")
