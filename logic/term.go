package logic

import "strings"

// Term is either an atomic name (used as a variable or a constant
// depending on the run-time allowed-variable set) or a function
// application over a non-empty ordered sequence of sub-terms.
type Term interface {
	isTerm()
	// String renders the term in the same concrete syntax the parser
	// accepts, e.g. "a", "x", "f(a, g(x))".
	String() string
	// Equal reports whether two terms are structurally identical.
	Equal(other Term) bool
}

// Atomic is a bare name: a variable or a constant.
type Atomic struct {
	Name string
}

func (Atomic) isTerm() {}

func (a Atomic) String() string { return a.Name }

// Equal reports structural (not alpha-) equality.
func (a Atomic) Equal(other Term) bool {
	o, ok := other.(Atomic)
	return ok && a.Name == o.Name
}

// FuncApp is a function symbol applied to a non-empty ordered sequence of
// sub-terms, e.g. f(a, b).
type FuncApp struct {
	Func string
	Args []Term
}

func (FuncApp) isTerm() {}

func (f FuncApp) String() string {
	var b strings.Builder
	b.WriteString(f.Func)
	b.WriteByte('(')
	for i, arg := range f.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports structural equality: same function symbol, same arity,
// and every argument pairwise equal in order.
func (f FuncApp) Equal(other Term) bool {
	o, ok := other.(FuncApp)
	if !ok || f.Func != o.Func || len(f.Args) != len(o.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}
