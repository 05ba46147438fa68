package subst

import "github.com/mirelin/fitchproof/logic"

// NameSet is a set of atomic-term names.
type NameSet map[string]struct{}

// Contains reports whether name is in the set.
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// FreeVars returns the set of atomic names occurring free in f — i.e. not
// shadowed by an enclosing Forall/Exists binding the same name. This
// collects every free atomic name, whether it denotes a variable or a
// constant under the run-time allowed-variable configuration; that
// partition is orthogonal to free-occurrence analysis (spec.md §4.4).
func FreeVars(f logic.Formula) NameSet {
	acc := make(NameSet)
	freeVarsFormula(f, nil, acc)
	return acc
}

// FreeVarsTerm returns the set of atomic names occurring in t. Terms have
// no binders, so every occurring name is "free".
func FreeVarsTerm(t logic.Term) NameSet {
	acc := make(NameSet)
	freeVarsTerm(t, nil, acc)
	return acc
}

// FreshFor reports whether name does not occur free in f.
func FreshFor(name string, f logic.Formula) bool {
	return !FreeVars(f).Contains(name)
}

// IsVariable reports whether name is in the configured allowed-variable
// set; every other atomic name is a constant.
func IsVariable(name string, allowedVars NameSet) bool {
	return allowedVars.Contains(name)
}

func freeVarsFormula(f logic.Formula, bound NameSet, acc NameSet) {
	switch t := f.(type) {
	case logic.And:
		for _, c := range t.Conjuncts {
			freeVarsFormula(c, bound, acc)
		}
	case logic.Or:
		for _, d := range t.Disjuncts {
			freeVarsFormula(d, bound, acc)
		}
	case logic.Implies:
		freeVarsFormula(t.Antecedent, bound, acc)
		freeVarsFormula(t.Consequent, bound, acc)
	case logic.Bicond:
		freeVarsFormula(t.Left, bound, acc)
		freeVarsFormula(t.Right, bound, acc)
	case logic.Not:
		freeVarsFormula(t.Inner, bound, acc)
	case logic.Bottom:
		// no subterms
	case logic.Forall:
		freeVarsFormula(t.Body, withBound(bound, t.Var), acc)
	case logic.Exists:
		freeVarsFormula(t.Body, withBound(bound, t.Var), acc)
	case logic.AtomicProp:
		// a nullary predicate symbol, not a term occurrence
	case logic.PredApp:
		for _, arg := range t.Args {
			freeVarsTerm(arg, bound, acc)
		}
	case logic.Equals:
		freeVarsTerm(t.Left, bound, acc)
		freeVarsTerm(t.Right, bound, acc)
	}
}

func freeVarsTerm(t logic.Term, bound NameSet, acc NameSet) {
	switch x := t.(type) {
	case logic.Atomic:
		if !bound.Contains(x.Name) {
			acc[x.Name] = struct{}{}
		}
	case logic.FuncApp:
		for _, arg := range x.Args {
			freeVarsTerm(arg, bound, acc)
		}
	}
}

// withBound returns a copy of bound with name added, leaving bound
// itself untouched (callers recurse into sibling branches that must not
// see this binding).
func withBound(bound NameSet, name string) NameSet {
	next := make(NameSet, len(bound)+1)
	for k := range bound {
		next[k] = struct{}{}
	}
	next[name] = struct{}{}
	return next
}
