package subst

import "github.com/mirelin/fitchproof/logic"

// MatchesAfterReplacing reports whether actual can be obtained from
// pattern by replacing zero or more occurrences of the term replaced by
// the term replacement, wherever they occur as a subterm. Unlike
// Substitute, this is not tied to variable binding: replaced and
// replacement are arbitrary terms, and any subset of their occurrences
// (including none, or all) may be rewritten. This is the contract
// EqualsElim and the partial-witness form of ExistsIntro need, and it is
// also reused (with an additional no-stray-occurrence check) by
// ForallIntro's generalization.
func MatchesAfterReplacing(pattern, actual logic.Formula, replaced, replacement logic.Term) bool {
	switch p := pattern.(type) {
	case logic.And:
		a, ok := actual.(logic.And)
		return ok && matchFormulaSlice(p.Conjuncts, a.Conjuncts, replaced, replacement)
	case logic.Or:
		a, ok := actual.(logic.Or)
		return ok && matchFormulaSlice(p.Disjuncts, a.Disjuncts, replaced, replacement)
	case logic.Implies:
		a, ok := actual.(logic.Implies)
		return ok && MatchesAfterReplacing(p.Antecedent, a.Antecedent, replaced, replacement) &&
			MatchesAfterReplacing(p.Consequent, a.Consequent, replaced, replacement)
	case logic.Bicond:
		a, ok := actual.(logic.Bicond)
		return ok && MatchesAfterReplacing(p.Left, a.Left, replaced, replacement) &&
			MatchesAfterReplacing(p.Right, a.Right, replaced, replacement)
	case logic.Not:
		a, ok := actual.(logic.Not)
		return ok && MatchesAfterReplacing(p.Inner, a.Inner, replaced, replacement)
	case logic.Bottom:
		_, ok := actual.(logic.Bottom)
		return ok
	case logic.Forall:
		a, ok := actual.(logic.Forall)
		return ok && p.Var == a.Var && MatchesAfterReplacing(p.Body, a.Body, replaced, replacement)
	case logic.Exists:
		a, ok := actual.(logic.Exists)
		return ok && p.Var == a.Var && MatchesAfterReplacing(p.Body, a.Body, replaced, replacement)
	case logic.AtomicProp:
		a, ok := actual.(logic.AtomicProp)
		return ok && p.Name == a.Name
	case logic.PredApp:
		a, ok := actual.(logic.PredApp)
		if !ok || p.Pred != a.Pred || len(p.Args) != len(a.Args) {
			return false
		}
		for i := range p.Args {
			if !matchTerm(p.Args[i], a.Args[i], replaced, replacement) {
				return false
			}
		}
		return true
	case logic.Equals:
		a, ok := actual.(logic.Equals)
		return ok && matchTerm(p.Left, a.Left, replaced, replacement) && matchTerm(p.Right, a.Right, replaced, replacement)
	default:
		return false
	}
}

func matchFormulaSlice(p, a []logic.Formula, replaced, replacement logic.Term) bool {
	if len(p) != len(a) {
		return false
	}
	for i := range p {
		if !MatchesAfterReplacing(p[i], a[i], replaced, replacement) {
			return false
		}
	}
	return true
}

// matchTerm reports whether the actual subterm a is either identical to
// the pattern subterm p, p itself rewritten as replaced->replacement, or
// (for compound terms) componentwise consistent with partial replacement
// applied somewhere inside.
func matchTerm(p, a, replaced, replacement logic.Term) bool {
	if p.Equal(a) {
		return true
	}
	if p.Equal(replaced) && a.Equal(replacement) {
		return true
	}
	pf, pOK := p.(logic.FuncApp)
	af, aOK := a.(logic.FuncApp)
	if pOK && aOK && pf.Func == af.Func && len(pf.Args) == len(af.Args) {
		for i := range pf.Args {
			if !matchTerm(pf.Args[i], af.Args[i], replaced, replacement) {
				return false
			}
		}
		return true
	}
	return false
}

// OccursAnywhere reports whether target occurs as a subterm anywhere in
// f (in any term position, bound or not — used for the "c must not leak
// into the conclusion" check in ForallIntro).
func OccursAnywhere(f logic.Formula, target logic.Term) bool {
	switch t := f.(type) {
	case logic.And:
		return occursAnywhereSlice(t.Conjuncts, target)
	case logic.Or:
		return occursAnywhereSlice(t.Disjuncts, target)
	case logic.Implies:
		return OccursAnywhere(t.Antecedent, target) || OccursAnywhere(t.Consequent, target)
	case logic.Bicond:
		return OccursAnywhere(t.Left, target) || OccursAnywhere(t.Right, target)
	case logic.Not:
		return OccursAnywhere(t.Inner, target)
	case logic.Bottom:
		return false
	case logic.Forall:
		return OccursAnywhere(t.Body, target)
	case logic.Exists:
		return OccursAnywhere(t.Body, target)
	case logic.AtomicProp:
		return false
	case logic.PredApp:
		for _, arg := range t.Args {
			if termOccurs(arg, target) {
				return true
			}
		}
		return false
	case logic.Equals:
		return termOccurs(t.Left, target) || termOccurs(t.Right, target)
	default:
		return false
	}
}

func occursAnywhereSlice(fs []logic.Formula, target logic.Term) bool {
	for _, f := range fs {
		if OccursAnywhere(f, target) {
			return true
		}
	}
	return false
}

func termOccurs(t, target logic.Term) bool {
	if t.Equal(target) {
		return true
	}
	if fa, ok := t.(logic.FuncApp); ok {
		for _, arg := range fa.Args {
			if termOccurs(arg, target) {
				return true
			}
		}
	}
	return false
}
