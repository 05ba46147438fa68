package subst

import "github.com/mirelin/fitchproof/logic"

// AlphaEquiv reports whether f1 and f2 are structurally identical up to
// consistent renaming of bound variables.
func AlphaEquiv(f1, f2 logic.Formula) bool {
	return alphaEqFormula(f1, f2, map[string]string{}, map[string]string{})
}

func alphaEqFormula(f1, f2 logic.Formula, fwd, back map[string]string) bool {
	switch a := f1.(type) {
	case logic.And:
		b, ok := f2.(logic.And)
		return ok && alphaEqFormulaSlice(a.Conjuncts, b.Conjuncts, fwd, back)
	case logic.Or:
		b, ok := f2.(logic.Or)
		return ok && alphaEqFormulaSlice(a.Disjuncts, b.Disjuncts, fwd, back)
	case logic.Implies:
		b, ok := f2.(logic.Implies)
		return ok && alphaEqFormula(a.Antecedent, b.Antecedent, fwd, back) &&
			alphaEqFormula(a.Consequent, b.Consequent, fwd, back)
	case logic.Bicond:
		b, ok := f2.(logic.Bicond)
		return ok && alphaEqFormula(a.Left, b.Left, fwd, back) &&
			alphaEqFormula(a.Right, b.Right, fwd, back)
	case logic.Not:
		b, ok := f2.(logic.Not)
		return ok && alphaEqFormula(a.Inner, b.Inner, fwd, back)
	case logic.Bottom:
		_, ok := f2.(logic.Bottom)
		return ok
	case logic.Forall:
		b, ok := f2.(logic.Forall)
		if !ok {
			return false
		}
		return alphaEqFormula(a.Body, b.Body, cloneWith(fwd, a.Var, b.Var), cloneWith(back, b.Var, a.Var))
	case logic.Exists:
		b, ok := f2.(logic.Exists)
		if !ok {
			return false
		}
		return alphaEqFormula(a.Body, b.Body, cloneWith(fwd, a.Var, b.Var), cloneWith(back, b.Var, a.Var))
	case logic.AtomicProp:
		b, ok := f2.(logic.AtomicProp)
		return ok && a.Name == b.Name
	case logic.PredApp:
		b, ok := f2.(logic.PredApp)
		if !ok || a.Pred != b.Pred || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !alphaEqTerm(a.Args[i], b.Args[i], fwd, back) {
				return false
			}
		}
		return true
	case logic.Equals:
		b, ok := f2.(logic.Equals)
		return ok && alphaEqTerm(a.Left, b.Left, fwd, back) && alphaEqTerm(a.Right, b.Right, fwd, back)
	default:
		return false
	}
}

func alphaEqFormulaSlice(a, b []logic.Formula, fwd, back map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !alphaEqFormula(a[i], b[i], fwd, back) {
			return false
		}
	}
	return true
}

func alphaEqTerm(t1, t2 logic.Term, fwd, back map[string]string) bool {
	switch a := t1.(type) {
	case logic.Atomic:
		b, ok := t2.(logic.Atomic)
		if !ok {
			return false
		}
		if mapped, bound := fwd[a.Name]; bound {
			return mapped == b.Name
		}
		if _, boundOther := back[b.Name]; boundOther {
			return false // a.Name is free but b.Name is bound: cannot match
		}
		return a.Name == b.Name
	case logic.FuncApp:
		b, ok := t2.(logic.FuncApp)
		if !ok || a.Func != b.Func || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !alphaEqTerm(a.Args[i], b.Args[i], fwd, back) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func cloneWith(m map[string]string, k, v string) map[string]string {
	next := make(map[string]string, len(m)+1)
	for kk, vv := range m {
		next[kk] = vv
	}
	next[k] = v
	return next
}
