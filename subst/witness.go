package subst

import "github.com/mirelin/fitchproof/logic"

// FindWitness searches pattern (which mentions the bound variable
// varName at zero or more free positions) and actual (its candidate
// instantiation) in lockstep, and returns the term occupying the first
// free occurrence of varName it finds. It returns (nil, false) if
// varName does not occur free in pattern at all — callers should then
// require pattern and actual be structurally equal outright, since no
// substitution could have taken place.
//
// This is the shared search behind both ForallElim (pattern = the
// quantified body, actual = the candidate instance; found term is what
// was instantiated for the bound variable) and ExistsIntro (pattern =
// the generalized body in the conclusion, actual = the cited concrete
// formula; found term is the witness being generalized away).
func FindWitness(pattern, actual logic.Formula, varName string) (logic.Term, bool) {
	return findWitnessFormula(pattern, actual, varName, false)
}

func findWitnessFormula(p, a logic.Formula, varName string, shadowed bool) (logic.Term, bool) {
	switch pt := p.(type) {
	case logic.And:
		at, ok := a.(logic.And)
		if !ok || len(pt.Conjuncts) != len(at.Conjuncts) {
			return nil, false
		}
		for i := range pt.Conjuncts {
			if t, found := findWitnessFormula(pt.Conjuncts[i], at.Conjuncts[i], varName, shadowed); found {
				return t, true
			}
		}
		return nil, false
	case logic.Or:
		at, ok := a.(logic.Or)
		if !ok || len(pt.Disjuncts) != len(at.Disjuncts) {
			return nil, false
		}
		for i := range pt.Disjuncts {
			if t, found := findWitnessFormula(pt.Disjuncts[i], at.Disjuncts[i], varName, shadowed); found {
				return t, true
			}
		}
		return nil, false
	case logic.Implies:
		at, ok := a.(logic.Implies)
		if !ok {
			return nil, false
		}
		if t, found := findWitnessFormula(pt.Antecedent, at.Antecedent, varName, shadowed); found {
			return t, true
		}
		return findWitnessFormula(pt.Consequent, at.Consequent, varName, shadowed)
	case logic.Bicond:
		at, ok := a.(logic.Bicond)
		if !ok {
			return nil, false
		}
		if t, found := findWitnessFormula(pt.Left, at.Left, varName, shadowed); found {
			return t, true
		}
		return findWitnessFormula(pt.Right, at.Right, varName, shadowed)
	case logic.Not:
		at, ok := a.(logic.Not)
		if !ok {
			return nil, false
		}
		return findWitnessFormula(pt.Inner, at.Inner, varName, shadowed)
	case logic.Bottom:
		return nil, false
	case logic.Forall:
		at, ok := a.(logic.Forall)
		if !ok || pt.Var != at.Var {
			return nil, false
		}
		return findWitnessFormula(pt.Body, at.Body, varName, shadowed || pt.Var == varName)
	case logic.Exists:
		at, ok := a.(logic.Exists)
		if !ok || pt.Var != at.Var {
			return nil, false
		}
		return findWitnessFormula(pt.Body, at.Body, varName, shadowed || pt.Var == varName)
	case logic.AtomicProp:
		return nil, false
	case logic.PredApp:
		at, ok := a.(logic.PredApp)
		if !ok || pt.Pred != at.Pred || len(pt.Args) != len(at.Args) {
			return nil, false
		}
		for i := range pt.Args {
			if t, found := findWitnessTerm(pt.Args[i], at.Args[i], varName, shadowed); found {
				return t, true
			}
		}
		return nil, false
	case logic.Equals:
		at, ok := a.(logic.Equals)
		if !ok {
			return nil, false
		}
		if t, found := findWitnessTerm(pt.Left, at.Left, varName, shadowed); found {
			return t, true
		}
		return findWitnessTerm(pt.Right, at.Right, varName, shadowed)
	default:
		return nil, false
	}
}

func findWitnessTerm(p, a logic.Term, varName string, shadowed bool) (logic.Term, bool) {
	if at, ok := p.(logic.Atomic); ok && at.Name == varName && !shadowed {
		return a, true
	}
	pf, pOK := p.(logic.FuncApp)
	af, aOK := a.(logic.FuncApp)
	if pOK && aOK && pf.Func == af.Func && len(pf.Args) == len(af.Args) {
		for i := range pf.Args {
			if t, found := findWitnessTerm(pf.Args[i], af.Args[i], varName, shadowed); found {
				return t, true
			}
		}
	}
	return nil, false
}
