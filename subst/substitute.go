package subst

import "github.com/mirelin/fitchproof/logic"

// Substitute replaces every free occurrence of the variable name varName
// in f by term, renaming any binder that would otherwise capture a free
// variable of term. This is a full (all-occurrences) substitution, the
// kind ForallElim and ExistsElim need.
func Substitute(f logic.Formula, varName string, term logic.Term) logic.Formula {
	switch t := f.(type) {
	case logic.And:
		return logic.And{Conjuncts: substituteSlice(t.Conjuncts, varName, term)}
	case logic.Or:
		return logic.Or{Disjuncts: substituteSlice(t.Disjuncts, varName, term)}
	case logic.Implies:
		return logic.Implies{
			Antecedent: Substitute(t.Antecedent, varName, term),
			Consequent: Substitute(t.Consequent, varName, term),
		}
	case logic.Bicond:
		return logic.Bicond{
			Left:  Substitute(t.Left, varName, term),
			Right: Substitute(t.Right, varName, term),
		}
	case logic.Not:
		return logic.Not{Inner: Substitute(t.Inner, varName, term)}
	case logic.Bottom:
		return t
	case logic.Forall:
		newVar, newBody := substituteUnderBinder(t.Var, t.Body, varName, term)
		return logic.Forall{Var: newVar, Body: newBody}
	case logic.Exists:
		newVar, newBody := substituteUnderBinder(t.Var, t.Body, varName, term)
		return logic.Exists{Var: newVar, Body: newBody}
	case logic.AtomicProp:
		return t
	case logic.PredApp:
		return logic.PredApp{Pred: t.Pred, Args: substituteTermSlice(t.Args, varName, term)}
	case logic.Equals:
		return logic.Equals{
			Left:  substituteTerm(t.Left, varName, term),
			Right: substituteTerm(t.Right, varName, term),
		}
	default:
		return f
	}
}

// substituteUnderBinder handles one quantifier's binder when substituting
// varName := term into its body. It returns the (possibly renamed)
// binder variable and the (substituted) body.
func substituteUnderBinder(binderVar string, body logic.Formula, varName string, term logic.Term) (string, logic.Formula) {
	if binderVar == varName {
		// varName is shadowed here: nothing under this binder changes.
		return binderVar, body
	}

	if !FreeVarsTerm(term).Contains(binderVar) {
		// No capture risk: substitute straight through.
		return binderVar, Substitute(body, varName, term)
	}

	// term's free variables would capture binderVar: alpha-rename the
	// binder to a name fresh for both the body and term first.
	avoid := unionSets(FreeVars(body), FreeVarsTerm(term))
	avoid[varName] = struct{}{}
	fresh := freshName(binderVar, avoid)
	renamedBody := Substitute(body, binderVar, logic.Atomic{Name: fresh})
	return fresh, Substitute(renamedBody, varName, term)
}

func substituteSlice(fs []logic.Formula, varName string, term logic.Term) []logic.Formula {
	out := make([]logic.Formula, len(fs))
	for i, f := range fs {
		out[i] = Substitute(f, varName, term)
	}
	return out
}

// substituteTerm replaces every occurrence of the variable name varName
// in t by term.
func substituteTerm(t logic.Term, varName string, term logic.Term) logic.Term {
	switch x := t.(type) {
	case logic.Atomic:
		if x.Name == varName {
			return term
		}
		return x
	case logic.FuncApp:
		return logic.FuncApp{Func: x.Func, Args: substituteTermSlice(x.Args, varName, term)}
	default:
		return t
	}
}

func substituteTermSlice(ts []logic.Term, varName string, term logic.Term) []logic.Term {
	out := make([]logic.Term, len(ts))
	for i, t := range ts {
		out[i] = substituteTerm(t, varName, term)
	}
	return out
}

func unionSets(a, b NameSet) NameSet {
	out := make(NameSet, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

// freshName returns base, or base with primes appended, until the result
// is absent from every set in avoid.
func freshName(base string, avoid NameSet) string {
	name := base
	for avoid.Contains(name) {
		name += "'"
	}
	return name
}
