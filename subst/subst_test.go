package subst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mirelin/fitchproof/logic"
	"github.com/mirelin/fitchproof/subst"
)

func atom(name string) logic.Term        { return logic.Atomic{Name: name} }
func pred(name string, ts ...logic.Term) logic.Formula {
	return logic.PredApp{Pred: name, Args: ts}
}

func TestFreeVars_QuantifierShadows(t *testing.T) {
	// forall x. P(x, y) has y free, x bound.
	f := logic.Forall{Var: "x", Body: pred("P", atom("x"), atom("y"))}
	fv := subst.FreeVars(f)
	assert.True(t, fv.Contains("y"))
	assert.False(t, fv.Contains("x"))
}

func TestFreshFor(t *testing.T) {
	f := pred("P", atom("x"))
	assert.True(t, subst.FreshFor("y", f))
	assert.False(t, subst.FreshFor("x", f))
}

func TestIsVariable(t *testing.T) {
	allowed := subst.NameSet{"x": {}, "y": {}}
	assert.True(t, subst.IsVariable("x", allowed))
	assert.False(t, subst.IsVariable("a", allowed))
}

func TestSubstitute_Basic(t *testing.T) {
	f := pred("P", atom("x"))
	got := subst.Substitute(f, "x", atom("a"))
	assert.True(t, got.Equal(pred("P", atom("a"))))
}

func TestSubstitute_AvoidsCapture(t *testing.T) {
	// forall y. P(x, y) substituted x := y must rename the bound y so
	// the incoming y does not get captured by the quantifier.
	f := logic.Forall{Var: "y", Body: pred("P", atom("x"), atom("y"))}
	got := subst.Substitute(f, "x", atom("y"))

	forall, ok := got.(logic.Forall)
	if assert.True(t, ok) {
		assert.NotEqual(t, "y", forall.Var, "bound variable must be renamed to avoid capturing the substituted y")
		body, ok := forall.Body.(logic.PredApp)
		if assert.True(t, ok) {
			assert.True(t, body.Args[0].Equal(atom("y")), "substituted occurrence must read the incoming y")
			assert.True(t, body.Args[1].Equal(atom(forall.Var)), "renamed bound occurrence must use the fresh name")
		}
	}
}

func TestSubstitute_ShadowedVarUntouched(t *testing.T) {
	// forall x. P(x) substituted x := a leaves the body untouched: x is
	// shadowed by its own binder.
	f := logic.Forall{Var: "x", Body: pred("P", atom("x"))}
	got := subst.Substitute(f, "x", atom("a"))
	assert.True(t, got.Equal(f))
}

func TestAlphaEquiv(t *testing.T) {
	f1 := logic.Forall{Var: "x", Body: pred("P", atom("x"))}
	f2 := logic.Forall{Var: "y", Body: pred("P", atom("y"))}
	assert.True(t, subst.AlphaEquiv(f1, f2))
	assert.False(t, f1.Equal(f2), "syntactic equality must NOT treat these as equal")
}

func TestAlphaEquiv_DifferentFreeVarsNotEquivalent(t *testing.T) {
	f1 := logic.Forall{Var: "x", Body: pred("P", atom("x"), atom("y"))}
	f2 := logic.Forall{Var: "x", Body: pred("P", atom("x"), atom("z"))}
	assert.False(t, subst.AlphaEquiv(f1, f2))
}

func TestMatchesAfterReplacing_Partial(t *testing.T) {
	// P(a, a) can become P(b, a) by replacing only the first occurrence.
	pattern := pred("P", atom("a"), atom("a"))
	actual := pred("P", atom("b"), atom("a"))
	assert.True(t, subst.MatchesAfterReplacing(pattern, actual, atom("a"), atom("b")))
}

func TestMatchesAfterReplacing_RejectsUnrelatedChange(t *testing.T) {
	pattern := pred("P", atom("a"))
	actual := pred("P", atom("c"))
	assert.False(t, subst.MatchesAfterReplacing(pattern, actual, atom("a"), atom("b")))
}

func TestOccursAnywhere(t *testing.T) {
	f := pred("P", logic.FuncApp{Func: "f", Args: []logic.Term{atom("c")}})
	assert.True(t, subst.OccursAnywhere(f, atom("c")))
	assert.False(t, subst.OccursAnywhere(f, atom("d")))
}

func TestFindWitness(t *testing.T) {
	pattern := pred("P", atom("x"))
	actual := pred("P", atom("a"))
	witness, found := subst.FindWitness(pattern, actual, "x")
	if assert.True(t, found) {
		assert.True(t, witness.Equal(atom("a")))
	}
}

func TestFindWitness_NotFreeInPattern(t *testing.T) {
	pattern := pred("P", atom("y"))
	_, found := subst.FindWitness(pattern, pattern, "x")
	assert.False(t, found)
}
