package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirelin/fitchproof/logic"
	"github.com/mirelin/fitchproof/rules"
	"github.com/mirelin/fitchproof/scope"
	"github.com/mirelin/fitchproof/subst"
)

func p(name string) logic.Formula { return logic.AtomicProp{Name: name} }

func ctxWith(lines map[int]logic.NumberedLine, visLines []int, visSubs []logic.SubproofRange) rules.Context {
	return rules.Context{
		Lines:       lines,
		Visible:     scope.Visibility{Lines: visLines, Subproofs: visSubs},
		AllowedVars: subst.NameSet{"x": {}, "y": {}, "z": {}},
	}
}

func TestCheckAndIntro(t *testing.T) {
	lines := map[int]logic.NumberedLine{
		1: {LineNum: 1, Sentence: p("P")},
		2: {LineNum: 2, Sentence: p("Q")},
	}
	ctx := ctxWith(lines, []int{1, 2}, nil)
	conclusion := logic.And{Conjuncts: []logic.Formula{p("P"), p("Q")}}

	err := rules.Check(ctx, 3, conclusion, logic.AndIntro{Lines: []int{1, 2}})
	assert.NoError(t, err)
}

func TestCheckAndElim(t *testing.T) {
	lines := map[int]logic.NumberedLine{
		1: {LineNum: 1, Sentence: logic.And{Conjuncts: []logic.Formula{p("P"), p("Q")}}},
	}
	ctx := ctxWith(lines, []int{1}, nil)

	assert.NoError(t, rules.Check(ctx, 2, p("P"), logic.AndElim{Line: 1}))
	assert.Error(t, rules.Check(ctx, 2, p("R"), logic.AndElim{Line: 1}))
}

func TestCheckImpliesElim(t *testing.T) {
	lines := map[int]logic.NumberedLine{
		1: {LineNum: 1, Sentence: logic.Implies{Antecedent: p("P"), Consequent: p("Q")}},
		2: {LineNum: 2, Sentence: p("P")},
	}
	ctx := ctxWith(lines, []int{1, 2}, nil)

	err := rules.Check(ctx, 3, p("Q"), logic.ImpliesElim{ImplLine: 1, AntLine: 2})
	assert.NoError(t, err)
}

func TestCheckReit_RejectsOutOfScope(t *testing.T) {
	lines := map[int]logic.NumberedLine{1: {LineNum: 1, Sentence: p("P")}}
	ctx := ctxWith(lines, nil, nil) // line 1 not visible

	err := rules.Check(ctx, 2, p("P"), logic.Reit{Line: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrNotInScope)
}

func TestCheckReit_RequiresSyntacticEquality(t *testing.T) {
	// forall x. P(x) reiterated must match syntactically, not up to
	// alpha-renaming: Reit 1 concluding forall y. P(y) is rejected.
	forallX := logic.Forall{Var: "x", Body: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "x"}}}}
	forallY := logic.Forall{Var: "y", Body: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "y"}}}}
	lines := map[int]logic.NumberedLine{1: {LineNum: 1, Sentence: forallX}}
	ctx := ctxWith(lines, []int{1}, nil)

	err := rules.Check(ctx, 2, forallY, logic.Reit{Line: 1})
	assert.Error(t, err)
}

func TestCheckForallElim(t *testing.T) {
	forallX := logic.Forall{Var: "x", Body: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "x"}}}}
	lines := map[int]logic.NumberedLine{1: {LineNum: 1, Sentence: forallX}}
	ctx := ctxWith(lines, []int{1}, nil)

	conclusion := logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "a"}}}
	assert.NoError(t, rules.Check(ctx, 2, conclusion, logic.ForallElim{Line: 1}))

	wrong := logic.PredApp{Pred: "Q", Args: []logic.Term{logic.Atomic{Name: "a"}}}
	assert.Error(t, rules.Check(ctx, 2, wrong, logic.ForallElim{Line: 1}))
}

func TestCheckForallIntro_RejectsFreeEigenvariable(t *testing.T) {
	// Line 1: P(a) (enclosing scope). Subproof 2-3 introduces boxed
	// constant a (reusing a name already free outside) and concludes
	// P(a) on line 3; ForallIntro must reject because a occurs free in
	// line 1.
	lines := map[int]logic.NumberedLine{
		1: {LineNum: 1, Sentence: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "a"}}}},
		2: {LineNum: 2, BoxedConstant: logic.Atomic{Name: "a"}},
		3: {LineNum: 3, Sentence: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "a"}}}},
	}
	ctx := ctxWith(lines, []int{1}, []logic.SubproofRange{{Begin: 2, End: 3}})

	conclusion := logic.Forall{Var: "x", Body: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "x"}}}}
	err := rules.Check(ctx, 4, conclusion, logic.ForallIntro{Sub: logic.SubproofRange{Begin: 2, End: 3}})
	require.Error(t, err)
	assert.ErrorIs(t, err, rules.ErrRuleViolation)
}

func TestCheckForallIntro_AcceptsFreshEigenvariable(t *testing.T) {
	lines := map[int]logic.NumberedLine{
		2: {LineNum: 2, BoxedConstant: logic.Atomic{Name: "c"}},
		3: {LineNum: 3, Sentence: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "c"}}}},
	}
	ctx := ctxWith(lines, nil, []logic.SubproofRange{{Begin: 2, End: 3}})

	conclusion := logic.Forall{Var: "x", Body: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "x"}}}}
	err := rules.Check(ctx, 4, conclusion, logic.ForallIntro{Sub: logic.SubproofRange{Begin: 2, End: 3}})
	assert.NoError(t, err)
}

func TestCheckEqualsElim_SingleDirection(t *testing.T) {
	eq := logic.Equals{Left: logic.Atomic{Name: "a"}, Right: logic.Atomic{Name: "b"}}
	src := logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "a"}, logic.Atomic{Name: "a"}}}
	lines := map[int]logic.NumberedLine{
		1: {LineNum: 1, Sentence: eq},
		2: {LineNum: 2, Sentence: src},
	}
	ctx := ctxWith(lines, []int{1, 2}, nil)

	// Replacing zero or more occurrences of "a" with "b" is accepted.
	partial := logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "b"}, logic.Atomic{Name: "a"}}}
	assert.NoError(t, rules.Check(ctx, 3, partial, logic.EqualsElim{EqLine: 1, TargetLine: 2}))

	// Replacing "a" with something other than "b" is rejected.
	bad := logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "c"}, logic.Atomic{Name: "a"}}}
	assert.Error(t, rules.Check(ctx, 3, bad, logic.EqualsElim{EqLine: 1, TargetLine: 2}))
}

func TestCheckEqualsIntro(t *testing.T) {
	ctx := ctxWith(nil, nil, nil)
	refl := logic.Equals{Left: logic.Atomic{Name: "a"}, Right: logic.Atomic{Name: "a"}}
	assert.NoError(t, rules.Check(ctx, 1, refl, logic.EqualsIntro{}))

	notRefl := logic.Equals{Left: logic.Atomic{Name: "a"}, Right: logic.Atomic{Name: "b"}}
	assert.Error(t, rules.Check(ctx, 1, notRefl, logic.EqualsIntro{}))
}

func TestCheckOrElim(t *testing.T) {
	disj := logic.Or{Disjuncts: []logic.Formula{p("P"), p("Q")}}
	lines := map[int]logic.NumberedLine{
		1: {LineNum: 1, Sentence: disj},
		2: {LineNum: 2, Sentence: p("P")},
		3: {LineNum: 3, Sentence: p("R")},
		4: {LineNum: 4, Sentence: p("Q")},
		5: {LineNum: 5, Sentence: p("R")},
	}
	ctx := ctxWith(lines, []int{1, 2, 3, 4, 5}, []logic.SubproofRange{{Begin: 2, End: 3}, {Begin: 4, End: 5}})

	err := rules.Check(ctx, 6, p("R"), logic.OrElim{
		DisjLine: 1,
		Cases:    []logic.SubproofRange{{Begin: 2, End: 3}, {Begin: 4, End: 5}},
	})
	assert.NoError(t, err)
}

func TestCheckBottomElim_AnyConclusion(t *testing.T) {
	lines := map[int]logic.NumberedLine{1: {LineNum: 1, Sentence: logic.Bottom{}}}
	ctx := ctxWith(lines, []int{1}, nil)

	assert.NoError(t, rules.Check(ctx, 2, p("Anything"), logic.BottomElim{Line: 1}))
}

func TestCheckExistsIntro(t *testing.T) {
	src := logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "a"}}}
	lines := map[int]logic.NumberedLine{1: {LineNum: 1, Sentence: src}}
	ctx := ctxWith(lines, []int{1}, nil)

	conclusion := logic.Exists{Var: "x", Body: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "x"}}}}
	assert.NoError(t, rules.Check(ctx, 2, conclusion, logic.ExistsIntro{Line: 1}))
}
