package verifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirelin/fitchproof/logic"
	"github.com/mirelin/fitchproof/subst"
	"github.com/mirelin/fitchproof/verifier"
)

func defaultVars() subst.NameSet {
	return subst.NameSet{"x": {}, "y": {}, "z": {}, "u": {}, "v": {}, "w": {}}
}

func p(name string) logic.Formula { return logic.AtomicProp{Name: name} }

func checkRaw(t *testing.T, nodes []logic.ProofNode) verifier.ProofResult {
	t.Helper()
	return verifier.CheckRaw(nodes, defaultVars(), nil)
}

// Scenario 1: P&Q at line 1; P at line 2 by AndElim(1). Expect Correct.
func TestScenario1_AndElim(t *testing.T) {
	nodes := []logic.ProofNode{
		logic.NumberedLine{LineNum: 1, NodeDepth: 1, Sentence: logic.And{Conjuncts: []logic.Formula{p("P"), p("Q")}}},
		logic.FitchBar{NodeDepth: 1},
		logic.NumberedLine{LineNum: 2, NodeDepth: 1, Sentence: p("P"), Justification: logic.AndElim{Line: 1}},
	}
	result := checkRaw(t, nodes)
	assert.Empty(t, result.Fatal)
	assert.True(t, result.Correct, "%v", result.Errors)
}

// Scenario 2: P->Q at line 1, P at line 2; Q at line 3 by ImpliesElim(1,2).
func TestScenario2_ImpliesElim(t *testing.T) {
	nodes := []logic.ProofNode{
		logic.NumberedLine{LineNum: 1, NodeDepth: 1, Sentence: logic.Implies{Antecedent: p("P"), Consequent: p("Q")}},
		logic.NumberedLine{LineNum: 2, NodeDepth: 1, Sentence: p("P")},
		logic.FitchBar{NodeDepth: 1},
		logic.NumberedLine{LineNum: 3, NodeDepth: 1, Sentence: p("Q"), Justification: logic.ImpliesElim{ImplLine: 1, AntLine: 2}},
	}
	result := checkRaw(t, nodes)
	assert.True(t, result.Correct, "%v", result.Errors)
}

// Scenario 3: subproof opens at depth 2 with premise P (line 2); line 3
// Reit 2 = P; subproof closes; line 4 = P->P by ImpliesIntro(2-3).
func TestScenario3_ImpliesIntroViaReit(t *testing.T) {
	nodes := []logic.ProofNode{
		logic.NumberedLine{LineNum: 1, NodeDepth: 1, Sentence: p("Q")},
		logic.FitchBar{NodeDepth: 1},
		logic.NumberedLine{LineNum: 2, NodeDepth: 2, Sentence: p("P")},
		logic.FitchBar{NodeDepth: 2},
		logic.NumberedLine{LineNum: 3, NodeDepth: 2, Sentence: p("P"), Justification: logic.Reit{Line: 2}},
		logic.NumberedLine{
			LineNum: 4, NodeDepth: 1,
			Sentence:      logic.Implies{Antecedent: p("P"), Consequent: p("P")},
			Justification: logic.ImpliesIntro{Sub: logic.SubproofRange{Begin: 2, End: 3}},
		},
	}
	result := checkRaw(t, nodes)
	assert.True(t, result.Correct, "%v", result.Errors)
}

// Scenario 4: line 1 premise forall x. P(x); line 2 P(a) by ForallElim(1).
func TestScenario4_ForallElim(t *testing.T) {
	forallX := logic.Forall{Var: "x", Body: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "x"}}}}
	nodes := []logic.ProofNode{
		logic.NumberedLine{LineNum: 1, NodeDepth: 1, Sentence: forallX},
		logic.FitchBar{NodeDepth: 1},
		logic.NumberedLine{
			LineNum: 2, NodeDepth: 1,
			Sentence:      logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "a"}}},
			Justification: logic.ForallElim{Line: 1},
		},
	}
	result := checkRaw(t, nodes)
	assert.True(t, result.Correct, "%v", result.Errors)
}

// Scenario 5: line 1 forall x. P(x); line 2 forall y. P(y) by Reit(1). Expect an
// error on line 2 — Reit demands syntactic, not alpha, equality.
func TestScenario5_ReitRejectsAlphaVariant(t *testing.T) {
	forallX := logic.Forall{Var: "x", Body: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "x"}}}}
	nodes := []logic.ProofNode{
		logic.NumberedLine{LineNum: 1, NodeDepth: 1, Sentence: forallX},
		logic.FitchBar{NodeDepth: 1},
		logic.NumberedLine{
			LineNum: 2, NodeDepth: 1,
			Sentence:      logic.Forall{Var: "y", Body: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "y"}}}},
			Justification: logic.Reit{Line: 1},
		},
	}
	result := checkRaw(t, nodes)
	require.Empty(t, result.Fatal)
	assert.False(t, result.Correct)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "line 2")
}

// Scenario 6: line 1 premise P(a); subproof premise (line 2) introduces
// boxed constant a; ForallIntro of the subproof's conclusion must fail
// because a occurs free in line 1's enclosing-scope formula.
func TestScenario6_ForallIntroRejectsNonFreshConstant(t *testing.T) {
	nodes := []logic.ProofNode{
		logic.NumberedLine{LineNum: 1, NodeDepth: 1, Sentence: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "a"}}}},
		logic.FitchBar{NodeDepth: 1},
		logic.NumberedLine{LineNum: 2, NodeDepth: 2, BoxedConstant: logic.Atomic{Name: "a"}},
		logic.FitchBar{NodeDepth: 2},
		logic.NumberedLine{LineNum: 3, NodeDepth: 2, Sentence: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "a"}}}, Justification: logic.Reit{Line: 1}},
		logic.NumberedLine{
			LineNum: 4, NodeDepth: 1,
			Sentence:      logic.Forall{Var: "x", Body: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "x"}}}},
			Justification: logic.ForallIntro{Sub: logic.SubproofRange{Begin: 2, End: 3}},
		},
	}
	result := checkRaw(t, nodes)
	require.Empty(t, result.Fatal)
	assert.False(t, result.Correct)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "line 1")
}

// A premise-shaped line sitting after a Fitch bar is half-well-formed
// (structure.go deliberately allows it) but is really an inference the
// user never finished justifying, and must be reported, not skipped.
func TestCheck_ReportsUnfinishedInferenceAfterBar(t *testing.T) {
	nodes := []logic.ProofNode{
		logic.NumberedLine{LineNum: 1, NodeDepth: 1, Sentence: p("P")},
		logic.FitchBar{NodeDepth: 1},
		logic.NumberedLine{LineNum: 2, NodeDepth: 1, Sentence: p("Q")},
	}
	result := checkRaw(t, nodes)
	require.Empty(t, result.Fatal)
	assert.False(t, result.Correct)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "line 2")
}

// The same shape, but inside a subproof following its own bar: still
// flagged, and the subproof's own boxed-constant premise is not.
func TestCheck_ReportsUnfinishedInferenceInSubproof(t *testing.T) {
	nodes := []logic.ProofNode{
		logic.NumberedLine{LineNum: 1, NodeDepth: 1, Sentence: p("P")},
		logic.FitchBar{NodeDepth: 1},
		logic.NumberedLine{LineNum: 2, NodeDepth: 2, BoxedConstant: logic.Atomic{Name: "c"}},
		logic.FitchBar{NodeDepth: 2},
		logic.NumberedLine{LineNum: 3, NodeDepth: 2, Sentence: p("Q")},
	}
	result := checkRaw(t, nodes)
	require.Empty(t, result.Fatal)
	assert.False(t, result.Correct)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "line 3")
}

func TestConstruct_FatalOnDoubleDepthJump(t *testing.T) {
	nodes := []logic.ProofNode{
		logic.NumberedLine{LineNum: 1, NodeDepth: 1, Sentence: p("P")},
		logic.NumberedLine{LineNum: 2, NodeDepth: 3, Sentence: p("Q")},
	}
	result := checkRaw(t, nodes)
	assert.NotEmpty(t, result.Fatal)
	assert.False(t, result.Correct)
}

func TestFixLineNumbers_RenumbersAndRemaps(t *testing.T) {
	nodes := []logic.ProofNode{
		logic.NumberedLine{LineNum: 5, NodeDepth: 1, Sentence: p("P")},
		logic.NumberedLine{LineNum: 9, NodeDepth: 1, Sentence: p("P"), Justification: logic.Reit{Line: 5}},
	}
	verifier.FixLineNumbers(nodes)

	n0 := nodes[0].(logic.NumberedLine)
	n1 := nodes[1].(logic.NumberedLine)
	assert.Equal(t, 1, n0.LineNum)
	assert.Equal(t, 2, n1.LineNum)
	assert.Equal(t, 1, n1.Justification.(logic.Reit).Line)
}

func TestFixLineNumbers_DanglingCitationBecomesZero(t *testing.T) {
	nodes := []logic.ProofNode{
		logic.NumberedLine{LineNum: 1, NodeDepth: 1, Sentence: p("P"), Justification: logic.Reit{Line: 42}},
	}
	verifier.FixLineNumbers(nodes)

	n0 := nodes[0].(logic.NumberedLine)
	assert.Equal(t, 0, n0.Justification.(logic.Reit).Line)
}
