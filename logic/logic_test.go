package logic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mirelin/fitchproof/logic"
)

func TestFormulaEqual_Syntactic(t *testing.T) {
	p := logic.AtomicProp{Name: "P"}
	q := logic.AtomicProp{Name: "Q"}

	and1 := logic.And{Conjuncts: []logic.Formula{p, q}}
	and2 := logic.And{Conjuncts: []logic.Formula{p, q}}
	and3 := logic.And{Conjuncts: []logic.Formula{q, p}}

	assert.True(t, and1.Equal(and2))
	assert.False(t, and1.Equal(and3), "conjunct order matters for syntactic equality")
}

func TestFormulaEqual_ForallDoesNotRename(t *testing.T) {
	fx := logic.Forall{Var: "x", Body: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "x"}}}}
	fy := logic.Forall{Var: "y", Body: logic.PredApp{Pred: "P", Args: []logic.Term{logic.Atomic{Name: "y"}}}}

	assert.False(t, fx.Equal(fy), "logic.Formula.Equal is syntactic, not alpha-equivalence")
}

func TestTermEqual(t *testing.T) {
	a := logic.FuncApp{Func: "f", Args: []logic.Term{logic.Atomic{Name: "a"}, logic.Atomic{Name: "b"}}}
	b := logic.FuncApp{Func: "f", Args: []logic.Term{logic.Atomic{Name: "a"}, logic.Atomic{Name: "b"}}}
	c := logic.FuncApp{Func: "f", Args: []logic.Term{logic.Atomic{Name: "a"}, logic.Atomic{Name: "c"}}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNumberedLine_IsInference(t *testing.T) {
	premise := logic.NumberedLine{LineNum: 1, NodeDepth: 1, Sentence: logic.AtomicProp{Name: "P"}}
	assert.False(t, premise.IsInference())

	inference := logic.NumberedLine{
		LineNum:       2,
		NodeDepth:     1,
		Sentence:      logic.AtomicProp{Name: "P"},
		Justification: logic.Reit{Line: 1},
	}
	assert.True(t, inference.IsInference())
}

func TestNumberedLine_IntroducesBoxedConstant(t *testing.T) {
	plain := logic.NumberedLine{LineNum: 1, NodeDepth: 2, Sentence: logic.AtomicProp{Name: "P"}}
	assert.False(t, plain.IntroducesBoxedConstant())

	boxed := logic.NumberedLine{LineNum: 1, NodeDepth: 2, BoxedConstant: logic.Atomic{Name: "c"}}
	assert.True(t, boxed.IntroducesBoxedConstant())
}

func TestIsStructural(t *testing.T) {
	assert.True(t, logic.IsStructural(logic.SubproofOpen{NodeDepth: 2}))
	assert.True(t, logic.IsStructural(logic.SubproofClose{NodeDepth: 2}))
	assert.False(t, logic.IsStructural(logic.NumberedLine{LineNum: 1, NodeDepth: 1}))
}

func TestAsNumbered(t *testing.T) {
	n, ok := logic.AsNumbered(logic.NumberedLine{LineNum: 3, NodeDepth: 1})
	assert.True(t, ok)
	assert.Equal(t, 3, n.LineNum)

	_, ok = logic.AsNumbered(logic.FitchBar{NodeDepth: 1})
	assert.False(t, ok)
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 2, logic.NumberedLine{NodeDepth: 2}.Depth())
	assert.Equal(t, 3, logic.FitchBar{NodeDepth: 3}.Depth())
	assert.Equal(t, 1, logic.Empty{NodeDepth: 1}.Depth())
}

func TestFormulaString(t *testing.T) {
	f := logic.Implies{
		Antecedent: logic.AtomicProp{Name: "P"},
		Consequent: logic.Not{Inner: logic.AtomicProp{Name: "Q"}},
	}
	assert.Equal(t, "(P -> ~Q)", f.String())
}
