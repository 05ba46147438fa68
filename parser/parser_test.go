package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirelin/fitchproof/logic"
	"github.com/mirelin/fitchproof/parser"
	"github.com/mirelin/fitchproof/subst"
	"github.com/mirelin/fitchproof/verifier"
)

func TestParseFormula_Precedence(t *testing.T) {
	f, err := parser.ParseFormula("P & Q | R -> S <-> T")
	require.NoError(t, err)
	// <-> binds loosest, -> next, so the top is a Bicond.
	_, ok := f.(logic.Bicond)
	assert.True(t, ok)
}

func TestParseFormula_Quantifiers(t *testing.T) {
	f, err := parser.ParseFormula("forall x. P(x) -> exists y. Q(x, y)")
	require.NoError(t, err)
	impl, ok := f.(logic.Implies)
	require.True(t, ok)
	_, ok = impl.Antecedent.(logic.Forall)
	assert.True(t, ok)
	_, ok = impl.Consequent.(logic.Exists)
	assert.True(t, ok)
}

func TestParseFormula_UnicodeAndASCIIAgree(t *testing.T) {
	unicode, err := parser.ParseFormula("¬P ∧ Q")
	require.NoError(t, err)
	ascii, err := parser.ParseFormula("~P & Q")
	require.NoError(t, err)
	assert.True(t, unicode.Equal(ascii))
}

func TestParseFormula_Equality(t *testing.T) {
	f, err := parser.ParseFormula("f(a) = b")
	require.NoError(t, err)
	eq, ok := f.(logic.Equals)
	require.True(t, ok)
	assert.Equal(t, "f(a)", eq.Left.String())
	assert.Equal(t, "b", eq.Right.String())
}

func TestParseFormula_UnterminatedGroup(t *testing.T) {
	_, err := parser.ParseFormula("(P & Q")
	assert.Error(t, err)
}

func TestParse_SimpleProof(t *testing.T) {
	text := "1. P & Q\n---\n2. P : AndElim 1\n"
	nodes, err := parser.Parse(text)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	allowed := subst.NameSet{"x": {}, "y": {}, "z": {}}
	result := verifier.CheckRaw(nodes, allowed, nil)
	assert.True(t, result.Correct, "%v %s", result.Errors, result.Fatal)
}

func TestParse_SubproofWithBoxedConstant(t *testing.T) {
	// ExistsIntro cites line 3 while still inside the subproof — once it
	// closes, line 3 is only reachable as part of the (2,4) range, which
	// the line-citing form of ExistsIntro cannot use.
	text := "1. forall x. P(x)\n---\n| 2. [c]\n| ---\n| 3. P(c) : ForallElim 1\n| 4. exists x. P(x) : ExistsIntro 3\n"
	nodes, err := parser.Parse(text)
	require.NoError(t, err)

	allowed := subst.NameSet{"x": {}, "y": {}, "z": {}}
	result := verifier.CheckRaw(nodes, allowed, nil)
	assert.True(t, result.Correct, "%v %s", result.Errors, result.Fatal)
}

func TestParse_UnknownRuleSuggestsClosestMatch(t *testing.T) {
	_, err := parser.Parse("1. P\n---\n2. P : AndElm 1\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "AndElim"`)
}

func TestParse_BadLineSyntax(t *testing.T) {
	_, err := parser.Parse("not a valid line at all :::")
	assert.Error(t, err)
}
