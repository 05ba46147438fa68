package rules

import (
	"github.com/mirelin/fitchproof/logic"
	"github.com/mirelin/fitchproof/subst"
)

// Check dispatches on the concrete type of just and verifies that
// conclusion is a valid consequence of it under ctx. lineNum is the
// citing line, used only to localize error messages.
func Check(ctx Context, lineNum int, conclusion logic.Formula, just logic.Justification) error {
	switch j := just.(type) {
	case logic.AndIntro:
		return checkAndIntro(ctx, lineNum, conclusion, j)
	case logic.AndElim:
		return checkAndElim(ctx, lineNum, conclusion, j)
	case logic.OrIntro:
		return checkOrIntro(ctx, lineNum, conclusion, j)
	case logic.OrElim:
		return checkOrElim(ctx, lineNum, conclusion, j)
	case logic.NotIntro:
		return checkNotIntro(ctx, lineNum, conclusion, j)
	case logic.NotElim:
		return checkNotElim(ctx, lineNum, conclusion, j)
	case logic.BottomIntro:
		return checkBottomIntro(ctx, lineNum, conclusion, j)
	case logic.BottomElim:
		return checkBottomElim(ctx, lineNum, conclusion, j)
	case logic.ImpliesIntro:
		return checkImpliesIntro(ctx, lineNum, conclusion, j)
	case logic.ImpliesElim:
		return checkImpliesElim(ctx, lineNum, conclusion, j)
	case logic.BicondIntro:
		return checkBicondIntro(ctx, lineNum, conclusion, j)
	case logic.BicondElim:
		return checkBicondElim(ctx, lineNum, conclusion, j)
	case logic.EqualsIntro:
		return checkEqualsIntro(lineNum, conclusion)
	case logic.EqualsElim:
		return checkEqualsElim(ctx, lineNum, conclusion, j)
	case logic.ForallIntro:
		return checkForallIntro(ctx, lineNum, conclusion, j)
	case logic.ForallElim:
		return checkForallElim(ctx, lineNum, conclusion, j)
	case logic.ExistsIntro:
		return checkExistsIntro(ctx, lineNum, conclusion, j)
	case logic.ExistsElim:
		return checkExistsElim(ctx, lineNum, conclusion, j)
	case logic.Reit:
		return checkReit(ctx, lineNum, conclusion, j)
	default:
		return violation(lineNum, "unrecognized justification")
	}
}

func checkAndIntro(ctx Context, lineNum int, conclusion logic.Formula, j logic.AndIntro) error {
	and, ok := conclusion.(logic.And)
	if !ok {
		return violation(lineNum, "AndIntro must conclude a conjunction")
	}
	if len(j.Lines) < 2 {
		return violation(lineNum, "AndIntro needs at least two cited lines")
	}
	if len(and.Conjuncts) != len(j.Lines) {
		return violation(lineNum, "AndIntro's conjunct count does not match the number of cited lines")
	}
	for i, n := range j.Lines {
		f, err := ctx.formulaAt(lineNum, n)
		if err != nil {
			return err
		}
		if !and.Conjuncts[i].Equal(f) {
			return violation(lineNum, "conjunct %d does not match line %d", i+1, n)
		}
	}
	return nil
}

func checkAndElim(ctx Context, lineNum int, conclusion logic.Formula, j logic.AndElim) error {
	f, err := ctx.formulaAt(lineNum, j.Line)
	if err != nil {
		return err
	}
	and, ok := f.(logic.And)
	if !ok {
		return violation(lineNum, "AndElim's cited line %d is not a conjunction", j.Line)
	}
	for _, c := range and.Conjuncts {
		if c.Equal(conclusion) {
			return nil
		}
	}
	return violation(lineNum, "conclusion is not a conjunct of line %d", j.Line)
}

func checkOrIntro(ctx Context, lineNum int, conclusion logic.Formula, j logic.OrIntro) error {
	f, err := ctx.formulaAt(lineNum, j.Line)
	if err != nil {
		return err
	}
	or, ok := conclusion.(logic.Or)
	if !ok {
		return violation(lineNum, "OrIntro must conclude a disjunction")
	}
	for _, d := range or.Disjuncts {
		if d.Equal(f) {
			return nil
		}
	}
	return violation(lineNum, "none of the disjuncts match line %d", j.Line)
}

func checkOrElim(ctx Context, lineNum int, conclusion logic.Formula, j logic.OrElim) error {
	f, err := ctx.formulaAt(lineNum, j.DisjLine)
	if err != nil {
		return err
	}
	or, ok := f.(logic.Or)
	if !ok {
		return violation(lineNum, "OrElim's cited line %d is not a disjunction", j.DisjLine)
	}
	if len(or.Disjuncts) != len(j.Cases) {
		return violation(lineNum, "OrElim must cite one subproof per disjunct of line %d", j.DisjLine)
	}
	for i, rng := range j.Cases {
		premise, last, err := ctx.subproofAt(lineNum, rng)
		if err != nil {
			return err
		}
		if premise.Sentence == nil || !premise.Sentence.Equal(or.Disjuncts[i]) {
			return violation(lineNum, "subproof %d-%d's premise does not match disjunct %d", rng.Begin, rng.End, i+1)
		}
		if !subst.AlphaEquiv(last.Sentence, conclusion) {
			return violation(lineNum, "subproof %d-%d does not conclude the stated conclusion", rng.Begin, rng.End)
		}
	}
	return nil
}

func checkNotIntro(ctx Context, lineNum int, conclusion logic.Formula, j logic.NotIntro) error {
	premise, last, err := ctx.subproofAt(lineNum, j.Sub)
	if err != nil {
		return err
	}
	if premise.Sentence == nil {
		return violation(lineNum, "subproof %d-%d has no premise formula", j.Sub.Begin, j.Sub.End)
	}
	if _, ok := last.Sentence.(logic.Bottom); !ok {
		return violation(lineNum, "subproof %d-%d must end in falsum", j.Sub.Begin, j.Sub.End)
	}
	want := logic.Not{Inner: premise.Sentence}
	if !want.Equal(conclusion) {
		return violation(lineNum, "conclusion must be the negation of line %d", j.Sub.Begin)
	}
	return nil
}

func checkNotElim(ctx Context, lineNum int, conclusion logic.Formula, j logic.NotElim) error {
	f, err := ctx.formulaAt(lineNum, j.Line)
	if err != nil {
		return err
	}
	outer, ok := f.(logic.Not)
	if !ok {
		return violation(lineNum, "NotElim's cited line %d is not a negation", j.Line)
	}
	inner, ok := outer.Inner.(logic.Not)
	if !ok {
		return violation(lineNum, "NotElim's cited line %d is not a double negation", j.Line)
	}
	if !inner.Inner.Equal(conclusion) {
		return violation(lineNum, "conclusion does not match the doubly-negated formula on line %d", j.Line)
	}
	return nil
}

func checkBottomIntro(ctx Context, lineNum int, conclusion logic.Formula, j logic.BottomIntro) error {
	phi, err := ctx.formulaAt(lineNum, j.PhiLine)
	if err != nil {
		return err
	}
	notPhi, err := ctx.formulaAt(lineNum, j.NotPhiLine)
	if err != nil {
		return err
	}
	if _, ok := conclusion.(logic.Bottom); !ok {
		return violation(lineNum, "BottomIntro must conclude falsum")
	}
	if n, ok := notPhi.(logic.Not); ok && n.Inner.Equal(phi) {
		return nil
	}
	if n, ok := phi.(logic.Not); ok && n.Inner.Equal(notPhi) {
		return nil
	}
	return violation(lineNum, "lines %d and %d are not a formula and its negation", j.PhiLine, j.NotPhiLine)
}

func checkBottomElim(ctx Context, lineNum int, conclusion logic.Formula, j logic.BottomElim) error {
	f, err := ctx.formulaAt(lineNum, j.Line)
	if err != nil {
		return err
	}
	if _, ok := f.(logic.Bottom); !ok {
		return violation(lineNum, "BottomElim's cited line %d is not falsum", j.Line)
	}
	return nil
}

func checkImpliesIntro(ctx Context, lineNum int, conclusion logic.Formula, j logic.ImpliesIntro) error {
	premise, last, err := ctx.subproofAt(lineNum, j.Sub)
	if err != nil {
		return err
	}
	if premise.Sentence == nil {
		return violation(lineNum, "subproof %d-%d has no premise formula", j.Sub.Begin, j.Sub.End)
	}
	want := logic.Implies{Antecedent: premise.Sentence, Consequent: last.Sentence}
	if !want.Equal(conclusion) {
		return violation(lineNum, "conclusion must be line %d implies line %d", j.Sub.Begin, j.Sub.End)
	}
	return nil
}

func checkImpliesElim(ctx Context, lineNum int, conclusion logic.Formula, j logic.ImpliesElim) error {
	impl, err := ctx.formulaAt(lineNum, j.ImplLine)
	if err != nil {
		return err
	}
	ant, err := ctx.formulaAt(lineNum, j.AntLine)
	if err != nil {
		return err
	}
	i, ok := impl.(logic.Implies)
	if !ok {
		return violation(lineNum, "ImpliesElim's cited line %d is not an implication", j.ImplLine)
	}
	if !i.Antecedent.Equal(ant) {
		return violation(lineNum, "line %d does not match the antecedent of line %d", j.AntLine, j.ImplLine)
	}
	if !i.Consequent.Equal(conclusion) {
		return violation(lineNum, "conclusion does not match the consequent of line %d", j.ImplLine)
	}
	return nil
}

func checkBicondIntro(ctx Context, lineNum int, conclusion logic.Formula, j logic.BicondIntro) error {
	premise1, last1, err := ctx.subproofAt(lineNum, j.Sub1)
	if err != nil {
		return err
	}
	premise2, last2, err := ctx.subproofAt(lineNum, j.Sub2)
	if err != nil {
		return err
	}
	if premise1.Sentence == nil || premise2.Sentence == nil {
		return violation(lineNum, "BicondIntro's subproofs must each have a premise formula")
	}
	// Sub1 derives psi from phi; Sub2 derives phi from psi.
	if !premise1.Sentence.Equal(last2.Sentence) {
		return violation(lineNum, "subproof %d-%d's premise must match subproof %d-%d's conclusion", j.Sub1.Begin, j.Sub1.End, j.Sub2.Begin, j.Sub2.End)
	}
	if !last1.Sentence.Equal(premise2.Sentence) {
		return violation(lineNum, "subproof %d-%d's conclusion must match subproof %d-%d's premise", j.Sub1.Begin, j.Sub1.End, j.Sub2.Begin, j.Sub2.End)
	}
	want := logic.Bicond{Left: premise1.Sentence, Right: last1.Sentence}
	if !want.Equal(conclusion) {
		return violation(lineNum, "conclusion must be the biconditional of line %d and line %d", j.Sub1.Begin, j.Sub1.End)
	}
	return nil
}

func checkBicondElim(ctx Context, lineNum int, conclusion logic.Formula, j logic.BicondElim) error {
	b, err := ctx.formulaAt(lineNum, j.BicondLine)
	if err != nil {
		return err
	}
	op, err := ctx.formulaAt(lineNum, j.OperandLine)
	if err != nil {
		return err
	}
	bc, ok := b.(logic.Bicond)
	if !ok {
		return violation(lineNum, "BicondElim's cited line %d is not a biconditional", j.BicondLine)
	}
	switch {
	case bc.Left.Equal(op):
		if !bc.Right.Equal(conclusion) {
			return violation(lineNum, "conclusion must be the other side of line %d", j.BicondLine)
		}
		return nil
	case bc.Right.Equal(op):
		if !bc.Left.Equal(conclusion) {
			return violation(lineNum, "conclusion must be the other side of line %d", j.BicondLine)
		}
		return nil
	default:
		return violation(lineNum, "line %d is neither side of the biconditional on line %d", j.OperandLine, j.BicondLine)
	}
}

func checkEqualsIntro(lineNum int, conclusion logic.Formula) error {
	eq, ok := conclusion.(logic.Equals)
	if !ok || !eq.Left.Equal(eq.Right) {
		return violation(lineNum, "EqualsIntro must conclude t = t for some term t")
	}
	return nil
}

// checkEqualsElim implements the strict reading of the Open Question in
// spec.md §9: a single EqualsElim replaces occurrences in one direction
// only (s->t or t->s), never mixing directions within one invocation.
func checkEqualsElim(ctx Context, lineNum int, conclusion logic.Formula, j logic.EqualsElim) error {
	eq, err := ctx.formulaAt(lineNum, j.EqLine)
	if err != nil {
		return err
	}
	src, err := ctx.formulaAt(lineNum, j.TargetLine)
	if err != nil {
		return err
	}
	e, ok := eq.(logic.Equals)
	if !ok {
		return violation(lineNum, "EqualsElim's cited line %d is not an equality", j.EqLine)
	}
	if subst.MatchesAfterReplacing(src, conclusion, e.Left, e.Right) {
		return nil
	}
	if subst.MatchesAfterReplacing(src, conclusion, e.Right, e.Left) {
		return nil
	}
	return violation(lineNum, "conclusion is not obtainable from line %d by line %d", j.TargetLine, j.EqLine)
}

func checkForallIntro(ctx Context, lineNum int, conclusion logic.Formula, j logic.ForallIntro) error {
	premise, last, err := ctx.subproofAt(lineNum, j.Sub)
	if err != nil {
		return err
	}
	if premise.BoxedConstant == nil {
		return violation(lineNum, "subproof %d-%d must introduce a boxed constant", j.Sub.Begin, j.Sub.End)
	}
	c := premise.BoxedConstant
	if name, ok := c.(logic.Atomic); ok && subst.IsVariable(name.Name, ctx.AllowedVars) {
		return violation(lineNum, "the boxed constant on line %d must not be a variable", j.Sub.Begin)
	}
	forall, ok := conclusion.(logic.Forall)
	if !ok {
		return violation(lineNum, "ForallIntro must conclude a universal")
	}
	for _, visibleLine := range ctx.Visible.Lines {
		if vf, present := ctx.Lines[visibleLine]; present && vf.Sentence != nil && subst.OccursAnywhere(vf.Sentence, c) {
			return violation(lineNum, "the boxed constant on line %d occurs free in line %d", j.Sub.Begin, visibleLine)
		}
	}
	if !subst.FreshFor(forall.Var, last.Sentence) {
		return violation(lineNum, "the generalized variable %s already occurs in line %d", forall.Var, j.Sub.End)
	}
	if subst.OccursAnywhere(forall.Body, c) {
		return violation(lineNum, "the boxed constant on line %d still occurs in the conclusion", j.Sub.Begin)
	}
	if !subst.MatchesAfterReplacing(last.Sentence, forall.Body, c, logic.Atomic{Name: forall.Var}) {
		return violation(lineNum, "the conclusion does not generalize line %d over line %d's boxed constant", j.Sub.End, j.Sub.Begin)
	}
	return nil
}

func checkForallElim(ctx Context, lineNum int, conclusion logic.Formula, j logic.ForallElim) error {
	f, err := ctx.formulaAt(lineNum, j.Line)
	if err != nil {
		return err
	}
	forall, ok := f.(logic.Forall)
	if !ok {
		return violation(lineNum, "ForallElim's cited line %d is not a universal", j.Line)
	}
	t, found := subst.FindWitness(forall.Body, conclusion, forall.Var)
	if !found {
		if forall.Body.Equal(conclusion) {
			return nil
		}
		return violation(lineNum, "conclusion does not instantiate line %d", j.Line)
	}
	if !subst.Substitute(forall.Body, forall.Var, t).Equal(conclusion) {
		return violation(lineNum, "conclusion does not consistently instantiate line %d", j.Line)
	}
	return nil
}

func checkExistsIntro(ctx Context, lineNum int, conclusion logic.Formula, j logic.ExistsIntro) error {
	src, err := ctx.formulaAt(lineNum, j.Line)
	if err != nil {
		return err
	}
	exists, ok := conclusion.(logic.Exists)
	if !ok {
		return violation(lineNum, "ExistsIntro must conclude an existential")
	}
	t, found := subst.FindWitness(exists.Body, src, exists.Var)
	if !found {
		if exists.Body.Equal(src) {
			return nil
		}
		return violation(lineNum, "conclusion does not generalize line %d", j.Line)
	}
	if !subst.MatchesAfterReplacing(src, exists.Body, t, logic.Atomic{Name: exists.Var}) {
		return violation(lineNum, "conclusion does not consistently witness line %d", j.Line)
	}
	return nil
}

func checkExistsElim(ctx Context, lineNum int, conclusion logic.Formula, j logic.ExistsElim) error {
	f, err := ctx.formulaAt(lineNum, j.ExistsLine)
	if err != nil {
		return err
	}
	exists, ok := f.(logic.Exists)
	if !ok {
		return violation(lineNum, "ExistsElim's cited line %d is not an existential", j.ExistsLine)
	}
	premise, last, err := ctx.subproofAt(lineNum, j.Sub)
	if err != nil {
		return err
	}
	if premise.BoxedConstant == nil {
		return violation(lineNum, "subproof %d-%d must introduce a boxed constant", j.Sub.Begin, j.Sub.End)
	}
	c := premise.BoxedConstant
	if name, ok := c.(logic.Atomic); ok && subst.IsVariable(name.Name, ctx.AllowedVars) {
		return violation(lineNum, "the boxed constant on line %d must not be a variable", j.Sub.Begin)
	}
	want := subst.Substitute(exists.Body, exists.Var, c)
	if premise.Sentence == nil || !premise.Sentence.Equal(want) {
		return violation(lineNum, "subproof %d-%d's premise must be line %d instantiated with its own boxed constant", j.Sub.Begin, j.Sub.End, j.ExistsLine)
	}
	if subst.OccursAnywhere(conclusion, c) {
		return violation(lineNum, "the boxed constant on line %d still occurs in the conclusion", j.Sub.Begin)
	}
	for _, visibleLine := range ctx.Visible.Lines {
		if vf, present := ctx.Lines[visibleLine]; present && vf.Sentence != nil && subst.OccursAnywhere(vf.Sentence, c) {
			return violation(lineNum, "the boxed constant on line %d occurs free in line %d", j.Sub.Begin, visibleLine)
		}
	}
	if !last.Sentence.Equal(conclusion) {
		return violation(lineNum, "subproof %d-%d must conclude the stated conclusion", j.Sub.Begin, j.Sub.End)
	}
	return nil
}

func checkReit(ctx Context, lineNum int, conclusion logic.Formula, j logic.Reit) error {
	f, err := ctx.formulaAt(lineNum, j.Line)
	if err != nil {
		return err
	}
	if !f.Equal(conclusion) {
		return violation(lineNum, "reiterated line %d is not syntactically identical to the conclusion", j.Line)
	}
	return nil
}
