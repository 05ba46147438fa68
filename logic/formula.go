package logic

import "strings"

// Formula is a tagged union over the connectives and quantifiers of
// first-order logic. Equality on Formula, as implemented here, is
// syntactic: it does not rename bound variables. Rules that accept
// alpha-equivalent conclusions use subst.AlphaEquiv explicitly instead.
type Formula interface {
	isFormula()
	// String renders the formula using ASCII connectives (& | -> <-> ~).
	String() string
	// Equal reports syntactic (non-alpha) structural equality.
	Equal(other Formula) bool
}

// And is a conjunction of two or more conjuncts, in order.
type And struct {
	Conjuncts []Formula
}

func (And) isFormula() {}

func (f And) String() string { return joinFormulas(f.Conjuncts, " & ") }

func (f And) Equal(other Formula) bool {
	o, ok := other.(And)
	return ok && equalFormulaSlice(f.Conjuncts, o.Conjuncts)
}

// Or is a disjunction of two or more disjuncts, in order.
type Or struct {
	Disjuncts []Formula
}

func (Or) isFormula() {}

func (f Or) String() string { return joinFormulas(f.Disjuncts, " | ") }

func (f Or) Equal(other Formula) bool {
	o, ok := other.(Or)
	return ok && equalFormulaSlice(f.Disjuncts, o.Disjuncts)
}

// Implies is a material conditional Antecedent -> Consequent.
type Implies struct {
	Antecedent Formula
	Consequent Formula
}

func (Implies) isFormula() {}

func (f Implies) String() string {
	return "(" + f.Antecedent.String() + " -> " + f.Consequent.String() + ")"
}

func (f Implies) Equal(other Formula) bool {
	o, ok := other.(Implies)
	return ok && f.Antecedent.Equal(o.Antecedent) && f.Consequent.Equal(o.Consequent)
}

// Bicond is a biconditional Left <-> Right.
type Bicond struct {
	Left  Formula
	Right Formula
}

func (Bicond) isFormula() {}

func (f Bicond) String() string {
	return "(" + f.Left.String() + " <-> " + f.Right.String() + ")"
}

func (f Bicond) Equal(other Formula) bool {
	o, ok := other.(Bicond)
	return ok && f.Left.Equal(o.Left) && f.Right.Equal(o.Right)
}

// Not is a negation of Inner.
type Not struct {
	Inner Formula
}

func (Not) isFormula() {}

func (f Not) String() string { return "~" + f.Inner.String() }

func (f Not) Equal(other Formula) bool {
	o, ok := other.(Not)
	return ok && f.Inner.Equal(o.Inner)
}

// Bottom is the nullary falsum constant.
type Bottom struct{}

func (Bottom) isFormula() {}

func (Bottom) String() string { return "_|_" }

func (Bottom) Equal(other Formula) bool {
	_, ok := other.(Bottom)
	return ok
}

// Forall is a universal quantification over Var in Body.
type Forall struct {
	Var  string
	Body Formula
}

func (Forall) isFormula() {}

func (f Forall) String() string { return "forall " + f.Var + ". " + f.Body.String() }

func (f Forall) Equal(other Formula) bool {
	o, ok := other.(Forall)
	return ok && f.Var == o.Var && f.Body.Equal(o.Body)
}

// Exists is an existential quantification over Var in Body.
type Exists struct {
	Var  string
	Body Formula
}

func (Exists) isFormula() {}

func (f Exists) String() string { return "exists " + f.Var + ". " + f.Body.String() }

func (f Exists) Equal(other Formula) bool {
	o, ok := other.(Exists)
	return ok && f.Var == o.Var && f.Body.Equal(o.Body)
}

// AtomicProp is a nullary predicate, e.g. "P".
type AtomicProp struct {
	Name string
}

func (AtomicProp) isFormula() {}

func (f AtomicProp) String() string { return f.Name }

func (f AtomicProp) Equal(other Formula) bool {
	o, ok := other.(AtomicProp)
	return ok && f.Name == o.Name
}

// PredApp is an n-ary (n >= 1) predicate application, e.g. P(x, f(a)).
type PredApp struct {
	Pred string
	Args []Term
}

func (PredApp) isFormula() {}

func (f PredApp) String() string {
	var b strings.Builder
	b.WriteString(f.Pred)
	b.WriteByte('(')
	for i, arg := range f.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (f PredApp) Equal(other Formula) bool {
	o, ok := other.(PredApp)
	if !ok || f.Pred != o.Pred || len(f.Args) != len(o.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Equals is the equality predicate applied to two terms.
type Equals struct {
	Left  Term
	Right Term
}

func (Equals) isFormula() {}

func (f Equals) String() string { return f.Left.String() + " = " + f.Right.String() }

func (f Equals) Equal(other Formula) bool {
	o, ok := other.(Equals)
	return ok && f.Left.Equal(o.Left) && f.Right.Equal(o.Right)
}

func joinFormulas(fs []Formula, sep string) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, f := range fs {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(f.String())
	}
	b.WriteByte(')')
	return b.String()
}

func equalFormulaSlice(a, b []Formula) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
