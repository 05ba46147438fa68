package logic

// SubproofRange identifies a subproof by the line numbers of its premise
// (Begin) and its last line (End). Subproofs are not modeled as explicit
// tree nodes; they are recovered on demand from the flat node sequence by
// this (begin, end) pair, per spec §9 ("subproof citation as index pair").
type SubproofRange struct {
	Begin int
	End   int
}

// Justification is a tagged union over the inference rules. Every variant
// carries exactly the line numbers / subproof ranges the rule cites; it
// carries no formulas — those are looked up by the rules package via the
// citing line's scope.
type Justification interface {
	isJustification()
}

// AndIntro concludes a conjunction from the listed lines, in order.
type AndIntro struct{ Lines []int }

// AndElim concludes one conjunct of the cited conjunction.
type AndElim struct{ Line int }

// OrIntro concludes a disjunction containing the cited formula.
type OrIntro struct{ Line int }

// OrElim eliminates a disjunction by case analysis: DisjLine names the
// disjunction, and Cases names one subproof per disjunct, in order.
type OrElim struct {
	DisjLine int
	Cases    []SubproofRange
}

// NotIntro concludes a negation by deriving falsum inside Sub.
type NotIntro struct{ Sub SubproofRange }

// NotElim eliminates a double negation.
type NotElim struct{ Line int }

// BottomIntro concludes falsum from a formula and its negation.
type BottomIntro struct {
	PhiLine    int
	NotPhiLine int
}

// BottomElim concludes any formula from falsum (ex falso quodlibet).
type BottomElim struct{ Line int }

// ImpliesIntro concludes an implication by discharging Sub's premise.
type ImpliesIntro struct{ Sub SubproofRange }

// ImpliesElim is modus ponens: ImplLine is the implication, AntLine the
// antecedent.
type ImpliesElim struct {
	ImplLine int
	AntLine  int
}

// BicondIntro concludes a biconditional from two subproofs, each deriving
// one side from the other.
type BicondIntro struct {
	Sub1 SubproofRange
	Sub2 SubproofRange
}

// BicondElim eliminates a biconditional given one of its two sides.
type BicondElim struct {
	BicondLine  int
	OperandLine int
}

// EqualsIntro concludes a reflexive equality t = t; it cites nothing.
type EqualsIntro struct{}

// EqualsElim substitutes equals for equals: EqLine names an equality,
// TargetLine the formula being rewritten.
type EqualsElim struct {
	EqLine     int
	TargetLine int
}

// ForallIntro concludes a universal by generalizing an eigenvariable
// introduced in Sub's premise.
type ForallIntro struct{ Sub SubproofRange }

// ForallElim instantiates a universal with a term.
type ForallElim struct{ Line int }

// ExistsIntro concludes an existential by witnessing some occurrences of
// a term.
type ExistsIntro struct{ Line int }

// ExistsElim eliminates an existential via a subproof that introduces a
// fresh eigenvariable witness.
type ExistsElim struct {
	ExistsLine int
	Sub        SubproofRange
}

// Reit reiterates a formula unchanged from an earlier, still-visible line.
type Reit struct{ Line int }

func (AndIntro) isJustification()    {}
func (AndElim) isJustification()     {}
func (OrIntro) isJustification()     {}
func (OrElim) isJustification()      {}
func (NotIntro) isJustification()    {}
func (NotElim) isJustification()     {}
func (BottomIntro) isJustification() {}
func (BottomElim) isJustification()  {}
func (ImpliesIntro) isJustification() {}
func (ImpliesElim) isJustification() {}
func (BicondIntro) isJustification() {}
func (BicondElim) isJustification()  {}
func (EqualsIntro) isJustification() {}
func (EqualsElim) isJustification()  {}
func (ForallIntro) isJustification() {}
func (ForallElim) isJustification()  {}
func (ExistsIntro) isJustification() {}
func (ExistsElim) isJustification()  {}
func (Reit) isJustification()        {}
