// Package rules implements the per-rule verification routines of
// spec.md §4.5: one function per Justification variant, each checking
// that the cited lines/subproofs are in scope, resolve to formulas, and
// that the conclusion matches the rule's schema.
//
// Dispatch is exhaustive pattern matching over the Justification
// variant (Check below); every rule function performs its scope-
// membership check before dereferencing a citation, per spec.md §9
// ("Rule dispatch").
//
// All formula comparisons use syntactic equality (logic.Formula.Equal)
// except OrElim's per-case conclusions, which are compared with
// subst.AlphaEquiv. The quantifier rules compare the instantiated or
// generalized body syntactically, after subst.Substitute or
// subst.MatchesAfterReplacing; they do not accept alpha-variants.
package rules
