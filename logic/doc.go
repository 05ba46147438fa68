// Package logic (fitchproof) is the algebraic data model for Fitch-style
// natural-deduction proofs.
//
// What
//
//   - Term: an atomic name or a function application over sub-terms.
//   - Formula: a tagged union over the eleven first-order connectives and
//     quantifiers (And, Or, Implies, Bicond, Not, Bottom, Forall, Exists,
//     Atomic, PredApp, Equals).
//   - Justification: a tagged union over the ~19 inference rules, each
//     carrying the line numbers and subproof ranges it cites.
//   - ProofNode: a tagged union over the elements of a linearized Fitch
//     proof (numbered lines, Fitch bars, empty scope-bar lines, and the
//     synthetic SubproofOpen/SubproofClose markers inserted by the
//     normalize package).
//
// Why
//
//   - Everything downstream (normalize, structure, scope, subst, rules,
//     verifier) operates purely on these types; none of them touch
//     surface syntax. That boundary is what lets the checker be tested
//     and reasoned about without a parser in the loop.
//
// Equality
//
//	Formula and Term equality, as exposed here, is syntactic (structural,
//	not modulo alpha-renaming of bound variables). Alpha-equivalence is a
//	separate concern provided by the subst package, since only some rules
//	(the quantifier rules) accept it.
package logic
