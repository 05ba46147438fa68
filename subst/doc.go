// Package subst provides capture-avoiding substitution, alpha-equivalence,
// and the partial-replacement matcher the rules package needs for
// equality-elimination and the quantifier rules (spec.md §4.4).
//
// Two distinct notions of "replacement" are modeled here, matching the
// two ways the rule contracts use them:
//
//   - Substitute(formula, varName, term) performs ordinary capture-avoiding
//     substitution of a *bound variable name* by a term, renaming any
//     binder that would otherwise capture a free variable of term. This
//     is what ForallElim and ExistsElim use (instantiating/discharging a
//     quantifier is a full, all-occurrences substitution).
//   - MatchesAfterReplacing(pattern, actual, replaced, replacement) checks
//     whether actual can be produced from pattern by replacing some
//     (zero or more) occurrences of one arbitrary term by another,
//     anywhere they appear as a subterm — not tied to variable binding at
//     all. This is what EqualsElim (replacing equals for equals) and the
//     partial-witness form of ExistsIntro use, and it is also reused by
//     ForallIntro's generalization check (see checkForallIntro in package
//     rules).
package subst
