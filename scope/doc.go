// Package scope computes, for every inference line in a normalized Fitch
// proof, the set of earlier lines and already-closed subproofs that line
// is allowed to cite (spec.md §4.3).
//
// For an inference at document position idx, scope walks backward from
// idx-1 carrying a depth counter and a stack of pending subproof end
// lines:
//
//   - SubproofClose: depth += 1; push the end line of the subproof being
//     closed (the nearest numbered line before it).
//   - SubproofOpen: if depth > 0, depth -= 1 and pop the matching end
//     line; if depth is now 0, the (begin, end) pair just closed is
//     visible to the citing line.
//   - NumberedLine: if depth == 0, its line number is visible.
//
// depth > 0 means the walk is inside a subproof that had already closed
// before the citing line's own position — i.e. a sibling subproof, not an
// enclosing one, whose interior lines must not be visible.
package scope
