// Package config loads the per-project .fitchcheck.yaml file: currently
// just the set of atomic names treated as variables (as opposed to free
// constants) for ForallIntro/ExistsElim's eigenvariable freshness checks
// (spec.md §4.5, §9).
//
// If no config file is present, Load returns DefaultConfig unchanged —
// a missing file is not an error.
package config
