package config

import "errors"

// ErrNoVariables indicates a config file declared an empty variables
// list; a proof needs at least one variable name to generalize over.
var ErrNoVariables = errors.New("config: variables list must not be empty")
