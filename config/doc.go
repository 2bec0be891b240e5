// Package config loads the metastates command configuration.
//
// A Config comes from Default, optionally overlaid by a YAML file (Load),
// then by command-line flags; Validate checks the result with struct tags.
// Nothing here is read implicitly: library packages receive the derived
// crossval.Config and hmm.Options values.
//
// Example file:
//
//	input: data/session1.txt
//	trials: 20
//	max_states: 6
//	folds: 5
//	jobs: 0
//	hmm:
//	  max_iter: 200
//	  tol: 0.01
//	log:
//	  level: debug
package config
