// Package config loads snapgraph run settings from YAML with environment
// overrides and struct-tag validation.
//
// Loading order (lowest to highest priority):
//  1. Defaults (Default)
//  2. YAML document
//  3. SNAPGRAPH_* environment variables
//
// The merged result is validated with go-playground/validator; any failure
// wraps ErrInvalidConfig.
//
// Example document:
//
//	log:
//	  level: info
//	  development: false
//	source:
//	  path: data/email-Eu-core.txt   # empty: generate instead
//	generator:
//	  nodes: 100
//	  probability: 0.05
//	  seed: 42
//	  strategy: unionfind             # or recompute
//	query:
//	  seeds: [0, 3]
//	  hops: 1
//	  workers: 4
package config
