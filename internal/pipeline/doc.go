// Package pipeline sequences a full training run for one language: parameter
// resolution, preflight, the four tool-driven phases, and cleanup. Phases
// hand work to each other through files in the scratch directory, never
// through memory, so every phase boundary is also a consistency check.
//
// Failure semantics are deliberately blunt. The first error anywhere is
// final: the run stops, the scratch directory stays on disk for inspection,
// and only the lock and ledger are released. Cleanup's artifact move happens
// exclusively on success.
package pipeline
