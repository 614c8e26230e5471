// Package services defines shared utilities consumed by the pipeline phases
// and external tool integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and phase names for logging.
//   - Structured error markers plus the Wrap helper that classify every
//     failure into the pipeline's fatal taxonomy (tool resolution, tool
//     execution, artifact presence, language validation).
//
// Use these helpers when wiring new phase logic so operational behaviour
// (error handling, observability) stays uniform across the pipeline.
package services
