// Package langdata resolves per-language training parameters.
//
// Every language starts from shared defaults. The first matching rule from an
// ordered table layers on its overrides (font lists, corpus remaps, dawg
// factors, script-specific renderer flags), then Latin fonts and the zero
// exposure fill anything still unset. Font tables, the vertical-font set, and
// the right-to-left / normalization-mode memberships live here as package
// data, as does the catalog of language codes the CLI accepts.
package langdata
