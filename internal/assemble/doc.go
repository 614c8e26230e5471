// Package assemble is the final pipeline phase: it combines the unicharset
// and language-model inputs into a starter traineddata, relocates the
// training artifacts from the scratch directory into the output directory,
// and writes the manifest the trainer consumes.
package assemble
