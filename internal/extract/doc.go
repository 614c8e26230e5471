// Package extract implements the feature extraction phase: every rendered
// image discovered in the working directory is run through the recognizer in
// training mode to produce one feature file per image. Images are found by
// glob, so the phase depends only on what the rendering phase left on disk.
package extract
