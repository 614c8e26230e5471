// Package charset implements the unicharset phase: every box file rendering
// left in the working directory feeds the unicharset extractor, and the
// properties tool then augments the result in place while emitting x-height
// data. Box files are re-discovered from disk, never handed over in memory.
package charset
