// Package render implements the image generation phase: the training corpus
// is rasterized once per font and exposure into paired box and tiff files,
// with an optional font-property pass over the dominant bigrams. Completion
// is defined purely by the expected files existing afterwards.
package render
