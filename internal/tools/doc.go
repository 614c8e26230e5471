// Package tools locates and runs the external tesseract training binaries.
// Resolution tries the bare name, then api/ and training/ relative paths so
// a build-tree layout works without installation. Execution captures stdout
// and stderr together; any non-zero exit is fatal to the run.
package tools
