// Package deps centralizes the external tool requirements shared by the
// preflight checks and the deps command.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary the pipeline relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Path        string
	Detail      string
}

// ResolveFunc locates a binary and returns its executable path.
type ResolveFunc func(name string) (string, error)

// TrainingTools lists the binaries the training pipeline invokes, in
// pipeline order.
func TrainingTools() []Requirement {
	return []Requirement{
		{
			Name:        "text2image",
			Command:     "text2image",
			Description: "Renders training text into box/tiff pairs",
		},
		{
			Name:        "unicharset_extractor",
			Command:     "unicharset_extractor",
			Description: "Builds the character set from box files",
		},
		{
			Name:        "set_unicharset_properties",
			Command:     "set_unicharset_properties",
			Description: "Annotates the character set with script metrics",
		},
		{
			Name:        "tesseract",
			Command:     "tesseract",
			Description: "Extracts line features from rendered images",
		},
		{
			Name:        "combine_lang_model",
			Command:     "combine_lang_model",
			Description: "Assembles the starter traineddata",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
// A nil resolve falls back to a plain PATH lookup; the pipeline passes its
// prefix-aware resolver so build-tree layouts are honored.
func CheckBinaries(requirements []Requirement, resolve ResolveFunc) []Status {
	if resolve == nil {
		resolve = exec.LookPath
	}
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := resolve(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the names of required tools that failed to resolve.
func MissingRequired(statuses []Status) []string {
	var missing []string
	for _, status := range statuses {
		if !status.Optional && !status.Available {
			missing = append(missing, status.Name)
		}
	}
	return missing
}
