// Package artifacts verifies the files a pipeline step is contracted to
// produce. Phase completion is defined by file existence, so every step ends
// with a Check over its expected outputs.
package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"letterpress/internal/services"
)

// Check opens each path for reading and classifies the first failure:
// missing file, permission problem, or other I/O error. A nil return means
// every path was readable; there are no partial results.
func Check(ctx context.Context, paths ...string) error {
	phase, _ := services.PhaseFromContext(ctx)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			switch {
			case errors.Is(err, fs.ErrNotExist):
				return services.Wrap(services.ErrMissingArtifact, phase, "check",
					fmt.Sprintf("required file '%s' does not exist", path), nil)
			case errors.Is(err, fs.ErrPermission):
				return services.Wrap(services.ErrUnreadableArtifact, phase, "check",
					fmt.Sprintf("'%s' is not readable", path), nil)
			default:
				return services.Wrap(services.ErrUnreadableArtifact, phase, "check",
					fmt.Sprintf("'%s' io error", path), err)
			}
		}
		f.Close()
	}
	return nil
}
