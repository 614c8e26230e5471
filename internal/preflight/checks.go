package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"letterpress/internal/deps"
)

// minScratchBytes is the free-space floor for the scratch filesystem. A full
// font set renders multi-page tiffs that run to gigabytes.
const minScratchBytes = 1 << 30

// statfsFunc allows tests to stub filesystem stats.
type statfsFunc func(path string) (total uint64, free uint64, err error)

var statfs statfsFunc = realStatfs

// CheckDirectoryAccess verifies that the directory exists and is readable and
// writable.
func CheckDirectoryAccess(name, path string) Result {
	if res, ok := statDir(name, path); !ok {
		return res
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDirectoryReadable verifies that the directory exists and is readable.
func CheckDirectoryReadable(name, path string) Result {
	if res, ok := statDir(name, path); !ok {
		return res
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

func statDir(name, path string) (Result, bool) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}, false
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}, false
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}, false
	}
	return Result{}, true
}

// CheckFreeSpace verifies the filesystem behind path has room for rendered
// artifacts.
func CheckFreeSpace(name, path string) Result {
	_, free, err := statfs(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	if free < minScratchBytes {
		return Result{Name: name, Detail: fmt.Sprintf("%s (%.2f GiB free, need %.2f GiB)", path, gib(free), gib(minScratchBytes))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%.2f GiB free)", path, gib(free))}
}

// CheckSystemDeps evaluates the external training tools. Both the pipeline
// driver and the CLI deps command use this to avoid duplicating the
// requirements list. resolve should be the prefix-aware tool resolver; nil
// falls back to a plain PATH lookup.
func CheckSystemDeps(resolve deps.ResolveFunc) []deps.Status {
	return deps.CheckBinaries(deps.TrainingTools(), resolve)
}

func gib(bytes uint64) float64 {
	return float64(bytes) / (1 << 30)
}

func realStatfs(path string) (uint64, uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}
	total := stat.Blocks * uint64(stat.Bsize)
	free := stat.Bavail * uint64(stat.Bsize)
	return total, free, nil
}
