// Package profiling wires github.com/pkg/profile (CPU profiling) and
// github.com/felixge/fgprof (off-CPU-aware sampling, for the time
// dp_diff/nd_diff spend blocked rather than running) into the CLI, so a
// user diffing pathologically large files can capture where time goes.
package profiling

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/felixge/fgprof"
	"github.com/pkg/profile"
)

// Mode selects which profile kind Start captures.
type Mode string

const (
	ModeNone   Mode = ""
	ModeCPU    Mode = "cpu"
	ModeFgprof Mode = "fgprof"
)

// Stop ends a profiling session started by Start.
type Stop func() error

// Start begins profiling in the requested mode, writing output under dir.
// ModeNone returns a no-op Stop. An unrecognized mode is an error rather
// than silently falling back to no profiling.
func Start(mode Mode, dir string) (Stop, error) {
	switch mode {
	case ModeNone:
		return func() error { return nil }, nil
	case ModeCPU:
		p := profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet)
		return func() error { p.Stop(); return nil }, nil
	case ModeFgprof:
		return startFgprof(dir)
	default:
		return nil, fmt.Errorf("profiling: unknown mode %q", mode)
	}
}

// startFgprof samples goroutine stacks (on- and off-CPU) into a pprof file
// under dir, in the shape pkg/profile's own profiles use so the result
// opens the same way in `go tool pprof`.
func startFgprof(dir string) (Stop, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("profiling: %w", err)
	}
	path := filepath.Join(dir, "fgprof.pprof")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("profiling: %w", err)
	}
	stopSampling := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopSampling(); err != nil {
			f.Close()
			return fmt.Errorf("profiling: %w", err)
		}
		return f.Close()
	}, nil
}
