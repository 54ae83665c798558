// Package profiling writes pprof profiles requested from the command line.
package profiling

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
)

// DoCPUProfiling starts CPU profiling into filePath.
// The returned func stops profiling and is never nil.
func DoCPUProfiling(filePath string) (stop func()) {
	f, err := osCreate(filePath)
	if err != nil {
		slog.Error("failed to create CPU profile", "file", filePath, "err", err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		slog.Error("failed to start CPU profile", "err", err)
		closeFile(f)
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		closeFile(f)
	}
}

// DoMemProfiling returns a func that writes a heap profile into filePath.
func DoMemProfiling(filePath string) (write func()) {
	return func() {
		f, err := osCreate(filePath)
		if err != nil {
			slog.Error("failed to create memory profile", "file", filePath, "err", err)
			return
		}
		defer closeFile(f)
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			slog.Error("failed to write memory profile", "err", err)
		}
	}
}

func closeFile(c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("failed to close profile", "err", err)
	}
}
