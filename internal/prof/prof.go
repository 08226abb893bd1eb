// Package prof wraps runtime/pprof and runtime/trace behind one session
// that the CLI starts before a command and stops after it.
package prof

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/cockroachdb/errors"
)

// Options names the output files; an empty path disables that profiler.
type Options struct {
	CPU   string
	Mem   string
	Trace string
}

func (o Options) Enabled() bool {
	return o.CPU != "" || o.Mem != "" || o.Trace != ""
}

// Session holds the open profile outputs. Stop is idempotent.
type Session struct {
	opts    Options
	cpu     *os.File
	trace   *os.File
	stopped bool
}

// Start enables the requested profilers. On error nothing is left running.
func Start(opts Options) (*Session, error) {
	s := &Session{opts: opts}
	if opts.CPU != "" {
		f, err := os.Create(opts.CPU)
		if err != nil {
			return nil, errors.Wrap(err, "create cpu profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, errors.Wrap(err, "start cpu profile")
		}
		s.cpu = f
	}
	if opts.Trace != "" {
		f, err := os.Create(opts.Trace)
		if err != nil {
			_ = s.Stop()
			return nil, errors.Wrap(err, "create trace")
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			_ = s.Stop()
			return nil, errors.Wrap(err, "start trace")
		}
		s.trace = f
	}
	return s, nil
}

// Stop ends tracing and CPU profiling, then writes the heap profile.
func (s *Session) Stop() error {
	if s == nil || s.stopped {
		return nil
	}
	s.stopped = true
	var errs error
	if s.trace != nil {
		trace.Stop()
		errs = errors.CombineErrors(errs, s.trace.Close())
		s.trace = nil
	}
	if s.cpu != nil {
		pprof.StopCPUProfile()
		errs = errors.CombineErrors(errs, s.cpu.Close())
		s.cpu = nil
	}
	if s.opts.Mem != "" {
		errs = errors.CombineErrors(errs, writeHeap(s.opts.Mem))
	}
	return errs
}

func writeHeap(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create heap profile")
	}
	defer func() { err = errors.CombineErrors(err, f.Close()) }()
	runtime.GC()
	return errors.Wrap(pprof.WriteHeapProfile(f), "write heap profile")
}
