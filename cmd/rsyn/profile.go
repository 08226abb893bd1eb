package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"rsyn/internal/prof"
)

var (
	profileMu     sync.Mutex
	activeProfile *prof.Session
)

func init() {
	cobra.OnFinalize(stopProfiling)
}

func addProfileFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a runtime trace to file")
}

// startProfiling reads the profiling flags and starts a session when any is set.
func startProfiling(cmd *cobra.Command, _ []string) error {
	pf := cmd.Root().PersistentFlags()
	var (
		opts prof.Options
		err  error
	)
	if opts.CPU, err = pf.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = pf.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = pf.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	session, err := prof.Start(opts)
	if err != nil {
		return fmt.Errorf("failed to start profiling: %w", err)
	}
	profileMu.Lock()
	activeProfile = session
	profileMu.Unlock()
	return nil
}

// stopProfiling runs after every Execute, including failed ones.
func stopProfiling() {
	profileMu.Lock()
	session := activeProfile
	activeProfile = nil
	profileMu.Unlock()
	if err := session.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write profile: %v\n", err)
	}
}
