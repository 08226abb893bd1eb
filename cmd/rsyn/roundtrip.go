package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsyn/internal/cache"
	"rsyn/internal/observ"
	"rsyn/internal/roundtrip"
	"rsyn/internal/version"
)

// cacheAuto selects the per-user cache directory.
const cacheAuto = "auto"

func newRoundtripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip [flags] [file.rs|directory]...",
		Short: "Verify that parse, render and reparse preserve every tree",
		Long: `Roundtrip parses each file, renders the tree back to tokens, reparses the
rendered text and compares both trees with positions ignored. Without
arguments the cases listed in rsyn.toml are used.`,
		RunE: runRoundtrip,
	}
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().String("pattern", roundtrip.DefaultPattern, "glob for files inside directories")
	cmd.Flags().String("cache", "", `verdict cache directory ("auto" for the user cache, empty to disable)`)
	cmd.Flags().String("ui", "auto", "progress interface (auto|on|off)")
	return cmd
}

type roundtripOptions struct {
	inputs         []string
	pattern        string
	jobs           int
	cache          string
	maxDiagnostics int
	ui             uiMode
}

// resolveRoundtripOptions merges rsyn.toml with flags; flags set explicitly win.
func resolveRoundtripOptions(cmd *cobra.Command, args []string, g globalOptions) (roundtripOptions, error) {
	opts := roundtripOptions{
		inputs:         args,
		pattern:        roundtrip.DefaultPattern,
		maxDiagnostics: g.maxDiagnostics,
	}
	manifest, found, err := loadProjectManifest(".")
	if err != nil {
		return opts, err
	}
	if found {
		cfg := manifest.Config.Roundtrip
		if len(opts.inputs) == 0 {
			opts.inputs = cfg.Cases
		}
		if cfg.Pattern != "" {
			opts.pattern = cfg.Pattern
		}
		opts.jobs = cfg.Jobs
		opts.cache = cfg.Cache
		if cfg.MaxDiagnostics > 0 && !cmd.Flags().Changed("max-diagnostics") {
			opts.maxDiagnostics = cfg.MaxDiagnostics
		}
	}

	flags := cmd.Flags()
	if flags.Changed("pattern") {
		if opts.pattern, err = flags.GetString("pattern"); err != nil {
			return opts, fmt.Errorf("failed to get pattern flag: %w", err)
		}
	}
	if flags.Changed("jobs") {
		if opts.jobs, err = flags.GetInt("jobs"); err != nil {
			return opts, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if flags.Changed("cache") {
		if opts.cache, err = flags.GetString("cache"); err != nil {
			return opts, fmt.Errorf("failed to get cache flag: %w", err)
		}
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return opts, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if opts.ui, err = readUIMode(uiValue); err != nil {
		return opts, err
	}
	if len(opts.inputs) == 0 {
		return opts, fmt.Errorf("no inputs: pass files or directories, or list [roundtrip] cases in %s", manifestName)
	}
	return opts, nil
}

func openCache(dir string) (*cache.DiskCache, error) {
	switch dir {
	case "":
		return nil, nil
	case cacheAuto:
		return cache.OpenDefault("rsyn")
	default:
		return cache.Open(dir)
	}
}

func runRoundtrip(cmd *cobra.Command, args []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	opts, err := resolveRoundtripOptions(cmd, args, g)
	if err != nil {
		return err
	}
	logger := g.logger(cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	timer := observ.NewTimer()
	done := timer.Track("discover")
	files, err := expandInputs(opts.inputs, opts.pattern)
	done(fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return err
	}

	verdicts, err := openCache(opts.cache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}

	runner := &roundtrip.Runner{
		Jobs:           opts.jobs,
		Logger:         logger,
		Cache:          verdicts,
		Salt:           version.CacheSalt(),
		MaxDiagnostics: opts.maxDiagnostics,
	}
	useTUI := !g.quiet && shouldUseTUI(opts.ui, cmd.ErrOrStderr())
	done = timer.Track("verify")
	var report *roundtrip.Report
	if useTUI {
		report, err = runWithUI(cmd.Context(), cmd.ErrOrStderr(), runner, files)
	} else {
		report, err = runner.Run(cmd.Context(), files)
	}
	done(fmt.Sprintf("%d failed, %d cached", report.Failed, report.Cached))
	if err != nil {
		return fmt.Errorf("round trip interrupted: %w", err)
	}

	if (!g.quiet && !useTUI) || report.Failed > 0 {
		if err := roundtrip.WriteLog(cmd.ErrOrStderr(), report, g.useColor(cmd.ErrOrStderr())); err != nil {
			return err
		}
	}
	timer.Log(logger)
	g.printTimings(cmd.ErrOrStderr(), timer)
	return report.Err()
}
