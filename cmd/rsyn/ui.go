package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"rsyn/internal/roundtrip"
	"rsyn/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode, w io.Writer) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(w)
	}
}

// displayFileList shortens paths relative to the working directory.
func displayFileList(files []string) []string {
	cwd, err := os.Getwd()
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f
		if err != nil {
			continue
		}
		abs, absErr := filepath.Abs(f)
		if absErr != nil {
			continue
		}
		if rel, relErr := filepath.Rel(cwd, abs); relErr == nil && !strings.HasPrefix(rel, "..") {
			out[i] = rel
		}
	}
	return out
}

type runOutcome struct {
	report *roundtrip.Report
	err    error
}

// runWithUI drives the runner while a Bubble Tea program renders its events.
func runWithUI(ctx context.Context, out io.Writer, runner *roundtrip.Runner, files []string) (*roundtrip.Report, error) {
	events := make(chan roundtrip.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		r := *runner
		r.Progress = roundtrip.ChannelSink{Ch: events}
		report, err := r.Run(ctx, files)
		outcomeCh <- runOutcome{report: report, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("roundtrip", files, displayFileList(files), events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(nil), tea.WithContext(ctx))
	_, uiErr := program.Run()
	if uiErr != nil {
		// дочитываем события, чтобы раннер не заблокировался
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil && ctx.Err() == nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}
