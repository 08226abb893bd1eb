// Package roundtrip checks that parse → render → reparse is lossless over a
// corpus of source files.
//
// For every file the module's parser builds a crate, the quote engine renders
// it, and a Reference parser reads both the original source and the rendered
// text. The file passes when the two reference trees are equal with
// positions ignored. One failing file never stops the batch.
package roundtrip

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"rsyn/internal/ast"
	"rsyn/internal/cache"
	"rsyn/internal/quote"
)

// Status is the verdict for one file.
type Status string

const (
	StatusPass        Status = "pass"
	StatusCached      Status = "cached"
	StatusParseFail   Status = "parse-fail"
	StatusReparseFail Status = "reparse-fail"
	StatusMismatch    Status = "mismatch"
	StatusLoadError   Status = "load-error"
)

// Failed reports whether s counts towards Report.Failed.
func (s Status) Failed() bool {
	return s != StatusPass && s != StatusCached
}

// ErrFailures marks the error returned by Report.Err.
var ErrFailures = errors.New("round trip failures")

type FileResult struct {
	Path    string
	Status  Status
	Elapsed time.Duration // время основного разбора
	Detail  string        // сообщение парсера или diff деревьев
}

type Report struct {
	Files  []FileResult // в порядке входного списка
	Failed int
	Cached int
}

// Err returns nil when every file passed, otherwise "N failures" marked with ErrFailures.
func (r *Report) Err() error {
	if r.Failed == 0 {
		return nil
	}
	return errors.Mark(errors.Newf("%d failures", r.Failed), ErrFailures)
}

// Runner verifies files concurrently.
type Runner struct {
	Reference Reference          // nil means SelfReference
	Jobs      int                // <= 0 means GOMAXPROCS
	Logger    *zap.SugaredLogger // nil means no logging
	Cache     *cache.DiskCache   // nil disables caching
	Salt      string             // mixed into cache keys, usually the tool version
	Progress  ProgressSink       // nil disables progress events

	MaxDiagnostics int
}

// Run verifies files and returns the per-file report. The error is non-nil
// only when ctx is cancelled; file failures are recorded in the report.
func (r *Runner) Run(ctx context.Context, files []string) (*Report, error) {
	ref := r.Reference
	if ref == nil {
		ref = SelfReference{MaxDiagnostics: r.MaxDiagnostics}
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	report := &Report{Files: make([]FileResult, len(files))}
	if len(files) == 0 {
		return report, nil
	}

	for _, path := range files {
		emit(r.Progress, Event{File: path, Stage: StageQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res := r.verify(path, ref, logger)
			emit(r.Progress, Event{File: path, Stage: StageDone, Verdict: res.Status, Elapsed: res.Elapsed})
			logger.Debugw("verified", "file", path, "status", string(res.Status), "ms", res.Elapsed.Milliseconds())
			// индекс i уникален для горутины
			report.Files[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	for _, f := range report.Files {
		switch {
		case f.Status.Failed():
			report.Failed++
		case f.Status == StatusCached:
			report.Cached++
		}
	}
	logger.Infow("round trip finished", "files", len(files), "failed", report.Failed, "cached", report.Cached, "reference", ref.Name())
	return report, nil
}

func (r *Runner) verify(path string, ref Reference, logger *zap.SugaredLogger) FileResult {
	res := FileResult{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		res.Status, res.Detail = StatusLoadError, err.Error()
		return res
	}

	key := cache.KeyFor(content, r.Salt+"\x00"+ref.Name())
	if entry, ok, err := r.Cache.Get(key); err != nil {
		logger.Warnw("cache read failed", "file", path, "error", err)
	} else if ok && entry.Status == string(StatusPass) {
		res.Status = StatusCached
		return res
	}

	emit(r.Progress, Event{File: path, Stage: StageParse})
	start := time.Now()
	crate, err := parseSession(path, content, r.MaxDiagnostics)
	res.Elapsed = time.Since(start)
	if err != nil {
		res.Status, res.Detail = StatusParseFail, err.Error()
		return res
	}
	emit(r.Progress, Event{File: path, Stage: StageRender})
	back := quote.Render(crate)

	before, err := ref.Parse(path, content)
	if err != nil {
		res.Status, res.Detail = StatusParseFail, ref.Name()+": "+err.Error()
		return res
	}
	emit(r.Progress, Event{File: path, Stage: StageReparse})
	after, err := ref.Parse(path, []byte(back))
	if err != nil {
		res.Status, res.Detail = StatusReparseFail, err.Error()+"\nrendered: "+back
		return res
	}
	if !ast.Equal(before, after) {
		res.Status, res.Detail = StatusMismatch, ast.Diff(before, after)
		return res
	}

	res.Status = StatusPass
	if err := r.Cache.Put(key, cache.Entry{Path: path, Reference: ref.Name(), Status: string(StatusPass)}); err != nil {
		logger.Warnw("cache write failed", "file", path, "error", err)
	}
	return res
}
