package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/skillsenselab/eafgen/errors"
	"github.com/skillsenselab/eafgen/logger"
	"github.com/skillsenselab/eafgen/progress"
)

// DirOptions controls a directory-mode run.
type DirOptions struct {
	// InputDir holds the *.json documents to convert.
	InputDir string
	// OutputDir is the directory for the .eaf files. Empty means InputDir.
	OutputDir string
	// MediaDir optionally holds companion .wav files.
	MediaDir string
	// Workers bounds the number of concurrent conversions; values below 1
	// are treated as 1.
	Workers int
	// Force overwrites existing output files instead of skipping.
	Force bool
	// NewProgress builds one progress sink per file so parallel workers
	// never share phase state; nil disables reporting.
	NewProgress func() progress.Sink
}

func (o DirOptions) progressFor() progress.Sink {
	if o.NewProgress == nil {
		return progress.Noop{}
	}
	return progress.OrNoop(o.NewProgress())
}

// Failure records one file that could not be converted.
type Failure struct {
	Input string
	Err   error
}

// Report summarizes a directory run.
type Report struct {
	mu        sync.Mutex
	Succeeded []string
	Failed    []Failure
}

func (r *Report) addSuccess(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Succeeded = append(r.Succeeded, path)
}

func (r *Report) addFailure(input string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failed = append(r.Failed, Failure{Input: input, Err: err})
}

// Err returns nil when every file converted, otherwise a summary error.
func (r *Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d files failed to convert", len(r.Failed), len(r.Failed)+len(r.Succeeded))
}

// Dir converts every *.json file in opts.InputDir. Builds are fully
// independent, so they run on a bounded worker pool; one file's failure
// is recorded in the report and never aborts the remaining files.
func Dir(ctx context.Context, opts DirOptions) (*Report, error) {
	log := logger.WithComponent("convert")

	info, err := os.Stat(opts.InputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("input directory", opts.InputDir)
		}
		return nil, errors.Filesystem("stat", opts.InputDir, err)
	}
	if !info.IsDir() {
		return nil, errors.NotFound("input directory", opts.InputDir)
	}

	inputs, err := filepath.Glob(filepath.Join(opts.InputDir, "*.json"))
	if err != nil {
		return nil, errors.Filesystem("glob", opts.InputDir, err)
	}
	sort.Strings(inputs)

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	log.Info("directory run started", logger.Fields(
		logger.FieldInput, opts.InputDir,
		"files", len(inputs),
		logger.FieldWorkers, workers,
	))

	report := &Report{}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				report.addFailure(input, err)
				return nil
			}
			out, err := File(gctx, Options{
				Input:     input,
				OutputDir: opts.OutputDir,
				MediaDir:  opts.MediaDir,
				Force:     opts.Force,
				Progress:  opts.progressFor(),
			})
			if err != nil {
				log.WithError(err).Error("file conversion failed", logger.Fields(
					logger.FieldInput, input,
				))
				report.addFailure(input, err)
				return nil
			}
			report.addSuccess(out)
			return nil
		})
	}

	// Workers never return errors; the group is used for bounding and
	// context propagation only.
	_ = g.Wait()

	log.Info("directory run finished", logger.Fields(
		"succeeded", len(report.Succeeded),
		"failed", len(report.Failed),
	))
	return report, nil
}
