package convert

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skillsenselab/eafgen/diarization"
	"github.com/skillsenselab/eafgen/eaf"
	"github.com/skillsenselab/eafgen/errors"
	"github.com/skillsenselab/eafgen/logger"
	"github.com/skillsenselab/eafgen/progress"
)

// Options controls a single file conversion.
type Options struct {
	// Input is the path to the diarization JSON document.
	Input string
	// Output names the EAF file to write. Empty derives it from Input's
	// base name with an .eaf extension, in OutputDir when set.
	Output string
	// OutputDir is the directory for derived output paths. Empty means
	// "next to the input".
	OutputDir string
	// MediaDir optionally holds companion .wav files.
	MediaDir string
	// Force overwrites an existing output file instead of skipping.
	Force bool
	// Progress receives phase updates; nil disables reporting.
	Progress progress.Sink
	// Builder assembles the document; nil uses eaf.NewBuilder().
	Builder *eaf.Builder
}

// outputPath derives the destination for the converted document.
func (o Options) outputPath() string {
	if o.Output != "" {
		return o.Output
	}
	base := strings.TrimSuffix(filepath.Base(o.Input), filepath.Ext(o.Input)) + ".eaf"
	dir := o.OutputDir
	if dir == "" {
		dir = filepath.Dir(o.Input)
	}
	return filepath.Join(dir, base)
}

// File converts one diarization JSON document into an EAF file and
// returns the output path. An existing output is skipped unless Force is
// set; the skip is not an error.
func File(ctx context.Context, opts Options) (string, error) {
	log := logger.WithComponent("convert")
	start := time.Now()

	outPath := opts.outputPath()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	// The input must exist even when a stale output would let us skip.
	if _, err := os.Stat(opts.Input); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFound("input file", opts.Input)
		}
		return "", errors.Filesystem("stat", opts.Input, err)
	}

	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			log.Info("output exists, skipping (use force to overwrite)", logger.Fields(
				logger.FieldOutput, outPath,
			))
			return outPath, nil
		}
	}

	res, err := diarization.Load(opts.Input)
	if err != nil {
		return "", err
	}

	part, err := diarization.Classify(res.Output.Diarization, opts.Progress)
	if err != nil {
		return "", err
	}

	media := eaf.ResolveMedia(outPath, opts.MediaDir)
	if media.MediaURL == "" {
		log.Warn("companion media not found, writing document without media link", logger.Fields(
			logger.FieldOutput, outPath,
		))
	}

	builder := eaf.NewBuilder()
	if opts.Builder != nil {
		b := *opts.Builder
		builder = &b
	}
	if builder.Progress == nil {
		builder.Progress = opts.Progress
	}

	doc, err := builder.Build(part, media)
	if err != nil {
		return "", err
	}

	if err := doc.WriteFile(outPath); err != nil {
		return "", err
	}

	log.Info("conversion finished", logger.Fields(
		logger.FieldInput, opts.Input,
		logger.FieldOutput, outPath,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return outPath, nil
}
