// Command eafgen converts speaker-diarization JSON results into ELAN
// Annotation Format (EAF) documents.
//
// Usage:
//
//	eafgen -input-file call.json [-output-dir out] [-media-dir media]
//	eafgen -input-dir calls/ [-output-dir out] [-workers 4] [-force]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/skillsenselab/eafgen/config"
	"github.com/skillsenselab/eafgen/convert"
	"github.com/skillsenselab/eafgen/logger"
	"github.com/skillsenselab/eafgen/progress"
	"github.com/skillsenselab/eafgen/version"
)

func main() {
	var (
		inputFile   = flag.String("input-file", "", "path to the input JSON file containing speaker diarization data")
		inputDir    = flag.String("input-dir", "", "path to the input directory containing JSON files")
		outputDir   = flag.String("output-dir", "", "path to the output directory for EAF files")
		mediaDir    = flag.String("media-dir", "", "path to the directory containing media files")
		workers     = flag.Int("workers", 0, "number of concurrent conversions in directory mode (0 = from config)")
		force       = flag.Bool("force", false, "overwrite existing output files")
		debug       = flag.Bool("debug", false, "enable debug logging")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("eafgen " + version.GetShortVersion())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "eafgen: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		cfg.Logging.Level = "debug"
	}
	logger.Init(cfg.Logging)
	log := logger.WithComponent("main")

	if (*inputFile == "") == (*inputDir == "") {
		fmt.Fprintln(os.Stderr, "usage: eafgen -input-file <path> | -input-dir <path> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *mediaDir != "" {
		cfg.Media.Dir = *mediaDir
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *force {
		cfg.Output.Force = true
	}
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}

	ctx := context.Background()

	if *inputFile != "" {
		sink := progress.NewLogSink(log)
		out, err := convert.File(ctx, convert.Options{
			Input:     *inputFile,
			OutputDir: cfg.Output.Dir,
			MediaDir:  cfg.Media.Dir,
			Force:     cfg.Output.Force,
			Progress:  sink,
		})
		if err != nil {
			log.WithError(err).Error("conversion failed", logger.Fields(
				logger.FieldInput, *inputFile,
			))
			os.Exit(1)
		}
		log.Info("done", logger.Fields(logger.FieldOutput, out))
		return
	}

	report, err := convert.Dir(ctx, convert.DirOptions{
		InputDir:  *inputDir,
		OutputDir: cfg.Output.Dir,
		MediaDir:  cfg.Media.Dir,
		Workers:   cfg.Batch.Workers,
		Force:     cfg.Output.Force,
		NewProgress: func() progress.Sink {
			return progress.NewLogSink(log)
		},
	})
	if err != nil {
		log.WithError(err).Error("directory run failed", logger.Fields(
			logger.FieldInput, *inputDir,
		))
		os.Exit(1)
	}
	for _, f := range report.Failed {
		log.WithError(f.Err).Error("file failed", logger.Fields(logger.FieldInput, f.Input))
	}
	if err := report.Err(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	log.Info("done", logger.Fields("converted", len(report.Succeeded)))
}
