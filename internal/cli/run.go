package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/autobrr/go-bitrate-stats/internal/bitrate"
)

const (
	exitOK    = 0
	exitError = 1
)

type Options struct {
	InputFile    string
	StreamType   string
	Aggregation  string
	ChunkSize    float64
	OutputFormat string
	FFprobePath  string
	DryRun       bool
	Verbose      bool
	Quiet        bool
}

// Run executes one analysis and renders the result to stdout. Log output
// goes to stderr so piped CSV/JSON stays clean.
func Run(opts Options, stdout, stderr io.Writer) int {
	log := newLogger(stderr, opts)

	format := strings.ToLower(opts.OutputFormat)
	switch format {
	case "", "csv", "json":
	default:
		log.Error().Str("format", opts.OutputFormat).Msg("invalid output format")
		return exitError
	}

	source := bitrate.FFprobeSource{
		FFprobePath: opts.FFprobePath,
		InputFile:   opts.InputFile,
		StreamType:  bitrate.StreamType(opts.StreamType),
	}

	if opts.DryRun {
		fmt.Fprintln(stderr, "[cmd] "+strings.Join(source.Command(), " "))
		return exitOK
	}

	stats, err := bitrate.New(bitrate.Config{
		InputFile:        opts.InputFile,
		StreamType:       bitrate.StreamType(opts.StreamType),
		Aggregation:      bitrate.Aggregation(opts.Aggregation),
		ChunkSizeSeconds: opts.ChunkSize,
	}, source, log)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return exitError
	}

	if _, err := stats.ComputeStatistics(context.Background()); err != nil {
		log.Error().Err(err).Msg("error calculating bitrate statistics")
		return exitError
	}

	var output string
	if format == "csv" {
		output, err = stats.CSV()
	} else {
		output, err = stats.JSON()
	}
	if err != nil {
		log.Error().Err(err).Msg("could not render statistics")
		return exitError
	}

	fmt.Fprintln(stdout, output)
	return exitOK
}

func newLogger(stderr io.Writer, opts Options) zerolog.Logger {
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	if opts.Quiet {
		level = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
}
