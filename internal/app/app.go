package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chrissnell/ascent/pkg/ascent"
	"github.com/chrissnell/ascent/pkg/config"
	"github.com/chrissnell/ascent/pkg/responseformat"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoPairs is returned when Run is given no distance,angle arguments
var ErrNoPairs = errors.New("at least one distance,angle pair is required")

// Options control how pairs are interpreted and how the report is written
type Options struct {
	AngleType ascent.AngleType
	Format    responseformat.Format
	Precision int
	Segments  bool
}

// OptionsFromConfig validates cfg and converts it to Options
func OptionsFromConfig(cfg *config.ConfigData) (Options, error) {
	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}
	angleType, err := ascent.ParseAngleType(cfg.AngleType)
	if err != nil {
		return Options{}, err
	}
	format, err := responseformat.ParseFormat(cfg.Format)
	if err != nil {
		return Options{}, err
	}
	return Options{
		AngleType: angleType,
		Format:    format,
		Precision: cfg.Precision,
		Segments:  cfg.Segments,
	}, nil
}

// App represents the main application
type App struct {
	opts   Options
	logger *zap.SugaredLogger
}

// New creates a new application instance
func New(opts Options, logger *zap.SugaredLogger) *App {
	return &App{
		opts:   opts,
		logger: logger,
	}
}

// Run parses args as distance,angle pairs, computes the series and writes
// the report to w. Nothing is written to w unless the whole run succeeds.
func (a *App) Run(w io.Writer, args []string) error {
	logger := a.logger.With("run_id", uuid.NewString())

	if len(args) == 0 {
		return ErrNoPairs
	}

	pairs, err := ascent.ParsePairs(args)
	if err != nil {
		return fmt.Errorf("failed to parse distance,angle pairs: %w", err)
	}
	logger.Debugw("parsed input", "angle_type", a.opts.AngleType.String(), "pairs", pairs)

	series := ascent.NewSeries(pairs, a.opts.AngleType)
	logger.Debugw("computed series", "samples", series.Samples())

	report := responseformat.NewReport(series, a.opts.Segments)

	var buf bytes.Buffer
	if err := responseformat.NewFormatter(a.opts.Format, a.opts.Precision).Write(&buf, report); err != nil {
		return fmt.Errorf("failed to encode %s report: %w", a.opts.Format, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Debugw("report written",
		"altitude", report.Altitude,
		"total_ascent", report.TotalAscent,
		"total_descent", report.TotalDescent,
	)
	return nil
}
