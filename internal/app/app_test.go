package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/chrissnell/ascent/pkg/ascent"
	"github.com/chrissnell/ascent/pkg/config"
	"github.com/chrissnell/ascent/pkg/responseformat"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	return New(opts, zap.NewNop().Sugar())
}

func TestRunText(t *testing.T) {
	a := newTestApp(t, Options{AngleType: ascent.Degrees, Format: responseformat.FormatText, Precision: 2})

	var out bytes.Buffer
	if err := a.Run(&out, []string{"1000,5 500,-10"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "altitude: -0.67\ntotal_ascent: 87.49\ntotal_descent: -88.16\n"
	if out.String() != expected {
		t.Errorf("output = %q, expected %q", out.String(), expected)
	}
}

func TestRunRadians(t *testing.T) {
	a := newTestApp(t, Options{AngleType: ascent.Radians, Format: responseformat.FormatJSON, Precision: -1})

	var out bytes.Buffer
	if err := a.Run(&out, []string{"100,0.1", "100,-0.1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var report responseformat.Report
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if math.Abs(report.Altitude) > 1e-12 {
		t.Errorf("altitude = %g, expected 0", report.Altitude)
	}
	if math.Abs(report.TotalAscent-100*math.Tan(0.1)) > 1e-9 {
		t.Errorf("total_ascent = %f, expected %f", report.TotalAscent, 100*math.Tan(0.1))
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no arguments", nil, ErrNoPairs},
		{"empty pair", []string{""}, ascent.ErrMissingDistance},
		{"missing angle", []string{"800,5", "800"}, ascent.ErrMissingAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, Options{Format: responseformat.FormatText, Precision: -1})
			var out bytes.Buffer
			err := a.Run(&out, tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, expected %v", err, tt.wantErr)
			}
			if out.Len() != 0 {
				t.Errorf("expected no output on failure, got %q", out.String())
			}
		})
	}
}

func TestRunNaNJSONWritesNothing(t *testing.T) {
	a := newTestApp(t, Options{Format: responseformat.FormatJSON, Precision: -1})
	var out bytes.Buffer
	if err := a.Run(&out, []string{"NaN,5"}); err == nil {
		t.Fatal("expected JSON encoding error for NaN")
	}
	if out.Len() != 0 {
		t.Errorf("expected no output on failure, got %q", out.String())
	}
}

func TestRunSegments(t *testing.T) {
	a := newTestApp(t, Options{Format: responseformat.FormatText, Precision: 1, Segments: true})
	var out bytes.Buffer
	if err := a.Run(&out, []string{"800,5 300,-1 1000,0"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := strings.Count(out.String(), "segment "); n != 3 {
		t.Errorf("expected 3 segment lines, got %d: %q", n, out.String())
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.AngleType = "radians"
	cfg.Format = "msgpack"
	cfg.Precision = 4

	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := Options{AngleType: ascent.Radians, Format: responseformat.FormatMsgPack, Precision: 4}
	if opts != expected {
		t.Errorf("OptionsFromConfig() = %+v, expected %+v", opts, expected)
	}

	cfg.Format = "yaml"
	if _, err := OptionsFromConfig(cfg); err == nil {
		t.Error("expected error for unsupported format")
	}
}
