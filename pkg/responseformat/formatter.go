package responseformat

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/chrissnell/ascent/pkg/ascent"
	"github.com/vmihailenco/msgpack/v5"
)

// Format selects how a report is encoded
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgPack Format = "msgpack"
)

// ParseFormat validates a format name. An empty string yields FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatMsgPack:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q: use 'text', 'json' or 'msgpack'", s)
	}
}

// Report is the encoded form of a computed series
type Report struct {
	Altitude     float64         `json:"altitude"`
	TotalAscent  float64         `json:"total_ascent"`
	TotalDescent float64         `json:"total_descent"`
	SegmentCount int             `json:"segment_count"`
	Distance     float64         `json:"distance"`
	MeanGrade    float64         `json:"mean_grade"`
	Segments     []SegmentReport `json:"segments,omitempty"`
}

// SegmentReport describes one sample of the series
type SegmentReport struct {
	Distance        float64 `json:"distance"`
	AngleDegrees    float64 `json:"angle_degrees"`
	AngleRadians    float64 `json:"angle_radians"`
	ElevationChange float64 `json:"elevation_change"`
}

// NewReport builds a Report from a series. Per-segment detail is only
// included when withSegments is set.
func NewReport(series *ascent.Series, withSegments bool) Report {
	summary := series.Summary()
	r := Report{
		Altitude:     summary.Altitude,
		TotalAscent:  summary.TotalAscent,
		TotalDescent: summary.TotalDescent,
		SegmentCount: summary.Segments,
		Distance:     summary.Distance,
		MeanGrade:    summary.MeanGrade,
	}
	if withSegments {
		for _, s := range series.Samples() {
			r.Segments = append(r.Segments, SegmentReport{
				Distance:        s.Distance,
				AngleDegrees:    s.AngleDegrees(),
				AngleRadians:    s.Angle,
				ElevationChange: s.ElevationChange,
			})
		}
	}
	return r
}

// Formatter encodes reports
type Formatter struct {
	format    Format
	precision int
}

// NewFormatter creates a formatter. precision is the number of digits after
// the decimal point in text output; a negative value prints the shortest
// representation that round-trips.
func NewFormatter(format Format, precision int) *Formatter {
	return &Formatter{
		format:    format,
		precision: precision,
	}
}

// Write encodes the report to w in the formatter's format
func (f *Formatter) Write(w io.Writer, r Report) error {
	switch f.format {
	case FormatJSON:
		return f.writeJSON(w, r)
	case FormatMsgPack:
		return f.writeMsgPack(w, r)
	default:
		return f.writeText(w, r)
	}
}

func (f *Formatter) writeText(w io.Writer, r Report) error {
	var b strings.Builder
	for i, s := range r.Segments {
		fmt.Fprintf(&b, "segment %d: distance=%s angle=%s elevation_change=%s\n",
			i+1, f.number(s.Distance), f.number(s.AngleDegrees), f.number(s.ElevationChange))
	}
	fmt.Fprintf(&b, "altitude: %s\n", f.number(r.Altitude))
	fmt.Fprintf(&b, "total_ascent: %s\n", f.number(r.TotalAscent))
	fmt.Fprintf(&b, "total_descent: %s\n", f.number(r.TotalDescent))

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *Formatter) writeJSON(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func (f *Formatter) writeMsgPack(w io.Writer, r Report) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(r)
}

// number renders infinities as inf and -inf rather than Go's +Inf and -Inf
func (f *Formatter) number(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', f.precision, 64)
}
