// Package ascent computes cumulative elevation change from a sequence of
// distance/angle travel segments. Each segment's angle is normalized to
// radians once, converted to an elevation change with distance * tan(angle),
// and the resulting samples are summed into net elevation, total ascent and
// total descent.
package ascent

import (
	"math"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Segment is a single travel leg with its angle already in radians
type Segment struct {
	Distance float64
	Angle    float64 // radians, regardless of the input unit
}

// NewSegment normalizes a raw distance/angle pair. Degrees are converted to
// radians; radians pass through unchanged.
func NewSegment(distance, angle float64, angleType AngleType) Segment {
	if angleType == Degrees {
		angle = DegToRad(angle)
	}
	return Segment{
		Distance: distance,
		Angle:    angle,
	}
}

// Sample is a Segment together with the elevation change it implies
type Sample struct {
	Distance        float64
	Angle           float64 // radians
	ElevationChange float64
}

// NewSample computes the elevation change for a normalized segment
func NewSample(s Segment) Sample {
	return Sample{
		Distance:        s.Distance,
		Angle:           s.Angle,
		ElevationChange: CalculateAscentRadians(s.Distance, s.Angle),
	}
}

// AngleDegrees returns the sample's angle converted back to degrees
func (s Sample) AngleDegrees() float64 {
	return unit.Angle(s.Angle).Deg()
}

// Series is an ordered, immutable sequence of samples
type Series struct {
	samples []Sample
}

// NewSeries normalizes and computes every pair independently, preserving
// input order.
func NewSeries(pairs []Pair, angleType AngleType) *Series {
	samples := make([]Sample, len(pairs))
	for i, p := range pairs {
		samples[i] = NewSample(NewSegment(p.Distance, p.Angle, angleType))
	}
	return &Series{samples: samples}
}

// Len returns the number of samples in the series
func (s *Series) Len() int {
	return len(s.samples)
}

// Samples returns a copy of the samples in input order
func (s *Series) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)
	return out
}

// TotalElevation is the net elevation change: the sum of every sample
func (s *Series) TotalElevation() float64 {
	return floats.Sum(s.changes(func(float64) bool { return true }))
}

// TotalAscent sums the sign-positive elevation changes. +0 is counted as
// ascent, matching IEEE-754 sign-bit classification.
func (s *Series) TotalAscent() float64 {
	return floats.Sum(s.changes(func(v float64) bool { return !math.Signbit(v) }))
}

// TotalDescent sums the sign-negative elevation changes. The result is zero
// or negative. -0 is counted as descent.
func (s *Series) TotalDescent() float64 {
	return floats.Sum(s.changes(func(v float64) bool { return math.Signbit(v) }))
}

// TotalDistance sums the distance of every segment
func (s *Series) TotalDistance() float64 {
	distances := make([]float64, len(s.samples))
	for i, sample := range s.samples {
		distances[i] = sample.Distance
	}
	return floats.Sum(distances)
}

// MeanGrade returns the distance-weighted mean of tan(angle) over the series,
// which is the net rise per unit of distance travelled. It is 0 for an empty
// series or one whose distances sum to zero.
func (s *Series) MeanGrade() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	grades := make([]float64, len(s.samples))
	weights := make([]float64, len(s.samples))
	for i, sample := range s.samples {
		grades[i] = unit.Angle(sample.Angle).Tan()
		weights[i] = sample.Distance
	}
	if floats.Sum(weights) == 0 {
		return 0
	}
	return stat.Mean(grades, weights)
}

// Summary collects the aggregate values of the series
func (s *Series) Summary() Summary {
	return Summary{
		Altitude:     s.TotalElevation(),
		TotalAscent:  s.TotalAscent(),
		TotalDescent: s.TotalDescent(),
		Segments:     s.Len(),
		Distance:     s.TotalDistance(),
		MeanGrade:    s.MeanGrade(),
	}
}

// changes returns the elevation changes accepted by keep, in order
func (s *Series) changes(keep func(float64) bool) []float64 {
	out := make([]float64, 0, len(s.samples))
	for _, sample := range s.samples {
		if keep(sample.ElevationChange) {
			out = append(out, sample.ElevationChange)
		}
	}
	return out
}

// Summary contains the aggregate results of a series
type Summary struct {
	Altitude     float64 // net elevation change
	TotalAscent  float64 // sum of positive changes
	TotalDescent float64 // sum of negative changes, zero or negative
	Segments     int     // number of segments
	Distance     float64 // total distance travelled
	MeanGrade    float64 // distance-weighted mean of tan(angle)
}
