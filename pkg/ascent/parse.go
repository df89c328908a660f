package ascent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMissingDistance is returned when a pair has nothing before the comma
	ErrMissingDistance = errors.New("distance cannot be empty")

	// ErrMissingAngle is returned when a pair has no field after the comma
	ErrMissingAngle = errors.New("angle cannot be empty")
)

// Pair is a raw distance/angle pair as read from input, before the angle
// unit has been applied
type Pair struct {
	Distance float64
	Angle    float64
}

// ParseFloatError reports a field that is present but is not a valid
// floating-point literal
type ParseFloatError struct {
	Field string // "distance" or "angle"
	Input string
	Err   error
}

func (e *ParseFloatError) Error() string {
	return fmt.Sprintf("failed to convert %s %q to float: %v", e.Field, e.Input, e.Err)
}

func (e *ParseFloatError) Unwrap() error {
	return e.Err
}

// PairError identifies which token in a batch failed to parse
type PairError struct {
	Index int // zero-based position of the token
	Token string
	Err   error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("pair %d (%q): %v", e.Index+1, e.Token, e.Err)
}

func (e *PairError) Unwrap() error {
	return e.Err
}

// ParsePair parses a single "<distance>,<angle>" token, e.g. "800,5".
// Anything after the first comma is treated as the angle field.
func ParsePair(token string) (Pair, error) {
	distanceField, angleField, found := strings.Cut(token, ",")
	if distanceField == "" {
		return Pair{}, ErrMissingDistance
	}
	if !found || angleField == "" {
		return Pair{}, ErrMissingAngle
	}

	distance, err := parseFloat("distance", distanceField)
	if err != nil {
		return Pair{}, err
	}
	angle, err := parseFloat("angle", angleField)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Distance: distance, Angle: angle}, nil
}

// ParsePairs parses every whitespace-separated token in args. An argument
// that is entirely empty counts as one empty token. The first failure aborts
// the batch and is returned as a *PairError.
func ParsePairs(args []string) ([]Pair, error) {
	tokens := splitTokens(args)
	pairs := make([]Pair, 0, len(tokens))
	for i, token := range tokens {
		p, err := ParsePair(token)
		if err != nil {
			return nil, &PairError{Index: i, Token: token, Err: err}
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func splitTokens(args []string) []string {
	var tokens []string
	for _, arg := range args {
		if arg == "" {
			tokens = append(tokens, "")
			continue
		}
		tokens = append(tokens, strings.Fields(arg)...)
	}
	return tokens
}

// parseFloat accepts overflowing literals as ±Inf
func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, &ParseFloatError{Field: field, Input: s, Err: err}
	}
	return v, nil
}
