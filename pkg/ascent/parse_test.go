package ascent

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestParsePairs(t *testing.T) {
	expected := []Pair{{800, 5}, {300, -1}, {1000, 0}}

	tests := []struct {
		name string
		args []string
	}{
		{"single argument", []string{"800,5 300,-1 1000,0"}},
		{"one argument per pair", []string{"800,5", "300,-1", "1000,0"}},
		{"mixed with extra whitespace", []string{"800,5  300,-1", "\t1000,0\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePairs(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, expected) {
				t.Errorf("ParsePairs(%q) = %v, expected %v", tt.args, got, expected)
			}
		})
	}
}

func TestParsePair(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected Pair
		wantErr  error
	}{
		{"integers", "800,5", Pair{800, 5}, nil},
		{"decimals", "12.5,-0.75", Pair{12.5, -0.75}, nil},
		{"exponent", "1e3,2.5e-1", Pair{1000, 0.25}, nil},
		{"empty token", "", Pair{}, ErrMissingDistance},
		{"empty distance", ",5", Pair{}, ErrMissingDistance},
		{"no comma", "800", Pair{}, ErrMissingAngle},
		{"empty angle", "800,", Pair{}, ErrMissingAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePair(tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePair(%q) error = %v, expected %v", tt.token, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePair(%q) unexpected error: %v", tt.token, err)
			}
			if got != tt.expected {
				t.Errorf("ParsePair(%q) = %v, expected %v", tt.token, got, tt.expected)
			}
		})
	}
}

func TestParsePairInvalidFloat(t *testing.T) {
	tests := []struct {
		token string
		field string
		input string
	}{
		{"abc,5", "distance", "abc"},
		{"800,x", "angle", "x"},
		{"1,2,3", "angle", "2,3"},
		{"800 ,5", "distance", "800 "},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			_, err := ParsePair(tt.token)
			var pfe *ParseFloatError
			if !errors.As(err, &pfe) {
				t.Fatalf("ParsePair(%q) error = %v, expected *ParseFloatError", tt.token, err)
			}
			if pfe.Field != tt.field {
				t.Errorf("Field = %q, expected %q", pfe.Field, tt.field)
			}
			if pfe.Input != tt.input {
				t.Errorf("Input = %q, expected %q", pfe.Input, tt.input)
			}
			if pfe.Unwrap() == nil {
				t.Error("expected wrapped strconv error")
			}
		})
	}
}

func TestParsePairOverflow(t *testing.T) {
	got, err := ParsePair("1e400,-1e400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got.Distance, 1) || !math.IsInf(got.Angle, -1) {
		t.Errorf("ParsePair overflow = %v, expected (+Inf, -Inf)", got)
	}
}

func TestParsePairsErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		index   int
		wantErr error
	}{
		{"empty string", []string{""}, 0, ErrMissingDistance},
		{"missing angle", []string{"800"}, 0, ErrMissingAngle},
		{"second pair bad", []string{"800,5 300"}, 1, ErrMissingAngle},
		{"empty argument after valid", []string{"800,5", ""}, 1, ErrMissingDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := ParsePairs(tt.args)
			if pairs != nil {
				t.Errorf("expected no partial results, got %v", pairs)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, expected %v", err, tt.wantErr)
			}
			var pe *PairError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %T, expected *PairError", err)
			}
			if pe.Index != tt.index {
				t.Errorf("Index = %d, expected %d", pe.Index, tt.index)
			}
		})
	}
}

func TestParsePairsFirstErrorWins(t *testing.T) {
	_, err := ParsePairs([]string{"800 x,1 ,2"})
	if !errors.Is(err, ErrMissingAngle) {
		t.Errorf("error = %v, expected the first failure (missing angle)", err)
	}
}
