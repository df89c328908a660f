package ascent

import (
	"flag"
	"testing"
)

func TestParseAngleType(t *testing.T) {
	tests := []struct {
		input    string
		expected AngleType
		wantErr  bool
	}{
		{"", Degrees, false},
		{"degrees", Degrees, false},
		{"Degrees", Degrees, false},
		{"radians", Radians, false},
		{" RADIANS ", Radians, false},
		{"gradians", Degrees, true},
		{"deg", Degrees, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAngleType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAngleType(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAngleType(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseAngleType(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAngleTypeFlag(t *testing.T) {
	var angleType AngleType
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&angleType, "angle-type", "angle unit")

	if angleType != Degrees {
		t.Fatalf("zero value = %v, expected degrees", angleType)
	}
	if err := fs.Parse([]string{"-angle-type", "radians"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if angleType != Radians {
		t.Errorf("angleType = %v, expected radians", angleType)
	}
	if angleType.String() != "radians" {
		t.Errorf("String() = %q, expected %q", angleType.String(), "radians")
	}
}
