package ascent

import (
	"fmt"
	"strings"
)

// AngleType identifies the unit that input angles are expressed in
type AngleType int

const (
	Degrees AngleType = iota
	Radians
)

// String returns the lower-case name used on the command line and in config files
func (a AngleType) String() string {
	switch a {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return fmt.Sprintf("AngleType(%d)", int(a))
	}
}

// Set implements flag.Value so an AngleType can be bound directly to a flag
func (a *AngleType) Set(s string) error {
	parsed, err := ParseAngleType(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAngleType converts "degrees" or "radians" (any case) to an AngleType.
// An empty string yields the default, Degrees.
func ParseAngleType(s string) (AngleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "degrees":
		return Degrees, nil
	case "radians":
		return Radians, nil
	default:
		return Degrees, fmt.Errorf("unsupported angle type %q: use 'degrees' or 'radians'", s)
	}
}
