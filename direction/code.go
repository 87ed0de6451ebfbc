package direction

import "fmt"

// Code is a trip direction as expected by the RTC real-time API.
// The numeric values are part of that API contract and must not change.
type Code int

const (
	North Code = 1
	South Code = 2
	East  Code = 3
	West  Code = 4
)

var letters = map[Code]string{
	North: "N",
	South: "S",
	East:  "E",
	West:  "O", // ouest
}

// Valid reports whether c is one of the four API directions.
func (c Code) Valid() bool {
	_, ok := letters[c]
	return ok
}

// Letter returns the single-letter prefix used in rewritten headsigns.
func (c Code) Letter() string { return letters[c] }

func (c Code) String() string {
	switch c {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// MarshalText encodes the direction as its letter.
func (c Code) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid direction code %d", int(c))
	}
	return []byte(c.Letter()), nil
}

// UnmarshalText accepts the letter form produced by MarshalText.
func (c *Code) UnmarshalText(b []byte) error {
	for code, l := range letters {
		if l == string(b) {
			*c = code
			return nil
		}
	}
	return fmt.Errorf("unknown direction letter %q", string(b))
}
