package agency

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// routeLetterOffset separates lettered variants of a route ("11A", "11B") from the plain number.
const routeLetterOffset = 10000

var routeShortName = regexp.MustCompile(`^(\d+)([A-Z]?)$`)

// RouteIDFromShortName derives the numeric route ID from a cleaned short name:
// "800" -> 800, "11A" -> 10011, "11B" -> 20011.
func RouteIDFromShortName(shortName string) (int, error) {
	m := routeShortName.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(shortName)))
	if m == nil {
		return 0, fmt.Errorf("route short name %q is not a route number", shortName)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("route short name %q: %w", shortName, err)
	}
	if n >= routeLetterOffset {
		return 0, fmt.Errorf("route short name %q: number out of range", shortName)
	}
	if m[2] != "" {
		n += int(m[2][0]-'A'+1) * routeLetterOffset
	}
	return n, nil
}
