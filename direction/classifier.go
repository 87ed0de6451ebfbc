package direction

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnclassified is matched by every ClassificationError.
var ErrUnclassified = errors.New("unclassified trip headsign")

// ClassificationError reports a headsign that carries no known direction marker.
type ClassificationError struct {
	Headsign string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("unexpected trip headsign %q: no direction marker", e.Headsign)
}

func (e *ClassificationError) Is(target error) bool { return target == ErrUnclassified }

// Result is a classified trip headsign.
type Result struct {
	Headsign  string // "<L>-<text>"
	Direction Code
}

// Classifier maps trip headsigns to API directions. Safe for concurrent use.
type Classifier struct {
	table *Table
}

// NewClassifier returns a classifier over t. A nil table falls back to FrenchCA.
func NewClassifier(t *Table) *Classifier {
	if t == nil {
		t = FrenchCA
	}
	return &Classifier{table: t}
}

var defaultClassifier = NewClassifier(FrenchCA)

// Classify classifies headsign with the FrenchCA table.
func Classify(headsign string) (Result, error) {
	return defaultClassifier.Classify(headsign)
}

// Classify returns the rewritten headsign and its direction.
// There is no default direction: a headsign without marker is an error.
func (c *Classifier) Classify(headsign string) (Result, error) {
	rule, rest, ok := c.table.match(headsign)
	if !ok {
		return Result{}, &ClassificationError{Headsign: headsign}
	}
	return Result{
		Headsign:  rule.Code.Letter() + "-" + CleanHeadsign(rest),
		Direction: rule.Code,
	}, nil
}

var (
	headsignSpaces    = regexp.MustCompile(`\s+`)
	headsignNull      = regexp.MustCompile(`(?i)\bnull\b`)
	headsignSlash     = regexp.MustCompile(`\s*/\s*`)
	headsignDash      = regexp.MustCompile(`\s+-\s*|\s*-\s+`)
	headsignRemark    = regexp.MustCompile(`(\s*\([^()]*\))+\s*$`)
	headsignBoundsSep = regexp.MustCompile(`^[\s\-/,]+|[\s\-/,]+$`)
)

// CleanHeadsign tidies the text that follows the direction prefix:
// placeholder tokens and trailing remarks go, separators get one space on each side.
func CleanHeadsign(s string) string {
	s = norm.NFC.String(s)
	s = headsignNull.ReplaceAllString(s, " ")
	s = headsignRemark.ReplaceAllString(s, "")
	s = headsignSlash.ReplaceAllString(s, " / ")
	s = headsignDash.ReplaceAllString(s, " - ")
	s = headsignSpaces.ReplaceAllString(s, " ")
	s = headsignBoundsSep.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
