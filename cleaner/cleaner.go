package cleaner

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Kind selects which cleaning pipeline a label goes through.
type Kind int

const (
	KindRoute Kind = iota
	KindStopName
)

func (k Kind) String() string {
	switch k {
	case KindRoute:
		return "route"
	case KindStopName:
		return "stopName"
	default:
		return "unknown"
	}
}

// maxPasses bounds the fixed-point loop in Clean. Each pass only removes
// characters or expands an abbreviation once, so two passes are usually enough.
const maxPasses = 4

// Cleaner applies the label pipeline for one locale. It holds no mutable state.
type Cleaner struct {
	locale *Locale
}

// New returns a Cleaner for l. A nil locale falls back to FrenchCA.
func New(l *Locale) *Cleaner {
	if l == nil {
		l = FrenchCA
	}
	return &Cleaner{locale: l}
}

// Locale returns the vocabulary this cleaner uses.
func (c *Cleaner) Locale() *Locale { return c.locale }

// Clean returns the canonical form of text for the given kind.
// The result is stable: Clean(Clean(x)) == Clean(x).
func (c *Cleaner) Clean(text string, kind Kind) string {
	s := norm.NFC.String(text)
	for i := 0; i < maxPasses; i++ {
		next := c.pass(s, kind)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func (c *Cleaner) pass(s string, kind Kind) string {
	s = normalizeSaints(c.locale, s)
	s = stripRemarks(s)
	s = removeNull(s)
	if kind == KindStopName {
		s = cleanBounds(s)
		s = expandStreetTypes(c.locale, s)
		return cleanLabel(c.locale, c.locale.Tag, s)
	}
	return cleanLabel(nil, c.locale.Tag, s)
}

// ShortName upper-cases a route short name with the locale's casing rules.
// Real-time lookups match on this exact casing.
func (c *Cleaner) ShortName(s string) string {
	return cases.Upper(c.locale.Tag).String(strings.TrimSpace(s))
}
