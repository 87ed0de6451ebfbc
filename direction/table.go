package direction

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule binds a locale direction word to an API direction.
// A headsign matches when it ends with " (<Marker>)", in any case.
type Rule struct {
	Code   Code
	Marker string

	re *regexp.Regexp
}

// Table is an ordered list of rules evaluated first-match-wins.
// It is read-only once built.
type Table struct {
	rules []Rule
}

// FrenchCA holds the Quebec French direction words in priority order.
var FrenchCA = MustTable(
	Rule{Code: North, Marker: "nord"},
	Rule{Code: South, Marker: "sud"},
	Rule{Code: East, Marker: "est"},
	Rule{Code: West, Marker: "ouest"},
)

// NewTable compiles rules and checks that no two of them can match the same headsign.
func NewTable(rules ...Rule) (*Table, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("direction table has no rules")
	}
	t := &Table{rules: make([]Rule, 0, len(rules))}
	seen := map[Code]string{}
	for _, r := range rules {
		if !r.Code.Valid() {
			return nil, fmt.Errorf("rule %q: invalid direction code %d", r.Marker, int(r.Code))
		}
		marker := strings.TrimSpace(r.Marker)
		if marker == "" {
			return nil, fmt.Errorf("rule for %s has an empty marker", r.Code)
		}
		if prev, ok := seen[r.Code]; ok {
			return nil, fmt.Errorf("direction %s bound twice (%q, %q)", r.Code, prev, marker)
		}
		seen[r.Code] = marker
		r.Marker = marker
		r.re = regexp.MustCompile(`(?i)^(.*) \(` + regexp.QuoteMeta(marker) + `\)$`)
		t.rules = append(t.rules, r)
	}
	if err := t.checkDisjoint(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. Use it for package-level tables.
func MustTable(rules ...Rule) *Table {
	t, err := NewTable(rules...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) checkDisjoint() error {
	for i, a := range t.rules {
		sample := "x (" + a.Marker + ")"
		for j, b := range t.rules {
			if i != j && b.re.MatchString(sample) {
				return fmt.Errorf("direction rules %q and %q overlap", a.Marker, b.Marker)
			}
		}
	}
	return nil
}

// Rules returns a copy of the rules in priority order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// match returns the first rule matching headsign and the text before its marker.
func (t *Table) match(headsign string) (Rule, string, bool) {
	for _, r := range t.rules {
		if m := r.re.FindStringSubmatch(headsign); m != nil {
			return r, m[1], true
		}
	}
	return Rule{}, "", false
}

var tables = map[string]*Table{
	"fr":    FrenchCA,
	"fr-ca": FrenchCA,
}

// TableFor returns the direction table registered for a BCP-47 tag such as "fr-CA".
func TableFor(tag string) (*Table, error) {
	t, ok := tables[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return nil, fmt.Errorf("no direction table for locale %q", tag)
	}
	return t, nil
}
