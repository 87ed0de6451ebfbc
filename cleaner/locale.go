package cleaner

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// StreetType maps abbreviations of a street type to its spelled-out form.
type StreetType struct {
	Full          string
	Abbreviations []string
}

// SaintForm maps abbreviations of a saint prefix to its canonical spelling.
type SaintForm struct {
	Canonical string
	Variants  []string
}

// Locale holds the static vocabulary used to clean labels in one language.
type Locale struct {
	Tag         language.Tag
	Saints      []SaintForm  // evaluated in order, longest form first
	StreetTypes []StreetType // abbreviation -> full word
	MinorWords  []string     // kept lowercase inside a re-cased stop name
	Elisions    []string     // elided articles, e.g. "d" in "d'Estimauville"

	saintRules  []caseRule
	streetRules []caseRule
	minor       map[string]struct{}
	elided      map[string]struct{}
}

// caseRule replaces the captured word with a fixed form, following the case of the match.
type caseRule struct {
	re   *regexp.Regexp
	full string
}

const (
	wordStart = `(^|[^\p{L}\p{N}])`
	wordEnd   = `($|[^\p{L}\p{N}])`
)

// FrenchCA is the Quebec French vocabulary.
var FrenchCA = mustCompile(&Locale{
	Tag: language.CanadianFrench,
	Saints: []SaintForm{
		{Canonical: "Sainte", Variants: []string{"sainte", "ste"}},
		{Canonical: "Saint", Variants: []string{"saint", "st"}},
	},
	StreetTypes: []StreetType{
		{Full: "Autoroute", Abbreviations: []string{"aut", "auto"}},
		{Full: "Avenue", Abbreviations: []string{"av", "ave"}},
		{Full: "Boulevard", Abbreviations: []string{"boul", "boulv", "blvd", "bd"}},
		{Full: "Carré", Abbreviations: []string{"carr"}},
		{Full: "Chemin", Abbreviations: []string{"ch", "chem"}},
		{Full: "Croissant", Abbreviations: []string{"crois", "cr"}},
		{Full: "Impasse", Abbreviations: []string{"imp"}},
		{Full: "Montée", Abbreviations: []string{"mtée", "mtee"}},
		{Full: "Pavillon", Abbreviations: []string{"pav"}},
		{Full: "Place", Abbreviations: []string{"pl"}},
		{Full: "Promenade", Abbreviations: []string{"prom"}},
		{Full: "Route", Abbreviations: []string{"rte"}},
		{Full: "Station", Abbreviations: []string{"stat"}},
		{Full: "Terminus", Abbreviations: []string{"term"}},
		{Full: "Terrasse", Abbreviations: []string{"terr"}},
	},
	MinorWords: []string{"à", "au", "aux", "de", "des", "du", "en", "et", "la", "le", "les", "sur"},
	Elisions:   []string{"d", "l"},
})

var locales = map[string]*Locale{
	"fr":    FrenchCA,
	"fr-ca": FrenchCA,
}

// LocaleFor returns the locale registered for a BCP-47 tag such as "fr-CA".
func LocaleFor(tag string) (*Locale, error) {
	l, ok := locales[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", tag)
	}
	return l, nil
}

func mustCompile(l *Locale) *Locale {
	for _, s := range l.Saints {
		// "Ste-Foy", "ste. Foy", "SAINTE-FOY"
		re := regexp.MustCompile(`(?i)` + wordStart + `(` + alternation(s.Variants) + `)\.?([\- ])`)
		l.saintRules = append(l.saintRules, caseRule{re: re, full: s.Canonical})
	}
	for _, st := range l.StreetTypes {
		re := regexp.MustCompile(`(?i)` + wordStart + `(` + alternation(st.Abbreviations) + `)\.?` + wordEnd)
		l.streetRules = append(l.streetRules, caseRule{re: re, full: st.Full})
	}
	l.minor = make(map[string]struct{}, len(l.MinorWords))
	for _, w := range l.MinorWords {
		l.minor[w] = struct{}{}
	}
	l.elided = make(map[string]struct{}, len(l.Elisions))
	for _, w := range l.Elisions {
		l.elided[w] = struct{}{}
	}
	return l
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}
