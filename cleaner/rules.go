package cleaner

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// "Terminus (quai 3)", "Station (arr. 2) [nuit]"
	trailingRemark = regexp.MustCompile(`(\s*(\([^()]*\)|\[[^\[\]]*\]))+\s*$`)
	// residue: inline bracket remarks and a parenthesis never closed
	bracketRemark = regexp.MustCompile(`\s*(\[[^\[\]]*\]|\([^()]*$)`)
	nullToken     = regexp.MustCompile(`(?i)[\- ]*\bnull\b[ \-]*`)

	spaces        = regexp.MustCompile(`\s+`)
	openParen     = regexp.MustCompile(`\(\s+`)
	closeParen    = regexp.MustCompile(`\s+\)`)
	emptyParens   = regexp.MustCompile(`\s*\(\s*\)`)
	spaceComma    = regexp.MustCompile(`\s+,`)
	labelBounds   = regexp.MustCompile(`^[\s\-,/]+|[\s\-,/]+$`)
	stopBounds    = regexp.MustCompile(`^[\s\-,;:./\\*]+|[\s\-,;:./\\*]+$`)
	letterRun     = regexp.MustCompile(`\p{L}+`)
	elisionMarker = regexp.MustCompile(`(^|[^\p{L}])(\p{L})['’](\p{L})`)
)

func (r caseRule) apply(s string, tag language.Tag) string {
	return r.re.ReplaceAllStringFunc(s, func(m string) string {
		g := r.re.FindStringSubmatch(m)
		if len(g) < 4 {
			return m
		}
		full := r.full
		if isShouting(g[2]) {
			full = cases.Upper(tag).String(full)
		}
		return g[1] + full + g[3]
	})
}

// isShouting reports whether s has letters and none of them is lowercase.
func isShouting(s string) bool {
	letters := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters = true
		}
	}
	return letters
}

func normalizeSaints(l *Locale, s string) string {
	for _, r := range l.saintRules {
		s = r.apply(s, l.Tag)
	}
	return s
}

func stripRemarks(s string) string {
	s = trailingRemark.ReplaceAllString(s, "")
	return bracketRemark.ReplaceAllString(s, "")
}

func removeNull(s string) string {
	return nullToken.ReplaceAllString(s, " ")
}

func cleanBounds(s string) string {
	return stopBounds.ReplaceAllString(s, "")
}

func expandStreetTypes(l *Locale, s string) string {
	for _, r := range l.streetRules {
		s = r.apply(s, l.Tag)
	}
	return s
}

// cleanLabel fixes spacing and punctuation and re-cases labels written all in capitals.
// With a nil locale no minor word is kept lowercase.
func cleanLabel(l *Locale, tag language.Tag, s string) string {
	s = spaces.ReplaceAllString(s, " ")
	s = emptyParens.ReplaceAllString(s, "")
	s = openParen.ReplaceAllString(s, "(")
	s = closeParen.ReplaceAllString(s, ")")
	s = spaceComma.ReplaceAllString(s, ",")
	s = labelBounds.ReplaceAllString(s, "")
	if isShouting(s) {
		s = recase(l, tag, s)
	}
	return strings.TrimSpace(s)
}

func recase(l *Locale, tag language.Tag, s string) string {
	lower := cases.Lower(tag)
	title := cases.Title(tag)
	first := true
	s = letterRun.ReplaceAllStringFunc(s, func(w string) string {
		lw := lower.String(w)
		if l != nil && !first {
			if _, ok := l.minor[lw]; ok {
				return lw
			}
		}
		first = false
		return title.String(lw)
	})
	if l == nil {
		return s
	}
	// "Rue D'Estimauville" -> "Rue d'Estimauville"
	return elisionMarker.ReplaceAllStringFunc(s, func(m string) string {
		g := elisionMarker.FindStringSubmatch(m)
		if g[1] == "" {
			return m
		}
		art := lower.String(g[2])
		if _, ok := l.elided[art]; !ok {
			return m
		}
		return g[1] + art + "'" + g[3]
	})
}
