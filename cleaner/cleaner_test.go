package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean_StopName(t *testing.T) {
	c := New(FrenchCA)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "remark and boulevard", input: "Saint-Jean Blvd. (express)", want: "Saint-Jean Boulevard"},
		{name: "saint variants and chemin", input: "St-Jean / Ch. Ste-Foy", want: "Saint-Jean / Chemin Sainte-Foy"},
		{name: "all capitals with minor words", input: "STATION DE LA CAPITALE", want: "Station de la Capitale"},
		{name: "elided article", input: "RUE D'ESTIMAUVILLE", want: "Rue d'Estimauville"},
		{name: "shouting abbreviation", input: "ST-JEAN BOUL. (QUAI 2)", want: "Saint-Jean Boulevard"},
		{name: "bounding punctuation", input: "  - Terminus Beauport -  ", want: "Terminus Beauport"},
		{name: "bracket remark", input: "Gare du Palais [temporaire]", want: "Gare du Palais"},
		{name: "unclosed parenthesis", input: "Place Fleur-de-Lys (nord", want: "Place Fleur-de-Lys"},
		{name: "avenue", input: "1re Av. / Des Peupliers", want: "1re Avenue / Des Peupliers"},
		{name: "null placeholder", input: "Les Saules - null", want: "Les Saules"},
		{name: "already clean", input: "Terminus Les Saules", want: "Terminus Les Saules"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Clean(tt.input, KindStopName))
		})
	}
}

func TestClean_Route(t *testing.T) {
	c := New(FrenchCA)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "null token", input: "Route - null", want: "Route"},
		{name: "only null", input: "NULL", want: ""},
		{name: "trailing remark", input: "Charlesbourg (via 1re Avenue)", want: "Charlesbourg"},
		{name: "capitals, saint and null", input: "ST-ÉMILE - NULL - GARE", want: "Saint-Émile Gare"},
		{name: "street types untouched", input: "Boul. Hamel", want: "Boul. Hamel"},
		{name: "spacing", input: "Les Saules   /  Charlesbourg", want: "Les Saules / Charlesbourg"},
		{name: "parenthesis spacing", input: "Cap-Rouge ( Sainte-Foy ) - Québec", want: "Cap-Rouge (Sainte-Foy) - Québec"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Clean(tt.input, KindRoute))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	c := New(nil)
	inputs := []string{
		"Saint-Jean Blvd. (express)",
		"ST-JEAN BOUL. (QUAI 2)",
		"A (x) [y]",
		"A (x) (y",
		"A (x) null",
		"A (x) -",
		"RUE D'ESTIMAUVILLE",
		"STATION DE LA CAPITALE",
		"  --  ",
		"Route - null",
		"Ste. Foy Av",
		"Cap-Rouge ( Sainte-Foy ) - Québec",
	}
	for _, kind := range []Kind{KindRoute, KindStopName} {
		for _, in := range inputs {
			once := c.Clean(in, kind)
			assert.Equal(t, once, c.Clean(once, kind), "%s: %q", kind, in)
		}
	}
}

func TestShortName(t *testing.T) {
	c := New(FrenchCA)

	assert.Equal(t, "800A", c.ShortName("800a"))
	assert.Equal(t, "11B", c.ShortName("  11b "))
	assert.Equal(t, "É1", c.ShortName("é1"))
}

func TestLocaleFor(t *testing.T) {
	l, err := LocaleFor("fr-CA")
	require.NoError(t, err)
	assert.Same(t, FrenchCA, l)

	l, err = LocaleFor(" FR ")
	require.NoError(t, err)
	assert.Same(t, FrenchCA, l)

	_, err = LocaleFor("en-US")
	assert.Error(t, err)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "route", KindRoute.String())
	assert.Equal(t, "stopName", KindStopName.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
