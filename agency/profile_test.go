package agency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/rtc-agency-parser/cleaner"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/config"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/direction"
)

func TestRouteIDFromShortName(t *testing.T) {
	tests := []struct {
		short   string
		want    int
		wantErr bool
	}{
		{short: "800", want: 800},
		{short: "1", want: 1},
		{short: "11A", want: 10011},
		{short: "11b", want: 20011},
		{short: " 87 ", want: 87},
		{short: "9999Z", want: 269999},
		{short: "10000", wantErr: true},
		{short: "", wantErr: true},
		{short: "A11", wantErr: true},
		{short: "11AB", wantErr: true},
		{short: "Métrobus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.short, func(t *testing.T) {
			got, err := RouteIDFromShortName(tt.short)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileFromConfig(t *testing.T) {
	p, err := ProfileFromConfig(config.AgencyConfig{})
	require.NoError(t, err)
	assert.Equal(t, RTC, p)

	p, err = ProfileFromConfig(config.AgencyConfig{Name: "STLevis", Color: "00a0df", RouteType: RouteTypeFerry, Locale: "fr-CA"})
	require.NoError(t, err)
	assert.Equal(t, "STLevis", p.Name)
	assert.Equal(t, "00A0DF", p.Color)
	assert.Equal(t, RouteTypeFerry, p.RouteType)
	assert.Same(t, cleaner.FrenchCA, p.Locale)
	assert.Same(t, direction.FrenchCA, p.Directions)

	_, err = ProfileFromConfig(config.AgencyConfig{Name: "TTC", Locale: "en-CA"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TTC")
}
