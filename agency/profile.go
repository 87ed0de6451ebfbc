package agency

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/rtc-agency-parser/cleaner"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/config"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/direction"
)

// GTFS route_type values used by the profiles.
const (
	RouteTypeTram   = 0
	RouteTypeSubway = 1
	RouteTypeRail   = 2
	RouteTypeBus    = 3
	RouteTypeFerry  = 4
)

// Profile is everything agency-specific the transformer needs.
// Agencies differ by value, not by type.
type Profile struct {
	Name       string
	Color      string // RRGGBB, used for routes without their own color
	RouteType  int
	Locale     *cleaner.Locale
	Directions *direction.Table
}

// RTC is the Réseau de transport de la Capitale (Quebec City) bus network.
var RTC = Profile{
	Name:       "RTC",
	Color:      "A3C614",
	RouteType:  RouteTypeBus,
	Locale:     cleaner.FrenchCA,
	Directions: direction.FrenchCA,
}

// ProfileFromConfig builds a profile from the agency section of the configuration.
// Empty or zero fields keep the RTC values.
func ProfileFromConfig(cfg config.AgencyConfig) (Profile, error) {
	p := RTC
	if cfg.Name != "" {
		p.Name = cfg.Name
	}
	if cfg.Color != "" {
		p.Color = strings.ToUpper(cfg.Color)
	}
	if cfg.RouteType != 0 {
		p.RouteType = cfg.RouteType
	}
	if cfg.Locale != "" {
		l, err := cleaner.LocaleFor(cfg.Locale)
		if err != nil {
			return Profile{}, fmt.Errorf("agency %s: %w", p.Name, err)
		}
		t, err := direction.TableFor(cfg.Locale)
		if err != nil {
			return Profile{}, fmt.Errorf("agency %s: %w", p.Name, err)
		}
		p.Locale, p.Directions = l, t
	}
	return p, nil
}
