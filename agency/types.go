package agency

import "github.com/theoremus-urban-solutions/rtc-agency-parser/direction"

// Route is a cleaned route.
type Route struct {
	ID          int    `json:"id"`
	GTFSRouteID string `json:"gtfsRouteId"`
	ShortName   string `json:"shortName"` // locale upper case, matched by real-time lookups
	LongName    string `json:"longName"`
	Color       string `json:"color"`
}

// Trip is a trip with its classified headsign.
type Trip struct {
	TripID         string         `json:"tripId"`
	RouteID        string         `json:"routeId"`
	RouteShortName string         `json:"routeShortName"`
	Headsign       string         `json:"headsign"`
	Direction      direction.Code `json:"direction"`
	DirectionID    int            `json:"directionId"` // numeric real-time API value
}

// Stop is a stop with its resolved identity and cleaned name.
type Stop struct {
	ID         int     `json:"id"`
	GTFSStopID string  `json:"gtfsStopId"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

// Info describes the agency that produced an Output.
type Info struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	RouteType int    `json:"routeType"`
	Timezone  string `json:"timezone,omitempty"`
}

// Output is the transformed feed, in input order.
type Output struct {
	Agency Info    `json:"agency"`
	Routes []Route `json:"routes"`
	Trips  []Trip  `json:"trips"`
	Stops  []Stop  `json:"stops"`
}
