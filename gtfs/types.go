package gtfs

// RouteRecord is one row of routes.txt.
type RouteRecord struct {
	RouteID   string `json:"route_id" validate:"required"`
	AgencyID  string `json:"agency_id,omitempty"`
	ShortName string `json:"route_short_name"`
	LongName  string `json:"route_long_name,omitempty"`
	Desc      string `json:"route_desc,omitempty"`
	Type      int    `json:"route_type" validate:"gte=0"`
	Color     string `json:"route_color,omitempty" validate:"omitempty,hexadecimal,len=6"`
}

// LongNameOrDesc returns the long name, or the description when the agency
// does not publish long names. Both may be empty.
func (r RouteRecord) LongNameOrDesc() string {
	if r.LongName != "" {
		return r.LongName
	}
	return r.Desc
}

// TripRecord is one row of trips.txt.
type TripRecord struct {
	TripID      string `json:"trip_id" validate:"required"`
	RouteID     string `json:"route_id" validate:"required"`
	ServiceID   string `json:"service_id,omitempty"`
	Headsign    string `json:"trip_headsign" validate:"required"`
	DirectionID string `json:"direction_id,omitempty" validate:"omitempty,oneof=0 1"`
	ShapeID     string `json:"shape_id,omitempty"`
}

// StopRecord is one row of stops.txt.
type StopRecord struct {
	StopID string  `json:"stop_id" validate:"required"`
	Code   string  `json:"stop_code,omitempty"`
	Name   string  `json:"stop_name" validate:"required"`
	Lat    float64 `json:"stop_lat" validate:"gte=-90,lte=90"`
	Lon    float64 `json:"stop_lon" validate:"gte=-180,lte=180"`
}

// Feed holds the records needed by the agency parser, in file order.
type Feed struct {
	AgencyID   string
	AgencyName string
	AgencyTZ   string
	Routes     []RouteRecord
	Trips      []TripRecord
	Stops      []StopRecord
}
