package gtfs

// Index gives keyed access to the records of a Feed.
// It is read-only once built and safe for concurrent lookups.
type Index struct {
	routes map[string]int // route_id -> position in Feed.Routes
	trips  map[string]int // trip_id -> position in Feed.Trips
	stops  map[string]int // stop_id -> position in Feed.Stops
	feed   *Feed
}

// NewIndex indexes f. Duplicate IDs resolve to the last row.
func NewIndex(f *Feed) *Index {
	g := &Index{
		routes: make(map[string]int, len(f.Routes)),
		trips:  make(map[string]int, len(f.Trips)),
		stops:  make(map[string]int, len(f.Stops)),
		feed:   f,
	}
	for i, r := range f.Routes {
		g.routes[r.RouteID] = i
	}
	for i, t := range f.Trips {
		g.trips[t.TripID] = i
	}
	for i, s := range f.Stops {
		g.stops[s.StopID] = i
	}
	return g
}

func (g *Index) Route(routeID string) (RouteRecord, bool) {
	i, ok := g.routes[routeID]
	if !ok {
		return RouteRecord{}, false
	}
	return g.feed.Routes[i], true
}

func (g *Index) Trip(tripID string) (TripRecord, bool) {
	i, ok := g.trips[tripID]
	if !ok {
		return TripRecord{}, false
	}
	return g.feed.Trips[i], true
}

func (g *Index) Stop(stopID string) (StopRecord, bool) {
	i, ok := g.stops[stopID]
	if !ok {
		return StopRecord{}, false
	}
	return g.feed.Stops[i], true
}

// GetRouteShortName returns the raw short name of a route, or "" when unknown.
func (g *Index) GetRouteShortName(routeID string) string {
	r, _ := g.Route(routeID)
	return r.ShortName
}

// GetRouteIDForTrip returns the route of a trip, or "" when unknown.
func (g *Index) GetRouteIDForTrip(tripID string) string {
	t, _ := g.Trip(tripID)
	return t.RouteID
}
