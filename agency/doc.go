/*
Package agency turns GTFS records of one transit agency into the cleaned
routes, trips and stops consumed by the real-time side.

An agency is a Profile value: a name, a color, a route type, a cleaner
Locale and a direction Table. RTC is the Quebec City profile.

	tr := agency.NewTransformer(agency.RTC, agency.WithLogger(log))
	out, err := tr.Transform(ctx, feed)

Per record:
  - routes: short name upper-cased in the locale, route ID derived from it,
    long name (or description) cleaned as a route label
  - trips: headsign classified into N, S, E or O; no marker is fatal
  - stops: code falls back to stop_id, numeric ID parsed from the code,
    name cleaned as a stop label
*/
package agency
