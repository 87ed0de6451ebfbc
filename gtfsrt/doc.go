// Package gtfsrt reads GTFS-Realtime protobuf feeds and joins them with the
// transformed static feed.
//
// Vehicle positions and trip updates are matched on trip_id; each match yields
// the route short name, direction and stop code the RTC real-time API keys on.
package gtfsrt
