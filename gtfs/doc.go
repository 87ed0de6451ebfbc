/*
Package gtfs loads the static GTFS records the agency parser works on.

Only agency.txt, routes.txt, trips.txt and stops.txt are read. Every row
becomes an immutable record (RouteRecord, TripRecord, StopRecord) and is
validated with struct tags: a trip without headsign or a stop without name
stops the load with the offending row number.

# Basic Usage

Load from configuration (URL or local path):

	feed, err := gtfs.NewFeedFromConfig(config.Config.GTFS)
	if err != nil {
	    log.Fatal(err)
	}

Load from raw bytes:

	feed, err := gtfs.NewFeedFromBytes(zipBytes, "RTC")

Load through a gob cache of the parsed feed (config gtfs.cachePath):

	feed, cached, err := gtfs.LoadFeed(config.Config.GTFS)

Keyed access:

	idx := gtfs.NewIndex(feed)
	route, ok := idx.Route("1")

Column lookup is case-insensitive and tolerant of missing optional columns.
Records keep the file order.
*/
package gtfs
