package gtfsrt

import (
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/rtc-agency-parser/agency"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/direction"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/internal/logging"
)

// VehicleKey is what the RTC real-time API needs to look a vehicle up:
// the upper-case route short name, the direction and the stop code.
type VehicleKey struct {
	EntityID       string         `json:"entityId"`
	VehicleID      string         `json:"vehicleId,omitempty"`
	TripID         string         `json:"tripId"`
	RouteShortName string         `json:"routeShortName"`
	Direction      direction.Code `json:"direction"`
	Headsign       string         `json:"headsign"`
	StopCode       string         `json:"stopCode,omitempty"`
}

// ParseFeed decodes a GTFS-RT FeedMessage.
func ParseFeed(b []byte) (*gtfsrtpb.FeedMessage, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("gtfsrt: decode feed: %w", err)
	}
	return &fm, nil
}

// Matcher joins real-time entities with a transformed feed.
// It is read-only once built.
type Matcher struct {
	trips map[string]agency.Trip // trip_id -> trip
	stops map[string]string      // stop_id -> stop code
	log   *zap.Logger
}

// NewMatcher indexes out. log may be nil.
func NewMatcher(out *agency.Output, log *zap.Logger) *Matcher {
	m := &Matcher{
		trips: make(map[string]agency.Trip, len(out.Trips)),
		stops: make(map[string]string, len(out.Stops)),
		log:   logging.OrNop(log),
	}
	for _, t := range out.Trips {
		m.trips[t.TripID] = t
	}
	for _, s := range out.Stops {
		m.stops[s.GTFSStopID] = s.Code
	}
	return m
}

// Annotate returns one key per vehicle position or trip update whose trip is
// known. Entities for unknown trips are skipped.
func (m *Matcher) Annotate(fm *gtfsrtpb.FeedMessage) []VehicleKey {
	keys := make([]VehicleKey, 0, len(fm.GetEntity()))
	skipped := 0
	for _, e := range fm.GetEntity() {
		var (
			td     *gtfsrtpb.TripDescriptor
			vd     *gtfsrtpb.VehicleDescriptor
			stopID string
		)
		switch {
		case e.GetVehicle() != nil:
			v := e.GetVehicle()
			td, vd, stopID = v.GetTrip(), v.GetVehicle(), v.GetStopId()
		case e.GetTripUpdate() != nil:
			tu := e.GetTripUpdate()
			td, vd = tu.GetTrip(), tu.GetVehicle()
			// next stop is the first update of the trip
			if stus := tu.GetStopTimeUpdate(); len(stus) > 0 {
				stopID = stus[0].GetStopId()
			}
		default:
			continue
		}
		trip, ok := m.trips[td.GetTripId()]
		if !ok {
			skipped++
			continue
		}
		keys = append(keys, VehicleKey{
			EntityID:       e.GetId(),
			VehicleID:      vd.GetId(),
			TripID:         trip.TripID,
			RouteShortName: trip.RouteShortName,
			Direction:      trip.Direction,
			Headsign:       trip.Headsign,
			StopCode:       m.stops[stopID],
		})
	}
	if skipped > 0 {
		m.log.Debug("real-time entities without known trip", zap.Int("skipped", skipped))
	}
	return keys
}
