package agency

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/theoremus-urban-solutions/rtc-agency-parser/direction"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/gtfs"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/stopid"
)

func sampleFeed() *gtfs.Feed {
	return &gtfs.Feed{
		AgencyID: "RTC",
		AgencyTZ: "America/Montreal",
		Routes: []gtfs.RouteRecord{
			{RouteID: "1-800", ShortName: "800", Desc: "Beauport - Sainte-Foy", Type: 3},
			{RouteID: "1-11a", ShortName: "11a", LongName: "Charlesbourg (express)", Type: 3, Color: "ff0000"},
		},
		Trips: []gtfs.TripRecord{
			{TripID: "T1", RouteID: "1-800", Headsign: "Station Centrale (Nord)"},
			{TripID: "T2", RouteID: "1-11a", Headsign: "Laurier (Ouest)"},
		},
		Stops: []gtfs.StopRecord{
			{StopID: "1001", Code: "1001", Name: "Saint-Jean Blvd. (express)", Lat: 46.81, Lon: -71.21},
			{StopID: "STOP_2", Code: "2002", Name: "STATION DE LA CAPITALE"},
		},
	}
}

func TestTransformer_Route(t *testing.T) {
	tr := NewTransformer(RTC)

	r, err := tr.Route(gtfs.RouteRecord{RouteID: "1-11a", ShortName: "11a", LongName: "Charlesbourg (express)", Color: "ff0000"})
	require.NoError(t, err)
	assert.Equal(t, Route{ID: 10011, GTFSRouteID: "1-11a", ShortName: "11A", LongName: "Charlesbourg", Color: "FF0000"}, r)

	r, err = tr.Route(gtfs.RouteRecord{RouteID: "1-800", ShortName: "800", Desc: "Beauport - Sainte-Foy"})
	require.NoError(t, err)
	assert.Equal(t, "Beauport - Sainte-Foy", r.LongName)
	assert.Equal(t, RTC.Color, r.Color)

	_, err = tr.Route(gtfs.RouteRecord{RouteID: "X", ShortName: "Métrobus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "route X")
}

func TestTransformer_Trip(t *testing.T) {
	tr := NewTransformer(RTC)

	trip, err := tr.Trip(gtfs.TripRecord{TripID: "T1", RouteID: "1-800", Headsign: "Station Centrale (Nord)"})
	require.NoError(t, err)
	assert.Equal(t, "N-Station Centrale", trip.Headsign)
	assert.Equal(t, direction.North, trip.Direction)
	assert.Equal(t, 1, trip.DirectionID)

	_, err = tr.Trip(gtfs.TripRecord{TripID: "T9", Headsign: "Downtown Loop"})
	require.Error(t, err)
	assert.ErrorIs(t, err, direction.ErrUnclassified)
	assert.Contains(t, err.Error(), "trip T9")
}

func TestTransformer_Stop(t *testing.T) {
	tr := NewTransformer(RTC)

	s, err := tr.Stop(gtfs.StopRecord{StopID: "1001", Code: "1001", Name: "Saint-Jean Blvd. (express)", Lat: 46.81, Lon: -71.21})
	require.NoError(t, err)
	assert.Equal(t, Stop{ID: 1001, GTFSStopID: "1001", Code: "1001", Name: "Saint-Jean Boulevard", Lat: 46.81, Lon: -71.21}, s)

	_, err = tr.Stop(gtfs.StopRecord{StopID: "4521", Name: "Gare du Palais"})
	require.Error(t, err)
	assert.ErrorIs(t, err, stopid.ErrNonNumericCode)
}

func TestTransformer_Transform(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	tr := NewTransformer(RTC, WithLogger(zap.New(core)), WithWorkers(2))

	out, err := tr.Transform(context.Background(), sampleFeed())
	require.NoError(t, err)

	assert.Equal(t, Info{Name: "RTC", Color: "A3C614", RouteType: RouteTypeBus, Timezone: "America/Montreal"}, out.Agency)
	require.Len(t, out.Routes, 2)
	assert.Equal(t, 800, out.Routes[0].ID)
	assert.Equal(t, 10011, out.Routes[1].ID)

	require.Len(t, out.Trips, 2)
	assert.Equal(t, "N-Station Centrale", out.Trips[0].Headsign)
	assert.Equal(t, "800", out.Trips[0].RouteShortName)
	assert.Equal(t, "O-Laurier", out.Trips[1].Headsign)
	assert.Equal(t, "11A", out.Trips[1].RouteShortName)

	require.Len(t, out.Stops, 2)
	assert.Equal(t, "Saint-Jean Boulevard", out.Stops[0].Name)
	assert.Equal(t, 2002, out.Stops[1].ID)
	assert.Equal(t, "Station de la Capitale", out.Stops[1].Name)

	assert.Equal(t, 1, logs.FilterMessage("feed transformed").Len())
}

func TestTransformer_TransformAborts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *gtfs.Feed)
		target error
		msg    string
	}{
		{
			name:   "unclassified headsign",
			mutate: func(f *gtfs.Feed) { f.Trips[0].Headsign = "Station Centrale" },
			target: direction.ErrUnclassified,
			msg:    "trip T1",
		},
		{
			name:   "empty stop code",
			mutate: func(f *gtfs.Feed) { f.Stops[1].Code = "" },
			target: stopid.ErrNonNumericCode,
			msg:    "STOP_2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			tr := NewTransformer(RTC, WithLogger(zap.New(core)))

			feed := sampleFeed()
			tt.mutate(feed)
			out, err := tr.Transform(context.Background(), feed)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, tt.target))
			assert.Contains(t, err.Error(), tt.msg)
			assert.Equal(t, 1, logs.FilterMessage("feed transform aborted").Len())
		})
	}
}

func TestTransformer_TransformCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTransformer(RTC).Transform(ctx, sampleFeed())
	assert.ErrorIs(t, err, context.Canceled)
}
