package agency

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/rtc-agency-parser/cleaner"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/direction"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/gtfs"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/internal/logging"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/stopid"
)

// Transformer runs feed records through the cleaner, the direction classifier
// and the stop identity resolver of one agency profile.
// It holds no per-record state and is safe for concurrent use.
type Transformer struct {
	profile    Profile
	cleaner    *cleaner.Cleaner
	classifier *direction.Classifier
	log        *zap.Logger
	workers    int
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(t *Transformer) { t.log = logging.OrNop(l) }
}

// WithWorkers bounds the goroutines used by Transform. n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(t *Transformer) {
		if n > 0 {
			t.workers = n
		}
	}
}

// NewTransformer returns a transformer for p.
func NewTransformer(p Profile, opts ...Option) *Transformer {
	t := &Transformer{
		profile:    p,
		cleaner:    cleaner.New(p.Locale),
		classifier: direction.NewClassifier(p.Directions),
		log:        zap.NewNop(),
		workers:    runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Route cleans a route. The route ID is derived from the short name.
func (t *Transformer) Route(r gtfs.RouteRecord) (Route, error) {
	short := t.cleaner.ShortName(r.ShortName)
	id, err := RouteIDFromShortName(short)
	if err != nil {
		return Route{}, fmt.Errorf("route %s: %w", r.RouteID, err)
	}
	color := strings.ToUpper(r.Color)
	if color == "" {
		color = t.profile.Color
	}
	return Route{
		ID:          id,
		GTFSRouteID: r.RouteID,
		ShortName:   short,
		LongName:    t.cleaner.Clean(r.LongNameOrDesc(), cleaner.KindRoute),
		Color:       color,
	}, nil
}

// Trip classifies the trip headsign. A headsign without direction marker is fatal.
func (t *Transformer) Trip(r gtfs.TripRecord) (Trip, error) {
	res, err := t.classifier.Classify(r.Headsign)
	if err != nil {
		return Trip{}, fmt.Errorf("trip %s: %w", r.TripID, err)
	}
	return Trip{
		TripID:      r.TripID,
		RouteID:     r.RouteID,
		Headsign:    res.Headsign,
		Direction:   res.Direction,
		DirectionID: int(res.Direction),
	}, nil
}

// Stop resolves the stop identity and cleans its name. A non-numeric stop code is fatal.
func (t *Transformer) Stop(r gtfs.StopRecord) (Stop, error) {
	ident, err := stopid.Resolve(r.Code, r.StopID)
	if err != nil {
		return Stop{}, err
	}
	return Stop{
		ID:         ident.ID,
		GTFSStopID: r.StopID,
		Code:       ident.Code,
		Name:       t.cleaner.Clean(r.Name, cleaner.KindStopName),
		Lat:        r.Lat,
		Lon:        r.Lon,
	}, nil
}

// Transform runs every record of feed through the engine. Records are
// independent and processed concurrently; the first fatal error cancels the
// run and is returned with the offending record.
func (t *Transformer) Transform(ctx context.Context, feed *gtfs.Feed) (*Output, error) {
	out := &Output{
		Agency: Info{
			Name:      t.profile.Name,
			Color:     t.profile.Color,
			RouteType: t.profile.RouteType,
			Timezone:  feed.AgencyTZ,
		},
		Routes: make([]Route, len(feed.Routes)),
		Trips:  make([]Trip, len(feed.Trips)),
		Stops:  make([]Stop, len(feed.Stops)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)
	// each goroutine writes its own slot, no locking needed
	for i := range feed.Routes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := t.Route(feed.Routes[i])
			out.Routes[i] = r
			return err
		})
	}
	for i := range feed.Trips {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tr, err := t.Trip(feed.Trips[i])
			out.Trips[i] = tr
			return err
		})
	}
	for i := range feed.Stops {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := t.Stop(feed.Stops[i])
			out.Stops[i] = s
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.log.Error("feed transform aborted", zap.String("agency", t.profile.Name), zap.Error(err))
		return nil, err
	}

	idx := gtfs.NewIndex(feed)
	for i := range out.Trips {
		out.Trips[i].RouteShortName = t.cleaner.ShortName(idx.GetRouteShortName(out.Trips[i].RouteID))
	}

	t.log.Info("feed transformed",
		zap.String("agency", t.profile.Name),
		zap.Int("routes", len(out.Routes)),
		zap.Int("trips", len(out.Trips)),
		zap.Int("stops", len(out.Stops)),
	)
	return out, nil
}
