// Package server exposes a transformed feed and its real-time vehicle keys over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/rtc-agency-parser/agency"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/cleaner"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/formatter"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/gtfsrt"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// Server serves a transformed feed. The feed is fixed for the lifetime of
// the server; vehicle positions are fetched on every request.
type Server struct {
	out     *agency.Output
	matcher *gtfsrt.Matcher
	client  *gtfsrt.Client
	vpURL   string
	log     *zap.Logger

	shortNames *cleaner.Cleaner // normalizes the ?route= filter

	// header timestamp of the last vehicle positions feed served
	lastRealtime atomic.Int64
}

// New returns a server for out. vpURL may be empty, in which case the
// vehicle endpoints answer 503.
func New(out *agency.Output, client *gtfsrt.Client, vpURL string, log *zap.Logger) *Server {
	log = logging.OrNop(log)
	return &Server{
		out:     out,
		matcher: gtfsrt.NewMatcher(out, log),
		client:  client,
		vpURL:   vpURL,
		log:     log,

		shortNames: cleaner.New(nil),
	}
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/agency.json", s.handleAgency("json"))
	mux.HandleFunc("GET /api/agency.xml", s.handleAgency("xml"))
	mux.HandleFunc("GET /api/vehicles.json", s.handleVehicles("json"))
	mux.HandleFunc("GET /api/vehicles.xml", s.handleVehicles("xml"))
	return mux
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("server listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("server shut down")
	return nil
}

type healthResponse struct {
	Status                  string `json:"status"`
	Agency                  string `json:"agency"`
	Routes                  int    `json:"routes"`
	Trips                   int    `json:"trips"`
	Stops                   int    `json:"stops"`
	LatestGTFSRealtimeEpoch int64  `json:"latest_gtfsrt_epoch"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:                  "ok",
		Agency:                  s.out.Agency.Name,
		Routes:                  len(s.out.Routes),
		Trips:                   len(s.out.Trips),
		Stops:                   len(s.out.Stops),
		LatestGTFSRealtimeEpoch: s.lastRealtime.Load(),
	})
}

func (s *Server) handleAgency(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rb := formatter.NewResponseBuilder()
		if format == "xml" {
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write(rb.BuildXML(s.out))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		buf, err := rb.BuildJSON(s.out)
		if err != nil {
			s.writeError(w, format, http.StatusInternalServerError, err.Error())
			return
		}
		_, _ = w.Write(buf)
	}
}

func (s *Server) handleVehicles(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.vpURL == "" {
			s.writeError(w, format, http.StatusServiceUnavailable, "no vehicle positions feed configured")
			return
		}
		raw, err := s.client.Fetch(r.Context(), s.vpURL)
		if err != nil {
			s.log.Warn("vehicle positions fetch failed", zap.String("url", s.vpURL), zap.Error(err))
			s.writeError(w, format, http.StatusBadGateway, err.Error())
			return
		}
		fm, err := gtfsrt.ParseFeed(raw)
		if err != nil {
			s.log.Warn("vehicle positions decode failed", zap.Error(err))
			s.writeError(w, format, http.StatusBadGateway, err.Error())
			return
		}
		s.lastRealtime.Store(int64(fm.GetHeader().GetTimestamp()))

		keys := s.matcher.Annotate(fm)
		if route := r.URL.Query().Get("route"); route != "" {
			keys = filterByRoute(keys, s.shortNames.ShortName(route))
		}

		rb := formatter.NewResponseBuilder()
		if format == "xml" {
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write(rb.BuildVehicleKeysXML(keys))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		buf, err := rb.BuildVehicleKeysJSON(keys)
		if err != nil {
			s.writeError(w, format, http.StatusInternalServerError, err.Error())
			return
		}
		_, _ = w.Write(buf)
	}
}

// filterByRoute keeps the keys of one cleaned route short name.
func filterByRoute(keys []gtfsrt.VehicleKey, shortName string) []gtfsrt.VehicleKey {
	out := keys[:0]
	for _, k := range keys {
		if k.RouteShortName == shortName {
			out = append(out, k)
		}
	}
	return out
}

func (s *Server) writeError(w http.ResponseWriter, format string, status int, msg string) {
	rb := formatter.NewResponseBuilder()
	if format == "xml" {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		_, _ = w.Write(rb.BuildErrorXML(msg))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(rb.BuildErrorJSON(msg))
}
