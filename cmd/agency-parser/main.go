package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/rtc-agency-parser/agency"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/config"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/formatter"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/gtfs"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/gtfsrt"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/internal/logging"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/internal/server"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	feedName := flag.String("feed", "", "feed name from config.feeds[]")
	gtfsPath := flag.String("gtfs", "", "GTFS static zip URL or path (overrides config)")
	cachePath := flag.String("cache", "", "gob cache file for the parsed GTFS feed (overrides config)")
	format := flag.String("format", "", "json|xml (overrides config)")
	realtime := flag.String("realtime", "", "GTFS-RT vehicle positions URL or path (overrides config); prints vehicle keys")
	workers := flag.Int("workers", -1, "transform goroutines, 0 = GOMAXPROCS (overrides config)")
	flag.Parse()

	if err := config.LoadAppConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Config

	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log, cfg, options{
		mode:     *mode,
		feed:     *feedName,
		gtfs:     *gtfsPath,
		cache:    *cachePath,
		format:   *format,
		realtime: *realtime,
		workers:  *workers,
	}); err != nil {
		log.Error("agency parser failed", zap.Error(err))
		os.Exit(1)
	}
}

type options struct {
	mode     string
	feed     string
	gtfs     string
	cache    string
	format   string
	realtime string
	workers  int
}

func run(ctx context.Context, log *zap.Logger, cfg config.AppConfig, opts options) error {
	gtfsCfg, rtCfg := cfg.SelectFeed(opts.feed)
	if opts.gtfs != "" {
		gtfsCfg.StaticURL = opts.gtfs
	}
	if opts.cache != "" {
		gtfsCfg.CachePath = opts.cache
	}
	format := cfg.Output.Format
	if opts.format != "" {
		format = opts.format
	}
	nWorkers := cfg.Output.Workers
	if opts.workers >= 0 {
		nWorkers = opts.workers
	}

	profile, err := agency.ProfileFromConfig(cfg.Agency)
	if err != nil {
		return err
	}

	start := time.Now()
	feed, cached, err := gtfs.LoadFeed(gtfsCfg)
	if err != nil {
		return err
	}
	log.Info("gtfs loaded",
		zap.String("source", gtfsCfg.StaticURL),
		zap.Bool("cached", cached),
		zap.Int("routes", len(feed.Routes)),
		zap.Int("trips", len(feed.Trips)),
		zap.Int("stops", len(feed.Stops)),
		zap.Duration("took", time.Since(start)),
	)

	tr := agency.NewTransformer(profile, agency.WithLogger(log), agency.WithWorkers(nWorkers))
	out, err := tr.Transform(ctx, feed)
	if err != nil {
		return err
	}

	vpURL := rtCfg.VehiclePositionsURL
	if opts.realtime != "" {
		vpURL = opts.realtime
	}
	client := gtfsrt.NewClient(time.Duration(rtCfg.TimeoutMS) * time.Millisecond)

	switch opts.mode {
	case "serve":
		srv := server.New(out, client, vpURL, log)
		return srv.ListenAndServe(ctx, fmt.Sprintf(":%d", cfg.Server.Port))
	case "oneshot", "":
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}

	rb := formatter.NewResponseBuilder()
	if vpURL == "" {
		return writeOutput(rb, out, format)
	}

	raw, err := client.Fetch(ctx, vpURL)
	if err != nil {
		return fmt.Errorf("vehicle positions: %w", err)
	}
	fm, err := gtfsrt.ParseFeed(raw)
	if err != nil {
		return err
	}
	keys := gtfsrt.NewMatcher(out, log).Annotate(fm)
	log.Info("vehicles matched", zap.Int("entities", len(fm.GetEntity())), zap.Int("matched", len(keys)))

	var buf []byte
	if format == "xml" {
		buf = rb.BuildVehicleKeysXML(keys)
	} else if buf, err = rb.BuildVehicleKeysJSON(keys); err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}

func writeOutput(rb interface {
	BuildJSON(*agency.Output) ([]byte, error)
	BuildXML(*agency.Output) []byte
}, out *agency.Output, format string) error {
	switch format {
	case "xml":
		fmt.Println(string(rb.BuildXML(out)))
	case "json", "":
		buf, err := rb.BuildJSON(out)
		if err != nil {
			return err
		}
		fmt.Println(string(buf))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
