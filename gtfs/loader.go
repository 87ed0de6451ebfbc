package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/rtc-agency-parser/config"
)

var validate = validator.New()

var httpClient = &http.Client{Timeout: 2 * time.Minute}

// NewFeedFromConfig loads the feed at cfg.StaticURL, which may be an http(s) URL or a local zip path.
func NewFeedFromConfig(cfg config.GTFSConfig) (*Feed, error) {
	if cfg.StaticURL == "" {
		return nil, fmt.Errorf("gtfs: no staticURL configured")
	}
	if strings.HasPrefix(cfg.StaticURL, "http://") || strings.HasPrefix(cfg.StaticURL, "https://") {
		data, err := fetchZip(cfg.StaticURL)
		if err != nil {
			return nil, err
		}
		return NewFeedFromBytes(data, cfg.AgencyID)
	}
	return loadFromLocalZip(cfg.StaticURL, cfg.AgencyID)
}

// NewFeedFromBytes parses a GTFS zip held in memory.
func NewFeedFromBytes(data []byte, agencyID string) (*Feed, error) {
	return NewFeedFromReader(bytes.NewReader(data), int64(len(data)), agencyID)
}

// NewFeedFromReader parses a GTFS zip of the given size.
func NewFeedFromReader(r io.ReaderAt, size int64, agencyID string) (*Feed, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("gtfs: open zip: %w", err)
	}
	return consumeZip(zr.File, agencyID)
}

func fetchZip(url string) ([]byte, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("gtfs: fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gtfs: HTTP %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

func loadFromLocalZip(path, agencyID string) (*Feed, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("gtfs: %w", err)
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("gtfs: open %s: %w", path, err)
	}
	defer zr.Close()
	return consumeZip(zr.File, agencyID)
}

func consumeZip(files []*zip.File, agencyID string) (*Feed, error) {
	f := &Feed{AgencyID: agencyID}
	for _, zf := range files {
		switch strings.ToLower(zf.Name) {
		case "agency.txt", "routes.txt", "trips.txt", "stops.txt":
			if err := f.consumeCSV(zf); err != nil {
				return nil, fmt.Errorf("gtfs: %s: %w", zf.Name, err)
			}
		}
	}
	return f, nil
}

func (f *Feed) consumeCSV(zf *zip.File) error {
	r, err := zf.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.LazyQuotes = true
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	// rows may be shorter than the header; missing cells read as empty
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	switch strings.ToLower(zf.Name) {
	case "agency.txt":
		agID := idx("agency_id")
		agName := idx("agency_name")
		agTZ := idx("agency_timezone")
		if len(rec) > 1 {
			if f.AgencyID == "" {
				f.AgencyID = cell(rec[1], agID)
			}
			f.AgencyName = cell(rec[1], agName)
			f.AgencyTZ = cell(rec[1], agTZ)
		}
	case "routes.txt":
		rID, rAg, rSN, rLN := idx("route_id"), idx("agency_id"), idx("route_short_name"), idx("route_long_name")
		rDesc, rType, rColor := idx("route_desc"), idx("route_type"), idx("route_color")
		for n, row := range rec[1:] {
			route := RouteRecord{
				RouteID:   cell(row, rID),
				AgencyID:  cell(row, rAg),
				ShortName: cell(row, rSN),
				LongName:  cell(row, rLN),
				Desc:      cell(row, rDesc),
				Color:     cell(row, rColor),
			}
			if v := cell(row, rType); v != "" {
				t, err := strconv.Atoi(v)
				if err != nil {
					return fmt.Errorf("row %d: route_type %q: %w", n+2, v, err)
				}
				route.Type = t
			}
			if err := validate.Struct(route); err != nil {
				return fmt.Errorf("row %d: %w", n+2, err)
			}
			f.Routes = append(f.Routes, route)
		}
	case "trips.txt":
		rID, tID, sID := idx("route_id"), idx("trip_id"), idx("service_id")
		hs, dir, sh := idx("trip_headsign"), idx("direction_id"), idx("shape_id")
		for n, row := range rec[1:] {
			trip := TripRecord{
				TripID:      cell(row, tID),
				RouteID:     cell(row, rID),
				ServiceID:   cell(row, sID),
				Headsign:    cell(row, hs),
				DirectionID: cell(row, dir),
				ShapeID:     cell(row, sh),
			}
			if err := validate.Struct(trip); err != nil {
				return fmt.Errorf("row %d: %w", n+2, err)
			}
			f.Trips = append(f.Trips, trip)
		}
	case "stops.txt":
		sID, sCode, sN := idx("stop_id"), idx("stop_code"), idx("stop_name")
		sLat, sLon := idx("stop_lat"), idx("stop_lon")
		for n, row := range rec[1:] {
			stop := StopRecord{
				StopID: cell(row, sID),
				Code:   cell(row, sCode),
				Name:   cell(row, sN),
			}
			stop.Lat, _ = strconv.ParseFloat(cell(row, sLat), 64)
			stop.Lon, _ = strconv.ParseFloat(cell(row, sLon), 64)
			if err := validate.Struct(stop); err != nil {
				return fmt.Errorf("row %d: %w", n+2, err)
			}
			f.Stops = append(f.Stops, stop)
		}
	}
	return nil
}
