package gtfs

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/theoremus-urban-solutions/rtc-agency-parser/config"
)

// SerializeFeed encodes a Feed with gob so the zip does not have to be
// parsed again on the next run.
func SerializeFeed(f *Feed) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeFeedToWriter(f, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeFeed decodes a Feed written by SerializeFeed.
func DeserializeFeed(data []byte) (*Feed, error) {
	return DeserializeFeedFromReader(bytes.NewReader(data))
}

// SerializeFeedToWriter writes f to w using gob encoding.
func SerializeFeedToWriter(f *Feed, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("gtfs: encode feed: %w", err)
	}
	return nil
}

// DeserializeFeedFromReader reads a Feed from r using gob encoding.
func DeserializeFeedFromReader(r io.Reader) (*Feed, error) {
	var f Feed
	if err := gob.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("gtfs: decode feed: %w", err)
	}
	return &f, nil
}

// SerializeFeedToFile writes f to path.
func SerializeFeedToFile(f *Feed, path string) error {
	data, err := SerializeFeed(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DeserializeFeedFromFile reads a Feed from path.
func DeserializeFeedFromFile(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gtfs: read cache file: %w", err)
	}
	return DeserializeFeed(data)
}

// LoadFeed returns the feed described by cfg. When cfg.CachePath is set, a
// readable cache file is used instead of the zip, and a freshly parsed feed
// is written back to it. The returned bool reports a cache hit.
//
// A corrupt cache is treated as a miss. Failing to write the cache is not an
// error for the caller, it only costs a re-parse next time.
func LoadFeed(cfg config.GTFSConfig) (*Feed, bool, error) {
	if cfg.CachePath != "" {
		if f, err := DeserializeFeedFromFile(cfg.CachePath); err == nil {
			return f, true, nil
		}
	}
	f, err := NewFeedFromConfig(cfg)
	if err != nil {
		return nil, false, err
	}
	if cfg.CachePath != "" {
		_ = SerializeFeedToFile(f, cfg.CachePath)
	}
	return f, false, nil
}
