// Package formatter serializes the transformed feed and real-time vehicle keys.
//
// This package is organized into:
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
//
// Both formats have an error document used by the HTTP server.
//
// Directions are written as their letter (N, S, E, O); trips also carry the
// numeric real-time API value in DirectionId.
package formatter
