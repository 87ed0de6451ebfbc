package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/rtc-agency-parser/agency"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/gtfsrt"
)

type responseBuilder struct{}

// NewResponseBuilder creates a new builder for serializing transformed feeds
func NewResponseBuilder() *responseBuilder {
	return &responseBuilder{}
}

// BuildJSON serializes a transformed feed to JSON
func (rb *responseBuilder) BuildJSON(out *agency.Output) ([]byte, error) {
	return json.Marshal(out)
}

// BuildVehicleKeysJSON serializes real-time vehicle keys to JSON
func (rb *responseBuilder) BuildVehicleKeysJSON(keys []gtfsrt.VehicleKey) ([]byte, error) {
	if keys == nil {
		keys = []gtfsrt.VehicleKey{}
	}
	return json.Marshal(keys)
}

// BuildErrorJSON wraps msg in an error document
func (rb *responseBuilder) BuildErrorJSON(msg string) []byte {
	var e struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	e.Error.Description = msg
	b, _ := json.Marshal(e)
	return b
}
