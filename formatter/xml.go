package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/rtc-agency-parser/agency"
	"github.com/theoremus-urban-solutions/rtc-agency-parser/gtfsrt"
)

// BuildXML serializes a transformed feed to XML
func (rb *responseBuilder) BuildXML(out *agency.Output) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("<AgencyFeed>")
	writeAgencyXML(&b, out.Agency)
	b.WriteString("<Routes>")
	for _, r := range out.Routes {
		writeRouteXML(&b, r)
	}
	b.WriteString("</Routes>")
	b.WriteString("<Trips>")
	for _, t := range out.Trips {
		writeTripXML(&b, t)
	}
	b.WriteString("</Trips>")
	b.WriteString("<Stops>")
	for _, s := range out.Stops {
		writeStopXML(&b, s)
	}
	b.WriteString("</Stops>")
	b.WriteString("</AgencyFeed>")
	return []byte(b.String())
}

// BuildVehicleKeysXML serializes real-time vehicle keys to XML
func (rb *responseBuilder) BuildVehicleKeysXML(keys []gtfsrt.VehicleKey) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("<VehicleKeys>")
	for _, k := range keys {
		b.WriteString("<VehicleKey>")
		writeElement(&b, "EntityId", k.EntityID)
		writeElement(&b, "VehicleId", k.VehicleID)
		writeElement(&b, "TripId", k.TripID)
		writeElement(&b, "RouteShortName", k.RouteShortName)
		writeElement(&b, "Direction", k.Direction.Letter())
		writeElement(&b, "Headsign", k.Headsign)
		writeElement(&b, "StopCode", k.StopCode)
		b.WriteString("</VehicleKey>")
	}
	b.WriteString("</VehicleKeys>")
	return []byte(b.String())
}

func writeAgencyXML(b *strings.Builder, a agency.Info) {
	b.WriteString("<Agency>")
	writeElement(b, "Name", a.Name)
	writeElement(b, "Color", a.Color)
	writeElement(b, "RouteType", strconv.Itoa(a.RouteType))
	writeElement(b, "Timezone", a.Timezone)
	b.WriteString("</Agency>")
}

func writeRouteXML(b *strings.Builder, r agency.Route) {
	b.WriteString("<Route>")
	writeElement(b, "Id", strconv.Itoa(r.ID))
	writeElement(b, "GtfsRouteId", r.GTFSRouteID)
	writeElement(b, "ShortName", r.ShortName)
	writeElement(b, "LongName", r.LongName)
	writeElement(b, "Color", r.Color)
	b.WriteString("</Route>")
}

func writeTripXML(b *strings.Builder, t agency.Trip) {
	b.WriteString("<Trip>")
	writeElement(b, "TripId", t.TripID)
	writeElement(b, "RouteId", t.RouteID)
	writeElement(b, "RouteShortName", t.RouteShortName)
	writeElement(b, "Headsign", t.Headsign)
	writeElement(b, "Direction", t.Direction.Letter())
	writeElement(b, "DirectionId", strconv.Itoa(t.DirectionID))
	b.WriteString("</Trip>")
}

func writeStopXML(b *strings.Builder, s agency.Stop) {
	b.WriteString("<Stop>")
	writeElement(b, "Id", strconv.Itoa(s.ID))
	writeElement(b, "GtfsStopId", s.GTFSStopID)
	writeElement(b, "Code", s.Code)
	writeElement(b, "Name", s.Name)
	writeElement(b, "Lat", strconv.FormatFloat(s.Lat, 'f', -1, 64))
	writeElement(b, "Lon", strconv.FormatFloat(s.Lon, 'f', -1, 64))
	b.WriteString("</Stop>")
}

// writeElement skips empty values
func writeElement(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}

// BuildErrorXML wraps msg in an error document
func (rb *responseBuilder) BuildErrorXML(msg string) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("<Error>")
	writeElement(&b, "Description", msg)
	b.WriteString("</Error>")
	return []byte(b.String())
}
