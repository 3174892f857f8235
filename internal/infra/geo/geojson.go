// Package geo renders track traces as GeoJSON.
package geo

import (
	"time"

	"tracker/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// LengthMeters is the haversine length of the trace in meters.
func LengthMeters(points []entity.Point) float64 {
	var length float64
	for i := 1; i < len(points); i++ {
		length += orbgeo.DistanceHaversine(toOrbPoint(points[i-1]), toOrbPoint(points[i]))
	}

	return length
}

// TrackFeatureCollection builds a collection with a single feature for the track.
// Two or more points form a LineString, a single point stays a Point, and an
// empty trace has a null geometry.
func TrackFeatureCollection(track *entity.Track, points []entity.Point) *geojson.FeatureCollection {
	var geometry orb.Geometry
	switch len(points) {
	case 0:
	case 1:
		geometry = toOrbPoint(points[0])
	default:
		line := make(orb.LineString, 0, len(points))
		for _, p := range points {
			line = append(line, toOrbPoint(p))
		}
		geometry = line
	}

	feature := geojson.NewFeature(geometry)
	feature.ID = track.ID.String()
	feature.Properties["label"] = track.Label
	feature.Properties["points_number"] = len(points)
	feature.Properties["length_m"] = LengthMeters(points)
	feature.Properties["processed"] = track.Processed
	feature.Properties["ended"] = track.Ended
	if len(points) > 0 {
		feature.Properties["start_date"] = points[0].Date.UTC().Format(time.RFC3339Nano)
		feature.Properties["stop_date"] = points[len(points)-1].Date.UTC().Format(time.RFC3339Nano)
	}

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)

	return fc
}

// GeoJSON uses [longitude, latitude] order.
func toOrbPoint(p entity.Point) orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}
