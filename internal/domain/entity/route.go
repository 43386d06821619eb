// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"math"

	"saferoute/internal/errors"

	"github.com/paulmach/orb"
)

// ErrMalformedRoute reports a route whose steps reference geometry it does not have.
var ErrMalformedRoute = errors.New("malformed route")

// RoutePoint is a WGS84 coordinate in degrees.
type RoutePoint struct {
	Lat float64 `json:"lat"` // Latitude, valid in [-90, 90].
	Lng float64 `json:"lng"` // Longitude, valid in [-180, 180].
}

// Valid reports whether the point is finite and inside the coordinate ranges.
func (p RoutePoint) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}

	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Point converts to an orb point, which stores longitude first.
func (p RoutePoint) Point() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// PointFromOrb converts an orb point into a RoutePoint.
func PointFromOrb(p orb.Point) RoutePoint {
	return RoutePoint{Lat: p.Lat(), Lng: p.Lon()}
}

// RouteStep is one maneuver of a route, covering Geometry[StartIndex..EndIndex].
type RouteStep struct {
	Instruction string       `json:"instruction"` // Human-readable maneuver text, e.g. "Turn left onto Main St".
	Distance    float64      `json:"distance"`    // Length of the step in meters.
	Duration    float64      `json:"duration"`    // Expected travel time of the step in seconds.
	Type        ManeuverType `json:"type"`        // Maneuver category.
	StartIndex  int          `json:"start_index"` // First geometry index covered by the step.
	EndIndex    int          `json:"end_index"`   // Geometry index of the maneuver point.
}

// Route is an immutable candidate path between an origin and a destination.
type Route struct {
	Geometry []RoutePoint `json:"geometry"` // Ordered polyline of the path.
	Steps    []RouteStep  `json:"steps"`    // Ordered maneuvers along the polyline.
	Distance float64      `json:"distance"` // Total length in meters.
	Duration float64      `json:"duration"` // Total expected travel time in seconds.
}

// Validate checks that every step stays inside the geometry and that steps are contiguous.
func (r *Route) Validate() error {
	n := len(r.Geometry)
	for i, step := range r.Steps {
		if step.StartIndex < 0 || step.EndIndex >= n || step.StartIndex > step.EndIndex {
			return errors.Wrap(ErrMalformedRoute, fmt.Sprintf("step %d covers [%d, %d] of %d points", i, step.StartIndex, step.EndIndex, n))
		}
		if i > 0 && r.Steps[i-1].EndIndex != step.StartIndex {
			return errors.Wrap(ErrMalformedRoute, fmt.Sprintf("step %d does not start where step %d ends", i, i-1))
		}
	}

	return nil
}

// LineString returns the route geometry as an orb line string.
func (r *Route) LineString() orb.LineString {
	ls := make(orb.LineString, 0, len(r.Geometry))
	for _, p := range r.Geometry {
		ls = append(ls, p.Point())
	}

	return ls
}

// Bound returns the bounding box of the route geometry.
func (r *Route) Bound() orb.Bound {
	return r.LineString().Bound()
}
