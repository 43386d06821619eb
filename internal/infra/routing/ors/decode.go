package ors

import (
	"encoding/json"
	"io"

	"saferoute/internal/domain/entity"
	"saferoute/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DecodeRoutes parses an ORS GeoJSON directions response. Alternatives whose
// steps reference geometry they do not have are skipped and counted in dropped.
func DecodeRoutes(r io.Reader) (routes []entity.Route, dropped int, err error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, errors.Wrap(err, "read directions response")
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "decode directions response")
	}

	routes = make([]entity.Route, 0, len(fc.Features))
	for _, feature := range fc.Features {
		route, err := decodeFeature(feature)
		if err != nil {
			dropped++

			continue
		}
		routes = append(routes, route)
	}

	if len(routes) == 0 && dropped > 0 {
		return nil, dropped, errors.Wrapf(entity.ErrMalformedRoute, "all %d alternatives are malformed", dropped)
	}

	return routes, dropped, nil
}

func decodeFeature(feature *geojson.Feature) (entity.Route, error) {
	line, ok := feature.Geometry.(orb.LineString)
	if !ok {
		return entity.Route{}, errors.Wrapf(entity.ErrMalformedRoute, "unexpected geometry %T", feature.Geometry)
	}

	// Properties arrive as a generic map; round-trip them into typed structs.
	raw, err := json.Marshal(feature.Properties)
	if err != nil {
		return entity.Route{}, errors.WithStack(err)
	}
	var props routeProperties
	if err := json.Unmarshal(raw, &props); err != nil {
		return entity.Route{}, errors.Wrap(err, "decode route properties")
	}

	route := entity.Route{
		Geometry: make([]entity.RoutePoint, 0, len(line)),
		Distance: props.Summary.Distance,
		Duration: props.Summary.Duration,
	}
	for _, p := range line {
		route.Geometry = append(route.Geometry, entity.PointFromOrb(p))
	}

	var stepDistance, stepDuration float64
	for _, segment := range props.Segments {
		for _, step := range segment.Steps {
			if len(step.WayPoints) != 2 {
				return entity.Route{}, errors.Wrapf(entity.ErrMalformedRoute, "step has %d way points", len(step.WayPoints))
			}
			route.Steps = append(route.Steps, entity.RouteStep{
				Instruction: step.Instruction,
				Distance:    step.Distance,
				Duration:    step.Duration,
				Type:        entity.ManeuverType(step.Type),
				StartIndex:  step.WayPoints[0],
				EndIndex:    step.WayPoints[1],
			})
			stepDistance += step.Distance
			stepDuration += step.Duration
		}
	}

	// ORS omits zero-valued summary fields
	if route.Distance == 0 {
		route.Distance = stepDistance
	}
	if route.Duration == 0 {
		route.Duration = stepDuration
	}

	if err := route.Validate(); err != nil {
		return entity.Route{}, err
	}

	return route, nil
}
