package service

import (
	"context"

	"saferoute/internal/domain/entity"
)

// RouteProvider computes candidate routes between two points
type RouteProvider interface {
	// Directions returns up to the configured number of alternatives, best first
	Directions(ctx context.Context, from, to entity.RoutePoint) ([]entity.Route, error)
}
