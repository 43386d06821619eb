package ors

// directionsRequest is the ORS directions request body.
type directionsRequest struct {
	Coordinates       [][2]float64           `json:"coordinates"`
	AlternativeRoutes *alternativeRoutesOpts `json:"alternative_routes,omitempty"`
	Instructions      bool                   `json:"instructions"`
	Units             string                 `json:"units"`
	Language          string                 `json:"language,omitempty"`
}

// alternativeRoutesOpts configures alternative route generation.
type alternativeRoutesOpts struct {
	TargetCount  int     `json:"target_count"`
	ShareFactor  float64 `json:"share_factor"`
	WeightFactor float64 `json:"weight_factor"`
}

// routeProperties is the properties object of one GeoJSON route feature.
type routeProperties struct {
	Summary   routeSummary   `json:"summary"`
	Segments  []routeSegment `json:"segments"`
	WayPoints []int          `json:"way_points,omitempty"`
}

type routeSummary struct {
	Distance float64 `json:"distance"` // Distance in meters
	Duration float64 `json:"duration"` // Duration in seconds
}

type routeSegment struct {
	Distance float64     `json:"distance"`
	Duration float64     `json:"duration"`
	Steps    []routeStep `json:"steps"`
}

type routeStep struct {
	Distance    float64 `json:"distance"`
	Duration    float64 `json:"duration"`
	Type        int     `json:"type"`
	Instruction string  `json:"instruction"`
	Name        string  `json:"name"`
	WayPoints   []int   `json:"way_points"`
}

// errorResponse is the ORS error body.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ORS error codes for error mapping.
const (
	errorCodeRouteNotFound = 2009
	errorCodePointNotFound = 2010
)
