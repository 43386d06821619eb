package entity

// ManeuverType categorizes a step using the OpenRouteService instruction codes.
type ManeuverType int

const (
	ManeuverLeft ManeuverType = iota
	ManeuverRight
	ManeuverSharpLeft
	ManeuverSharpRight
	ManeuverSlightLeft
	ManeuverSlightRight
	ManeuverStraight
	ManeuverEnterRoundabout
	ManeuverExitRoundabout
	ManeuverUTurn
	ManeuverGoal
	ManeuverDepart
	ManeuverKeepLeft
	ManeuverKeepRight
)

var maneuverNames = map[ManeuverType]string{
	ManeuverLeft:            "left",
	ManeuverRight:           "right",
	ManeuverSharpLeft:       "sharp_left",
	ManeuverSharpRight:      "sharp_right",
	ManeuverSlightLeft:      "slight_left",
	ManeuverSlightRight:     "slight_right",
	ManeuverStraight:        "straight",
	ManeuverEnterRoundabout: "enter_roundabout",
	ManeuverExitRoundabout:  "exit_roundabout",
	ManeuverUTurn:           "u_turn",
	ManeuverGoal:            "goal",
	ManeuverDepart:          "depart",
	ManeuverKeepLeft:        "keep_left",
	ManeuverKeepRight:       "keep_right",
}

// String returns the maneuver name, falling back to "straight" for unknown codes.
func (m ManeuverType) String() string {
	if name, ok := maneuverNames[m]; ok {
		return name
	}

	return maneuverNames[ManeuverStraight]
}

// Known reports whether m is one of the defined codes.
func (m ManeuverType) Known() bool {
	_, ok := maneuverNames[m]

	return ok
}
