package arcbar

// Angles are expressed in degrees, counter-clockwise from 3 o'clock,
// so 90° points at 12 o'clock.
const (
	circularStart = 90.0
	archStart     = 180.0
	archSweep     = 180.0

	// degrees per percent within a quarter turn: 90 / 25
	quarterFactor = 90.0 / 25.0
)

// circularAngle maps a percentage onto the end angle of a clockwise arc
// starting at 12 o'clock. Each quarter is mapped separately so the value
// stays within the (-270, 90] range the arc primitive expects.
func circularAngle(pct float64) float64 {
	switch {
	case pct > 75:
		return -180 - (pct-75)*quarterFactor
	case pct > 50:
		return -90 - (pct-50)*quarterFactor
	case pct > 25:
		return 0 - (pct-25)*quarterFactor
	default:
		return 90 - pct*quarterFactor
	}
}

// archAngle returns the end angle of the progress arc on an arch.
// The arc shares the start and direction of the background so it is
// always a sub-arc of it.
func archAngle(pct float64) float64 {
	return archStart - archSweep*pct/100
}
