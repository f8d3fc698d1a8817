package coord

import "math"

// GRS80 ellipsoid and the scale factor on the central meridian shared by all
// Japanese plane rectangular coordinate systems.
const (
	semiMajorAxis     = 6378137.0     // a, meters
	inverseFlattening = 298.257222101 // F
	centralScale      = 0.9999        // m0
)

// thirdFlattening returns n = 1/(2F-1).
func thirdFlattening() float64 {
	return 1.0 / (2*inverseFlattening - 1)
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180.0 }

func toDegrees(rad float64) float64 { return rad * 180.0 / math.Pi }
