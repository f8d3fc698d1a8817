// Package coord converts Japanese plane rectangular coordinates to geodetic
// latitude/longitude on the GRS80 ellipsoid.
package coord

import "math"

// PlaneRectangular is a Gauss-Krüger plane rectangular coordinate system
// (GRS80, m0 = 0.9999) identified by the geodetic position of its origin.
// The zero value is a system with its origin at (0°, 0°).
type PlaneRectangular struct {
	OriginLat float64 // φ0, degrees
	OriginLon float64 // λ0, degrees
}

// ToGeodetic converts a plane coordinate to latitude/longitude (degrees).
// x is the northing and y the easting, both in meters from the origin.
func (p PlaneRectangular) ToGeodetic(x, y float64) (lat, lon float64) {
	return PlaneToLatLon(x, y, p.OriginLat, p.OriginLon)
}

// PlaneToLatLon converts the plane coordinate (x, y) in meters, measured from
// the origin (originLat, originLon) in degrees, to geodetic latitude and
// longitude in degrees.
//
// Inputs are not validated. Points far outside any usable zone can produce
// NaN latitude; the function never panics.
func PlaneToLatLon(x, y, originLat, originLon float64) (lat, lon float64) {
	phi0 := toRadians(originLat)
	lambda0 := toRadians(originLon)

	n := thirdFlattening()
	A := meridianCoefficients(n)
	beta := inverseCoefficients(n)
	delta := latitudeCoefficients(n)

	// Scale of the conformal domain and meridian arc length to the origin.
	k := centralScale * semiMajorAxis / (1.0 + n)
	scale := k * A[0]
	arc := A[0] * phi0
	for j := 1; j <= 5; j++ {
		arc += A[j] * math.Sin(2*float64(j)*phi0)
	}
	arc *= k

	xi := (x + arc) / scale
	eta := y / scale

	// Fixed five-term correction, evaluated at the uncorrected (xi, eta).
	xi2, eta2 := xi, eta
	for j := 1; j <= 5; j++ {
		f := 2 * float64(j)
		xi2 -= beta[j] * math.Sin(f*xi) * math.Cosh(f*eta)
		eta2 -= beta[j] * math.Cos(f*xi) * math.Sinh(f*eta)
	}

	chi := math.Asin(math.Sin(xi2) / math.Cosh(eta2))
	phi := chi
	for j := 1; j <= 6; j++ {
		phi += delta[j] * math.Sin(2*float64(j)*chi)
	}

	lambda := lambda0 + math.Atan(math.Sinh(eta2)/math.Cos(xi2))

	return toDegrees(phi), toDegrees(lambda)
}
