package coord

import "math"

// Krüger series coefficients for the Gauss-Krüger projection, truncated at
// the published order. All three sequences depend only on the third
// flattening n.
//
// Reference: Kawase, K. (2011), "A General Formula for Calculating Meridian
// Arc Length and its Application to Coordinate Conversion in the
// Gauss-Krüger Projection", Bulletin of the GSI, Vol. 59.

// meridianCoefficients returns A[0..5], used for the meridian arc length and
// the projection's linear scale.
func meridianCoefficients(n float64) [6]float64 {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n

	return [6]float64{
		1 + n2/4.0 + n4/64.0,
		-(3.0 / 2.0) * (n - n3/8.0 - n5/64.0),
		(15.0 / 16.0) * (n2 - n4/4.0),
		-(35.0 / 48.0) * (n3 - (5.0/16.0)*n5),
		(315.0 / 512.0) * n4,
		-(693.0 / 1280.0) * n5,
	}
}

// inverseCoefficients returns β[1..5] for the plane-to-conformal correction.
// Index 0 is unused and holds NaN so that an accidental read poisons the result.
func inverseCoefficients(n float64) [6]float64 {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n

	return [6]float64{
		math.NaN(),
		(1.0/2.0)*n - (2.0/3.0)*n2 + (37.0/96.0)*n3 - (1.0/360.0)*n4 - (81.0/512.0)*n5,
		(1.0/48.0)*n2 + (1.0/15.0)*n3 - (437.0/1440.0)*n4 + (46.0/105.0)*n5,
		(17.0/480.0)*n3 - (37.0/840.0)*n4 - (209.0/4480.0)*n5,
		(4397.0/161280.0)*n4 - (11.0/504.0)*n5,
		(4583.0 / 161280.0) * n5,
	}
}

// latitudeCoefficients returns δ[1..6] for conformal-to-geodetic latitude.
// Index 0 is unused and holds NaN.
func latitudeCoefficients(n float64) [7]float64 {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n
	n6 := n5 * n

	return [7]float64{
		math.NaN(),
		2.0*n - (2.0/3.0)*n2 - 2.0*n3 + (116.0/45.0)*n4 + (26.0/45.0)*n5 - (2854.0/675.0)*n6,
		(7.0/3.0)*n2 - (8.0/5.0)*n3 - (227.0/45.0)*n4 + (2704.0/315.0)*n5 + (2323.0/945.0)*n6,
		(56.0/15.0)*n3 - (136.0/35.0)*n4 - (1262.0/105.0)*n5 + (73814.0/2835.0)*n6,
		(4279.0/630.0)*n4 - (332.0/35.0)*n5 - (399572.0/14175.0)*n6,
		(4174.0/315.0)*n5 - (144838.0/6237.0)*n6,
		(601676.0 / 22275.0) * n6,
	}
}
