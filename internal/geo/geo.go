// Package geo provides great-circle bearing, distance, and destination
// calculations on a spherical earth model. All three use the same sphere
// so projected positions and remaining distances stay consistent.
package geo

import "math"

// earthRadiusMiles is the mean earth radius used by the spherical model.
const earthRadiusMiles = 3958.7613

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Distance returns the great-circle distance between two coordinates in
// miles (haversine formula).
func Distance(a, b Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Bearing returns the initial forward azimuth from one coordinate to
// another, in degrees clockwise from true north, normalized to [0, 360).
func Bearing(from, to Coordinate) float64 {
	lat1 := radians(from.Lat)
	lat2 := radians(to.Lat)
	dLon := radians(to.Lon - from.Lon)

	x := math.Sin(dLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Mod(degrees(math.Atan2(x, y))+360, 360)
}

// Project returns the destination coordinate reached by traveling the
// given distance in miles along the given bearing from origin.
func Project(origin Coordinate, bearing, miles float64) Coordinate {
	lat1 := radians(origin.Lat)
	lon1 := radians(origin.Lon)
	brng := radians(bearing)
	d := miles / earthRadiusMiles // angular distance

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) +
		math.Cos(lat1)*math.Sin(d)*math.Cos(brng))
	lon2 := lon1 + math.Atan2(
		math.Sin(brng)*math.Sin(d)*math.Cos(lat1),
		math.Cos(d)-math.Sin(lat1)*math.Sin(lat2),
	)

	// Normalize longitude to [-180, 180).
	lon := math.Mod(degrees(lon2)+540, 360) - 180
	return Coordinate{Lat: degrees(lat2), Lon: lon}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
