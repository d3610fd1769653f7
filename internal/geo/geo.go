// Package geo converts between geographic and Web-Mercator pixel
// coordinates for placing city markers on a slippy tile map.
package geo

import "math"

const tileSize = 256

// LatLngToPixels converts latitude and longitude to pixel coordinates at a
// given zoom level.
func LatLngToPixels(lat, lng float64, zoom int) (float64, float64) {
	scale := math.Pow(2, float64(zoom))
	x := (lng + 180.0) / 360.0 * scale * float64(tileSize)

	latRad := lat * math.Pi / 180.0
	y := (1.0 - math.Log(math.Tan(latRad)+1.0/math.Cos(latRad))/math.Pi) / 2.0 * scale * float64(tileSize)

	return x, y
}

// PixelsToLatLng converts pixel coordinates at a given zoom level back to
// latitude and longitude.
func PixelsToLatLng(x, y float64, zoom int) (float64, float64) {
	scale := math.Pow(2, float64(zoom))
	lng := (x / (scale * float64(tileSize)) * 360.0) - 180.0

	n := math.Pi - 2.0*math.Pi*y/(scale*float64(tileSize))
	lat := 180.0 / math.Pi * math.Atan(0.5*(math.Exp(n)-math.Exp(-n)))

	return lat, lng
}

// Distance returns the great-circle distance between two points in km
// (Haversine formula).
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	const R = 6371 // Earth radius in km
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLng := (lng2 - lng1) * math.Pi / 180.0
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180.0)*math.Cos(lat2*math.Pi/180.0)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
