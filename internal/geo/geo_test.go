package geo

import (
	"math"
	"testing"
)

func TestLatLngToPixelsOrigin(t *testing.T) {
	// (0, 0) sits at the center of the world map at every zoom.
	for zoom := 0; zoom <= 4; zoom++ {
		x, y := LatLngToPixels(0, 0, zoom)
		want := math.Pow(2, float64(zoom)) * 256 / 2
		if math.Abs(x-want) > 1e-6 || math.Abs(y-want) > 1e-6 {
			t.Errorf("zoom %d: got (%f, %f), want (%f, %f)", zoom, x, y, want, want)
		}
	}
}

func TestPixelRoundTrip(t *testing.T) {
	cities := []struct {
		name     string
		lat, lng float64
	}{
		{"Tokyo", 35.6762, 139.6503},
		{"Lima", -12.0464, -77.0428},
		{"Reykjavik", 64.1466, -21.9426},
	}
	for _, c := range cities {
		x, y := LatLngToPixels(c.lat, c.lng, 6)
		lat, lng := PixelsToLatLng(x, y, 6)
		if math.Abs(lat-c.lat) > 1e-9 || math.Abs(lng-c.lng) > 1e-9 {
			t.Errorf("%s: round trip gave (%f, %f), want (%f, %f)", c.name, lat, lng, c.lat, c.lng)
		}
	}
}

func TestDistance(t *testing.T) {
	// Paris to London is roughly 344 km.
	d := Distance(48.8566, 2.3522, 51.5074, -0.1278)
	if d < 330 || d > 360 {
		t.Errorf("Paris-London distance = %f km, want ~344", d)
	}

	if d := Distance(10, 20, 10, 20); d != 0 {
		t.Errorf("distance to self = %f, want 0", d)
	}
}
