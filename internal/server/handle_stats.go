package server

import (
	"net/http"
	"strconv"

	"github.com/skylineguessr/api/internal/geo"
	"github.com/skylineguessr/api/internal/stats"
)

const defaultZoom = 2

// MarkerInfo is one visited city: its tally plus a ready-to-draw marker
// (Web-Mercator pixel position at the requested zoom, color by accuracy).
type MarkerInfo struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Correct int     `json:"correct"`
	Wrong   int     `json:"wrong"`
	Color   string  `json:"color"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

type StatsResponse struct {
	Zoom    int          `json:"zoom"`
	Markers []MarkerInfo `json:"markers"`
}

func handleStats(tallies *stats.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zoom := defaultZoom
		if z := r.URL.Query().Get("zoom"); z != "" {
			n, err := strconv.Atoi(z)
			if err != nil || n < 0 || n > 20 {
				writeError(w, http.StatusBadRequest, "zoom must be an integer between 0 and 20")
				return
			}
			zoom = n
		}

		snapshot := tallies.Snapshot()
		markers := make([]MarkerInfo, 0, len(snapshot))
		for _, st := range snapshot {
			x, y := geo.LatLngToPixels(st.Lat, st.Lng, zoom)
			markers = append(markers, MarkerInfo{
				City:    st.City,
				Country: st.Country,
				Lat:     st.Lat,
				Lng:     st.Lng,
				Correct: st.Correct,
				Wrong:   st.Wrong,
				Color:   markerColor(st.Correct, st.Wrong),
				X:       x,
				Y:       y,
			})
		}

		writeJSON(w, http.StatusOK, StatsResponse{Zoom: zoom, Markers: markers})
	}
}

func markerColor(correct, wrong int) string {
	switch {
	case wrong == 0:
		return "green"
	case correct == 0:
		return "red"
	default:
		return "amber"
	}
}
