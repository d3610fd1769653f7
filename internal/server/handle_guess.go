package server

import (
	"net/http"
	"strings"

	"github.com/skylineguessr/api/internal/stats"
	"github.com/skylineguessr/api/internal/trivia"
)

type GuessRequest struct {
	Answer string `json:"answer"`
}

type GuessResponse struct {
	IsCorrect     bool    `json:"isCorrect"`
	CorrectAnswer string  `json:"correctAnswer"`
	FunFact       string  `json:"funFact"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Score         int     `json:"score"`
	Streak        int     `json:"streak"`
}

func handleGuess(store Store, tallies *stats.Store, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := sessionFromRequest(r, store)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}

		var req GuessRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Answer) == "" {
			writeError(w, http.StatusBadRequest, "answer is required")
			return
		}

		q := doc.Question
		if q == nil || q.Answered {
			writeError(w, http.StatusConflict, "no question awaiting a guess")
			return
		}

		isCorrect := trivia.IsCorrect(req.Answer, q.CityName)
		doc.Score, doc.Streak = trivia.ScoreGuess(doc.Score, doc.Streak, isCorrect)
		q.Answered = true
		doc.Screen = string(trivia.ScreenResult)

		if err := store.SaveSession(r.Context(), doc); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		stat, err := tallies.Record(r.Context(), q.CityName, q.Country, q.Lat, q.Lng, isCorrect)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		broker.Publish(topicStats, SSEEvent{Type: "stats_updated", Stat: &stat})

		writeJSON(w, http.StatusOK, GuessResponse{
			IsCorrect:     isCorrect,
			CorrectAnswer: q.CityName,
			FunFact:       q.FunFact,
			Lat:           q.Lat,
			Lng:           q.Lng,
			Score:         doc.Score,
			Streak:        doc.Streak,
		})
	}
}
