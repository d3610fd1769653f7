package server

import (
	"log/slog"
	"net/http"

	"github.com/skylineguessr/api/internal/trivia"
)

type QuestionRequest struct {
	RealPhoto bool `json:"realPhoto"`
}

type ImageCreditInfo struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// QuestionResponse is the public projection of a round: options shuffled,
// correct answer withheld until the guess.
type QuestionResponse struct {
	Round       int              `json:"round"`
	Options     []string         `json:"options"`
	ImageURL    string           `json:"imageUrl"`
	ImageCredit *ImageCreditInfo `json:"imageCredit,omitempty"`
}

func handleQuestion(logger *slog.Logger, store Store, gen QuestionGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := sessionFromRequest(r, store)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}

		var req QuestionRequest
		readJSON(r, &req)

		// The session shows "loading" while generation is in flight, so a
		// state poll from another tab sees the same screen the player does.
		doc.Screen = string(trivia.ScreenLoading)
		if err := store.SaveSession(r.Context(), doc); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		q, err := gen.Generate(r.Context(), doc.Seen, req.RealPhoto)
		if err != nil {
			logger.Error("question generation failed", "error", err, "session", doc.ID)
			doc.Screen = string(trivia.ScreenError)
			store.SaveSession(r.Context(), doc)
			writeError(w, http.StatusBadGateway, "could not generate a question, try again")
			return
		}

		doc.Question = roundFromQuestion(q)
		doc.Seen = append(doc.Seen, q.CityName)
		doc.Rounds++
		doc.Screen = string(trivia.ScreenPlaying)
		if err := store.SaveSession(r.Context(), doc); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := QuestionResponse{
			Round:    doc.Rounds,
			Options:  q.Options,
			ImageURL: q.ImageURL,
		}
		if q.ImageCredit != nil {
			resp.ImageCredit = &ImageCreditInfo{Name: q.ImageCredit.Name, Link: q.ImageCredit.Link}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
