package server

import "net/http"

type GameStateResponse struct {
	Screen          string            `json:"screen"`
	Score           int               `json:"score"`
	Streak          int               `json:"streak"`
	Rounds          int               `json:"rounds"`
	CurrentQuestion *QuestionResponse `json:"currentQuestion"`
}

func handleGameState(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := sessionFromRequest(r, store)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or missing session token")
			return
		}

		resp := GameStateResponse{
			Screen: doc.Screen,
			Score:  doc.Score,
			Streak: doc.Streak,
			Rounds: doc.Rounds,
		}

		// Re-expose the open round so a reloaded client can resume it.
		if q := doc.Question; q != nil && !q.Answered {
			resp.CurrentQuestion = &QuestionResponse{
				Round:    doc.Rounds,
				Options:  q.Options,
				ImageURL: q.ImageURL,
			}
			if q.ImageCredit != nil {
				resp.CurrentQuestion.ImageCredit = &ImageCreditInfo{Name: q.ImageCredit.Name, Link: q.ImageCredit.Link}
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
