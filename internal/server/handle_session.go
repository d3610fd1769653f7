package server

import (
	"net/http"
	"strings"
)

type CreateSessionRequest struct {
	PlayerName string `json:"playerName"`
}

type SessionResponse struct {
	Token  string `json:"token"`
	Screen string `json:"screen"`
	Score  int    `json:"score"`
	Streak int    `json:"streak"`
}

func handleCreateSession(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSessionRequest
		// The body is optional; anonymous sessions are fine.
		readJSON(r, &req)

		doc, err := store.CreateSession(r.Context(), strings.TrimSpace(req.PlayerName))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, SessionResponse{
			Token:  doc.Token,
			Screen: doc.Screen,
			Score:  doc.Score,
			Streak: doc.Streak,
		})
	}
}
