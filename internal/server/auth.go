package server

import (
	"errors"
	"net/http"
	"strings"
)

var errNoSession = errors.New("no valid session")

func sessionFromRequest(r *http.Request, store Store) (sessionDoc, error) {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return sessionDoc{}, errNoSession
	}
	doc, err := store.SessionFromToken(r.Context(), token)
	if errors.Is(err, ErrNotFound) {
		return sessionDoc{}, errNoSession
	}
	return doc, err
}
