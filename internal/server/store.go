package server

import (
	"context"
	"errors"

	"github.com/skylineguessr/api/internal/trivia"
)

var ErrNotFound = errors.New("not found")

// sessionDoc is the full per-player state, stored as one JSONB document.
type sessionDoc struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Player    string    `json:"player"`
	Screen    string    `json:"screen"`
	Score     int       `json:"score"`
	Streak    int       `json:"streak"`
	Rounds    int       `json:"rounds"`
	Seen      []string  `json:"seen"`
	Question  *roundDoc `json:"question"`
	CreatedAt string    `json:"createdAt"`
}

// roundDoc is the current question, correct answer included. Only the
// public projection in handle_question.go ever reaches a client before the
// guess lands.
type roundDoc struct {
	CityName    string     `json:"cityName"`
	Country     string     `json:"country"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	FunFact     string     `json:"funFact"`
	Options     []string   `json:"options"`
	ImageURL    string     `json:"imageUrl"`
	ImageCredit *creditDoc `json:"imageCredit"`
	Answered    bool       `json:"answered"`
}

type creditDoc struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type Store interface {
	CreateSession(ctx context.Context, playerName string) (sessionDoc, error)
	SessionFromToken(ctx context.Context, token string) (sessionDoc, error)
	SaveSession(ctx context.Context, doc sessionDoc) error
}

// QuestionGenerator produces one trivia round. Implemented by
// question.Generator; tests substitute a fake.
type QuestionGenerator interface {
	Generate(ctx context.Context, seen []string, realPhoto bool) (trivia.Question, error)
}

func roundFromQuestion(q trivia.Question) *roundDoc {
	doc := &roundDoc{
		CityName: q.CityName,
		Country:  q.Country,
		Lat:      q.Lat,
		Lng:      q.Lng,
		FunFact:  q.FunFact,
		Options:  q.Options,
		ImageURL: q.ImageURL,
	}
	if q.ImageCredit != nil {
		doc.ImageCredit = &creditDoc{Name: q.ImageCredit.Name, Link: q.ImageCredit.Link}
	}
	return doc
}
