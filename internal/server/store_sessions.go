package server

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/skylineguessr/api/internal/trivia"
)

// SessionStore implements Store over a sessions table with a JSONB data
// column.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) CreateSession(ctx context.Context, playerName string) (sessionDoc, error) {
	doc := sessionDoc{
		ID:        newID(),
		Token:     newID(),
		Player:    playerName,
		Screen:    string(trivia.ScreenMenu),
		Seen:      []string{},
		CreatedAt: nowUTC(),
	}
	if err := s.put(ctx, doc); err != nil {
		return sessionDoc{}, err
	}
	return doc, nil
}

func (s *SessionStore) SessionFromToken(ctx context.Context, token string) (sessionDoc, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM sessions WHERE token = ?`, token,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return sessionDoc{}, ErrNotFound
	}
	if err != nil {
		return sessionDoc{}, err
	}

	var doc sessionDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return sessionDoc{}, err
	}
	return doc, nil
}

func (s *SessionStore) SaveSession(ctx context.Context, doc sessionDoc) error {
	return s.put(ctx, doc)
}

func (s *SessionStore) put(ctx context.Context, doc sessionDoc) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sessions (id, token, data) VALUES (?, ?, jsonb(?))`,
		doc.ID, doc.Token, string(data),
	)
	return err
}

func newID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func nowUTC() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
