// Package stats tracks per-city guess tallies across sessions. The whole
// mapping lives in memory and is mirrored to a single JSONB row: every
// mutation re-serializes the full map and overwrites the row.
package stats

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/skylineguessr/api/internal/trivia"
)

const blobKey = "city_stats"

type Store struct {
	db     *sql.DB
	logger *slog.Logger

	mu     sync.Mutex
	byCity map[string]trivia.CityStat
}

// Open rehydrates the mapping from the persisted blob. A missing row means a
// fresh install; an unreadable blob is logged and discarded, leaving an
// empty map.
func Open(ctx context.Context, db *sql.DB, logger *slog.Logger) (*Store, error) {
	s := &Store{
		db:     db,
		logger: logger,
		byCity: make(map[string]trivia.CityStat),
	}

	var data string
	err := db.QueryRowContext(ctx,
		`SELECT json(value) FROM app_state WHERE key = ?`, blobKey,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading city stats: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &s.byCity); err != nil {
		logger.Warn("discarding unreadable city stats blob", "error", err)
		s.byCity = make(map[string]trivia.CityStat)
	}
	return s, nil
}

// Record applies one guess outcome to the city's tally, creating the entry
// on first visit, and persists the updated mapping.
func (s *Store) Record(ctx context.Context, city, country string, lat, lng float64, correct bool) (trivia.CityStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.byCity[city]
	if !ok {
		st = trivia.CityStat{City: city, Country: country, Lat: lat, Lng: lng}
	}
	if correct {
		st.Correct++
	} else {
		st.Wrong++
	}
	s.byCity[city] = st

	if err := s.persistLocked(ctx); err != nil {
		return st, fmt.Errorf("persisting city stats: %w", err)
	}
	return st, nil
}

// Snapshot returns all tallies sorted by city name.
func (s *Store) Snapshot() []trivia.CityStat {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]trivia.CityStat, 0, len(s.byCity))
	for _, st := range s.byCity {
		all = append(all, st)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].City < all[j].City })
	return all
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.byCity)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value) VALUES (?, jsonb(?))
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		blobKey, string(data),
	)
	return err
}
