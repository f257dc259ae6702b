// Package catalog provides read-only access to the candidate profile
// records store. The verification engine does not depend on it; the HTTP
// API exposes it alongside verification.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Candidate is one profile record. The JSON text columns hold
// pre-rendered profile sections; Sources maps a claim label to its URL.
type Candidate struct {
	ID                   string            `json:"id"`
	FullName             string            `json:"full_name"`
	PositionSought       string            `json:"position_sought"`
	PoliticalAffiliation string            `json:"political_affiliation"`
	ImageURLID           string            `json:"image_url_id,omitempty"`
	Education            string            `json:"education,omitempty"`
	CareerTimeline       string            `json:"career_timeline,omitempty"`
	Platforms            string            `json:"platforms,omitempty"`
	PastBehaviors        string            `json:"past_behaviors,omitempty"`
	Sources              map[string]string `json:"sources"`
}

const candidateColumns = `id, full_name, position_sought, political_affiliation,
	COALESCE(image_url_id, ''), COALESCE(education, ''), COALESCE(career_timeline, ''),
	COALESCE(platforms, ''), COALESCE(past_behaviors, ''), COALESCE(sources, '')`

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Get retrieves a candidate by identifier. Returns (nil, nil) when the
// identifier is unknown.
func (s *Store) Get(ctx context.Context, id string) (*Candidate, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	c, err := scanCandidate(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// List returns all candidates ordered by name.
func (s *Store) List(ctx context.Context) ([]*Candidate, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates ORDER BY full_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()
	return collectCandidates(rows)
}

// Search matches query case-insensitively against name, position, and
// affiliation.
func (s *Store) Search(ctx context.Context, query string) ([]*Candidate, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	rows, err := s.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates
		 WHERE full_name ILIKE $1 OR position_sought ILIKE $1 OR political_affiliation ILIKE $1
		 ORDER BY full_name`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search candidates: %w", err)
	}
	defer rows.Close()
	return collectCandidates(rows)
}

func collectCandidates(rows pgx.Rows) ([]*Candidate, error) {
	var candidates []*Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading candidates: %w", err)
	}
	return candidates, nil
}

func scanCandidate(row pgx.Row) (*Candidate, error) {
	var c Candidate
	var sourcesRaw string
	err := row.Scan(&c.ID, &c.FullName, &c.PositionSought, &c.PoliticalAffiliation,
		&c.ImageURLID, &c.Education, &c.CareerTimeline, &c.Platforms, &c.PastBehaviors, &sourcesRaw)
	if err != nil {
		return nil, err
	}
	c.Sources = parseSources(sourcesRaw)
	return &c, nil
}

// parseSources decodes the sources JSON column. A malformed blob degrades
// to an empty map rather than failing the whole record.
func parseSources(raw string) map[string]string {
	sources := make(map[string]string)
	if raw == "" {
		return sources
	}
	if err := json.Unmarshal([]byte(raw), &sources); err != nil {
		return map[string]string{}
	}
	return sources
}
