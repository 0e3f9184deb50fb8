package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UnknownSource is the sentinel recorded when an article carries no source name
const UnknownSource = "unknown_source"

// SourceProfile is one row of the per-source flag counter table
type SourceProfile struct {
	SourceName string    `json:"source_name"`
	FlagCount  int       `json:"flag_count"`
	LastSeen   time.Time `json:"last_seen"`
}

// KeywordTrend is one row of the per-keyword occurrence counter table
type KeywordTrend struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// TrendStore persists the two monotonic counter tables. Both tables are
// increment-only; nothing in this system decrements or deletes rows.
type TrendStore struct {
	db *pgxpool.Pool
}

// NewTrendStore opens a connection pool and verifies connectivity
func NewTrendStore(ctx context.Context, connString string) (*TrendStore, error) {
	db, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}
	return &TrendStore{db: db}, nil
}

func (s *TrendStore) Close() {
	s.db.Close()
}

// InitSchema creates the counter tables if they do not exist
func (s *TrendStore) InitSchema(ctx context.Context) error {
	log.Printf("[Store.InitSchema] Initializing database...")
	queries := []string{
		`CREATE TABLE IF NOT EXISTS source_profiles (
			source_name TEXT PRIMARY KEY,
			flag_count INTEGER NOT NULL DEFAULT 0,
			last_seen TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS keyword_trends (
			keyword TEXT PRIMARY KEY,
			count INTEGER NOT NULL DEFAULT 0
		);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(ctx, q); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// NormalizeSource maps a missing source name to the sentinel
func NormalizeSource(sourceName string) string {
	if sourceName == "" {
		return UnknownSource
	}
	return sourceName
}

// RecordSourceFlag atomically inserts a new profile with a count of 1 or
// increments the existing one and refreshes its timestamp.
func (s *TrendStore) RecordSourceFlag(ctx context.Context, sourceName string) error {
	sourceName = NormalizeSource(sourceName)
	query := `
        INSERT INTO source_profiles (source_name, flag_count, last_seen)
        VALUES ($1, 1, NOW())
        ON CONFLICT (source_name) DO UPDATE
        SET flag_count = source_profiles.flag_count + 1, last_seen = NOW();
    `
	if _, err := s.db.Exec(ctx, query, sourceName); err != nil {
		return fmt.Errorf("failed to update profile for %q: %w", sourceName, err)
	}
	log.Printf("[Store.RecordSourceFlag] Updated profile for: %s", sourceName)
	return nil
}

// RecordKeyword atomically inserts a new trend row with a count of 1 or
// increments the existing one.
func (s *TrendStore) RecordKeyword(ctx context.Context, keyword string) error {
	query := `
        INSERT INTO keyword_trends (keyword, count)
        VALUES ($1, 1)
        ON CONFLICT (keyword) DO UPDATE
        SET count = keyword_trends.count + 1;
    `
	if _, err := s.db.Exec(ctx, query, keyword); err != nil {
		return fmt.Errorf("failed to update trend for %q: %w", keyword, err)
	}
	log.Printf("[Store.RecordKeyword] Incremented trend for: %s", keyword)
	return nil
}

// TopSourceProfiles returns up to limit rows ordered by flag count descending
func (s *TrendStore) TopSourceProfiles(ctx context.Context, limit int) ([]SourceProfile, error) {
	query := `
        SELECT source_name, flag_count, last_seen
        FROM source_profiles
        ORDER BY flag_count DESC
        LIMIT $1;
    `
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query source profiles: %w", err)
	}
	defer rows.Close()

	var profiles []SourceProfile
	for rows.Next() {
		var p SourceProfile
		if err := rows.Scan(&p.SourceName, &p.FlagCount, &p.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan source profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// TopKeywordTrends returns up to limit rows ordered by count descending
func (s *TrendStore) TopKeywordTrends(ctx context.Context, limit int) ([]KeywordTrend, error) {
	query := `
        SELECT keyword, count
        FROM keyword_trends
        ORDER BY count DESC
        LIMIT $1;
    `
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query keyword trends: %w", err)
	}
	defer rows.Close()

	var trends []KeywordTrend
	for rows.Next() {
		var t KeywordTrend
		if err := rows.Scan(&t.Keyword, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan keyword trend: %w", err)
		}
		trends = append(trends, t)
	}
	return trends, rows.Err()
}
