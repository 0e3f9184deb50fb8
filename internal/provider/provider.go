package provider

import "context"

// Article is the normalized record every provider maps its native item shape
// into. It exists only for the duration of one analyze request; the
// classification fields are filled in downstream and it is never persisted
// as a row.
type Article struct {
	Source      string   `json:"source"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	PubDate     string   `json:"pub_date"`
	Keywords    []string `json:"keywords"`
	APIType     string   `json:"api_type"`

	Harmful      bool     `json:"harmful"`
	HarmfulWords []string `json:"harmful_words"`
	Sentiment    string   `json:"gemini_sentiment"`
	Intent       string   `json:"gemini_intent"`
	Reason       string   `json:"gemini_reason"`
	Raw          string   `json:"gemini_raw"`
}

// Query carries the search parameters shared by all providers.
type Query struct {
	Text       string
	Language   string
	Country    string
	MaxResults int
}

// Provider is the interface all article providers must implement
type Provider interface {
	// Name returns the provider identifier (e.g. "NewsAPI", "Wikipedia")
	Name() string

	// Fetch runs one search against the provider and normalizes the results
	Fetch(ctx context.Context, q Query) ([]Article, error)
}
