package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/amityadav/threatlens/internal/core"
	"github.com/amityadav/threatlens/internal/provider"
	"github.com/amityadav/threatlens/internal/store"
)

// trendRowLimit caps the dashboard listings
const trendRowLimit = 20

// Analyzer runs the analysis pipeline for one query
type Analyzer interface {
	Analyze(ctx context.Context, query string) ([]provider.Article, error)
}

// TrendReader exposes the two counter tables to the dashboard
type TrendReader interface {
	TopSourceProfiles(ctx context.Context, limit int) ([]store.SourceProfile, error)
	TopKeywordTrends(ctx context.Context, limit int) ([]store.KeywordTrend, error)
}

// Services groups all dependencies for REST handlers
type Services struct {
	Analyzer Analyzer
	Trends   TrendReader
}

// CreateRESTHandler creates the API and page endpoints
func CreateRESTHandler(services Services) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		switch r.URL.Path {
		case "/api/analyze":
			handleAnalyze(w, r, services.Analyzer)
		case "/api/profiles":
			handleProfiles(w, r, services.Trends)
		case "/api/trends":
			handleTrends(w, r, services.Trends)
		case "/":
			handleLoginPage(w, r)
		case "/dashboard":
			handleDashboardPage(w, r)
		default:
			http.NotFound(w, r)
		}
	}
}

func handleAnalyze(w http.ResponseWriter, r *http.Request, analyzer Analyzer) {
	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, `{"error": "a 'q' (query) parameter is required"}`, http.StatusBadRequest)
		return
	}

	log.Printf("[REST] Analyze hit for query %q", query)
	articles, err := analyzer.Analyze(r.Context(), query)
	if err != nil {
		if errors.Is(err, core.ErrEmptyQuery) {
			http.Error(w, `{"error": "a 'q' (query) parameter is required"}`, http.StatusBadRequest)
			return
		}
		log.Printf("[REST] Analyze failed: %v", err)
		http.Error(w, `{"error": "analysis failed"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, articles)
}

func handleProfiles(w http.ResponseWriter, r *http.Request, trends TrendReader) {
	profiles, err := trends.TopSourceProfiles(r.Context(), trendRowLimit)
	if err != nil {
		log.Printf("[REST] Failed to load source profiles: %v", err)
		http.Error(w, `{"error": "failed to load source profiles"}`, http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []store.SourceProfile{}
	}
	writeJSON(w, profiles)
}

func handleTrends(w http.ResponseWriter, r *http.Request, trends TrendReader) {
	keywords, err := trends.TopKeywordTrends(r.Context(), trendRowLimit)
	if err != nil {
		log.Printf("[REST] Failed to load keyword trends: %v", err)
		http.Error(w, `{"error": "failed to load keyword trends"}`, http.StatusInternalServerError)
		return
	}
	if keywords == nil {
		keywords = []store.KeywordTrend{}
	}
	writeJSON(w, keywords)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[REST] Failed to encode response: %v", err)
	}
}
