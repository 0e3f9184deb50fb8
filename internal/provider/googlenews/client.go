package googlenews

import (
	"context"
	"fmt"
	"log"
	"strconv"

	g "github.com/serpapi/google-search-results-golang"

	"github.com/amityadav/threatlens/internal/provider"
)

// Client fetches Google News results through SerpApi. It is registered only
// when a SerpApi key is configured.
type Client struct {
	apiKey string
}

// NewClient creates a new SerpApi-backed Google News client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
	}
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return "GoogleNews"
}

// Fetch implements the provider.Provider interface
func (c *Client) Fetch(ctx context.Context, q provider.Query) ([]provider.Article, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("SerpApi API key is not set")
	}

	parameter := map[string]string{
		"engine": "google",
		"q":      q.Text,
		"tbm":    "nws",
		"hl":     q.Language,
		"gl":     q.Country,
		"num":    strconv.Itoa(q.MaxResults),
	}

	log.Printf("[GoogleNews] Searching for: %q", q.Text)
	search := g.NewGoogleSearch(parameter, c.apiKey)
	results, err := search.GetJSON()
	if err != nil {
		return nil, fmt.Errorf("serpapi search failed: %w", err)
	}

	newsResults, ok := results["news_results"].([]interface{})
	if !ok {
		log.Printf("[GoogleNews] No news_results found in response")
		return []provider.Article{}, nil
	}

	var articles []provider.Article
	for _, item := range newsResults {
		res, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		title, _ := res["title"].(string)
		link, _ := res["link"].(string)
		snippet, _ := res["snippet"].(string)
		source, _ := res["source"].(string)
		date, _ := res["date"].(string)

		if title == "" || link == "" {
			continue
		}
		if source == "" {
			source = "GoogleNews"
		}

		articles = append(articles, provider.Article{
			Source:      source,
			Title:       title,
			Description: snippet,
			Link:        link,
			PubDate:     date,
			Keywords:    []string{},
			APIType:     "news",
		})
	}

	log.Printf("[GoogleNews] Found %d news results", len(articles))
	return articles, nil
}
