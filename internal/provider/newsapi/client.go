package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/amityadav/threatlens/internal/provider"
)

const defaultBaseURL = "https://newsapi.org/v2/everything"

// Client is a NewsAPI.org client
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a new NewsAPI client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL points the client at an alternate endpoint
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return "NewsAPI"
}

// searchResponse is the relevant slice of the NewsAPI /v2/everything payload
type searchResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Fetch implements the provider.Provider interface
func (c *Client) Fetch(ctx context.Context, q provider.Query) ([]provider.Article, error) {
	params := url.Values{}
	params.Set("q", q.Text)
	params.Set("language", q.Language)
	params.Set("pageSize", strconv.Itoa(q.MaxResults))
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "threatlens/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[NewsAPI] Response status: %d", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("api error: %d %s", resp.StatusCode, string(bodyBytes))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if searchResp.Status != "ok" {
		return nil, fmt.Errorf("unexpected response status %q", searchResp.Status)
	}

	articles := make([]provider.Article, 0, len(searchResp.Articles))
	for _, item := range searchResp.Articles {
		source := item.Source.Name
		if source == "" {
			source = "NewsAPI"
		}
		articles = append(articles, provider.Article{
			Source:      source,
			Title:       item.Title,
			Description: item.Description,
			Link:        item.URL,
			PubDate:     item.PublishedAt,
			Keywords:    []string{},
			APIType:     "news",
		})
	}
	return articles, nil
}
