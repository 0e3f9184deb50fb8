package newsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/amityadav/threatlens/internal/provider"
)

const defaultBaseURL = "https://newsdata.io/api/1/latest"

// Client is a NewsData.io client
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a new NewsData.io client
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
	return "NewsData.io"
}

// searchResponse is the relevant slice of the NewsData.io /api/1/latest payload
type searchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		SourceID   string   `json:"source_id"`
		SourceName string   `json:"source_name"`
		Title      string   `json:"title"`
		Desc       string   `json:"description"`
		Link       string   `json:"link"`
		PubDate    string   `json:"pubDate"`
		Keywords   []string `json:"keywords"`
	} `json:"results"`
}

// Fetch implements the provider.Provider interface
func (c *Client) Fetch(ctx context.Context, q provider.Query) ([]provider.Article, error) {
	params := url.Values{}
	params.Set("q", q.Text)
	params.Set("language", q.Language)
	params.Set("country", q.Country)
	params.Set("apikey", c.apiKey)

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

	log.Printf("[NewsData] Response status: %d", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("api error: %d %s", resp.StatusCode, string(bodyBytes))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if searchResp.Status != "success" {
		return nil, fmt.Errorf("unexpected response status %q", searchResp.Status)
	}

	articles := make([]provider.Article, 0, len(searchResp.Results))
	for _, item := range searchResp.Results {
		source := item.SourceID
		if source == "" {
			source = item.SourceName
		}
		if source == "" {
			source = "NewsData.io"
		}
		keywords := item.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		articles = append(articles, provider.Article{
			Source:      source,
			Title:       item.Title,
			Description: item.Desc,
			Link:        item.Link,
			PubDate:     item.PubDate,
			Keywords:    keywords,
			APIType:     "news",
		})
	}
	return articles, nil
}
