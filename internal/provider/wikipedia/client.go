package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/amityadav/threatlens/internal/provider"
)

const defaultBaseURL = "https://en.wikipedia.org/w/api.php"

// Client is a MediaWiki search API client
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new Wikipedia search client
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL points the client at an alternate endpoint
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return "Wikipedia"
}

// searchResponse is the relevant slice of the MediaWiki list=search payload
type searchResponse struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			PageID  int    `json:"pageid"`
		} `json:"search"`
	} `json:"query"`
}

// Fetch implements the provider.Provider interface
func (c *Client) Fetch(ctx context.Context, q provider.Query) ([]provider.Article, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", q.Text)
	params.Set("format", "json")
	params.Set("srlimit", strconv.Itoa(q.MaxResults))

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

	log.Printf("[Wikipedia] Response status: %d", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("api error: %d %s", resp.StatusCode, string(bodyBytes))
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	articles := make([]provider.Article, 0, len(searchResp.Query.Search))
	for _, item := range searchResp.Query.Search {
		articles = append(articles, provider.Article{
			Source:      "Wikipedia",
			Title:       item.Title,
			Description: stripHTML(item.Snippet),
			Link:        fmt.Sprintf("https://en.wikipedia.org/?curid=%d", item.PageID),
			PubDate:     "",
			Keywords:    []string{},
			APIType:     "wikipedia",
		})
	}
	return articles, nil
}

// stripHTML flattens the search-match markup MediaWiki embeds in snippets
// (e.g. <span class="searchmatch">) down to plain text.
func stripHTML(snippet string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snippet))
	if err != nil {
		return snippet
	}
	return strings.TrimSpace(doc.Text())
}
