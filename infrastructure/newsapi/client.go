package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrRateLimited is returned when the API answers 429.
var ErrRateLimited = errors.New("news api rate limited")

// Source identifies the outlet an item came from.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is one article in a search response.
type Item struct {
	Source      Source `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// SearchResponse is the API-level payload. Status is "ok" or "error"; on
// error Code/Message carry the API's own error taxonomy.
type SearchResponse struct {
	Status       string `json:"status"`
	Code         string `json:"code,omitempty"`
	Message      string `json:"message,omitempty"`
	TotalResults int    `json:"totalResults"`
	Articles     []Item `json:"articles"`
}

// Client talks to the external news search API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetHTTPClient overrides the underlying HTTP client (tests).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Everything issues one search request sorted by recency. Transport failures
// and malformed payloads return an error; an API-level "error" status is
// returned in the response for the caller to map.
func (c *Client) Everything(ctx context.Context, query string, pageSize int, language string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("pageSize", fmt.Sprintf("%d", pageSize))
	params.Set("language", language)
	params.Set("sortBy", "publishedAt")
	params.Set("apiKey", c.apiKey)

	endpoint := fmt.Sprintf("%s/everything?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}

	return &searchResp, nil
}
