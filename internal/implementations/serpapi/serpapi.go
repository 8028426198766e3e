package serpapi

import (
	"brainbox/internal/core/domain/chat"
	e "brainbox/internal/core/domain/errors"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DEFAULT_BASE_URL = "https://serpapi.com/search.json"
	RESULT_COUNT     = 6
	maxErrorBodySize = 1024
)

type organicResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

type searchResponse struct {
	OrganicResults []organicResult `json:"organic_results"`
	Error          string          `json:"error"`
}

// Client queries Google results through SerpAPI.
type Client struct {
	httpClient http.Client
	baseURL    url.URL
	apiKey     string
}

func New(baseURL url.URL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.Client{Timeout: timeout},
	}
}

// Search returns up to RESULT_COUNT organic results. Without an API key it
// returns chat.ErrSearchNotConfigured.
func (c *Client) Search(ctx context.Context, query string) ([]chat.SearchResult, error) {
	if c.apiKey == "" {
		return nil, chat.ErrSearchNotConfigured
	}

	u := c.baseURL
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("num", strconv.Itoa(RESULT_COUNT))
	u.RawQuery = params.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	request.Header.Add("accept", "application/json")
	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, e.NewUnexpectedStatusError("SerpAPI", resp.StatusCode, string(body))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode SerpAPI response: %w", err)
	}
	if decoded.Error != "" && len(decoded.OrganicResults) == 0 {
		return nil, fmt.Errorf("SerpAPI error: %s", decoded.Error)
	}

	results := make([]chat.SearchResult, 0, min(len(decoded.OrganicResults), RESULT_COUNT))
	for _, r := range decoded.OrganicResults {
		if len(results) == RESULT_COUNT {
			break
		}
		results = append(results, chat.SearchResult{Title: r.Title, Snippet: r.Snippet})
	}
	return results, nil
}
