// Package catalog talks to the OMDb movie catalog: keyword search,
// detail lookup, and genre-oriented search on top of both.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "http://www.omdbapi.com/"

// Movie is a full catalog detail record. ID is the catalog identifier
// (IMDb ID) and uniquely identifies the movie; records sharing an ID are
// the same movie regardless of other fields.
type Movie struct {
	ID       string
	Title    string
	Year     string
	Genre    string
	Director string
	Plot     string
	Poster   string
	Rating   string
	Link     string
}

// SearchHit is a single result from a keyword search.
type SearchHit struct {
	ID    string `json:"imdbID"`
	Title string `json:"Title"`
	Year  string `json:"Year"`
}

// Client is an OMDb API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientConfig holds configuration for the OMDb client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
}

// NewClient creates a new OMDb client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// searchResponse is the OMDb search envelope. Response is the string
// "True" or "False"; "False" with an Error message means no results.
type searchResponse struct {
	Search   []SearchHit `json:"Search"`
	Response string      `json:"Response"`
	Error    string      `json:"Error"`
}

// detailResponse is the OMDb detail envelope.
type detailResponse struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
	Plot     string `json:"Plot"`
	Poster   string `json:"Poster"`
	Rating   string `json:"imdbRating"`
	ImdbID   string `json:"imdbID"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Search runs a keyword search for movies. An OMDb "no results" response
// yields an empty slice, not an error.
func (c *Client) Search(ctx context.Context, keyword string) ([]SearchHit, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("s", keyword)
	params.Set("type", "movie")
	params.Set("page", "1")

	var result searchResponse
	if err := c.get(ctx, params, &result); err != nil {
		return nil, fmt.Errorf("search %q: %w", keyword, err)
	}

	if result.Response != "True" {
		return nil, nil
	}

	return result.Search, nil
}

// Detail fetches the full record for a catalog identifier.
func (c *Client) Detail(ctx context.Context, id string) (*Movie, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", id)
	params.Set("plot", "short")

	var result detailResponse
	if err := c.get(ctx, params, &result); err != nil {
		return nil, fmt.Errorf("detail %s: %w", id, err)
	}

	if result.Response != "True" {
		return nil, fmt.Errorf("detail %s: %s", id, orDefault(result.Error, "not found"))
	}

	return &Movie{
		ID:       id,
		Title:    orDefault(result.Title, "N/A"),
		Year:     orDefault(result.Year, "N/A"),
		Genre:    orDefault(result.Genre, "N/A"),
		Director: orDefault(result.Director, "N/A"),
		Plot:     orDefault(result.Plot, "N/A"),
		Poster:   orDefault(result.Poster, "N/A"),
		Rating:   orDefault(result.Rating, "N/A"),
		Link:     fmt.Sprintf("https://www.imdb.com/title/%s/", id),
	}, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	url := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OMDb returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
