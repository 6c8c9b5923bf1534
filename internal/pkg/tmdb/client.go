package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"
)

// movieExtras is appended to single-movie lookups so the client gets
// everything the movie page needs in one round trip.
const movieExtras = "videos,credits,reviews,images,external_ids,similar"

// Client is a read-only TMDB API client. Failed calls surface as a single
// error to the caller; there is no retry or backoff.
type Client struct {
	apiKey    string
	readToken string
	baseURL   string
	http      *http.Client
	group     singleflight.Group
}

func NewClient(apiKey, readToken, baseURL string) *Client {
	return &Client{
		apiKey:    apiKey,
		readToken: readToken,
		baseURL:   baseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// GetMovie fetches the plain detail object for one movie id.
func (c *Client) GetMovie(ctx context.Context, id int) (map[string]any, error) {
	return c.get(ctx, "/movie/"+strconv.Itoa(id), nil)
}

// GetMovieWithExtras fetches the detail object with videos, credits,
// reviews, images, external ids and similar movies appended.
func (c *Client) GetMovieWithExtras(ctx context.Context, id int) (map[string]any, error) {
	params := url.Values{}
	params.Set("append_to_response", movieExtras)
	return c.get(ctx, "/movie/"+strconv.Itoa(id), params)
}

// ListCategory fetches one page of a curated movie list (popular,
// top_rated, upcoming, now_playing).
func (c *Client) ListCategory(ctx context.Context, category string, page int) (map[string]any, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	return c.get(ctx, "/movie/"+category, params)
}

// Discover passes filter parameters through to the discover endpoint.
func (c *Client) Discover(ctx context.Context, params url.Values) (map[string]any, error) {
	return c.get(ctx, "/discover/movie", params)
}

// Search fetches one page of title-search results.
func (c *Client) Search(ctx context.Context, query string, page int) (map[string]any, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	return c.get(ctx, "/search/movie", params)
}

// ListGenres fetches the movie genre list. Concurrent identical calls are
// collapsed into one upstream request; nothing is cached.
func (c *Client) ListGenres(ctx context.Context) (map[string]any, error) {
	v, err, _ := c.group.Do("genre/movie/list", func() (any, error) {
		return c.get(ctx, "/genre/movie/list", nil)
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (map[string]any, error) {
	if params == nil {
		params = url.Values{}
	}
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.readToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.readToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tmdb returned status %d: %s", resp.StatusCode, string(body))
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode tmdb response: %w", err)
	}
	return result, nil
}
