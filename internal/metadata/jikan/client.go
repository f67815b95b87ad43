package jikan

import (
	"context"
	"fmt"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/Harshitv21/Anime-Movie-API/internal/httpclient"
)

// Client is a Jikan API v4 client. Jikan requires no authentication.
type Client struct {
	baseURL string
	http    *httpclient.Client
}

// New creates a new Jikan client.
func New(baseURL string, http *httpclient.Client) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http,
	}
}

// SeasonNow returns the anime of the current season.
func (c *Client) SeasonNow(ctx context.Context) ([]Anime, error) {
	var resp animeListResponse
	if err := c.get(ctx, "/seasons/now", nil, &resp); err != nil {
		return nil, fmt.Errorf("season now: %w", err)
	}
	return resp.Data, nil
}

// SeasonUpcoming returns the anime of the next season.
func (c *Client) SeasonUpcoming(ctx context.Context) ([]Anime, error) {
	var resp animeListResponse
	if err := c.get(ctx, "/seasons/upcoming", nil, &resp); err != nil {
		return nil, fmt.Errorf("season upcoming: %w", err)
	}
	return resp.Data, nil
}

// TopAnime returns the global top-anime ranking.
func (c *Client) TopAnime(ctx context.Context) ([]Anime, error) {
	var resp animeListResponse
	if err := c.get(ctx, "/top/anime", nil, &resp); err != nil {
		return nil, fmt.Errorf("top anime: %w", err)
	}
	return resp.Data, nil
}

// AnimeByID returns the full detail payload for one anime, every upstream
// field intact.
func (c *Client) AnimeByID(ctx context.Context, id string) (map[string]any, error) {
	var resp struct {
		Data map[string]any `json:"data"`
	}
	if err := c.get(ctx, "/anime/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("anime %s: %w", id, err)
	}
	return resp.Data, nil
}

// AnimePictures returns the picture list for one anime.
func (c *Client) AnimePictures(ctx context.Context, id string) ([]Picture, error) {
	var resp picturesResponse
	if err := c.get(ctx, "/anime/"+url.PathEscape(id)+"/pictures", nil, &resp); err != nil {
		return nil, fmt.Errorf("anime %s pictures: %w", id, err)
	}
	return resp.Data, nil
}

// AnimeVideos returns the video list for one anime as raw JSON.
func (c *Client) AnimeVideos(ctx context.Context, id string) (json.RawMessage, error) {
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.get(ctx, "/anime/"+url.PathEscape(id)+"/videos", nil, &resp); err != nil {
		return nil, fmt.Errorf("anime %s videos: %w", id, err)
	}
	return resp.Data, nil
}

// Search forwards a caller-supplied raw query string to the anime search
// endpoint byte-for-byte and returns the upstream body unmodified. The
// query is never parsed or re-encoded, so parameter order and encoding
// survive the hop.
func (c *Client) Search(ctx context.Context, rawQuery string) (json.RawMessage, error) {
	u := c.baseURL + "/anime"
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	body, err := c.http.Get(ctx, u, nil)
	if err != nil {
		return nil, fmt.Errorf("search anime: %w", err)
	}
	return body, nil
}

// Ping checks that the API is reachable.
func (c *Client) Ping(ctx context.Context) error {
	var resp map[string]any
	if err := c.get(ctx, "/genres/anime", nil, &resp); err != nil {
		return fmt.Errorf("jikan ping: %w", err)
	}
	return nil
}

// get performs a GET request and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	body, err := c.http.Get(ctx, u.String(), nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
