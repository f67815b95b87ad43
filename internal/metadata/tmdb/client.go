package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/Harshitv21/Anime-Movie-API/internal/httpclient"
)

// Client is a TMDB API v3 client. The access token is attached as a bearer
// Authorization header on every call.
type Client struct {
	baseURL     string
	accessToken string
	http        *httpclient.Client
}

// New creates a new TMDB client.
func New(baseURL, accessToken string, http *httpclient.Client) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		http:        http,
	}
}

// TrendingMovies returns the trending movie list for a time window
// ("day" or "week"), every upstream field intact.
func (c *Client) TrendingMovies(ctx context.Context, timeWindow string) ([]map[string]any, error) {
	var resp Page
	if err := c.get(ctx, "/trending/movie/"+timeWindow, nil, &resp); err != nil {
		return nil, fmt.Errorf("trending movies: %w", err)
	}
	return resp.Results, nil
}

// PopularMovies returns the first page of popular movies.
func (c *Client) PopularMovies(ctx context.Context) ([]Movie, error) {
	var resp movieListResponse
	if err := c.get(ctx, "/movie/popular", url.Values{"page": {"1"}}, &resp); err != nil {
		return nil, fmt.Errorf("popular movies: %w", err)
	}
	return resp.Results, nil
}

// UpcomingMovies returns the first page of upcoming movies.
func (c *Client) UpcomingMovies(ctx context.Context) ([]Movie, error) {
	var resp movieListResponse
	if err := c.get(ctx, "/movie/upcoming", url.Values{"page": {"1"}}, &resp); err != nil {
		return nil, fmt.Errorf("upcoming movies: %w", err)
	}
	return resp.Results, nil
}

// SearchMovies searches for movies by title.
func (c *Client) SearchMovies(ctx context.Context, query string) ([]Movie, error) {
	params := url.Values{
		"query":         {query},
		"include_adult": {"false"},
		"language":      {"en-US"},
		"page":          {"1"},
	}
	var resp movieListResponse
	if err := c.get(ctx, "/search/movie", params, &resp); err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return resp.Results, nil
}

// MovieImages returns backdrops and posters for a movie.
func (c *Client) MovieImages(ctx context.Context, id string) (*Images, error) {
	var imgs Images
	if err := c.get(ctx, "/movie/"+url.PathEscape(id)+"/images", nil, &imgs); err != nil {
		return nil, fmt.Errorf("movie images %s: %w", id, err)
	}
	return &imgs, nil
}

// TrendingTV returns the trending TV list for a time window, every
// upstream field intact.
func (c *Client) TrendingTV(ctx context.Context, timeWindow string) ([]map[string]any, error) {
	var resp Page
	if err := c.get(ctx, "/trending/tv/"+timeWindow, nil, &resp); err != nil {
		return nil, fmt.Errorf("trending tv: %w", err)
	}
	return resp.Results, nil
}

// TopRatedTV returns one page of the top-rated TV ranking together with
// the upstream pagination envelope.
func (c *Client) TopRatedTV(ctx context.Context, page int) (*Page, error) {
	var resp Page
	if err := c.get(ctx, "/tv/top_rated", url.Values{"page": {strconv.Itoa(page)}}, &resp); err != nil {
		return nil, fmt.Errorf("top rated tv page %d: %w", page, err)
	}
	return &resp, nil
}

// SearchTV searches for TV shows by name.
func (c *Client) SearchTV(ctx context.Context, query string) ([]TVShow, error) {
	params := url.Values{
		"query":         {query},
		"include_adult": {"false"},
		"language":      {"en-US"},
		"page":          {"1"},
	}
	var resp tvListResponse
	if err := c.get(ctx, "/search/tv", params, &resp); err != nil {
		return nil, fmt.Errorf("search tv: %w", err)
	}
	return resp.Results, nil
}

// TVImages returns backdrops and posters for a TV show.
func (c *Client) TVImages(ctx context.Context, id string) (*Images, error) {
	var imgs Images
	if err := c.get(ctx, "/tv/"+url.PathEscape(id)+"/images", nil, &imgs); err != nil {
		return nil, fmt.Errorf("tv images %s: %w", id, err)
	}
	return &imgs, nil
}

// Ping checks that the API is reachable and the token is accepted.
func (c *Client) Ping(ctx context.Context) error {
	var cfg map[string]any
	if err := c.get(ctx, "/configuration", nil, &cfg); err != nil {
		return fmt.Errorf("tmdb ping: %w", err)
	}
	return nil
}

// get performs an authenticated GET request and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	header := http.Header{"Authorization": {"Bearer " + c.accessToken}}
	body, err := c.http.Get(ctx, u.String(), header)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
