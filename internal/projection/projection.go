// Package projection shapes upstream payloads into the JSON the gateway
// serves: field whitelists, list caps and image-base prefixing. The HTTP
// handlers and the MCP tools both go through it so the two surfaces return
// identical results.
package projection

import (
	"github.com/Harshitv21/Anime-Movie-API/internal/metadata/jikan"
	"github.com/Harshitv21/Anime-Movie-API/internal/metadata/tmdb"
)

// List caps applied before returning upstream results.
const (
	ListCap  = 20
	ImageCap = 30
)

// Projector applies result shaping for one configured image base.
type Projector struct {
	imageBase string
}

// New creates a Projector that prefixes relative image paths with imageBase.
func New(imageBase string) Projector {
	return Projector{imageBase: imageBase}
}

// capItems truncates a list to at most n items.
func capItems[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// ImageURL prefixes a relative image path with the configured image base.
// A nil or empty path stays null rather than becoming a malformed URL.
func (p Projector) ImageURL(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	full := p.imageBase + *path
	return &full
}

// PrefixImageFields rewrites the image path keys of an untrimmed result
// item in place. Used by the passthrough endpoints.
func (p Projector) PrefixImageFields(item map[string]any) {
	for _, key := range []string{"backdrop_path", "poster_path"} {
		if raw, ok := item[key]; ok {
			if path, ok := raw.(string); ok && path != "" {
				item[key] = p.imageBase + path
			}
		}
	}
}

// Movies applies image prefixing and the list cap to a trimmed movie list.
func (p Projector) Movies(movies []tmdb.Movie) []tmdb.Movie {
	out := make([]tmdb.Movie, 0, min(len(movies), ListCap))
	for _, m := range capItems(movies, ListCap) {
		m.BackdropPath = p.ImageURL(m.BackdropPath)
		m.PosterPath = p.ImageURL(m.PosterPath)
		out = append(out, m)
	}
	return out
}

// TVShows applies image prefixing and the list cap to a trimmed TV show list.
func (p Projector) TVShows(shows []tmdb.TVShow) []tmdb.TVShow {
	out := make([]tmdb.TVShow, 0, min(len(shows), ListCap))
	for _, s := range capItems(shows, ListCap) {
		s.BackdropPath = p.ImageURL(s.BackdropPath)
		s.PosterPath = p.ImageURL(s.PosterPath)
		out = append(out, s)
	}
	return out
}

// Images trims an image list to its four exposed fields with the file path
// prefixed. A missing upstream list becomes an empty list, never null.
func (p Projector) Images(images []tmdb.Image) []tmdb.Image {
	out := make([]tmdb.Image, 0, min(len(images), ImageCap))
	for _, img := range capItems(images, ImageCap) {
		if img.FilePath != "" {
			img.FilePath = p.imageBase + img.FilePath
		}
		out = append(out, img)
	}
	return out
}

// AnimeItem is the rich projection served by the anime list endpoints.
type AnimeItem struct {
	MalID          int          `json:"mal_id"`
	MalURL         string       `json:"mal_url"`
	Images         []*string    `json:"images"`
	Trailer        AnimeTrailer `json:"trailer"`
	Titles         AnimeTitles  `json:"titles"`
	Episodes       *int         `json:"episodes"`
	Rating         string       `json:"rating"`
	Type           string       `json:"type"`
	Source         string       `json:"source"`
	Status         string       `json:"status"`
	Score          *float64     `json:"score"`
	Rank           *int         `json:"rank"`
	Popularity     int          `json:"popularity"`
	Synopsis       string       `json:"synopsis"`
	Background     string       `json:"background"`
	Season         string       `json:"season"`
	Year           *int         `json:"year"`
	Genres         []string     `json:"genres"`
	Themes         []string     `json:"themes"`
	Demographics   []string     `json:"demographics"`
	ExplicitGenres []string     `json:"explicit_genres"`
}

// AnimeTrailer holds the trailer links of an anime item.
type AnimeTrailer struct {
	YtID     *string `json:"yt_id"`
	YtURL    *string `json:"yt_url"`
	EmbedURL *string `json:"embed_url"`
}

// AnimeTitles holds the title variants of an anime item.
type AnimeTitles struct {
	Default  string  `json:"default"`
	Japanese *string `json:"japanese"`
	English  *string `json:"english"`
}

// Anime maps a Jikan list entry into the gateway's anime item shape.
func Anime(a jikan.Anime) AnimeItem {
	return AnimeItem{
		MalID:  a.MalID,
		MalURL: a.URL,
		Images: []*string{
			nonEmpty(a.Images.JPG.ImageURL),
			nonEmpty(a.Images.JPG.LargeImageURL),
			a.Trailer.Images.MaximumImageURL,
		},
		Trailer: AnimeTrailer{
			YtID:     a.Trailer.YoutubeID,
			YtURL:    a.Trailer.URL,
			EmbedURL: a.Trailer.EmbedURL,
		},
		Titles: AnimeTitles{
			Default:  a.Title,
			Japanese: a.TitleJapanese,
			English:  a.TitleEnglish,
		},
		Episodes:       a.Episodes,
		Rating:         a.Rating,
		Type:           a.Type,
		Source:         a.Source,
		Status:         a.Status,
		Score:          a.Score,
		Rank:           a.Rank,
		Popularity:     a.Popularity,
		Synopsis:       a.Synopsis,
		Background:     a.Background,
		Season:         a.Season,
		Year:           a.Year,
		Genres:         entryNames(a.Genres),
		Themes:         entryNames(a.Themes),
		Demographics:   entryNames(a.Demographics),
		ExplicitGenres: entryNames(a.ExplicitGenres),
	}
}

// AnimeList applies the rich mapping and the list cap.
func AnimeList(entries []jikan.Anime) []AnimeItem {
	out := make([]AnimeItem, 0, min(len(entries), ListCap))
	for _, a := range capItems(entries, ListCap) {
		out = append(out, Anime(a))
	}
	return out
}

// AnimeImageSet mirrors one picture format's URLs.
type AnimeImageSet struct {
	ImageURL      string `json:"image_url"`
	SmallImageURL string `json:"small_image_url"`
	LargeImageURL string `json:"large_image_url"`
}

// AnimeImagesData holds the pictures list reshaped into parallel
// per-format arrays of equal length.
type AnimeImagesData struct {
	JPGs []AnimeImageSet `json:"jpgs"`
	WebP []AnimeImageSet `json:"webp"`
}

// Pictures reshapes the upstream pictures list into parallel jpg/webp arrays.
func Pictures(pictures []jikan.Picture) AnimeImagesData {
	data := AnimeImagesData{
		JPGs: make([]AnimeImageSet, 0, len(pictures)),
		WebP: make([]AnimeImageSet, 0, len(pictures)),
	}
	for _, p := range pictures {
		data.JPGs = append(data.JPGs, AnimeImageSet(p.JPG))
		data.WebP = append(data.WebP, AnimeImageSet(p.WebP))
	}
	return data
}

// entryNames reduces genre-like entries to their bare names. Always a
// non-nil slice so absent upstream lists serialize as [].
func entryNames(entries []jikan.NamedEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
