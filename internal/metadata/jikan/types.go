package jikan

// Anime is a single entry from the Jikan list endpoints. Fields the API
// reports as null decode into nil pointers so the gateway can echo them.
type Anime struct {
	MalID          int          `json:"mal_id"`
	URL            string       `json:"url"`
	Images         AnimeImages  `json:"images"`
	Trailer        Trailer      `json:"trailer"`
	Title          string       `json:"title"`
	TitleEnglish   *string      `json:"title_english"`
	TitleJapanese  *string      `json:"title_japanese"`
	Type           string       `json:"type"`
	Source         string       `json:"source"`
	Episodes       *int         `json:"episodes"`
	Status         string       `json:"status"`
	Rating         string       `json:"rating"`
	Score          *float64     `json:"score"`
	Rank           *int         `json:"rank"`
	Popularity     int          `json:"popularity"`
	Synopsis       string       `json:"synopsis"`
	Background     string       `json:"background"`
	Season         string       `json:"season"`
	Year           *int         `json:"year"`
	Genres         []NamedEntry `json:"genres"`
	ExplicitGenres []NamedEntry `json:"explicit_genres"`
	Themes         []NamedEntry `json:"themes"`
	Demographics   []NamedEntry `json:"demographics"`
}

// AnimeImages holds the jpg image variants of a list entry.
type AnimeImages struct {
	JPG ImageSet `json:"jpg"`
}

// ImageSet is one format's set of image URLs.
type ImageSet struct {
	ImageURL      string `json:"image_url"`
	SmallImageURL string `json:"small_image_url"`
	LargeImageURL string `json:"large_image_url"`
}

// Trailer is the YouTube trailer block of a list entry.
type Trailer struct {
	YoutubeID *string       `json:"youtube_id"`
	URL       *string       `json:"url"`
	EmbedURL  *string       `json:"embed_url"`
	Images    TrailerImages `json:"images"`
}

// TrailerImages holds the trailer thumbnail variants.
type TrailerImages struct {
	MaximumImageURL *string `json:"maximum_image_url"`
}

// NamedEntry is a genre/theme/demographic reference; only the name is
// re-exposed by the gateway.
type NamedEntry struct {
	MalID int    `json:"mal_id"`
	Name  string `json:"name"`
}

// Picture is one entry of the anime pictures endpoint.
type Picture struct {
	JPG  ImageSet `json:"jpg"`
	WebP ImageSet `json:"webp"`
}

// animeListResponse is the envelope of the list endpoints.
type animeListResponse struct {
	Data []Anime `json:"data"`
}

// picturesResponse is the envelope of the pictures endpoint.
type picturesResponse struct {
	Data []Picture `json:"data"`
}
