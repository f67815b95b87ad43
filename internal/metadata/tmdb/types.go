package tmdb

// Movie is the trimmed movie projection served by the gateway. The field
// set is deliberate: genre ids, the adult flag and popularity present in
// the upstream payload stay out.
type Movie struct {
	ID               int     `json:"id"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	BackdropPath     *string `json:"backdrop_path"`
	PosterPath       *string `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
}

// TVShow is the trimmed TV show projection, the TV counterpart of Movie.
type TVShow struct {
	ID               int     `json:"id"`
	OriginalLanguage string  `json:"original_language"`
	OriginalName     string  `json:"original_name"`
	Name             string  `json:"name"`
	Overview         string  `json:"overview"`
	BackdropPath     *string `json:"backdrop_path"`
	PosterPath       *string `json:"poster_path"`
	FirstAirDate     string  `json:"first_air_date"`
	VoteAverage      float64 `json:"vote_average"`
}

// Image is a single backdrop or poster entry.
type Image struct {
	AspectRatio float64 `json:"aspect_ratio"`
	Height      int     `json:"height"`
	Width       int     `json:"width"`
	FilePath    string  `json:"file_path"`
}

// Images groups the two image lists returned by the images endpoints.
type Images struct {
	Backdrops []Image `json:"backdrops"`
	Posters   []Image `json:"posters"`
}

// Page carries an untrimmed result list together with the upstream
// pagination envelope. Results stay generic so every upstream field
// passes through.
type Page struct {
	Page         int              `json:"page"`
	Results      []map[string]any `json:"results"`
	TotalPages   int              `json:"total_pages"`
	TotalResults int              `json:"total_results"`
}

// movieListResponse is the paginated movie list response.
type movieListResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// tvListResponse is the paginated TV list response.
type tvListResponse struct {
	Page         int      `json:"page"`
	Results      []TVShow `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}
