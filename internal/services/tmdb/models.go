package tmdb

import "github.com/mvolkov/kinobot/internal/models"

// SearchResult is a single entry of a multi-search or discover response
type SearchResult struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type,omitempty"`
	Title        string  `json:"title,omitempty"`          // movies
	Name         string  `json:"name,omitempty"`           // tv shows
	ReleaseDate  string  `json:"release_date,omitempty"`   // movies
	FirstAirDate string  `json:"first_air_date,omitempty"` // tv shows
	GenreIDs     []int   `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
	Popularity   float64 `json:"popularity"`
	Overview     string  `json:"overview"`
}

// SearchResponse is a paged list response from search or discover endpoints
type SearchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// Genre is an id/name pair in detail responses
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DetailsResponse covers both movie and tv detail endpoints; movie and tv
// specific fields are populated depending on which endpoint was called
type DetailsResponse struct {
	ID                  int64   `json:"id"`
	Title               string  `json:"title,omitempty"`
	Name                string  `json:"name,omitempty"`
	ReleaseDate         string  `json:"release_date,omitempty"`
	FirstAirDate        string  `json:"first_air_date,omitempty"`
	VoteAverage         float64 `json:"vote_average"`
	Overview            string  `json:"overview"`
	Genres              []Genre `json:"genres"`
	ProductionCountries []struct {
		ISOCode string `json:"iso_3166_1"`
		Name    string `json:"name"`
	} `json:"production_countries"`
	CreatedBy []struct {
		Name string `json:"name"`
	} `json:"created_by"` // tv only
}

// CreditsResponse is the credits endpoint response
type CreditsResponse struct {
	ID   int64 `json:"id"`
	Cast []struct {
		Name  string `json:"name"`
		Order int    `json:"order"`
	} `json:"cast"`
	Crew []struct {
		Name string `json:"name"`
		Job  string `json:"job"`
	} `json:"crew"`
}

// Item converts a search result into a domain media item, stamping the
// given media type when the response carries none (discover endpoints)
func (r *SearchResult) Item(mediaType models.MediaType) models.MediaItem {
	title := r.Title
	if title == "" {
		title = r.Name
	}
	releaseDate := r.ReleaseDate
	if releaseDate == "" {
		releaseDate = r.FirstAirDate
	}
	if r.MediaType != "" {
		mediaType = models.MediaType(r.MediaType)
	}

	return models.MediaItem{
		ID:          r.ID,
		MediaType:   mediaType,
		Title:       title,
		ReleaseDate: releaseDate,
		Popularity:  r.Popularity,
		VoteAverage: r.VoteAverage,
		GenreIDs:    r.GenreIDs,
		Overview:    r.Overview,
	}
}

// Details converts a detail response into the domain form
func (r *DetailsResponse) Details(mediaType models.MediaType) *models.MediaDetails {
	title := r.Title
	if title == "" {
		title = r.Name
	}
	releaseDate := r.ReleaseDate
	if releaseDate == "" {
		releaseDate = r.FirstAirDate
	}

	details := &models.MediaDetails{
		ID:          r.ID,
		MediaType:   mediaType,
		Title:       title,
		ReleaseDate: releaseDate,
		VoteAverage: r.VoteAverage,
		Overview:    r.Overview,
	}
	for _, g := range r.Genres {
		details.Genres = append(details.Genres, models.Genre{ID: g.ID, Name: g.Name})
	}
	for _, c := range r.ProductionCountries {
		details.ProductionCountries = append(details.ProductionCountries, models.ProductionCountry{
			ISOCode: c.ISOCode,
			Name:    c.Name,
		})
	}
	for _, c := range r.CreatedBy {
		details.CreatedBy = append(details.CreatedBy, c.Name)
	}

	return details
}

// Credits converts a credits response into the domain form
func (r *CreditsResponse) Credits() *models.Credits {
	credits := &models.Credits{}
	for _, c := range r.Cast {
		credits.Cast = append(credits.Cast, models.CastMember{Name: c.Name, Order: c.Order})
	}
	for _, c := range r.Crew {
		credits.Crew = append(credits.Crew, models.CrewMember{Name: c.Name, Job: c.Job})
	}
	return credits
}
