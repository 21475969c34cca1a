package models

// MediaType represents the type of media (movie or tv show)
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
	MediaTypeAny   MediaType = "any"
)

// SortKey represents the ordering applied to discovery results
type SortKey string

const (
	SortPopularity  SortKey = "popularity"
	SortRating      SortKey = "rating"
	SortReleaseDate SortKey = "release_date"
)

// RatingBand is an inclusive vote-average range. A zero Max means unbounded.
type RatingBand struct {
	Min float64
	Max float64
}

// Preset rating bands offered by the filter wizard
var (
	RatingHigh   = RatingBand{Min: 8.0}
	RatingMedium = RatingBand{Min: 5.0, Max: 8.0}
	RatingLow    = RatingBand{Max: 5.0}
)

// YearRange is an inclusive release-year range
type YearRange struct {
	Start int
	End   int
}

// Criteria holds the search filters collected by the wizard.
// Nil pointer fields mean the criterion was skipped.
type Criteria struct {
	MediaType MediaType
	GenreID   *int
	Years     *YearRange
	Rating    *RatingBand
	Country   string // ISO 3166-1 code, empty when skipped
	Sort      SortKey
}
