package models

import (
	"strconv"
	"time"
)

// MediaItem is a single catalog entry as returned by search or discovery.
// Fields come verbatim from the catalog API; MediaType is stamped when
// heterogeneous result sets are merged.
type MediaItem struct {
	ID          int64
	MediaType   MediaType
	Title       string
	ReleaseDate string // YYYY-MM-DD, may be empty
	Popularity  float64
	VoteAverage float64
	GenreIDs    []int
	Overview    string
}

// Year returns the release year, or 0 when the date is missing or malformed
func (m *MediaItem) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// Released reports whether the item has a release date that is not in the
// future relative to now
func (m *MediaItem) Released(now time.Time) bool {
	if m.ReleaseDate == "" {
		return false
	}
	return m.ReleaseDate <= now.Format("2006-01-02")
}

// Genre is an id/name pair from a detail response
type Genre struct {
	ID   int
	Name string
}

// ProductionCountry is a country attached to a detail response
type ProductionCountry struct {
	ISOCode string
	Name    string
}

// MediaDetails is the full detail record for a single item
type MediaDetails struct {
	ID                  int64
	MediaType           MediaType
	Title               string
	ReleaseDate         string
	VoteAverage         float64
	Overview            string
	Genres              []Genre
	ProductionCountries []ProductionCountry
	CreatedBy           []string // series only
}

// Year returns the release year, or 0 when the date is missing
func (d *MediaDetails) Year() int {
	if len(d.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(d.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// CrewMember is a crew entry from a credits response
type CrewMember struct {
	Name string
	Job  string
}

// CastMember is a cast entry from a credits response
type CastMember struct {
	Name  string
	Order int
}

// Credits holds the credits of a single item, fetched lazily for detail views
type Credits struct {
	Cast []CastMember
	Crew []CrewMember
}
