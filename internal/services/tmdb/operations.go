package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mvolkov/kinobot/internal/models"
)

// DiscoverParams carries the criteria-derived parameters for a discovery
// call. Nil/empty fields are omitted from the request.
type DiscoverParams struct {
	GenreID *int
	Country string // ISO 3166-1 origin country
	Years   *models.YearRange
	Rating  *models.RatingBand
	Sort    models.SortKey
}

// SearchMulti performs a free-text search across movies and tv shows
func (c *Client) SearchMulti(ctx context.Context, query string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	var resp SearchResponse
	if err := c.invoke(ctx, "search/multi", "/search/multi", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// DiscoverMovie performs a criteria-based movie discovery call
func (c *Client) DiscoverMovie(ctx context.Context, p DiscoverParams) ([]SearchResult, error) {
	params := discoverValues(p, "release_date", "primary_release_date")

	var resp SearchResponse
	if err := c.invoke(ctx, "discover/movie", "/discover/movie", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// tvGenreAliases maps movie-taxonomy genre ids onto their tv counterparts.
// The tv taxonomy has no Action (28); sending it verbatim matches nothing.
var tvGenreAliases = map[int]int{
	28: 10759, // Action -> Action & Adventure
}

// DiscoverTV performs a criteria-based tv discovery call
func (c *Client) DiscoverTV(ctx context.Context, p DiscoverParams) ([]SearchResult, error) {
	if p.GenreID != nil {
		if alias, ok := tvGenreAliases[*p.GenreID]; ok {
			id := alias
			p.GenreID = &id
		}
	}
	params := discoverValues(p, "first_air_date", "first_air_date")

	var resp SearchResponse
	if err := c.invoke(ctx, "discover/tv", "/discover/tv", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// MovieDetails fetches the detail record of a movie
func (c *Client) MovieDetails(ctx context.Context, id int64) (*DetailsResponse, error) {
	var resp DetailsResponse
	path := fmt.Sprintf("/movie/%d", id)
	if err := c.invoke(ctx, "movie/details", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TVDetails fetches the detail record of a tv show
func (c *Client) TVDetails(ctx context.Context, id int64) (*DetailsResponse, error) {
	var resp DetailsResponse
	path := fmt.Sprintf("/tv/%d", id)
	if err := c.invoke(ctx, "tv/details", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MovieCredits fetches the credits of a movie
func (c *Client) MovieCredits(ctx context.Context, id int64) (*CreditsResponse, error) {
	var resp CreditsResponse
	path := fmt.Sprintf("/movie/%d/credits", id)
	if err := c.invoke(ctx, "movie/credits", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TVCredits fetches the credits of a tv show
func (c *Client) TVCredits(ctx context.Context, id int64) (*CreditsResponse, error) {
	var resp CreditsResponse
	path := fmt.Sprintf("/tv/%d/credits", id)
	if err := c.invoke(ctx, "tv/credits", path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// discoverValues maps discover parameters onto endpoint-specific query
// values. dateField and sortDateField differ between the movie and tv
// endpoints (release_date/primary_release_date vs first_air_date).
func discoverValues(p DiscoverParams, dateField, sortDateField string) url.Values {
	params := url.Values{}
	params.Set("include_adult", "false")

	switch p.Sort {
	case models.SortRating:
		params.Set("sort_by", "vote_average.desc")
	case models.SortReleaseDate:
		params.Set("sort_by", sortDateField+".desc")
	default:
		params.Set("sort_by", "popularity.desc")
	}

	if p.GenreID != nil {
		params.Set("with_genres", strconv.Itoa(*p.GenreID))
	}
	if p.Country != "" {
		params.Set("with_origin_country", p.Country)
	}
	if p.Years != nil {
		params.Set(dateField+".gte", fmt.Sprintf("%d-01-01", p.Years.Start))
		params.Set(dateField+".lte", fmt.Sprintf("%d-12-31", p.Years.End))
	}
	if p.Rating != nil {
		params.Set("vote_average.gte", strconv.FormatFloat(p.Rating.Min, 'f', 1, 64))
		if p.Rating.Max > 0 {
			params.Set("vote_average.lte", strconv.FormatFloat(p.Rating.Max, 'f', 1, 64))
		}
	}

	return params
}
