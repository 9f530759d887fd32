package search

import (
	"fmt"
	"strings"

	"github.com/amaumene/moviehub/internal/constants"
	"github.com/amaumene/moviehub/internal/models"
)

// Nice returns v unless it is blank or the upstream "N/A" sentinel, in which
// case it returns the display placeholder.
func Nice(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == constants.MissingValue {
		return constants.Placeholder
	}
	return v
}

// PosterOrPlaceholder returns a usable image URL for a poster value.
func PosterOrPlaceholder(poster string) string {
	poster = strings.TrimSpace(poster)
	if poster == "" || poster == constants.MissingValue {
		return constants.PosterPlaceholderURL
	}
	return poster
}

// SplitGenres turns OMDb's "Action, Crime, Drama" into a trimmed list.
// Missing values give an empty list.
func SplitGenres(genre string) []string {
	genre = strings.TrimSpace(genre)
	if genre == "" || genre == constants.MissingValue {
		return []string{}
	}
	parts := strings.Split(genre, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeDetail maps an OMDb title answer onto a DetailRecord with every
// text field passed through Nice.
func NormalizeDetail(t *models.OMDbTitleResponse) *models.DetailRecord {
	ratings := make([]models.Rating, 0, len(t.Ratings))
	for _, r := range t.Ratings {
		ratings = append(ratings, models.Rating{Source: Nice(r.Source), Value: Nice(r.Value)})
	}

	rec := &models.DetailRecord{
		ResultItem: models.ResultItem{
			ID:        t.IMDbID,
			Title:     Nice(t.Title),
			Year:      Nice(t.Year),
			PosterURL: PosterOrPlaceholder(t.Poster),
			Kind:      Nice(t.Type),
		},
		Plot:       Nice(t.Plot),
		Actors:     Nice(t.Actors),
		Director:   Nice(t.Director),
		Writer:     Nice(t.Writer),
		Language:   Nice(t.Language),
		Country:    Nice(t.Country),
		Released:   Nice(t.Released),
		Runtime:    Nice(t.Runtime),
		Rated:      Nice(t.Rated),
		Awards:     Nice(t.Awards),
		BoxOffice:  Nice(t.BoxOffice),
		IMDbRating: Nice(t.IMDbRating),
		IMDbVotes:  Nice(t.IMDbVotes),
		Metascore:  Nice(t.Metascore),
		Genres:     SplitGenres(t.Genre),
		Ratings:    ratings,
	}
	if t.IMDbID != "" {
		rec.IMDbURL = fmt.Sprintf(constants.IMDbTitleURL, t.IMDbID)
	}
	return rec
}
