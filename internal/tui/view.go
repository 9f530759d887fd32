package tui

import (
	"fmt"
	"strings"

	"github.com/amaumene/moviehub/internal/models"
	"github.com/amaumene/moviehub/internal/search"
	"github.com/muesli/reflow/wordwrap"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MovieHUB"))
	b.WriteString("\n\n")

	switch m.screen {
	case screenLogin:
		b.WriteString(m.loginView())
	case screenDetail:
		b.WriteString(m.detail.View())
		b.WriteString("\n")
		b.WriteString(hint("esc back • ↑/↓ scroll"))
	default:
		b.WriteString(m.searchView())
	}
	return b.String()
}

func (m Model) loginView() string {
	var b strings.Builder
	b.WriteString(m.username.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")
	if m.loginErr != "" {
		b.WriteString(errorStyle.Render(m.loginErr))
		b.WriteString("\n\n")
	}
	b.WriteString(hint("tab switch field • enter sign in • esc quit"))
	return b.String()
}

func (m Model) searchView() string {
	var b strings.Builder
	if m.sess != nil {
		b.WriteString(hint("Signed in as " + m.sess.Username))
		b.WriteString("\n")
	}
	b.WriteString(m.query.View())
	b.WriteString("\n\n")

	switch {
	case m.search.Loading:
		b.WriteString(m.spinner.View() + " Searching...")
		b.WriteString("\n\n")
	case m.search.ErrorMessage != "":
		b.WriteString(errorStyle.Render(m.search.ErrorMessage))
		b.WriteString("\n\n")
	}

	if m.selected.Loading {
		b.WriteString(m.spinner.View() + " Loading details...")
		b.WriteString("\n\n")
	} else if m.selected.Notice != "" {
		b.WriteString(noticeStyle.Render(m.selected.Notice))
		b.WriteString("\n\n")
	}

	if len(m.search.Results) > 0 {
		b.WriteString(m.results.View())
		b.WriteString("\n")
		status := fmt.Sprintf("Showing %d of %d", len(m.search.Results), m.search.TotalResults)
		if m.search.LoadingMore {
			status += " " + m.spinner.View() + " loading more"
		}
		b.WriteString(hint(status))
		b.WriteString("\n")
	}

	keys := "enter search • tab results • esc quit"
	if m.focus == focusResults {
		keys = "enter details • tab search • q quit"
		if m.search.HasMore() {
			keys = "enter details • m load more • tab search • q quit"
		}
	}
	b.WriteString(hint(keys))
	return b.String()
}

type detailField struct {
	label string
	value string
}

// renderDetail lays a normalized record out for the viewport, wrapping long
// text to width.
func renderDetail(rec *models.DetailRecord, width int) string {
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("%s (%s)", rec.Title, rec.Year)))
	b.WriteString("\n")
	if len(rec.Genres) > 0 {
		b.WriteString(genreStyle.Render(strings.Join(rec.Genres, " · ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(wordwrap.String(rec.Plot, width))
	b.WriteString("\n\n")

	fields := []detailField{
		{"Rated", rec.Rated},
		{"Released", rec.Released},
		{"Runtime", rec.Runtime},
		{"Director", rec.Director},
		{"Writer", rec.Writer},
		{"Cast", rec.Actors},
		{"Language", rec.Language},
		{"Country", rec.Country},
		{"Awards", rec.Awards},
		{"Box office", rec.BoxOffice},
		{"IMDb", fmt.Sprintf("%s (%s votes)", rec.IMDbRating, rec.IMDbVotes)},
		{"Metascore", rec.Metascore},
	}
	for _, r := range rec.Ratings {
		fields = append(fields, detailField{r.Source, r.Value})
	}
	fields = append(fields, detailField{"Poster", search.PosterOrPlaceholder(rec.PosterURL)})

	for _, f := range fields {
		line := labelStyle.Render(fmt.Sprintf("%-11s", f.label)) + " " + f.value
		b.WriteString(wordwrap.String(line, width))
		b.WriteString("\n")
	}
	if rec.IMDbURL != "" {
		b.WriteString("\n")
		b.WriteString(rec.IMDbURL)
		b.WriteString("\n")
	}
	return b.String()
}
