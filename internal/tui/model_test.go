package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/amaumene/moviehub/internal/constants"
	apperrors "github.com/amaumene/moviehub/internal/errors"
	"github.com/amaumene/moviehub/internal/models"
	"github.com/amaumene/moviehub/internal/session"
	"github.com/amaumene/moviehub/pkg/logger"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalog serves 25 "batman" titles, ten per page.
type catalog struct{}

func (catalog) Search(ctx context.Context, query string, page int) (*models.ResultPage, error) {
	switch query {
	case "batman":
		var items []models.ResultItem
		for i := (page-1)*10 + 1; i <= page*10 && i <= 25; i++ {
			items = append(items, models.ResultItem{
				ID:        fmt.Sprintf("tt%07d", i),
				Title:     fmt.Sprintf("Batman %d", i),
				Year:      "2005",
				PosterURL: "N/A",
				Kind:      "movie",
			})
		}
		return &models.ResultPage{Items: items, TotalCount: 25, PageNumber: page}, nil
	case "crash":
		return nil, apperrors.NewTransportError("OMDb request failed", nil)
	}
	return nil, apperrors.NewNotFoundError("")
}

func (catalog) Lookup(ctx context.Context, id string) (*models.OMDbTitleResponse, error) {
	if id != "tt0000001" {
		return nil, apperrors.NewDetailFetchError(id, "", nil)
	}
	return &models.OMDbTitleResponse{
		Response: "True",
		Title:    "Batman 1",
		Year:     "2005",
		Genre:    "Action, Crime",
		Plot:     strings.Repeat("Gotham needs a hero. ", 20),
		Director: "N/A",
		IMDbID:   id,
	}, nil
}

func newTestModel() Model {
	store := session.NewStore(catalog{}, 10, time.Hour, logger.Discard())
	m := NewModel(context.Background(), store)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to the model and then delivers every message its commands
// produce, skipping spinner ticks.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	for _, out := range run(cmd) {
		next, _ = m.Update(out)
		m = next.(Model)
	}
	return m
}

func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, run(c)...)
		}
		return out
	case searchDoneMsg, loadMoreDoneMsg, detailDoneMsg:
		return []tea.Msg{msg}
	}
	return nil
}

func loggedIn(t *testing.T) Model {
	t.Helper()
	m := newTestModel()
	m.username.SetValue("ada")
	m.password.SetValue("secret")
	m = send(t, m, key("enter"))
	require.Equal(t, screenSearch, m.screen)
	return m
}

func TestLoginRequiresBothFields(t *testing.T) {
	m := newTestModel()
	m.username.SetValue("ada")

	m = send(t, m, key("enter"))

	assert.Equal(t, screenLogin, m.screen)
	assert.Nil(t, m.sess)
	assert.Contains(t, m.View(), constants.MsgLoginRequired)
}

func TestLoginOpensSearch(t *testing.T) {
	m := loggedIn(t)

	assert.Equal(t, "ada", m.sess.Username)
	assert.Equal(t, focusQuery, m.focus)
	assert.Empty(t, m.password.Value())
	assert.Contains(t, m.View(), "Signed in as ada")
}

func TestSearchAndLoadMore(t *testing.T) {
	m := loggedIn(t)
	m.query.SetValue("batman")

	m = send(t, m, key("enter"))

	require.Len(t, m.search.Results, 10)
	assert.Equal(t, focusResults, m.focus)
	assert.Zero(t, m.inflight)
	assert.Contains(t, m.View(), "Showing 10 of 25")
	assert.Contains(t, m.View(), "m load more")

	m = send(t, m, key("m"))
	m = send(t, m, key("m"))
	require.Len(t, m.search.Results, 25)
	assert.Equal(t, "tt0000025", m.search.Results[24].ID)
	assert.False(t, m.search.HasMore())

	_, cmd := m.Update(key("m"))
	assert.Nil(t, cmd)
}

func TestBlankQueryDoesNothing(t *testing.T) {
	m := loggedIn(t)
	m.query.SetValue("   ")

	_, cmd := m.Update(key("enter"))

	assert.Nil(t, cmd)
}

func TestSearchErrorsAreShown(t *testing.T) {
	m := loggedIn(t)

	m.query.SetValue("crash")
	m = send(t, m, key("enter"))
	assert.Contains(t, m.View(), constants.MsgNetworkError)
	assert.Equal(t, focusQuery, m.focus)

	m.query.SetValue("zzz")
	m = send(t, m, key("enter"))
	assert.Contains(t, m.View(), constants.MsgNoResults)
	assert.NotContains(t, m.View(), constants.MsgNetworkError)
}

func TestOpenAndCloseDetail(t *testing.T) {
	m := loggedIn(t)
	m.query.SetValue("batman")
	m = send(t, m, key("enter"))

	m = send(t, m, key("enter"))

	require.Equal(t, screenDetail, m.screen)
	view := m.View()
	assert.Contains(t, view, "Batman 1 (2005)")
	assert.Contains(t, view, "Action · Crime")

	m = send(t, m, key("esc"))
	assert.Equal(t, screenSearch, m.screen)
	assert.False(t, m.sess.Detail.Snapshot().Open())
	assert.Len(t, m.search.Results, 10)
}

func TestDetailFailureShowsNotice(t *testing.T) {
	m := loggedIn(t)
	m.query.SetValue("batman")
	m = send(t, m, key("enter"))
	m.results.Select(1)

	m = send(t, m, key("enter"))

	assert.Equal(t, screenSearch, m.screen)
	assert.Contains(t, m.View(), constants.MsgDetailUnavailable)
}

func TestSpinnerStopsWhenIdle(t *testing.T) {
	m := loggedIn(t)

	_, cmd := m.Update(spinner.TickMsg{})

	assert.Nil(t, cmd)
}

func TestRenderDetailWraps(t *testing.T) {
	rec := &models.DetailRecord{
		ResultItem: models.ResultItem{Title: "Batman Begins", Year: "2005", PosterURL: "N/A"},
		Plot:       strings.Repeat("word ", 40),
		IMDbURL:    "https://www.imdb.com/title/tt0372784",
	}

	out := renderDetail(rec, 30)

	assert.Contains(t, out, constants.PosterPlaceholderURL)
	assert.Contains(t, out, rec.IMDbURL)
	assert.Greater(t, strings.Count(out, "\n"), 10)
}
