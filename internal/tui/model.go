// Package tui is the terminal front end: the same login gate, search
// controller and detail viewer as the web pages, driven by bubbletea.
package tui

import (
	"context"
	"strings"

	apperrors "github.com/amaumene/moviehub/internal/errors"
	"github.com/amaumene/moviehub/internal/models"
	"github.com/amaumene/moviehub/internal/session"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenLogin screen = iota
	screenSearch
	screenDetail
)

type focus int

const (
	focusQuery focus = iota
	focusResults
)

type Model struct {
	ctx   context.Context
	store *session.Store
	sess  *session.Session

	screen screen
	focus  focus

	username textinput.Model
	password textinput.Model
	loginErr string

	query   textinput.Model
	results list.Model
	detail  viewport.Model
	spinner spinner.Model

	// Copies of the controller and viewer state, refreshed after every fetch.
	search   models.SearchState
	selected models.DetailState
	inflight int

	width  int
	height int
}

func NewModel(ctx context.Context, store *session.Store) Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.Prompt = "User: "
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Pass: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	query := textinput.New()
	query.Placeholder = "Search for a movie"
	query.Prompt = "> "

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	results := list.New([]list.Item{}, delegate, 0, 0)
	results.Title = "Results"
	results.SetFilteringEnabled(false)
	results.SetShowStatusBar(false)
	results.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	return Model{
		ctx:      ctx,
		store:    store,
		username: username,
		password: password,
		query:    query,
		results:  results,
		detail:   viewport.New(80, 20),
		spinner:  sp,
		search:   models.SearchState{Status: models.StatusIdle},
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenLogin:
			return m.updateLogin(msg)
		case screenDetail:
			return m.updateDetail(msg)
		default:
			return m.updateSearch(msg)
		}

	case spinner.TickMsg:
		if m.inflight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchDoneMsg:
		m.inflight--
		m.refresh()
		if msg.err == nil && m.search.Status == models.StatusPopulated {
			m.results.Select(0)
			return m, m.setFocus(focusResults)
		}
		return m, nil

	case loadMoreDoneMsg:
		m.inflight--
		m.refresh()
		return m, nil

	case detailDoneMsg:
		m.inflight--
		if apperrors.Is(msg.err, apperrors.ErrStale) {
			return m, nil
		}
		m.refresh()
		if m.selected.Open() {
			m.screen = screenDetail
			m.detail.SetContent(renderDetail(m.selected.Selected, m.detail.Width))
			m.detail.GotoTop()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if m.username.Focused() {
			m.username.Blur()
			return m, m.password.Focus()
		}
		m.password.Blur()
		return m, m.username.Focus()

	case "enter":
		sess, err := m.store.Login(m.username.Value(), m.password.Value())
		if err != nil {
			var ce *apperrors.CatalogError
			if apperrors.As(err, &ce) {
				m.loginErr = ce.Message
			} else {
				m.loginErr = err.Error()
			}
			return m, nil
		}
		m.sess = sess
		m.loginErr = ""
		m.password.SetValue("")
		m.screen = screenSearch
		m.refresh()
		return m, m.setFocus(focusQuery)

	case "esc":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.username.Focused() {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" && m.selected.Loading {
		m.sess.Detail.Close()
		m.refresh()
		return m, nil
	}

	if m.focus == focusQuery {
		switch msg.String() {
		case "enter":
			q := m.query.Value()
			if strings.TrimSpace(q) == "" {
				return m, nil
			}
			m.inflight++
			m.search.Loading = true
			return m, tea.Batch(m.searchCmd(q), m.spinner.Tick)
		case "tab", "down":
			if len(m.search.Results) > 0 {
				return m, m.setFocus(focusResults)
			}
			return m, nil
		case "esc":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "tab", "/":
		return m, m.setFocus(focusQuery)
	case "enter":
		item, ok := m.results.SelectedItem().(resultItem)
		if !ok {
			return m, nil
		}
		m.inflight++
		m.selected = models.DetailState{Loading: true}
		return m, tea.Batch(m.openCmd(item.item.ID), m.spinner.Tick)
	case "m":
		if !m.search.HasMore() || m.search.LoadingMore {
			return m, nil
		}
		m.inflight++
		m.search.LoadingMore = true
		return m, tea.Batch(m.loadMoreCmd(), m.spinner.Tick)
	case "q", "esc":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "q":
		m.sess.Detail.Close()
		m.refresh()
		m.screen = screenSearch
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) searchCmd(q string) tea.Cmd {
	ctx, ctl := m.ctx, m.sess.Search
	return func() tea.Msg {
		return searchDoneMsg{err: ctl.Search(ctx, q)}
	}
}

func (m Model) loadMoreCmd() tea.Cmd {
	ctx, ctl := m.ctx, m.sess.Search
	return func() tea.Msg {
		return loadMoreDoneMsg{err: ctl.LoadMore(ctx)}
	}
}

func (m Model) openCmd(id string) tea.Cmd {
	ctx, ctl := m.ctx, m.sess.Search
	return func() tea.Msg {
		return detailDoneMsg{err: ctl.SelectItem(ctx, id)}
	}
}

// refresh copies the session state into the model and rebuilds the list,
// keeping the cursor where it was.
func (m *Model) refresh() {
	if m.sess == nil {
		return
	}
	m.search = m.sess.Search.Snapshot()
	m.selected = m.sess.Detail.Snapshot()

	idx := m.results.Index()
	items := make([]list.Item, len(m.search.Results))
	for i, r := range m.search.Results {
		items[i] = resultItem{item: r}
	}
	m.results.SetItems(items)
	if idx < len(items) {
		m.results.Select(idx)
	}
	if len(items) == 0 && m.focus == focusResults {
		m.setFocus(focusQuery)
	}
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	if f == focusQuery {
		return m.query.Focus()
	}
	m.query.Blur()
	return nil
}

func (m *Model) resize() {
	m.query.Width = max(m.width-4, 10)
	m.results.SetSize(m.width, max(m.height-9, 3))
	m.detail.Width = max(m.width, 20)
	m.detail.Height = max(m.height-4, 3)
	if m.selected.Open() {
		m.detail.SetContent(renderDetail(m.selected.Selected, m.detail.Width))
	}
}
