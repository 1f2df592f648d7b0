package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"findbar/internal/catalog"
	"findbar/internal/config"
	"findbar/internal/measure"
	"findbar/internal/search"
	"findbar/internal/storage"
	"findbar/internal/throttle"
)

const (
	maxCardWidth  = 64
	minCardWidth  = 24
	chromeHeight  = 6 // header, blank lines, status bar, card border
	minListHeight = 4
)

type App struct {
	config  *config.Config
	store   *storage.Store
	fetcher *catalog.Fetcher

	state  *searchState
	mirror *measure.Mirror

	// One long-lived gate per logical setter. Constructed once per
	// widget instance so pending trailing values survive re-renders.
	queryGate   *throttle.Gate[string]
	widthGate   *throttle.Gate[int]
	suggestGate *throttle.Gate[string]

	input      textinput.Model
	resultList list.Model

	view    View
	width   int
	height  int
	loading bool
	status  string
	err     error

	helpCache string
	helpWidth int

	now func() time.Time
}

func NewApp(store *storage.Store, fetcher *catalog.Fetcher, cfg *config.Config) *App {
	ti := textinput.New()
	ti.Placeholder = "Search…"
	ti.Prompt = "› "
	ti.Focus()

	rl := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	rl.SetShowTitle(false)
	rl.SetShowStatusBar(false)
	rl.SetShowHelp(false)
	rl.SetFilteringEnabled(false) // filtering is ours, not the list's

	return &App{
		config:      cfg,
		store:       store,
		fetcher:     fetcher,
		state:       newSearchState(),
		mirror:      measure.NewMirror(),
		queryGate:   throttle.New[string](cfg.Gates.Query),
		widthGate:   throttle.New[int](cfg.Gates.Width),
		suggestGate: throttle.New[string](cfg.Gates.Suggestion),
		input:       ti,
		resultList:  rl,
		view:        ViewSearch,
		loading:     true,
		status:      MsgLoadingCatalog,
		now:         time.Now,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.loadCatalog(),
		textinput.Blink,
		tea.EnterAltScreen,
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resultList.SetSize(a.cardContentWidth(), a.listHeight())
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case a.config.Keys.Quit:
			return a, tea.Quit
		case a.config.Keys.Help:
			if a.view == ViewHelp {
				a.view = ViewSearch
			} else {
				a.view = ViewHelp
			}
			return a, nil
		case a.config.Keys.Clear:
			if a.view == ViewHelp {
				a.view = ViewSearch
				return a, nil
			}
			if a.input.Value() == "" {
				return a, tea.Quit
			}
			a.input.SetValue("")
			return a, a.offerQuery("")
		}
		if a.view == ViewHelp {
			return a, nil
		}

	case itemsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			// Previous items (initially none) stay in place.
			a.err = msg.err
			a.status = MsgCatalogUnavailable
		} else {
			a.err = nil
			a.state.setAllItems(msg.items)
			if msg.fromCache {
				a.status = MsgOfflineCatalog
			} else {
				a.status = ""
			}
		}
		// A slow fetch may land after several keystrokes; the filter
		// simply runs again against the committed query.
		return a, a.syncDerived()

	case gateFlushMsg:
		now := a.now()
		switch msg.id {
		case gateQuery:
			if v, ok := a.queryGate.Flush(msg.seq, now); ok {
				cmds = append(cmds, a.commitQuery(v))
			}
		case gateWidth:
			if v, ok := a.widthGate.Flush(msg.seq, now); ok {
				a.state.setMeasuredWidth(v)
			}
		case gateSuggest:
			if v, ok := a.suggestGate.Flush(msg.seq, now); ok {
				a.state.setSuggestion(v)
			}
		}
		return a, tea.Batch(cmds...)
	}

	// Keystrokes (and cursor blinks) reach the text input; raw text
	// propagates into shared state through the query gate.
	prev := a.input.Value()
	newInput, cmd := a.input.Update(msg)
	a.input = newInput
	cmds = append(cmds, cmd)

	if raw := a.input.Value(); raw != prev {
		cmds = append(cmds, a.offerQuery(raw))
	}

	newList, listCmd := a.resultList.Update(msg)
	a.resultList = newList
	cmds = append(cmds, listCmd)

	return a, tea.Batch(cmds...)
}

// offerQuery presents raw input text to the query gate. On the leading
// edge the text commits immediately; otherwise a trailing flush is
// scheduled and intermediate keystrokes only replace the pending value.
func (a *App) offerQuery(raw string) tea.Cmd {
	now := a.now()
	deliver, arm := a.queryGate.Offer(raw, now)
	if deliver {
		return a.commitQuery(raw)
	}
	if arm {
		return flushAfter(gateQuery, a.queryGate.Seq(), a.queryGate.Delay(now))
	}
	return nil
}

// commitQuery writes the committed query into shared state and runs the
// downstream recompute chain: width measurement, then filter, then
// suggestion derivation (the deriver consumes filteredItems, so the
// filter must run first).
func (a *App) commitQuery(q string) tea.Cmd {
	a.state.setQuery(q)

	var cmds []tea.Cmd
	if cmd := a.offerWidth(q); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := a.syncDerived(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// offerWidth re-measures the mirrored query text and pushes the result
// through the width gate. Measurement is keyed on the text changing, so
// repeated identical values never re-trigger a commit.
func (a *App) offerWidth(q string) tea.Cmd {
	w, changed := a.mirror.Sync(q)
	if !changed {
		return nil
	}

	now := a.now()
	deliver, arm := a.widthGate.Offer(w, now)
	if deliver {
		a.state.setMeasuredWidth(w)
		return nil
	}
	if arm {
		return flushAfter(gateWidth, a.widthGate.Seq(), a.widthGate.Delay(now))
	}
	return nil
}

// syncDerived recomputes filteredItems from the committed query and the
// current catalog, then re-derives the ghost suggestion behind its
// slower gate.
func (a *App) syncDerived() tea.Cmd {
	filtered := search.Filter(a.state.query, a.state.allItems)
	a.state.setFiltered(filtered)
	a.refreshResultList()

	suggestion := search.Suggest(a.state.query, filtered)
	now := a.now()
	deliver, arm := a.suggestGate.Offer(suggestion, now)
	if deliver {
		a.state.setSuggestion(suggestion)
		return nil
	}
	if arm {
		return flushAfter(gateSuggest, a.suggestGate.Seq(), a.suggestGate.Delay(now))
	}
	return nil
}

func (a *App) refreshResultList() {
	items := make([]list.Item, len(a.state.filteredItems))
	for i, it := range a.state.filteredItems {
		items[i] = itemRow{item: it}
	}
	a.resultList.SetItems(items)
}

// shouldInputExpand reports whether the editable input should fill the
// card. It expands while the width is unmeasured or there is no
// suggestion to show; otherwise it pins to the measured width so the
// ghost remainder occupies the space immediately after the typed text.
func (a *App) shouldInputExpand() bool {
	return a.state.measuredWidth == measure.WidthFull || a.state.suggestion == ""
}

// ghostRemainder returns the not-yet-typed tail of the suggestion. A
// suggestion that no longer prefixes the committed query (possible for
// at most one gate interval) renders nothing.
func (a *App) ghostRemainder() string {
	s := a.state.suggestion
	if s == "" || !strings.HasPrefix(s, a.state.query) {
		return ""
	}
	return strings.TrimPrefix(s, a.state.query)
}

func (a *App) cardWidth() int {
	w := a.width - 8
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < minCardWidth {
		w = a.width
	}
	return w
}

// cardContentWidth is the usable width inside the card border/padding.
func (a *App) cardContentWidth() int {
	w := a.cardWidth() - 6
	if w < 1 {
		w = 1
	}
	return w
}

func (a *App) listHeight() int {
	h := a.height - chromeHeight - 4
	if h < minListHeight {
		h = minListHeight
	}
	return h
}

func (a *App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.view == ViewHelp {
		return a.renderHelpView()
	}

	card := lipgloss.JoinVertical(
		lipgloss.Left,
		HeaderStyle.Render("› "+AppName),
		"",
		a.renderInputRow(),
		"",
		a.resultList.View(),
		"",
		a.renderStatusLine(),
	)

	boxed := CardStyle.Width(a.cardWidth()).Render(card)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, boxed)
}

// renderInputRow renders the editable input and, when the input is
// pinned, the ghost suggestion in the remaining width.
func (a *App) renderInputRow() string {
	content := a.cardContentWidth()
	promptWidth := lipgloss.Width(a.input.Prompt)

	if a.shouldInputExpand() {
		a.input.Width = content - promptWidth
		return a.input.View()
	}

	pinned := a.state.measuredWidth
	if pinned+promptWidth > content {
		pinned = content - promptWidth
	}
	if pinned < 1 {
		pinned = 1
	}
	a.input.Width = pinned

	remaining := content - pinned - promptWidth
	ghost := GhostStyle.Render(truncateEnd(a.ghostRemainder(), remaining))
	return lipgloss.JoinHorizontal(lipgloss.Top, a.input.View(), ghost)
}

func (a *App) renderStatusLine() string {
	if a.err != nil {
		return ErrorMessageStyle.Render("✗ " + a.status)
	}
	if a.loading {
		return StatusBarStyle.Render(MsgLoadingCatalog)
	}
	if a.status != "" {
		return StatusBarStyle.Render(a.status)
	}
	if strings.TrimSpace(a.state.query) != "" {
		if len(a.state.filteredItems) == 0 {
			return StatusBarStyle.Render(MsgNoResults)
		}
		return StatusBarStyle.Render(MsgResultsCount(len(a.state.filteredItems)))
	}
	return HelpStyle.Render("Type to search • " + a.config.Keys.Help + ": help • " +
		a.config.Keys.Clear + ": clear • " + a.config.Keys.Quit + ": quit")
}

type itemRow struct {
	item catalog.Item
}

func (r itemRow) Title() string       { return ItemStyle.Render(r.item.Name) }
func (r itemRow) Description() string { return "id: " + r.item.ID }
func (r itemRow) FilterValue() string { return r.item.Name }

type gateID int

const (
	gateQuery gateID = iota
	gateWidth
	gateSuggest
)

type itemsLoadedMsg struct {
	items     []catalog.Item
	fromCache bool
	err       error
}

type gateFlushMsg struct {
	id  gateID
	seq uint64
}
