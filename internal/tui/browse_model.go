package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pcarver/galleria/internal/artic"
	"github.com/pcarver/galleria/internal/browse"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 24
)

// chromeHeight is the number of rows used by the title, footer and help
// lines around the table.
const chromeHeight = 6

// minTableHeight keeps the table usable on tiny terminals.
const minTableHeight = 4

// sortableColumns maps the numeric sort keys to API field names, in
// column order.
var sortableColumns = []string{"title", "place_of_origin", "artist_display", "date_start", "date_end"}

// pageLoadedMsg is sent when a page fetch completes.
type pageLoadedMsg struct {
	req  browse.LoadRequest
	resp *artic.PageResponse
	err  error
}

// BrowseModel is the Bubble Tea model for the gallery browser. All state
// transitions run on the Bubble Tea event loop; fetches run as commands
// and report back via pageLoadedMsg.
type BrowseModel struct {
	ctx     context.Context
	browser *browse.Browser

	table       table.Model
	targetInput textinput.Model
	spin        spinner.Model

	showPopover bool
	quitting    bool

	width  int
	height int
}

// NewBrowseModel creates the browser model over the given controller.
func NewBrowseModel(ctx context.Context, browser *browse.Browser) *BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "number of rows"
	ti.CharLimit = 7
	ti.Width = 20

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = AccentStyle

	m := &BrowseModel{
		ctx:         ctx,
		browser:     browser,
		targetInput: ti,
		spin:        sp,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.table = m.buildTable()

	return m
}

// Init kicks off the spinner and the first page fetch.
func (m *BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchCmd(m.browser.BeginLoad(1)))
}

// fetchCmd runs the request against the data source off the event loop.
func (m *BrowseModel) fetchCmd(req browse.LoadRequest) tea.Cmd {
	ctx := m.ctx
	browser := m.browser

	return func() tea.Msg {
		resp, err := browser.Fetch(ctx, req)
		return pageLoadedMsg{req: req, resp: resp, err: err}
	}
}

// Update handles messages and updates the model state.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		return m, nil

	case pageLoadedMsg:
		if m.browser.Apply(msg.req, msg.resp, msg.err) {
			m.rebuildTable()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showPopover {
			return m.handlePopoverKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input in the main table view.
func (m *BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "left", "h":
		return m.gotoPage(m.browser.Page() - 1)

	case "right", "l":
		return m.gotoPage(m.browser.Page() + 1)

	case "g":
		return m.gotoPage(1)

	case "G":
		return m.gotoPage(m.browser.TotalPages())

	case " ":
		m.toggleCursorRow()
		return m, nil

	case "a":
		m.browser.Selection().AddAll(m.browser.Rows())
		m.rebuildTable()
		return m, nil

	case "A":
		m.browser.Selection().RemoveAll(m.browser.Rows())
		m.rebuildTable()
		return m, nil

	case "t":
		m.showPopover = true
		m.targetInput.SetValue("")
		m.targetInput.Focus()
		return m, textinput.Blink

	case "1", "2", "3", "4", "5":
		idx := int(msg.String()[0] - '1')
		req := m.browser.ToggleSort(sortableColumns[idx])
		return m, m.fetchCmd(req)

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

// handlePopoverKey processes keyboard input while the selection-target
// popover is open.
func (m *BrowseModel) handlePopoverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showPopover = false
		m.targetInput.Blur()
		return m, nil

	case "enter":
		target, err := strconv.Atoi(strings.TrimSpace(m.targetInput.Value()))
		if err != nil {
			// Keep the popover open for correction.
			return m, nil
		}

		req, err := m.browser.BeginTargetLoad(target)
		if err != nil {
			return m, nil
		}

		m.showPopover = false
		m.targetInput.Blur()
		return m, m.fetchCmd(req)

	default:
		var cmd tea.Cmd
		m.targetInput, cmd = m.targetInput.Update(msg)
		return m, cmd
	}
}

// gotoPage begins a load for the given page via the offset adapter,
// clamping to the known page range.
func (m *BrowseModel) gotoPage(page int) (tea.Model, tea.Cmd) {
	if page < 1 {
		page = 1
	}
	if total := m.browser.TotalPages(); total > 0 && page > total {
		page = total
	}
	if page == m.browser.Page() {
		return m, nil
	}

	offset := (page - 1) * m.browser.PageSize()
	return m, m.fetchCmd(m.browser.BeginOffsetLoad(offset))
}

// toggleCursorRow flips the selection state of the row under the cursor.
func (m *BrowseModel) toggleCursorRow() {
	rows := m.browser.Rows()
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(rows) {
		return
	}

	m.browser.Selection().Toggle(rows[cursor])
	m.rebuildTable()
}

// rebuildTable reconstructs the table from the current page, keeping the
// cursor position where possible.
func (m *BrowseModel) rebuildTable() {
	cursor := m.table.Cursor()
	m.table = m.buildTable()
	if cursor > 0 && cursor < len(m.browser.Rows()) {
		m.table.SetCursor(cursor)
	}
}

// buildTable creates the table model for the current page of rows.
func (m *BrowseModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "Sel", Width: 3},
		{Title: m.columnTitle("Title", "title"), Width: 34},
		{Title: m.columnTitle("Origin", "place_of_origin"), Width: 14},
		{Title: m.columnTitle("Artist", "artist_display"), Width: 24},
		{Title: m.columnTitle("Start", "date_start"), Width: 6},
		{Title: m.columnTitle("End", "date_end"), Width: 6},
	}

	artworks := m.browser.Rows()
	rows := make([]table.Row, len(artworks))
	for i, a := range artworks {
		mark := "[ ]"
		if m.browser.Selection().Contains(a.ID) {
			mark = "[x]"
		}
		rows[i] = table.Row{
			mark,
			truncate(a.Title, 34),
			truncate(a.PlaceOfOrigin, 14),
			truncate(a.ArtistDisplay, 24),
			yearString(a.DateStart),
			yearString(a.DateEnd),
		}
	}

	height := m.height - chromeHeight
	if height < minTableHeight {
		height = minTableHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// columnTitle decorates a sortable column header with the active sort
// direction marker.
func (m *BrowseModel) columnTitle(title, field string) string {
	sort := m.browser.Sort()
	if sort.Field != field || !sort.Active() {
		return title
	}
	if sort.Direction == artic.SortDesc {
		return title + " ↓"
	}
	return title + " ↑"
}

// truncate shortens a cell value to fit its column, counting runes so
// multi-byte titles are never split mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// yearString renders a year, with zero shown as blank.
func yearString(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}

// Quitting reports whether the user asked to exit.
func (m *BrowseModel) Quitting() bool {
	return m.quitting
}
