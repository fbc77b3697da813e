package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/listboard/internal/board"
	"github.com/jask/listboard/internal/config"
	"github.com/jask/listboard/internal/database/repository"
	"github.com/jask/listboard/internal/service"
)

const historyLimit = 15

// App is the interactive board. Columns are the catalog followed by the
// lists in display order; a keyboard pick-up/drop pair stands in for a drag
// gesture.
type App struct {
	ctx      context.Context
	services Services
	cfg      config.Config
	column   int            // 0 is the catalog
	cursors  map[string]int // container id -> cursor row
	drag     *board.Location
	modal    modalState
	history  []repository.Record
	recorded int // journal size when history was loaded
	status   string
	keys     *KeyRegistry
	width    int // last known terminal width
}

// Services are the collaborators the App drives. Maintenance may be nil.
type Services struct {
	Board       *service.BoardService
	Maintenance *service.MaintenanceService
}

type modalState string

const (
	modalNone         modalState = ""
	modalHistory      modalState = "history"
	modalConfirmReset modalState = "confirmReset"
)

type (
	statusMsg  string
	errMsg     struct{ err error }
	historyMsg struct {
		records []repository.Record
		total   int
	}
)

func (e errMsg) Error() string { return e.err.Error() }

// New returns an App with the first column focused.
func New(ctx context.Context, cfg config.Config, services Services) *App {
	return &App{
		ctx:      ctx,
		services: services,
		cfg:      cfg,
		cursors:  map[string]int{},
		status:   "space: pick up",
		keys:     NewKeyRegistry(DefaultKeyBindings()),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		return a, nil
	case statusMsg:
		a.status = string(m)
		return a, nil
	case errMsg:
		a.status = "error: " + m.Error()
		return a, nil
	case historyMsg:
		a.history = m.records
		a.recorded = m.total
		return a, nil
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		return a.handleBoardKey(m)
	}
	return a, nil
}

// Board events run inside Update so each one completes before the next key
// is handled.
func (a *App) handleBoardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ok := a.keys.ActionFor(m, a.scope())
	if !ok {
		return a, nil
	}
	switch action {
	case actionQuit:
		return a, tea.Quit
	case actionLeft:
		a.focus(a.column - 1)
	case actionRight:
		a.focus(a.column + 1)
	case actionUp:
		a.moveCursor(-1)
	case actionDown:
		a.moveCursor(1)
	case actionPickDrop:
		if a.drag == nil {
			a.pickUp()
		} else {
			a.dropAtCursor()
		}
	case actionOutside:
		a.dropOutside()
	case actionCancel:
		a.drag = nil
		a.clampCursor()
		a.status = "drag cancelled"
	case actionAddList:
		a.addList()
	case actionHistory:
		a.modal = modalHistory
		return a, a.loadHistory()
	case actionReset:
		if a.services.Maintenance != nil {
			a.modal = modalConfirmReset
		}
	}
	return a, nil
}

func (a *App) scope() string {
	if a.drag != nil {
		return scopeDrag
	}
	return scopeBoard
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalConfirmReset:
		switch m.String() {
		case "y":
			a.modal = modalNone
			return a, a.resetCmd()
		case "n", "esc":
			a.modal = modalNone
		}
	default:
		switch m.String() {
		case "esc", "H", "q":
			a.modal = modalNone
		}
	}
	return a, nil
}

func (a *App) pickUp() {
	id := a.containerAt(a.column)
	cur := a.cursors[id]
	if cur >= a.columnLen(a.column) {
		a.status = "nothing to pick up"
		return
	}
	a.drag = &board.Location{ContainerID: id, Index: cur}
	a.status = fmt.Sprintf("moving %q: choose a slot, space to drop, x to drop outside, esc to cancel", a.labelAt(*a.drag))
}

func (a *App) dropAtCursor() {
	id := a.containerAt(a.column)
	if id == board.CatalogContainerID {
		a.status = "the catalog is not a drop target"
		return
	}
	idx := a.cursors[id]
	// slots are drawn around the lifted entry; the engine counts them after it
	// has been removed
	if id == a.drag.ContainerID && idx > a.drag.Index {
		idx--
	}
	a.finishDrag(&board.Location{ContainerID: id, Index: idx})
}

func (a *App) dropOutside() {
	if a.drag == nil {
		return
	}
	a.finishDrag(nil)
}

func (a *App) finishDrag(dst *board.Location) {
	o := board.DragOutcome{Source: *a.drag, Destination: dst}
	a.drag = nil
	tr, err := a.services.Board.Drop(a.ctx, o)
	if err != nil {
		a.clampCursor()
		a.status = "error: " + err.Error()
		return
	}
	switch tr.Kind {
	case board.KindNoOp:
		a.status = "dropped outside: nothing changed"
	default:
		a.status = fmt.Sprintf("%s %q", tr.Kind, tr.Content)
		a.cursors[tr.Destination.ContainerID] = tr.Destination.Index
	}
	a.clampCursor()
}

func (a *App) addList() {
	id, err := a.services.Board.AddList(a.ctx)
	if err != nil {
		a.status = "error: " + err.Error()
		return
	}
	a.focus(a.services.Board.State().Len())
	a.cursors[id] = 0
	a.status = "list added"
}

func (a *App) focus(col int) {
	if col < 0 || col > a.services.Board.State().Len() {
		return
	}
	a.column = col
	a.clampCursor()
}

func (a *App) moveCursor(delta int) {
	id := a.containerAt(a.column)
	a.cursors[id] += delta
	a.clampCursor()
}

// clampCursor keeps the focused cursor on a valid row. While dragging, a list
// also offers the slot after its last entry.
func (a *App) clampCursor() {
	id := a.containerAt(a.column)
	hi := a.columnLen(a.column) - 1
	if a.drag != nil && id != board.CatalogContainerID {
		hi++
	}
	cur := a.cursors[id]
	if cur > hi {
		cur = hi
	}
	if cur < 0 {
		cur = 0
	}
	a.cursors[id] = cur
}

func (a *App) containerAt(col int) string {
	if col == 0 {
		return board.CatalogContainerID
	}
	ids := a.services.Board.State().ListIDs()
	if col-1 < len(ids) {
		return ids[col-1]
	}
	return board.CatalogContainerID
}

func (a *App) columnLen(col int) int {
	if col == 0 {
		return a.services.Board.Catalog.Len()
	}
	entries, _ := a.services.Board.State().Entries(a.containerAt(col))
	return len(entries)
}

func (a *App) labelAt(l board.Location) string {
	if l.IsCatalog() {
		t, _ := a.services.Board.Catalog.At(l.Index)
		return t.Content
	}
	entries, _ := a.services.Board.State().Entries(l.ContainerID)
	if l.Index < len(entries) {
		return entries[l.Index].Content
	}
	return ""
}

// commands
func (a *App) loadHistory() tea.Cmd {
	return func() tea.Msg {
		recs, err := a.services.Board.History(a.ctx, repository.JournalFilters{Limit: historyLimit})
		if err != nil {
			return errMsg{err}
		}
		total, err := a.services.Board.HistorySize(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg{records: recs, total: total}
	}
}

func (a *App) resetCmd() tea.Cmd {
	return func() tea.Msg {
		if a.services.Maintenance == nil {
			return errMsg{errors.New("maintenance not configured")}
		}
		if err := a.services.Maintenance.Reset(a.ctx); err != nil {
			return errMsg{err}
		}
		return statusMsg("history cleared")
	}
}

// view
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	columnStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(22)
	draggedItem = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	slotStyle   = lipgloss.NewStyle().Bold(true)
	modalStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (a *App) View() string {
	if a.modal != modalNone {
		return a.renderModal()
	}
	cols := []string{a.renderColumn(0, "Catalog")}
	for i := range a.services.Board.State().ListIDs() {
		cols = append(cols, a.renderColumn(i+1, fmt.Sprintf("List %d", i+1)))
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("listboard"))
	b.WriteString("\n\n")
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if a.width > 0 && lipgloss.Width(body) > a.width {
		body = lipgloss.JoinVertical(lipgloss.Left, cols...)
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(a.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(a.keys.Help(a.scope())))
	return b.String()
}

func (a *App) renderColumn(col int, name string) string {
	id := a.containerAt(col)
	focused := col == a.column
	style := columnStyle
	if focused {
		style = style.BorderForeground(lipgloss.Color(a.cfg.UI.Accent))
	}

	var rows []string
	if col == 0 {
		for _, t := range a.services.Board.Catalog.Templates() {
			rows = append(rows, t.Content)
		}
	} else {
		entries, _ := a.services.Board.State().Entries(id)
		for _, e := range entries {
			rows = append(rows, e.Content)
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", name, len(rows))))
	b.WriteString("\n")
	cur := a.cursors[id]
	dropping := focused && a.drag != nil && col != 0
	for i, row := range rows {
		if dropping && i == cur {
			b.WriteString(slotStyle.Render("┈┈ drop here ┈┈") + "\n")
		}
		marker := " "
		if focused && !dropping && i == cur {
			marker = "▶"
		}
		if a.drag != nil && a.drag.ContainerID == id && a.drag.Index == i {
			row = draggedItem.Render(row)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", marker, row))
	}
	if dropping && cur >= len(rows) {
		b.WriteString(slotStyle.Render("┈┈ drop here ┈┈") + "\n")
	}
	if len(rows) == 0 && !dropping {
		b.WriteString(helpStyle.Render("Drop items here"))
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalConfirmReset:
		return modalStyle.Render(titleStyle.Render("Clear history?") + "\nThe board is kept.\n[y] Yes  [n] No")
	default:
		var b strings.Builder
		b.WriteString(titleStyle.Render(fmt.Sprintf("History (%d of %d)", len(a.history), a.recorded)) + "\n")
		if len(a.history) == 0 {
			b.WriteString("no transitions yet\n")
		}
		for _, r := range a.history {
			b.WriteString(fmt.Sprintf("%3d  %-8s %s\n", r.Revision, r.Kind, describe(r)))
		}
		b.WriteString("[esc] Close")
		return modalStyle.Render(b.String())
	}
}

func describe(r repository.Record) string {
	switch r.Kind {
	case repository.KindAddList:
		return "new list"
	case repository.KindNoOp:
		return "released outside"
	}
	if r.Content == nil {
		return ""
	}
	return *r.Content
}
