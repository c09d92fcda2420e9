package teaui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/nongdam/pkg/app"
	"tableflip.dev/nongdam/pkg/catalog/viewmodel"
	"tableflip.dev/nongdam/pkg/checklist"
	"tableflip.dev/nongdam/pkg/glyph"
	"tableflip.dev/nongdam/pkg/runner/tea/internal/theme"
)

// Exporter writes the export of st and returns the path. It runs off the
// update loop and must not touch the service.
type Exporter func(ctx context.Context, st app.State) (string, error)

// group item for left list
type groupItem struct{ g viewmodel.Group }

func (it groupItem) Title() string {
	return fmt.Sprintf("%s (%d/%d)", it.g.Label, it.g.Owned, it.g.Total)
}
func (it groupItem) Description() string { return "" }
func (it groupItem) FilterValue() string { return it.g.Label }

// catalog item for right list
type catalogItem struct{ it viewmodel.Item }

func (c catalogItem) Title() string {
	mark := glyph.MarkFor(c.it.Checked, c.it.Locked, c.it.Toggleable)
	title := fmt.Sprintf("%s %s", mark, c.it.Record.Name())
	if price := c.it.Record.Price(); price != "" {
		title += "  " + price
	}
	return title
}
func (c catalogItem) Description() string { return "" }
func (c catalogItem) FilterValue() string { return c.it.Record.Name() }

// Model contains UI state
type Model struct {
	svc    *app.Service
	ctx    context.Context
	export Exporter

	focus int // 0: groups, 1: items

	groupList list.Model
	itemList  list.Model
	grouping  viewmodel.Grouping

	status   string
	showHelp bool
	// loadErr is shown in place of the items while the catalog is empty.
	loadErr error
	// busy is set while an export runs; further exports are refused.
	busy bool

	termWidth  int
	termHeight int

	focusDel list.DefaultDelegate
	blurDel  list.DefaultDelegate
}

// New creates a new UI model backed by the Service. export may be nil;
// loadErr is the result of loading the catalog, if that failed.
func New(svc *app.Service, export Exporter, loadErr error) Model {
	dFocus := list.NewDefaultDelegate()
	dBlur := list.NewDefaultDelegate()
	dBlur.Styles.SelectedTitle = dBlur.Styles.NormalTitle
	dBlur.Styles.SelectedDesc = dBlur.Styles.NormalDesc
	dFocus.ShowDescription = false
	dBlur.ShowDescription = false
	dFocus.SetSpacing(0)
	dBlur.SetSpacing(0)

	l1 := list.New([]list.Item{}, dBlur, 28, 20)
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)
	l1.SetFilteringEnabled(false)

	l2 := list.New([]list.Item{}, dFocus, 60, 20)
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)
	l2.SetFilteringEnabled(false)

	m := Model{
		svc:       svc,
		ctx:       context.Background(),
		export:    export,
		focus:     1,
		groupList: l1,
		itemList:  l2,
		loadErr:   loadErr,
		status:    "h/l panes, j/k move, enter toggle, t tab, c checked only, r reset, e export, ? help, q quit",
		focusDel:  dFocus,
		blurDel:   dBlur,
	}
	m.updateFocusHeaders()
	return m
}

// messages
type exportDoneMsg struct {
	path string
	err  error
}

// Init renders the current state.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return refreshMsg{} }
}

type refreshMsg struct{}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case refreshMsg:
		m.refresh()
	case exportDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = "ERR: " + msg.err.Error()
		} else {
			m.status = "Exported " + msg.path
		}
	case tea.KeyPressMsg:
		skipListRouting = true
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.showHelp && msg.String() != "ctrl+c" {
				m.showHelp = false
				break
			}
			cmds = append(cmds, tea.Quit)
		case "?":
			m.showHelp = !m.showHelp
		case "h", "left":
			m.focus = 0
			m.updateFocusHeaders()
		case "l", "right":
			m.focus = 1
			m.updateFocusHeaders()
		case "enter", "space", " ", "x":
			if m.focus == 0 {
				m.focus = 1
				m.updateFocusHeaders()
				break
			}
			m.toggleCurrent()
		case "t":
			next := checklist.Wish
			if m.tab() == checklist.Wish {
				next = checklist.Owned
			}
			m.svc.SetTab(next)
			m.status = "Tab: " + next.Label()
			m.refresh()
		case "c":
			f := m.svc.State().Filters
			f.CheckedOnly = !f.CheckedOnly
			m.svc.SetFilters(f)
			if f.CheckedOnly {
				m.status = "Checked only"
			} else {
				m.status = "All items"
			}
			m.refresh()
		case "r":
			m.svc.ResetFilters()
			m.status = "Filters reset"
			m.refresh()
		case "e":
			if cmd := m.startExport(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		default:
			skipListRouting = false
		}
	}

	if !skipListRouting {
		if m.focus == 0 {
			prev := m.groupList.Index()
			var cmd tea.Cmd
			m.groupList, cmd = m.groupList.Update(msg)
			cmds = append(cmds, cmd)
			if m.groupList.Index() != prev {
				m.loadItems()
			}
		} else {
			var cmd tea.Cmd
			m.itemList, cmd = m.itemList.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) tab() checklist.Tab {
	if m.svc == nil {
		return checklist.Owned
	}
	return m.svc.State().Filters.Tab
}

// refresh re-derives the grouping and reloads both lists, keeping the
// selected group and item positions where possible.
func (m *Model) refresh() {
	if m.svc == nil {
		return
	}
	prevGroup := ""
	if g, ok := m.currentGroup(); ok {
		prevGroup = g.Label
	}
	prevItem := m.itemList.Index()

	m.grouping = m.svc.Grouping()
	items := make([]list.Item, 0, len(m.grouping.Groups))
	selected := 0
	for i, g := range m.grouping.Groups {
		items = append(items, groupItem{g: g})
		if g.Label == prevGroup {
			selected = i
		}
	}
	m.groupList.SetItems(items)
	if len(items) > 0 {
		m.groupList.Select(selected)
	}
	m.loadItems()
	if prevItem > 0 && prevItem < len(m.itemList.Items()) {
		m.itemList.Select(prevItem)
	}
	m.updateFocusHeaders()
}

func (m *Model) loadItems() {
	g, ok := m.currentGroup()
	if !ok {
		m.itemList.SetItems(nil)
		return
	}
	items := make([]list.Item, 0, len(g.Items))
	for _, it := range g.Items {
		items = append(items, catalogItem{it: it})
	}
	m.itemList.SetItems(items)
	m.itemList.Select(0)
}

func (m *Model) currentGroup() (viewmodel.Group, bool) {
	sel, ok := m.groupList.SelectedItem().(groupItem)
	if !ok {
		return viewmodel.Group{}, false
	}
	return sel.g, true
}

func (m *Model) currentItem() (viewmodel.Item, bool) {
	sel, ok := m.itemList.SelectedItem().(catalogItem)
	if !ok {
		return viewmodel.Item{}, false
	}
	return sel.it, true
}

// toggleCurrent delegates to the service. Locked items and checked-only
// mode are read only.
func (m *Model) toggleCurrent() {
	it, ok := m.currentItem()
	if !ok || m.svc == nil {
		return
	}
	if !it.Toggleable {
		if it.Locked {
			m.status = it.Record.Name() + " is owned"
		} else {
			m.status = "Checked only view is read only"
		}
		return
	}
	tab := m.tab()
	if m.svc.Toggle(tab, it.Record.ID()) {
		m.status = fmt.Sprintf("%s added to %s", it.Record.Name(), tab.Label())
	} else {
		m.status = fmt.Sprintf("%s removed from %s", it.Record.Name(), tab.Label())
	}
	m.refresh()
}

func (m *Model) startExport() tea.Cmd {
	if m.export == nil {
		m.status = "Export is not available"
		return nil
	}
	if m.busy {
		m.status = "Export already running"
		return nil
	}
	var st app.State
	if m.svc != nil {
		st = m.svc.State()
	}
	m.busy = true
	m.status = "Exporting..."
	export, ctx := m.export, m.ctx
	return func() tea.Msg {
		path, err := export(ctx, st)
		return exportDoneMsg{path: path, err: err}
	}
}

// View renders two lists, the status line and the optional help.
func (m Model) View() string {
	th := theme.For(m.tab())

	left := m.groupList.View()
	right := m.itemList.View()
	switch {
	case len(m.grouping.Groups) == 0 && m.loadErr != nil:
		right = th.Footer.Busy.Render(wordwrap.String(m.loadErr.Error(), m.itemList.Width()))
	case len(m.grouping.Groups) == 0 && m.grouping.Message != "":
		right = m.grouping.Message
	}
	gap := lipgloss.NewStyle().Padding(0, 1).Render
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, gap(" "), right)

	header := th.Tab.Render(m.tab().Label())
	if m.svc != nil && m.svc.State().Filters.CheckedOnly {
		header += " " + th.Footer.Status.Render("checked only")
	}

	status := th.Footer.Status.Render(m.status)
	if m.busy {
		status = th.Footer.Busy.Render(m.status)
	}

	out := header + "\n\n" + body
	if m.showHelp {
		width := m.termWidth
		if width <= 0 {
			width = 80
		}
		out += "\n\n" + th.Footer.Help.Render(wordwrap.String(helpText(), width))
	}
	return out + "\n\n" + status
}

func helpText() string {
	text := "Keys: h/l or ←/→ switch panes, j/k or ↑/↓ move, enter/space/x toggle the item on the active tab, t switch tab, c checked only, r reset filters, e export image, q quit. Marks:"
	for _, g := range glyph.DefaultGlyphs() {
		text += fmt.Sprintf(" %s %s,", g.Symbol, g.Meaning)
	}
	return text[:len(text)-1]
}

// Run starts the program.
func Run(svc *app.Service, export Exporter, loadErr error) error {
	p := tea.NewProgram(New(svc, export, loadErr), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// applySizes recalculates list sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	left := m.termWidth / 3
	if left < 24 {
		left = 24
	}
	if left > 40 {
		left = 40
	}
	right := m.termWidth - left - 4
	if right < 20 {
		right = 20
	}
	height := m.termHeight - 6
	if height < 5 {
		height = 5
	}
	m.groupList.SetSize(left, height)
	m.itemList.SetSize(right, height)
}

// updateFocusHeaders updates pane titles to reflect which pane is focused.
func (m *Model) updateFocusHeaders() {
	const on = "» "
	const off = "  "
	items := "Items"
	if g, ok := m.currentGroup(); ok {
		items = g.Label
	}
	if m.focus == 0 {
		m.groupList.Title = on + "Groups"
		m.itemList.Title = off + items
		m.groupList.SetDelegate(m.focusDel)
		m.itemList.SetDelegate(m.blurDel)
	} else {
		m.groupList.Title = off + "Groups"
		m.itemList.Title = on + items
		m.groupList.SetDelegate(m.blurDel)
		m.itemList.SetDelegate(m.focusDel)
	}
}
