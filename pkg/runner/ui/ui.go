package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcusolsson/tui-go"

	"tableflip.dev/nongdam/pkg/app"
	"tableflip.dev/nongdam/pkg/catalog/viewmodel"
	"tableflip.dev/nongdam/pkg/checklist"
	"tableflip.dev/nongdam/pkg/glyph"
)

// UI is a two pane browser: groups on the left, the items of the selected
// group on the right. Activating an item toggles it on the active tab.
type UI struct {
	Service *app.Service

	grouping viewmodel.Grouping

	indexes    *tui.Table
	indexTitle string
	indexView  *tui.Box

	collection      *tui.Table
	collectionView  *tui.Box
	collectionTitle string

	status *tui.StatusBar
}

func (d *UI) Do(ctx context.Context) error {
	if len(d.Service.State().Snapshot) == 0 {
		if _, err := d.Service.Load(ctx); err != nil {
			return err
		}
	}
	root, popup := d.build()

	ui, err := tui.New(root)
	if err != nil {
		return err
	}

	isKey := false
	ui.SetKeybinding("k", func() {
		if isKey {
			ui.SetWidget(root)
			isKey = false
		} else {
			ui.SetWidget(popup)
			isKey = true
		}
	})

	ui.SetKeybinding("Left", func() { d.focusIndex() })
	ui.SetKeybinding("Right", func() { d.focusCollection() })
	ui.SetKeybinding("t", func() { d.switchTab() })
	ui.SetKeybinding("c", func() { d.toggleCheckedOnly() })
	ui.SetKeybinding("r", func() { d.resetFilters() })

	ui.SetKeybinding("Esc", func() { ui.Quit() })
	ui.SetKeybinding("q", func() { ui.Quit() })

	d.refresh()
	d.focusCollection()

	return ui.Run()
}

// build creates the widget tree and wires table callbacks.
func (d *UI) build() (root, popup tui.Widget) {
	iTable := tui.NewTable(1, 0)

	index := tui.NewVBox(
		iTable,
		tui.NewSpacer(),
	)
	index.SetBorder(true)
	index.SetSizePolicy(tui.Preferred, tui.Expanding)

	cTable := tui.NewTable(1, 0)
	cTable.SetFocused(true)
	cTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`arrows move, enter toggles, 't' tab, 'c' checked only, 'r' reset, 'k' key, ESC or 'q' to QUIT`)

	collection := tui.NewVBox(cTable)
	collection.SetBorder(true)
	collection.SetSizePolicy(tui.Expanding, tui.Maximum)

	selector := tui.NewHBox(index, collection)

	body := tui.NewVBox(
		selector,
		tui.NewSpacer(),
		status,
	)

	key := keyUI()
	key.SetBorder(true)
	key.SetTitle("key")

	keys := tui.NewVBox(
		tui.NewHBox(key, tui.NewSpacer()),
		tui.NewSpacer(),
		status,
	)

	d.indexes = iTable
	d.indexView = index
	d.collection = cTable
	d.collectionView = collection
	d.status = status

	cTable.OnItemActivated(func(t *tui.Table) {
		d.status.SetText(d.activate(t.Selected()))
	})
	iTable.OnSelectionChanged(func(*tui.Table) {
		d.populateCollection()
	})

	return body, keys
}

// activate toggles the i-th item of the selected group and returns a status
// message. Locked items and checked-only mode never reach the service.
func (d *UI) activate(i int) string {
	grp, ok := d.selectedGroup()
	if !ok || i < 0 || i >= len(grp.Items) {
		return ""
	}
	it := grp.Items[i]
	if !it.Toggleable {
		if it.Locked {
			return fmt.Sprintf("%s is owned", it.Record.Name())
		}
		return "checked only view is read only"
	}

	tab := d.Service.State().Filters.Tab
	on := d.Service.Toggle(tab, it.Record.ID())
	d.refresh()
	d.collection.Select(i)

	if on {
		return fmt.Sprintf("%s added to %s", it.Record.Name(), tab.Label())
	}
	return fmt.Sprintf("%s removed from %s", it.Record.Name(), tab.Label())
}

func (d *UI) switchTab() {
	next := checklist.Wish
	if d.Service.State().Filters.Tab == checklist.Wish {
		next = checklist.Owned
	}
	d.Service.SetTab(next)
	d.refresh()
}

func (d *UI) toggleCheckedOnly() {
	f := d.Service.State().Filters
	f.CheckedOnly = !f.CheckedOnly
	d.Service.SetFilters(f)
	d.refresh()
}

func (d *UI) resetFilters() {
	d.Service.ResetFilters()
	d.refresh()
}

// refresh re-derives the grouping and redraws both panes, keeping the
// selected group when it still exists.
func (d *UI) refresh() {
	prev := ""
	if grp, ok := d.selectedGroup(); ok {
		prev = grp.Label
	}

	d.grouping = d.Service.Grouping()
	f := d.Service.State().Filters
	d.indexTitle = f.Tab.Label()
	if f.CheckedOnly {
		d.indexTitle += " *"
	}

	d.populateIndex(prev)
	d.populateCollection()
	if d.indexes.IsFocused() {
		d.focusIndex()
	} else {
		d.focusCollection()
	}
}

func (d *UI) selectedGroup() (viewmodel.Group, bool) {
	if d.indexes == nil {
		return viewmodel.Group{}, false
	}
	i := d.indexes.Selected()
	if i < 0 || i >= len(d.grouping.Groups) {
		return viewmodel.Group{}, false
	}
	return d.grouping.Groups[i], true
}

func (d *UI) focusIndex() {
	d.indexes.SetFocused(true)
	d.indexView.SetTitle(strings.ToUpper(d.indexTitle))

	d.collection.SetFocused(false)
	d.collectionView.SetTitle("")
}

func (d *UI) focusCollection() {
	d.indexes.SetFocused(false)
	d.indexView.SetTitle(d.indexTitle)

	d.collection.SetFocused(true)
	d.collectionView.SetTitle(d.collectionTitle)
}

func (d *UI) populateIndex(keep string) {
	d.indexes.RemoveRows()

	selected := 0
	for i, grp := range d.grouping.Groups {
		d.indexes.AppendRow(tui.NewLabel(fmt.Sprintf("%s (%d/%d)", grp.Label, grp.Owned, grp.Total)))
		if grp.Label == keep {
			selected = i
		}
	}
	if len(d.grouping.Groups) > 0 {
		d.indexes.Select(selected)
	}
}

func (d *UI) populateCollection() {
	d.collection.RemoveRows()

	grp, ok := d.selectedGroup()
	if !ok {
		d.collectionTitle = ""
		if d.grouping.Message != "" {
			d.collection.AppendRow(tui.NewLabel(d.grouping.Message))
		}
		return
	}
	d.collectionTitle = grp.Label
	for _, it := range grp.Items {
		d.collection.AppendRow(tui.NewLabel(itemLine(it)))
	}
	if len(grp.Items) > 0 {
		d.collection.Select(0)
	}
}

func itemLine(it viewmodel.Item) string {
	mark := glyph.MarkFor(it.Checked, it.Locked, it.Toggleable)
	line := fmt.Sprintf("%s %s", mark, it.Record.Name())
	if price := it.Record.Price(); price != "" {
		line += "  " + price
	}
	return line
}

func keyUI() *tui.Box {
	marks := []tui.Widget{tui.NewLabel("Marks")}
	for _, v := range glyph.DefaultGlyphs() {
		marks = append(marks, tui.NewLabel(fmt.Sprintf("%s  %s", v.Symbol, v.Meaning)))
	}
	marks = append(marks, tui.NewSpacer())
	return tui.NewVBox(marks...)
}
