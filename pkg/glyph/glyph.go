// Package glyph holds the marks used to draw item state in the terminal.
package glyph

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

// Mark is the display state of one item.
type Mark int

const (
	Unchecked Mark = iota
	Checked
	// Locked is an owned item seen from the wish tab.
	Locked
	// Gallery is an item shown in checked-only mode.
	Gallery
)

// MarkFor picks the mark for an item's derived flags.
func MarkFor(checked, locked, toggleable bool) Mark {
	switch {
	case locked:
		return Locked
	case checked:
		return Checked
	case !toggleable:
		return Gallery
	}
	return Unchecked
}

func (m Mark) Glyph() Glyph {
	for _, g := range DefaultGlyphs() {
		if g.Key == m.key() {
			return g
		}
	}
	return Glyph{}
}

func (m Mark) String() string {
	return m.Glyph().Symbol
}

func (m Mark) key() string {
	switch m {
	case Checked:
		return "x"
	case Locked:
		return "#"
	case Gallery:
		return "*"
	}
	return " "
}

// DefaultGlyphs lists every mark in legend order.
func DefaultGlyphs() []Glyph {
	return []Glyph{{
		Key:     " ",
		Symbol:  "○",
		Meaning: "not checked",
	}, {
		Key:     "x",
		Symbol:  "●",
		Meaning: "checked",
	}, {
		Key:     "#",
		Symbol:  "◆",
		Meaning: "owned, locked on the wish tab",
	}, {
		Key:     "*",
		Symbol:  "✷",
		Meaning: "checked-only gallery item",
	}}
}
