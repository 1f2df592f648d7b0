// Package measure tracks the rendered width of the query text. It is
// the terminal counterpart of an off-screen DOM mirror element: the
// text is "laid out" in display cells and the resulting width decides
// whether the input hugs its content or spans the full card.
package measure

import runewidth "github.com/mattn/go-runewidth"

// WidthFull is the sentinel for "not yet measured": the input should
// occupy the full container width until a real measurement lands.
const WidthFull = -1

// TextWidth reports the display width of s in terminal cells,
// accounting for wide runes.
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Mirror mirrors the query text and remembers the last measurement.
// Measurement is keyed on the text value changing, so offering the same
// text twice does not re-trigger a width commit downstream.
type Mirror struct {
	text  string
	width int
}

// NewMirror returns an unmeasured mirror.
func NewMirror() *Mirror {
	return &Mirror{width: WidthFull}
}

// Sync updates the mirrored text and reports the measured width plus
// whether this call produced a new measurement.
func (m *Mirror) Sync(text string) (width int, changed bool) {
	if m.width != WidthFull && text == m.text {
		return m.width, false
	}
	m.text = text
	m.width = TextWidth(text)
	return m.width, true
}

// Width returns the last measured width, or WidthFull when nothing has
// been measured yet.
func (m *Mirror) Width() int {
	return m.width
}
