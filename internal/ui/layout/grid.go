// Package layout wraps a flat list of names into rows that fit the terminal
// width and maps a two-dimensional cursor onto list indices.
package layout

import (
	textutil "github.com/kk-code-lab/gfile/internal/textutil"
)

const (
	// MinNameWidth and MaxNameWidth bound the per-name column budget.
	MinNameWidth = 8
	MaxNameWidth = 80
	// CellChrome is the space a cell needs besides the name: one marker
	// column in front and a two-column gap after it.
	CellChrome = 3
)

// Cell is one slot of the grid.
type Cell struct {
	Index int    // position in the entry list
	Label string // sanitized, possibly truncated name
	Width int    // display width of Label
}

// Grid is the wrapped arrangement of an entry list.
type Grid struct {
	Rows      [][]Cell
	Padding   int // column budget every label is padded to
	CellWidth int // Padding + CellChrome
}

// Cursor addresses a cell by row and column.
type Cursor struct {
	Row int
	Col int
}

// NameCap returns the widest a name may be displayed at the given terminal
// width before it is truncated.
func NameCap(width int) int {
	c := width / 6
	if c < MinNameWidth {
		return MinNameWidth
	}
	if c > MaxNameWidth {
		return MaxNameWidth
	}
	return c
}

// Layout arranges names into rows no wider than width. Every row holds at
// least one cell, so a terminal narrower than a single cell still gets one
// name per row.
func Layout(names []string, width int) Grid {
	nameCap := NameCap(width)

	labels := make([]string, len(names))
	widths := make([]int, len(names))
	padding := 0
	for i, name := range names {
		label := textutil.SanitizeTerminalText(name)
		w := textutil.DisplayWidth(label)
		if w > nameCap {
			label = textutil.TruncateToWidth(label, nameCap)
			w = textutil.DisplayWidth(label)
		}
		labels[i] = label
		widths[i] = w
		if w > padding {
			padding = w
		}
	}

	grid := Grid{
		Padding:   padding,
		CellWidth: padding + CellChrome,
	}
	if len(names) == 0 {
		return grid
	}

	var row []Cell
	rowWidth := 0
	for i := range labels {
		if len(row) > 0 && rowWidth+grid.CellWidth > width {
			grid.Rows = append(grid.Rows, row)
			row = nil
			rowWidth = 0
		}
		row = append(row, Cell{Index: i, Label: labels[i], Width: widths[i]})
		rowWidth += grid.CellWidth
	}
	if len(row) > 0 {
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// Len returns the number of cells in the grid.
func (g Grid) Len() int {
	n := 0
	for _, row := range g.Rows {
		n += len(row)
	}
	return n
}

// RowLen returns the number of cells in row, or 0 when row is out of range.
func (g Grid) RowLen(row int) int {
	if row < 0 || row >= len(g.Rows) {
		return 0
	}
	return len(g.Rows[row])
}

// Index returns the entry index under c, or -1 when c is outside the grid.
func (g Grid) Index(c Cursor) int {
	if c.Col < 0 || c.Col >= g.RowLen(c.Row) {
		return -1
	}
	return g.Rows[c.Row][c.Col].Index
}

// Locate returns the cursor of the cell holding index. Indices past the end
// resolve to the last cell and negative ones to the first.
func (g Grid) Locate(index int) Cursor {
	if len(g.Rows) == 0 || index <= 0 {
		return Cursor{}
	}
	for r, row := range g.Rows {
		if n := len(row); n > 0 && index <= row[n-1].Index {
			for c, cell := range row {
				if cell.Index == index {
					return Cursor{Row: r, Col: c}
				}
			}
		}
	}
	last := len(g.Rows) - 1
	return g.Clamp(Cursor{Row: last, Col: len(g.Rows[last]) - 1})
}

// Clamp moves c to the nearest valid cell.
func (g Grid) Clamp(c Cursor) Cursor {
	if len(g.Rows) == 0 {
		return Cursor{}
	}
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row >= len(g.Rows) {
		c.Row = len(g.Rows) - 1
	}
	n := len(g.Rows[c.Row])
	if c.Col >= n {
		c.Col = n - 1
	}
	if c.Col < 0 {
		c.Col = 0
	}
	return c
}
