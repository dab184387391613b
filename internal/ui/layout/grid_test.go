package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	textutil "github.com/kk-code-lab/gfile/internal/textutil"
)

func TestNameCap(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, MinNameWidth},
		{40, MinNameWidth},
		{60, 10},
		{120, 20},
		{480, MaxNameWidth},
		{1000, MaxNameWidth},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("width=%d", tt.width), func(t *testing.T) {
			assert.Equal(t, tt.want, NameCap(tt.width))
		})
	}
}

func TestLayoutSingleRowOnWideTerminal(t *testing.T) {
	names := []string{".", "..", "a.txt", "b", "z.png"}
	g := Layout(names, 200)

	require.Len(t, g.Rows, 1)
	assert.Equal(t, 5, g.Padding)
	assert.Equal(t, 5+CellChrome, g.CellWidth)
	for i, cell := range g.Rows[0] {
		assert.Equal(t, i, cell.Index)
		assert.Equal(t, names[i], cell.Label)
	}
}

func TestLayoutWrapsWhenCellDoesNotFit(t *testing.T) {
	// 5 names, cell width 1+3=4, width 12 fits exactly three cells.
	names := []string{"a", "b", "c", "d", "e"}
	g := Layout(names, 12)

	require.Len(t, g.Rows, 2)
	assert.Equal(t, 3, g.RowLen(0))
	assert.Equal(t, 2, g.RowLen(1))
	assert.Equal(t, 3, g.Rows[1][0].Index)
}

func TestLayoutRowAlwaysHoldsOneCell(t *testing.T) {
	names := []string{"alpha", "beta", "gamma"}
	g := Layout(names, 2)

	require.Len(t, g.Rows, 3)
	for r := range g.Rows {
		assert.Equal(t, 1, g.RowLen(r))
	}
}

func TestLayoutEmpty(t *testing.T) {
	g := Layout(nil, 80)
	assert.Empty(t, g.Rows)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, -1, g.Index(Cursor{}))
	assert.Equal(t, Cursor{}, g.Clamp(Cursor{Row: 3, Col: 3}))
	assert.Equal(t, Cursor{}, g.Locate(4))
}

func TestLayoutTruncatesLongNames(t *testing.T) {
	long := strings.Repeat("x", 50)
	g := Layout([]string{"short", long}, 60) // cap 10

	require.Equal(t, 2, g.Len())
	label := g.Rows[0][1].Label
	assert.Equal(t, "xxxxxxx...", label)
	assert.Equal(t, 10, g.Padding)
	assert.Equal(t, 10, g.Rows[0][1].Width)
}

func TestLayoutSanitizesNames(t *testing.T) {
	g := Layout([]string{"evil\x1b[2Jname", "tab\there"}, 200)

	require.Equal(t, 2, g.Len())
	assert.NotContains(t, g.Rows[0][0].Label, "\x1b")
	assert.Equal(t, "tab here", g.Rows[0][1].Label)
}

func TestLayoutMeasuresWideRunes(t *testing.T) {
	g := Layout([]string{"日本", "ab"}, 200)
	assert.Equal(t, 4, g.Padding)
	assert.Equal(t, 4, g.Rows[0][0].Width)
}

func TestLayoutRowsNeverExceedWidth(t *testing.T) {
	names := []string{".", "..", "Documents", "a", "photo-2024-01-01.jpg", "日本語のファイル", "x.tar.gz", "README"}
	for width := 1; width <= 200; width++ {
		g := Layout(names, width)
		require.Equal(t, len(names), g.Len(), "width=%d", width)
		if width < g.CellWidth {
			continue
		}
		for r, row := range g.Rows {
			rowWidth := 0
			for _, cell := range row {
				require.LessOrEqual(t, textutil.DisplayWidth(textutil.StripEscapes(cell.Label)), g.Padding)
				rowWidth += g.CellWidth
			}
			assert.LessOrEqual(t, rowWidth, width, "width=%d row=%d", width, r)
		}
	}
}

func TestLayoutPreservesOrder(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	g := Layout(names, 9)
	next := 0
	for _, row := range g.Rows {
		for _, cell := range row {
			assert.Equal(t, next, cell.Index)
			next++
		}
	}
}

func TestIndexAndLocateRoundTrip(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	g := Layout(names, 12) // rows of three

	for i := range names {
		c := g.Locate(i)
		assert.Equal(t, i, g.Index(c), "index %d via %+v", i, c)
	}
	assert.Equal(t, Cursor{Row: 2, Col: 0}, g.Locate(6))
	assert.Equal(t, Cursor{Row: 2, Col: 0}, g.Locate(99))
	assert.Equal(t, -1, g.Index(Cursor{Row: 2, Col: 1}))
	assert.Equal(t, -1, g.Index(Cursor{Row: -1, Col: 0}))
}

func TestClamp(t *testing.T) {
	g := Layout([]string{"a", "b", "c", "d"}, 12) // [a b c] [d]

	tests := []struct {
		in   Cursor
		want Cursor
	}{
		{Cursor{Row: 0, Col: 2}, Cursor{Row: 0, Col: 2}},
		{Cursor{Row: 1, Col: 2}, Cursor{Row: 1, Col: 0}},
		{Cursor{Row: 5, Col: 0}, Cursor{Row: 1, Col: 0}},
		{Cursor{Row: -1, Col: -1}, Cursor{Row: 0, Col: 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.Clamp(tt.in), "clamp %+v", tt.in)
	}
}
