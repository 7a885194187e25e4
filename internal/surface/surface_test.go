package surface

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_LengthRatioMin(t *testing.T) {
	t.Parallel()

	area := Rect{X: 0, Y: 0, Width: 10, Height: 20}
	rects := Split(area, Vertical, Length(1), Ratio(4, 10), Ratio(4, 10), Ratio(1, 10), Length(1))
	require.Len(t, rects, 5)

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 10, Height: 1}, rects[0])
	assert.Equal(t, Rect{X: 0, Y: 1, Width: 10, Height: 8}, rects[1])
	assert.Equal(t, Rect{X: 0, Y: 9, Width: 10, Height: 8}, rects[2])
	assert.Equal(t, Rect{X: 0, Y: 17, Width: 10, Height: 2}, rects[3])
	assert.Equal(t, Rect{X: 0, Y: 19, Width: 10, Height: 1}, rects[4])
}

func TestSplit_MinAbsorbsSpareSpace(t *testing.T) {
	t.Parallel()

	rects := Split(Rect{Width: 30, Height: 1}, Horizontal, Length(1), Min(10), Length(1))
	assert.Equal(t, []Rect{
		{X: 0, Width: 1, Height: 1},
		{X: 1, Width: 28, Height: 1},
		{X: 29, Width: 1, Height: 1},
	}, rects)
}

func TestSplit_TooSmallShrinksTrailingSegments(t *testing.T) {
	t.Parallel()

	rects := Split(Rect{Width: 5, Height: 3}, Vertical, Length(2), Length(2), Length(2))
	require.Len(t, rects, 3)
	assert.Equal(t, 2, rects[0].Height)
	assert.Equal(t, 1, rects[1].Height)
	assert.Equal(t, 0, rects[2].Height)
	assert.True(t, rects[2].Empty())
}

func TestSplit_NeverPanicsOnEmptyArea(t *testing.T) {
	t.Parallel()

	rects := Split(Rect{}, Horizontal, Ratio(1, 3), Ratio(1, 3), Ratio(1, 3))
	for _, r := range rects {
		assert.True(t, r.Empty())
	}
}

func TestText_Alignment(t *testing.T) {
	t.Parallel()

	s := New(9, 3)
	s.Text(s.Area().Row(0), "ab", AlignLeft, Pen{})
	s.Text(s.Area().Row(1), "ab", AlignCenter, Pen{})
	s.Text(s.Area().Row(2), "ab", AlignRight, Pen{})

	lines := strings.Split(s.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ab       ", lines[0])
	assert.Equal(t, "   ab    ", lines[1])
	assert.Equal(t, "       ab", lines[2])
}

func TestText_TruncatesToRect(t *testing.T) {
	t.Parallel()

	s := New(10, 1)
	s.Text(Rect{X: 2, Y: 0, Width: 4, Height: 1}, "abcdefgh", AlignLeft, Pen{})
	assert.Equal(t, "  abcd    ", s.String())
}

func TestBorder_WithTitles(t *testing.T) {
	t.Parallel()

	s := New(12, 3)
	s.Border(s.Area(), Pen{})
	s.BorderText(s.Area(), EdgeTop, AlignCenter, " Hi ", Pen{})
	s.BorderText(s.Area(), EdgeBottom, AlignRight, "x", Pen{})

	lines := strings.Split(s.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "╭─── Hi ───╮", lines[0])
	assert.Equal(t, "│          │", lines[1])
	assert.Equal(t, "╰─────────x╯", lines[2])
}

func TestBox_CentresLines(t *testing.T) {
	t.Parallel()

	s := New(5, 3)
	s.Box(s.Area(), Pen{}, "A♠")
	lines := strings.Split(s.String(), "\n")
	assert.Equal(t, "│A♠ │", lines[1])
}

func TestBlock_TruncatesAndPads(t *testing.T) {
	t.Parallel()

	s := New(6, 2)
	s.Fill(s.Area(), '.', Pen{})
	s.Block(Rect{X: 1, Y: 0, Width: 3, Height: 2}, "abcdef\nz")

	lines := strings.Split(s.String(), "\n")
	assert.Equal(t, ".abc..", lines[0])
	assert.Equal(t, ".z  ..", lines[1])
}

func TestWideRunesOccupyTwoCells(t *testing.T) {
	t.Parallel()

	s := New(4, 1)
	s.Text(s.Area(), "日x", AlignLeft, Pen{})
	assert.Equal(t, "日x ", s.String())

	s.Text(Rect{X: 1, Y: 0, Width: 1, Height: 1}, "y", AlignLeft, Pen{})
	assert.Equal(t, " yx ", s.String())
}

func TestString_IsDeterministic(t *testing.T) {
	t.Parallel()

	draw := func() string {
		s := New(20, 4)
		s.Border(s.Area(), Pen{Bold: true})
		s.Text(s.Area().Inner(), "hello", AlignCenter, Pen{FG: "2"})
		return s.String()
	}
	assert.Equal(t, draw(), draw())
}

func TestRectHelpers(t *testing.T) {
	t.Parallel()

	r := Rect{X: 2, Y: 3, Width: 10, Height: 5}
	assert.Equal(t, Rect{X: 3, Y: 4, Width: 8, Height: 3}, r.Inner())
	assert.Equal(t, Rect{X: 2, Y: 5, Width: 10, Height: 1}, r.Middle())
	assert.True(t, r.Row(9).Empty())
	assert.True(t, Rect{Width: 1}.Shrink(3, 3).Empty())
}
