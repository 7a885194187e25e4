package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Align positions text within its rectangle.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Edge selects the top or bottom border line.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
)

// Pen is the style of drawn cells. It is comparable so that runs of equal
// cells can be rendered together.
type Pen struct {
	FG    lipgloss.Color
	BG    lipgloss.Color
	Bold  bool
	Faint bool
}

func (p Pen) render(text string) string {
	if p == (Pen{}) {
		return text
	}
	style := lipgloss.NewStyle().Bold(p.Bold).Faint(p.Faint)
	if p.FG != "" {
		style = style.Foreground(p.FG)
	}
	if p.BG != "" {
		style = style.Background(p.BG)
	}
	return style.Render(text)
}

type cell struct {
	r    rune
	pen  Pen
	cont bool // right half of a double-width rune
}

type block struct {
	area  Rect
	lines []string
}

// Surface is one frame of cells. Drawing is clipped to the frame and to the
// rectangle passed to each primitive.
type Surface struct {
	width  int
	height int
	cells  []cell
	blocks []block
}

// New returns a blank frame.
func New(width, height int) *Surface {
	width, height = max(0, width), max(0, height)
	cells := make([]cell, width*height)
	for i := range cells {
		cells[i].r = ' '
	}
	return &Surface{width: width, height: height, cells: cells}
}

// Area is the whole frame.
func (s *Surface) Area() Rect { return Rect{Width: s.width, Height: s.height} }

func (s *Surface) clip(r Rect) Rect {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.Width, s.width), min(r.Y+r.Height, s.height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func (s *Surface) at(x, y int) *cell { return &s.cells[y*s.width+x] }

// set writes one rune of display width w at (x, y), repairing any
// double-width rune it overwrites.
func (s *Surface) set(x, y int, r rune, w int, pen Pen) {
	c := s.at(x, y)
	if c.cont && x > 0 {
		*s.at(x-1, y) = cell{r: ' ', pen: s.at(x-1, y).pen}
	}
	if x+1 < s.width && s.at(x+1, y).cont {
		*s.at(x+1, y) = cell{r: ' ', pen: pen}
	}
	*c = cell{r: r, pen: pen}
	if w == 2 && x+1 < s.width {
		next := s.at(x+1, y)
		if x+2 < s.width && s.at(x+2, y).cont {
			*s.at(x+2, y) = cell{r: ' ', pen: pen}
		}
		*next = cell{pen: pen, cont: true}
	}
}

// put writes text starting at column x of row y, never past bound.
func (s *Surface) put(x, y, bound int, text string, pen Pen) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > bound {
			return
		}
		s.set(x, y, r, w, pen)
		x += w
	}
}

// Text draws one line of text on the first row of r, truncated to fit.
func (s *Surface) Text(r Rect, text string, align Align, pen Pen) {
	area := s.clip(r)
	if area.Empty() || r.Y != area.Y {
		return
	}
	text = runewidth.Truncate(text, r.Width, "")
	w := runewidth.StringWidth(text)
	x := r.X
	switch align {
	case AlignCenter:
		x += (r.Width - w) / 2
	case AlignRight:
		x += r.Width - w
	}
	// Skip the part of the text left of the clip area.
	for x < area.X && text != "" {
		rw := runewidth.RuneWidth([]rune(text)[0])
		text = string([]rune(text)[1:])
		x += rw
	}
	s.put(x, area.Y, area.X+area.Width, text, pen)
}

// Lines draws one line per row of r, starting at the top.
func (s *Surface) Lines(r Rect, lines []string, align Align, pen Pen) {
	for i, line := range lines {
		if i >= r.Height {
			return
		}
		s.Text(r.Row(i), line, align, pen)
	}
}

// Fill paints every cell of r with ch.
func (s *Surface) Fill(r Rect, ch rune, pen Pen) {
	area := s.clip(r)
	w := runewidth.RuneWidth(ch)
	if w != 1 {
		return
	}
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			s.set(x, y, ch, 1, pen)
		}
	}
}

// Border draws a rounded one-cell border around the edge of r.
func (s *Surface) Border(r Rect, pen Pen) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	b := lipgloss.RoundedBorder()
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1

	s.hline(r.X+1, right, r.Y, b.Top, pen)
	s.hline(r.X+1, right, bottom, b.Bottom, pen)
	for y := r.Y + 1; y < bottom; y++ {
		s.point(r.X, y, b.Left, pen)
		s.point(right, y, b.Right, pen)
	}
	s.point(r.X, r.Y, b.TopLeft, pen)
	s.point(right, r.Y, b.TopRight, pen)
	s.point(r.X, bottom, b.BottomLeft, pen)
	s.point(right, bottom, b.BottomRight, pen)
}

func (s *Surface) point(x, y int, glyph string, pen Pen) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height || glyph == "" {
		return
	}
	s.set(x, y, []rune(glyph)[0], 1, pen)
}

func (s *Surface) hline(x0, x1, y int, glyph string, pen Pen) {
	for x := x0; x < x1; x++ {
		s.point(x, y, glyph, pen)
	}
}

// BorderText writes text over the top or bottom border of r, inset from
// the corners.
func (s *Surface) BorderText(r Rect, edge Edge, align Align, text string, pen Pen) {
	if r.Width < 3 || r.Height < 1 {
		return
	}
	row := r.Y
	if edge == EdgeBottom {
		row = r.Y + r.Height - 1
	}
	s.Text(Rect{X: r.X + 1, Y: row, Width: r.Width - 2, Height: 1}, text, align, pen)
}

// Box is a bordered shape with lines centred inside it.
func (s *Surface) Box(r Rect, pen Pen, lines ...string) {
	s.Border(r, pen)
	inner := r.Inner()
	if inner.Empty() {
		return
	}
	top := inner.Y + max(0, (inner.Height-len(lines))/2)
	s.Lines(Rect{X: inner.X, Y: top, Width: inner.Width, Height: inner.Y + inner.Height - top}, lines, AlignCenter, pen)
}

// Block places pre-rendered, possibly styled, content in r. Lines are
// truncated and padded to the width of r; cells underneath are hidden.
func (s *Surface) Block(r Rect, content string) {
	area := s.clip(r)
	if area.Empty() {
		return
	}
	lines := strings.Split(content, "\n")
	if skip := area.Y - r.Y; skip > 0 {
		lines = lines[min(skip, len(lines)):]
	}

	kept := s.blocks[:0]
	for _, b := range s.blocks {
		if !overlaps(b.area, area) {
			kept = append(kept, b)
		}
	}
	s.blocks = append(kept, block{area: area, lines: lines})

	// A double-width rune straddling the left edge would spill into the block.
	if area.X > 0 {
		for y := area.Y; y < area.Y+area.Height; y++ {
			if s.at(area.X, y).cont {
				*s.at(area.X-1, y) = cell{r: ' '}
			}
		}
	}
}

func overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width && a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

func (s *Surface) blockAt(x, y int) *block {
	for i := range s.blocks {
		a := s.blocks[i].area
		if x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height {
			return &s.blocks[i]
		}
	}
	return nil
}

// String renders the frame, one line per row.
func (s *Surface) String() string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < s.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		x := 0
		for x < s.width {
			if b := s.blockAt(x, y); b != nil {
				line := ""
				if i := y - b.area.Y; i < len(b.lines) {
					line = ansi.Truncate(b.lines[i], b.area.Width, "")
				}
				out.WriteString(line)
				if pad := b.area.Width - ansi.StringWidth(line); pad > 0 {
					out.WriteString(strings.Repeat(" ", pad))
				}
				x += b.area.Width
				continue
			}

			pen := s.at(x, y).pen
			run.Reset()
			for x < s.width && s.at(x, y).pen == pen && s.blockAt(x, y) == nil {
				if c := s.at(x, y); !c.cont {
					run.WriteRune(c.r)
				}
				x++
			}
			out.WriteString(pen.render(run.String()))
		}
	}
	return out.String()
}
