// Package surface is the drawing target for one terminal frame: a constraint
// layout that splits rectangles, and a cell grid that primitives draw into.
package surface

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rectangle has no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Inner is the area inside a one-cell border.
func (r Rect) Inner() Rect {
	return r.Shrink(1, 1)
}

// Shrink removes dx columns from each side and dy rows from top and bottom.
func (r Rect) Shrink(dx, dy int) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width - 2*dx, Height: r.Height - 2*dy}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Row returns the single-row rectangle at offset dy inside r.
func (r Rect) Row(dy int) Rect {
	if dy < 0 || dy >= r.Height {
		return Rect{X: r.X, Y: r.Y, Width: r.Width}
	}
	return Rect{X: r.X, Y: r.Y + dy, Width: r.Width, Height: 1}
}

// Middle is the vertically centred row of r.
func (r Rect) Middle() Rect {
	return r.Row(r.Height / 2)
}

// Direction of a split.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

type constraintKind int

const (
	kindLength constraintKind = iota
	kindRatio
	kindMin
)

// Constraint sizes one segment of a split.
type Constraint struct {
	kind constraintKind
	n, d int
}

// Length is a fixed number of cells.
func Length(n int) Constraint { return Constraint{kind: kindLength, n: n} }

// Ratio is num/den of the whole area being split.
func Ratio(num, den int) Constraint { return Constraint{kind: kindRatio, n: num, d: den} }

// Min takes whatever space is left over, but at least n cells.
func Min(n int) Constraint { return Constraint{kind: kindMin, n: n} }

// Split divides area along dir. It always returns one rectangle per
// constraint; when the area is too small, trailing segments shrink to zero.
func Split(area Rect, dir Direction, constraints ...Constraint) []Rect {
	total := area.Height
	if dir == Horizontal {
		total = area.Width
	}
	if total < 0 {
		total = 0
	}

	sizes := make([]int, len(constraints))
	used := 0
	fill := -1
	for i, c := range constraints {
		switch c.kind {
		case kindLength:
			sizes[i] = max(0, c.n)
		case kindRatio:
			if c.d > 0 {
				sizes[i] = max(0, total*c.n/c.d)
			}
		case kindMin:
			sizes[i] = max(0, c.n)
			if fill < 0 {
				fill = i
			}
		}
		used += sizes[i]
	}

	// The first Min segment absorbs spare space.
	if fill >= 0 && used < total {
		sizes[fill] += total - used
	}

	rects := make([]Rect, len(constraints))
	offset := 0
	for i, size := range sizes {
		size = min(size, total-offset)
		if size < 0 {
			size = 0
		}
		if dir == Horizontal {
			rects[i] = Rect{X: area.X + offset, Y: area.Y, Width: size, Height: area.Height}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: size}
		}
		offset += size
	}
	return rects
}

// Repeat returns n copies of c, for splitting into equal slots.
func Repeat(c Constraint, n int) []Constraint {
	out := make([]Constraint, n)
	for i := range out {
		out[i] = c
	}
	return out
}
