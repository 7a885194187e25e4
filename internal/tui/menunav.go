package tui

// MenuNav is the selection of a bounded list. The index only moves through
// Increment, which saturates at both ends.
type MenuNav struct {
	index  int
	length int
}

// NewMenuNav starts at the first of length items.
func NewMenuNav(length int) MenuNav {
	return MenuNav{length: max(length, 0)}
}

// Increment moves the selection by step, stopping at the first and last
// items. It never wraps.
func (m *MenuNav) Increment(step int) {
	if m.length == 0 {
		m.index = 0
		return
	}
	m.index = min(max(m.index+step, 0), m.length-1)
}

// Index is the selected item.
func (m MenuNav) Index() int { return m.index }

// Len is the number of items.
func (m MenuNav) Len() int { return m.length }
