package tui

import (
	"strconv"

	"github.com/freeside-software/jack/internal/engine"
)

// betBuffer accumulates a whole-dollar bet typed digit by digit. The cursor
// blink is independent of the value and only flips on the poll tick.
type betBuffer struct {
	dollars int64
	blink   bool
}

// push appends a digit unless the result would exceed limit. Leading zeros
// leave the buffer empty.
func (b *betBuffer) push(digit int64, limit engine.Amount) bool {
	next := b.dollars*10 + digit
	if engine.Dollars(next) > limit {
		return false
	}
	b.dollars = next
	return true
}

func (b *betBuffer) pop() { b.dollars /= 10 }

func (b *betBuffer) clear() { b.dollars = 0 }

func (b *betBuffer) tick() { b.blink = !b.blink }

func (b betBuffer) amount() engine.Amount { return engine.Dollars(b.dollars) }

// text is the typed amount; empty before any significant digit.
func (b betBuffer) text() string {
	if b.dollars == 0 {
		return ""
	}
	return strconv.FormatInt(b.dollars, 10)
}

func (b betBuffer) cursor() string {
	if b.blink {
		return "█"
	}
	return " "
}
