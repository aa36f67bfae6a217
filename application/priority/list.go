package priority

import "netprio/domain/adapter"

// List is the user-visible priority order; index 0 is the highest priority.
// MoveItem permutes it and Replace swaps it wholesale on refresh.
type List struct {
	items []adapter.Record
}

func NewList(records []adapter.Record) *List {
	l := &List{}
	l.Replace(records)
	return l
}

func (l *List) Replace(records []adapter.Record) {
	l.items = append(make([]adapter.Record, 0, len(records)), records...)
}

func (l *List) Len() int {
	return len(l.items)
}

// MoveItem removes the element at from and reinserts it at to. Both indices
// are clamped to the list bounds, so the call never fails.
func (l *List) MoveItem(from, to int) {
	n := len(l.items)
	if n == 0 {
		return
	}
	from = clamp(from, 0, n-1)
	to = clamp(to, 0, n-1)
	if from == to {
		return
	}
	item := l.items[from]
	if from < to {
		copy(l.items[from:to], l.items[from+1:to+1])
	} else {
		copy(l.items[to+1:from+1], l.items[to:from])
	}
	l.items[to] = item
}

// Snapshot returns a copy of the current order.
func (l *List) Snapshot() []adapter.Record {
	return append(make([]adapter.Record, 0, len(l.items)), l.items...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
