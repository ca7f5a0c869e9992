package diag

import (
	"fmt"
	"sort"
)

// Bag is a bounded, ordered collection of diagnostics.
type Bag struct {
	items   []Diagnostic
	max     int
	dropped int // сколько Add отклонено из-за лимита
}

// NewBag returns a bag that holds at most max diagnostics; max <= 0 means unbounded.
func NewBag(max int) *Bag {
	capHint := max
	if capHint <= 0 || capHint > 64 {
		capHint = 64
	}
	return &Bag{
		items: make([]Diagnostic, 0, capHint),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит);
// такая диагностика учитывается в Dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.Full() {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Dropped reports how many diagnostics were rejected by the limit.
func (b *Bag) Dropped() int {
	return b.dropped
}

func (b *Bag) Full() bool {
	return b.max > 0 && len(b.items) >= b.max
}

func (b *Bag) HasErrors() bool {
	return b.count(SevError) > 0
}

func (b *Bag) HasWarnings() bool {
	return b.count(SevWarning) > 0
}

// ErrorCount counts diagnostics with severity SevError.
func (b *Bag) ErrorCount() int {
	return b.count(SevError)
}

func (b *Bag) count(min Severity) int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity >= min {
			n++
		}
	}
	return n
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// Срез указывает на внутренний массив Bag, не модифицируйте его.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends the diagnostics of other while the limit allows; the rest,
// together with other's own dropped count, go to Dropped.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	room := len(other.items)
	if b.max > 0 {
		room = min(room, max(b.max-len(b.items), 0))
	}
	b.items = append(b.items, other.items[:room]...)
	b.dropped += len(other.items) - room + other.dropped
}

// Sort orders by file, start, end, severity (desc) and code.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if si, sj := di.Primary.Start(), dj.Primary.Start(); si != sj {
			return si.Before(sj)
		}
		if ei, ej := di.Primary.End(), dj.Primary.End(); ei != ej {
			return ei.Before(ej)
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// OmittedNotice describes n diagnostics rejected by the limit, "" when n is 0.
func OmittedNotice(n int) string {
	switch {
	case n <= 0:
		return ""
	case n == 1:
		return "1 more diagnostic not shown (use --max-diagnostics 0)"
	}
	return fmt.Sprintf("%d more diagnostics not shown (use --max-diagnostics 0)", n)
}
