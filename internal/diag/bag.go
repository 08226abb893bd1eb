package diag

import (
	"slices"
	"sync"

	"fortio.org/safecast"
)

// Bag collects diagnostics up to a limit. It is safe for concurrent use:
// the round-trip verifier shares one bag between workers.
type Bag struct {
	mu    sync.Mutex
	items []Diagnostic
	max   uint16
}

func NewBag(maxItems int) *Bag {
	limit, err := safecast.Conv[uint16](maxItems)
	if err != nil || maxItems <= 0 {
		limit = ^uint16(0)
	}
	return &Bag{max: limit}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	_, ok := b.FirstError()
	return ok
}

// FirstError returns the earliest-added error diagnostic.
func (b *Bag) FirstError() (Diagnostic, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, d := range b.items {
		if d.Severity >= SevError {
			return d, true
		}
	}
	return Diagnostic{}, false
}

// ErrorCount counts diagnostics with Severity >= Error.
func (b *Bag) ErrorCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, d := range b.items {
		if d.Severity >= SevError {
			n++
		}
	}
	return n
}

// Items returns a copy of the collected diagnostics.
func (b *Bag) Items() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.items)
}

// Merge объединяет диагностики из другого Bag, поднимая лимит при необходимости.
func (b *Bag) Merge(other *Bag) {
	if other == nil || other == b {
		return
	}
	add := other.Items()
	b.mu.Lock()
	defer b.mu.Unlock()
	if total := len(b.items) + len(add); total > int(b.max) {
		if lim, err := safecast.Conv[uint16](total); err == nil {
			b.max = lim
		}
	}
	b.items = append(b.items, add...)
}

// Sort orders diagnostics by file, start, end, severity (desc) and code.
func (b *Bag) Sort() {
	b.mu.Lock()
	defer b.mu.Unlock()
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		switch {
		case x.Primary.File != y.Primary.File:
			return cmpOrd(x.Primary.File, y.Primary.File)
		case x.Primary.Start != y.Primary.Start:
			return cmpOrd(x.Primary.Start, y.Primary.Start)
		case x.Primary.End != y.Primary.End:
			return cmpOrd(x.Primary.End, y.Primary.End)
		case x.Severity != y.Severity:
			return cmpOrd(y.Severity, x.Severity)
		}
		return cmpOrd(x.Code, y.Code)
	})
}

// Dedup drops repeated diagnostics with the same code and primary span.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		file uint32
		s, e uint32
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	seen := make(map[key]struct{}, len(b.items))
	out := b.items[:0]
	for _, d := range b.items {
		k := key{d.Code, uint32(d.Primary.File), d.Primary.Start, d.Primary.End}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, d)
	}
	b.items = out
}

func cmpOrd[T ~uint8 | ~uint16 | ~uint32](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
