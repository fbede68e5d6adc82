// Package domain contains core concepts of the banking system.
// This file defines the History of an account and its immutable entries.
// No console, audit, or storage logic should be added here.
package domain

import (
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Clock returns the current instant. Histories compare dates in UTC.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

// Entry is a completed transaction. Entries are never mutated once appended.
type Entry struct {
	ID     uuid.UUID
	Kind   TransactionKind
	Amount decimal.Decimal
	At     time.Time
}

// History is the append-only, insertion-ordered log of an account.
type History struct {
	clock   Clock
	entries []Entry
}

func NewHistory(clock Clock) *History {
	if clock == nil {
		clock = systemClock
	}
	return &History{clock: clock}
}

// add records a transaction that has already been applied to the account.
func (h *History) add(tx Transaction) Entry {
	entry := Entry{
		ID:     uuid.New(),
		Kind:   tx.Kind(),
		Amount: tx.Amount(),
		At:     h.clock(),
	}
	h.entries = append(h.entries, entry)
	return entry
}

// Entries returns a copy of every entry in insertion order.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}

// Report lazily yields entries matching kind (case-insensitive).
// An empty kind yields every entry.
func (h *History) Report(kind string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range h.entries {
			if kind != "" && !strings.EqualFold(string(e.Kind), kind) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Today returns the entries recorded on the current UTC date.
func (h *History) Today() []Entry {
	today := dateOf(h.clock())
	return lo.Filter(h.entries, func(e Entry, _ int) bool {
		return dateOf(e.At) == today
	})
}

// CountKind counts entries of the given kind over the whole history.
func (h *History) CountKind(kind TransactionKind) int {
	return lo.CountBy(h.entries, func(e Entry) bool {
		return e.Kind == kind
	})
}

func dateOf(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
