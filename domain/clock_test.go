package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// fakeClock is a manual clock shared by the domain tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
