package console

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// reader wraps the input stream. Every helper returns io.EOF once the
// stream is exhausted so the menu can stop cleanly.
type reader struct {
	scanner *bufio.Scanner
	out     io.Writer
	notify  func(string)
}

func newReader(in io.Reader, out io.Writer, notify func(string)) *reader {
	return &reader{scanner: bufio.NewScanner(in), out: out, notify: notify}
}

func (r *reader) prompt(msg string) (string, error) {
	_, _ = io.WriteString(r.out, msg)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

// readInt re-prompts until the line is an integer.
func (r *reader) readInt(msg string) (int, error) {
	for {
		line, err := r.prompt(msg)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		r.notify("Invalid input! Please enter a whole number.")
	}
}

// readAmount re-prompts until the line is a positive decimal number once
// rounded to cents.
func (r *reader) readAmount(msg string) (decimal.Decimal, error) {
	for {
		line, err := r.prompt(msg)
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := decimal.NewFromString(line)
		if err != nil {
			r.notify("Invalid input! Please enter a valid number.")
			continue
		}
		amount = amount.Round(2)
		if !amount.IsPositive() {
			r.notify("The amount must be positive.")
			continue
		}
		return amount, nil
	}
}

// readOptionalDecimal returns nil on a blank line. A non-numeric line is
// reported and also yields nil so the caller falls back to its default.
func (r *reader) readOptionalDecimal(msg, invalid string) (*decimal.Decimal, error) {
	line, err := r.prompt(msg)
	if err != nil || line == "" {
		return nil, err
	}
	value, err := decimal.NewFromString(line)
	if err != nil {
		r.notify(invalid)
		return nil, nil
	}
	return &value, nil
}

func (r *reader) readOptionalInt(msg, invalid string) (*int, error) {
	line, err := r.prompt(msg)
	if err != nil || line == "" {
		return nil, err
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		r.notify(invalid)
		return nil, nil
	}
	return &value, nil
}
