// Package prompt reads and validates terminal input for the menu loop.
//
// Each prompt makes a single attempt: malformed or out-of-range input yields
// ok == false and the caller decides whether to re-ask or drop back to the
// menu. The engine downstream only ever sees values inside the declared
// range.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter writes labels to out and reads replies line by line from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Prompter over the given reader and writer.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints the label and returns the trimmed reply. ok is false when the
// input stream is exhausted.
func (p *Prompter) Line(label string) (string, bool) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// Int reads a base-10 integer within [min, max] inclusive. Anything else —
// non-numeric text, a signed or out-of-range number — yields ok == false.
func (p *Prompter) Int(label string, min, max int) (int, bool) {
	s, ok := p.Line(label)
	if !ok {
		return 0, false
	}
	v, err := parseDigits(s)
	if err != nil || v < min || v > max {
		return 0, false
	}
	return v, true
}

// Decimal reads a decimal amount no smaller than min.
func (p *Prompter) Decimal(label string, min decimal.Decimal) (decimal.Decimal, bool) {
	s, ok := p.Line(label)
	if !ok {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil || v.LessThan(min) {
		return decimal.Zero, false
	}
	return v, true
}

// parseDigits accepts plain digit runs only, so "+3", "-3" and "3.0" are all
// rejected. Quantities and menu choices are never signed. Conversion is left
// to strconv so a digit run too large for int fails with a range error
// instead of wrapping around into small values.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty input")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a number: %q", s)
		}
	}
	return strconv.Atoi(s)
}
