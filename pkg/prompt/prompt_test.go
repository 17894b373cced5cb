package prompt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/tokri/pkg/prompt"
)

func newPrompter(input string) (*prompt.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return prompt.New(strings.NewReader(input), &out), &out
}

func TestLine_TrimsAndEchoesLabel(t *testing.T) {
	p, out := newPrompter("  Bread  \n")

	s, ok := p.Line("Name: ")
	if !ok {
		t.Fatal("expected a line")
	}
	if s != "Bread" {
		t.Errorf("expected trimmed %q, got %q", "Bread", s)
	}
	if out.String() != "Name: " {
		t.Errorf("label not written, got %q", out.String())
	}
}

func TestLine_EOF(t *testing.T) {
	p, _ := newPrompter("")
	if _, ok := p.Line("Name: "); ok {
		t.Error("expected ok=false on exhausted input")
	}
}

func TestInt(t *testing.T) {
	cases := []struct {
		input string
		min   int
		max   int
		want  int
		ok    bool
	}{
		{"3\n", 1, 5, 3, true},
		{"1\n", 1, 5, 1, true},
		{"5\n", 1, 5, 5, true},
		{"0\n", 1, 5, 0, false},
		{"6\n", 1, 5, 0, false},
		{"-2\n", -5, 5, 0, false}, // signed input is never accepted
		{"abc\n", 1, 5, 0, false},
		{"3.0\n", 1, 5, 0, false},
		{"\n", 1, 5, 0, false},
		// Digit runs past the int range must not wrap into valid values.
		{"18446744073709551620\n", 1, 20, 0, false},
		{"99999999999999999999999\n", 1, 20, 0, false},
	}

	for _, tc := range cases {
		p, _ := newPrompter(tc.input)
		got, ok := p.Int("n: ", tc.min, tc.max)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Int(%q): got (%d, %v), want (%d, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDecimal(t *testing.T) {
	min := decimal.RequireFromString("0.01")

	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"3.50\n", "3.50", true},
		{"0.01\n", "0.01", true},
		{"0\n", "", false},
		{"-1.20\n", "", false},
		{"abc\n", "", false},
	}

	for _, tc := range cases {
		p, _ := newPrompter(tc.input)
		got, ok := p.Decimal("amount: ", min)
		if ok != tc.ok {
			t.Errorf("Decimal(%q): ok=%v, want %v", tc.input, ok, tc.ok)
			continue
		}
		if ok && got.StringFixed(2) != tc.want {
			t.Errorf("Decimal(%q): got %s, want %s", tc.input, got.StringFixed(2), tc.want)
		}
	}
}
