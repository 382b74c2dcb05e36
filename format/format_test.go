package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"t":    TextFormat,
		"text": TextFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range []Format{TextFormat, YAMLFormat, JSONFormat} {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
	}
	if _, err := Format(7).MarshalText(); err == nil {
		t.Error("expected error")
	}
}
