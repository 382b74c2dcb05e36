package encode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Wew-Laddie/OxyIPS/format"
	"github.com/Wew-Laddie/OxyIPS/ips"
	"github.com/Wew-Laddie/OxyIPS/libdiff"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

var testRecs = []ips.Record{
	ips.NewLiteral(0x10, []byte{1, 2, 3}),
	ips.NewRunLength(0x8000, 300, 0xff),
	ips.NewLiteral(0x9000, bytes.Repeat([]byte{0xab}, 12)),
}

func TestRecordsText(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Records(buf, testRecs, nil); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"    0  0x000010  literal     3  01 02 03\n" +
		"    1  0x008000  rle       300  fill ff\n" +
		"    2  0x009000  literal    12  ab ab ab ab ab ab ab ab ...\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordsNegativePreview(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Records(buf, testRecs[:1], nil, EncodePreview(-1)); err != nil {
		t.Fatal(err)
	}
	want := "    0  0x000010  literal     3   ...\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordsSelected(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Records(buf, testRecs, []int{1}); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 1 || !strings.Contains(buf.String(), "rle") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestRecordsYAML(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Records(buf, testRecs, []int{0, 1}, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	var got []Record
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	fill := 0xff
	want := []Record{
		{Index: 0, Offset: 0x10, Kind: "literal", Size: 3, End: 0x13, Data: "010203"},
		{Index: 1, Offset: 0x8000, Kind: "rle", Size: 300, End: 0x8000 + 300, Fill: &fill},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryJSON(t *testing.T) {
	s := &ips.Summary{Size: 40, Records: 2, Literals: 1, RLEs: 1, MaxEnd: 9, Terminator: 37}
	buf := bytes.NewBuffer(nil)
	if err := Summary(buf, s, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	var got map[string]int
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["records"] != 2 || got["terminator"] != 37 || got["maxEnd"] != 9 {
		t.Errorf("unexpected summary %v", got)
	}
}

func TestSummaryText(t *testing.T) {
	s := &ips.Summary{Size: 40, Records: 2, Literals: 1, RLEs: 1, LiteralBytes: 3, RLEBytes: 4, MinOffset: 2, MaxEnd: 9, Terminator: 37}
	buf := bytes.NewBuffer(nil)
	if err := Summary(buf, s); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"records:    2 (1 literal, 1 rle)\n",
		"written:    7 bytes (3 literal, 4 rle)\n",
		"range:      0x000002 - 0x000009\n",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in\n%s", want, buf.String())
		}
	}
}

func TestHexDiffContext(t *testing.T) {
	before := make([]byte, 16*10)
	after := bytes.Clone(before)
	after[16*5] = 1
	lines := libdiff.HexDiff(before, after)

	buf := bytes.NewBuffer(nil)
	if err := HexDiff(buf, lines, EncodeContext(1)); err != nil {
		t.Fatal(err)
	}
	out := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"  ...",
		"  00000040",
		"- 00000050",
		"+ 00000050",
		"  00000060",
		"  ...",
	}
	if len(out) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(out), len(want), buf.String())
	}
	for i := range want {
		if !strings.HasPrefix(out[i], want[i]) {
			t.Errorf("line %d: got %q, want prefix %q", i, out[i], want[i])
		}
	}
}

func TestHexDiffYAML(t *testing.T) {
	lines := libdiff.HexDiff([]byte{1}, []byte{2})
	buf := bytes.NewBuffer(nil)
	if err := HexDiff(buf, lines, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	var got []hexLine
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Op != "delete" || got[1].Op != "insert" {
		t.Errorf("unexpected lines %v", got)
	}
}

func TestNilColors(t *testing.T) {
	var c *Colors
	if got := c.Sprintf(KeyColor, "%d", 3); got != "3" {
		t.Errorf("got %q", got)
	}
}
