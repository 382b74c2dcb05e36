package ips

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshal(t *testing.T) {
	recs := []Record{
		NewLiteral(0x010203, []byte{0xaa, 0xbb}),
		NewRunLength(0x10, 0x0102, 0xcc),
	}
	got, err := Marshal(recs)
	if err != nil {
		t.Fatal(err)
	}
	want := patchOf(lit(0x010203, 0xaa, 0xbb), rle(0x10, 0x0102, 0xcc))
	if !bytes.Equal(want, got) {
		t.Errorf("got % x\nwant % x", got, want)
	}
	back, err := Parse(got)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(recs, back); diff != "" {
		t.Errorf("reparse mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalEmpty(t *testing.T) {
	got, err := Marshal(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "PATCHEOF" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeValidate(t *testing.T) {
	tests := []struct {
		rec Record
		err error
	}{
		{NewLiteral(MaxOffset+1, []byte{1}), ErrOffsetTooLarge},
		{NewLiteral(EOFOffset, []byte{1}), ErrEOFOffset},
		{NewRunLength(EOFOffset, 2, 1), ErrEOFOffset},
		{NewLiteral(0, nil), ErrRecordSize},
		{NewLiteral(0, make([]byte, MaxSize+1)), ErrRecordSize},
		{Record{Kind: Kind(9)}, ErrEncode},
	}
	for _, tt := range tests {
		buf := bytes.NewBuffer(nil)
		err := Encode(buf, []Record{NewLiteral(0, []byte{1}), tt.rec})
		if !errors.Is(err, tt.err) {
			t.Errorf("%v: expected %v, got %v", tt.rec.Offset, tt.err, err)
		}
		var recErr *RecordError
		if errors.As(err, &recErr) && recErr.Index != 1 {
			t.Errorf("index: got %d want 1", recErr.Index)
		}
		if buf.Len() != 0 {
			t.Errorf("expected nothing written, got %d bytes", buf.Len())
		}
	}
}

func TestInspect(t *testing.T) {
	patch := append(patchOf(lit(0x20, 1, 2, 3), rle(0x10, 4, 0), lit(0x30, 1)), 0, 0, 4)
	s, err := Inspect(patch)
	if err != nil {
		t.Fatal(err)
	}
	want := &Summary{
		Size:         len(patch),
		Records:      3,
		Literals:     2,
		RLEs:         1,
		LiteralBytes: 4,
		RLEBytes:     4,
		MinOffset:    0x10,
		MaxEnd:       0x31,
		Terminator:   5 + 8 + 8 + 6,
		Trailing:     3,
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}
