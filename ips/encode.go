package ips

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Validate reports whether rec can be written to a patch.
func (r *Record) Validate() error {
	if r.Offset > MaxOffset {
		return fmt.Errorf("%w: %#x", ErrOffsetTooLarge, r.Offset)
	}
	if r.Offset == EOFOffset {
		return ErrEOFOffset
	}
	switch r.Kind {
	case Literal:
		if len(r.Data) == 0 || len(r.Data) > MaxSize {
			return fmt.Errorf("%w: got %d", ErrRecordSize, len(r.Data))
		}
	case RunLength:
	default:
		return fmt.Errorf("%w: unknown record kind %d", ErrEncode, int(r.Kind))
	}
	return nil
}

func (r *Record) appendTo(dst []byte) []byte {
	dst = append(dst, byte(r.Offset>>16), byte(r.Offset>>8), byte(r.Offset))
	switch r.Kind {
	case Literal:
		dst = append(dst, byte(len(r.Data)>>8), byte(len(r.Data)))
		dst = append(dst, r.Data...)
	case RunLength:
		dst = append(dst, 0, 0, byte(r.Run>>8), byte(r.Run), r.Fill)
	}
	return dst
}

// Encode writes a complete patch holding recs to w. Nothing is written if a
// record is invalid.
func Encode(w io.Writer, recs []Record) error {
	for i := range recs {
		if err := recs[i].Validate(); err != nil {
			return &RecordError{Index: i, Offset: recs[i].Offset, Err: err}
		}
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Signature); err != nil {
		return err
	}
	var buf []byte
	for i := range recs {
		buf = recs[i].appendTo(buf[:0])
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString(Terminator); err != nil {
		return err
	}
	return bw.Flush()
}

func Marshal(recs []Record) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(buf, recs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
