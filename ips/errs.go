package ips

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSignature = errors.New("invalid IPS signature")
	ErrTruncatedPatch   = errors.New("truncated patch")
	ErrOutOfRange       = errors.New("write out of range")
	ErrOffsetGap        = errors.New("offset beyond end of target")

	ErrEncode         = errors.New("encode error")
	ErrOffsetTooLarge = fmt.Errorf("%w: offset does not fit in 24 bits", ErrEncode)
	ErrRecordSize     = fmt.Errorf("%w: literal size must be 1..65535", ErrEncode)
	ErrEOFOffset      = fmt.Errorf("%w: record offset reads as terminator", ErrEncode)
)

// RecordError reports a failure decoding or applying the record with the
// given index. Pos is the position of the record header in the patch.
type RecordError struct {
	Index  int
	Pos    int
	Offset uint32
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d at patch position %#x (offset 0x%06x): %v", e.Index, e.Pos, e.Offset, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
