package ips

import (
	"fmt"
	"io"

	"github.com/Wew-Laddie/OxyIPS/debug"
)

type state int

const (
	stateStart state = iota
	stateProbeTerminator
	stateDecodeHeader
	stateApplyLiteral
	stateApplyRunLength
	stateDone
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateProbeTerminator:
		return "probe-terminator"
	case stateDecodeHeader:
		return "decode-header"
	case stateApplyLiteral:
		return "apply-literal"
	case stateApplyRunLength:
		return "apply-rle"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Decoder reads records from an in-memory patch. Literal records returned
// by Next alias the patch buffer.
type Decoder struct {
	patch []byte
	pos   int
	n     int
	state state
	err   error
}

// NewDecoder checks the patch signature and returns a decoder positioned at
// the first record.
func NewDecoder(patch []byte) (*Decoder, error) {
	if len(patch) < len(Signature) || string(patch[:len(Signature)]) != Signature {
		return nil, ErrInvalidSignature
	}
	return &Decoder{
		patch: patch,
		pos:   len(Signature),
		state: stateStart,
	}, nil
}

// Next returns the next record, or io.EOF once the terminator is reached.
// After a failure Next keeps returning the same error.
func (d *Decoder) Next() (*Record, error) {
	switch d.state {
	case stateDone:
		return nil, io.EOF
	case stateFailed:
		return nil, d.err
	}
	d.state = stateProbeTerminator
	if d.remaining() < len(Terminator) {
		return nil, d.fail(0, fmt.Errorf("%w: missing terminator", ErrTruncatedPatch))
	}
	if string(d.patch[d.pos:d.pos+len(Terminator)]) == Terminator {
		d.state = stateDone
		if debug.Decode() {
			debug.Logf("decode: terminator at %#x after %d records\n", d.pos, d.n)
		}
		return nil, io.EOF
	}

	d.state = stateDecodeHeader
	if d.remaining() < literalHeaderSize {
		return nil, d.fail(0, fmt.Errorf("%w: record header needs %d bytes, %d left",
			ErrTruncatedPatch, literalHeaderSize, d.remaining()))
	}
	h := d.patch[d.pos:]
	offset := uint32(h[0])<<16 | uint32(h[1])<<8 | uint32(h[2])
	size := int(h[3])<<8 | int(h[4])

	var rec Record
	if size == 0 {
		d.state = stateApplyRunLength
		if d.remaining() < rleHeaderSize {
			return nil, d.fail(offset, fmt.Errorf("%w: rle header needs %d bytes, %d left",
				ErrTruncatedPatch, rleHeaderSize, d.remaining()))
		}
		rec = NewRunLength(offset, uint16(h[5])<<8|uint16(h[6]), h[7])
	} else {
		d.state = stateApplyLiteral
		if d.remaining() < literalHeaderSize+size {
			return nil, d.fail(offset, fmt.Errorf("%w: literal payload needs %d bytes, %d left",
				ErrTruncatedPatch, size, d.remaining()-literalHeaderSize))
		}
		start := d.pos + literalHeaderSize
		rec = NewLiteral(offset, d.patch[start:start+size:start+size])
	}
	d.pos += rec.EncodedLen()
	d.n++
	if debug.Decode() {
		debug.Logf("decode: record %d %s\n", d.n-1, rec)
	}
	return &rec, nil
}

func (d *Decoder) fail(offset uint32, err error) error {
	d.state = stateFailed
	d.err = &RecordError{Index: d.n, Pos: d.pos, Offset: offset, Err: err}
	return d.err
}

func (d *Decoder) remaining() int {
	return len(d.patch) - d.pos
}

// Pos returns the read cursor. Once Done, it is the position of the
// terminator.
func (d *Decoder) Pos() int {
	return d.pos
}

// Count returns the number of records decoded so far.
func (d *Decoder) Count() int {
	return d.n
}

// Done reports whether the terminator has been reached.
func (d *Decoder) Done() bool {
	return d.state == stateDone
}

// Parse decodes all records of patch.
func Parse(patch []byte) ([]Record, error) {
	d, err := NewDecoder(patch)
	if err != nil {
		return nil, err
	}
	var res []Record
	for {
		rec, err := d.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, *rec)
	}
}
