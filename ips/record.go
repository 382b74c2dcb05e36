package ips

import (
	"bytes"
	"fmt"
)

const (
	Signature  = "PATCH"
	Terminator = "EOF"

	// MaxOffset is the largest offset a record header can hold.
	MaxOffset = 1<<24 - 1
	// MaxSize is the largest literal payload or run length.
	MaxSize = 1<<16 - 1

	// EOFOffset is the offset whose header bytes equal the terminator.
	EOFOffset = 0x454f46

	literalHeaderSize = 5
	rleHeaderSize     = 8
)

type Kind int

const (
	Literal Kind = iota
	RunLength
)

func (k Kind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Literal:
		return []byte("literal"), nil
	case RunLength:
		return []byte("rle"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a record kind>", int(k))
	}
}

// Record is a single patch operation. Data is only set for Literal records,
// Run and Fill only for RunLength records.
type Record struct {
	Offset uint32
	Kind   Kind
	Data   []byte
	Run    uint16
	Fill   byte
}

func NewLiteral(offset uint32, data []byte) Record {
	return Record{Offset: offset, Kind: Literal, Data: data}
}

func NewRunLength(offset uint32, run uint16, fill byte) Record {
	return Record{Offset: offset, Kind: RunLength, Run: run, Fill: fill}
}

// Len returns the number of target bytes the record writes.
func (r *Record) Len() int {
	switch r.Kind {
	case Literal:
		return len(r.Data)
	case RunLength:
		return int(r.Run)
	default:
		panic(fmt.Sprintf("unknown record kind %d", r.Kind))
	}
}

// End returns the offset just past the last byte the record writes.
func (r *Record) End() int {
	return int(r.Offset) + r.Len()
}

// Bytes returns the bytes written to the target. For literal records the
// result aliases Data.
func (r *Record) Bytes() []byte {
	switch r.Kind {
	case Literal:
		return r.Data
	case RunLength:
		return bytes.Repeat([]byte{r.Fill}, int(r.Run))
	default:
		panic(fmt.Sprintf("unknown record kind %d", r.Kind))
	}
}

// EncodedLen returns the size of the record in a patch.
func (r *Record) EncodedLen() int {
	switch r.Kind {
	case Literal:
		return literalHeaderSize + len(r.Data)
	case RunLength:
		return rleHeaderSize
	default:
		panic(fmt.Sprintf("unknown record kind %d", r.Kind))
	}
}

func (r Record) String() string {
	switch r.Kind {
	case Literal:
		return fmt.Sprintf("literal: %d bytes at 0x%06x", len(r.Data), r.Offset)
	case RunLength:
		return fmt.Sprintf("rle: %#02x x %d at 0x%06x", r.Fill, r.Run, r.Offset)
	default:
		return fmt.Sprintf("<unknown record kind %d>", r.Kind)
	}
}
