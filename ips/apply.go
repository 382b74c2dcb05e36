package ips

import (
	"fmt"
	"io"
	"slices"

	"github.com/Wew-Laddie/OxyIPS/debug"
)

// GapPolicy decides what happens when a record starts past the end of the
// target.
type GapPolicy int

const (
	// GapZeroFill pads the target with zeros up to the record offset.
	GapZeroFill GapPolicy = iota
	// GapAppend writes the record at the current end of the target,
	// ignoring the gap. This matches the output of the original OxyIPS.
	GapAppend
	// GapError rejects the record with ErrOffsetGap.
	GapError
)

func ParseGapPolicy(v string) (GapPolicy, error) {
	p, ok := map[string]GapPolicy{
		"zero":   GapZeroFill,
		"append": GapAppend,
		"error":  GapError,
	}[v]
	if ok {
		return p, nil
	}
	return 0, fmt.Errorf("bad gap policy %q (want zero, append or error)", v)
}

func (p GapPolicy) String() string {
	d, err := p.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (p GapPolicy) MarshalText() ([]byte, error) {
	switch p {
	case GapZeroFill:
		return []byte("zero"), nil
	case GapAppend:
		return []byte("append"), nil
	case GapError:
		return []byte("error"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a gap policy>", int(p))
	}
}

func (p *GapPolicy) UnmarshalText(d []byte) error {
	pp, err := ParseGapPolicy(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

type ApplyConfig struct {
	Gap GapPolicy
}

type ApplyOpt func(*ApplyConfig)

func ApplyGap(p GapPolicy) ApplyOpt {
	return func(c *ApplyConfig) { c.Gap = p }
}

// Apply applies patch to a copy of source and returns the patched image
// with the number of records applied. source is not modified. On error no
// image is returned.
func Apply(patch, source []byte, opts ...ApplyOpt) ([]byte, int, error) {
	cfg := &ApplyConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	d, err := NewDecoder(patch)
	if err != nil {
		return nil, 0, err
	}
	target := slices.Clone(source)
	if target == nil {
		target = []byte{}
	}
	for {
		pos := d.Pos()
		rec, err := d.Next()
		if err == io.EOF {
			return target, d.Count(), nil
		}
		if err != nil {
			return nil, 0, err
		}
		target, err = ApplyRecord(target, rec, cfg.Gap)
		if err != nil {
			return nil, 0, &RecordError{Index: d.Count() - 1, Pos: pos, Offset: rec.Offset, Err: err}
		}
	}
}

// ApplyRecord writes rec into target and returns the possibly grown target.
// A record starting inside target must also end inside it.
func ApplyRecord(target []byte, rec *Record, gap GapPolicy) ([]byte, error) {
	off, n := int(rec.Offset), rec.Len()
	if off < len(target) {
		if off+n > len(target) {
			return target, fmt.Errorf("%w: [%#x, %#x) exceeds target length %#x", ErrOutOfRange, off, off+n, len(target))
		}
		if debug.Apply() {
			debug.Logf("apply: overwrite %s%s", rec, debug.Hex(rec.Bytes()))
		}
		switch rec.Kind {
		case Literal:
			copy(target[off:], rec.Data)
		case RunLength:
			fill(target[off:off+n], rec.Fill)
		}
		return target, nil
	}
	if off > len(target) {
		switch gap {
		case GapZeroFill:
			target = slices.Grow(target, off+n-len(target))
			target = append(target, make([]byte, off-len(target))...)
		case GapAppend:
		case GapError:
			return target, fmt.Errorf("%w: offset %#x, target length %#x", ErrOffsetGap, off, len(target))
		default:
			return target, fmt.Errorf("unknown gap policy %d", int(gap))
		}
	}
	if debug.Apply() {
		debug.Logf("apply: extend at %#x with %s%s", len(target), rec, debug.Hex(rec.Bytes()))
	}
	switch rec.Kind {
	case Literal:
		target = append(target, rec.Data...)
	case RunLength:
		start := len(target)
		target = slices.Grow(target, n)[:start+n]
		fill(target[start:], rec.Fill)
	}
	return target, nil
}

func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}
