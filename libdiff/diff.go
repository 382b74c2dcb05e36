package libdiff

import (
	"errors"
	"fmt"

	"github.com/Wew-Laddie/OxyIPS/debug"
	"github.com/Wew-Laddie/OxyIPS/ips"
)

var ErrShrink = errors.New("modified image is shorter than original")

// DefaultMinRun is the shortest run of one byte value encoded as an RLE
// record.
const DefaultMinRun = 8

// mergeGap is the longest stretch of unchanged bytes folded into a
// surrounding literal; a shorter gap costs less than a new record header.
const mergeGap = 5

type DiffConfig struct {
	MinRun int
}

type DiffOpt func(*DiffConfig)

// DiffMinRun sets the shortest run encoded as RLE. n <= 0 disables RLE.
func DiffMinRun(n int) DiffOpt {
	return func(c *DiffConfig) { c.MinRun = n }
}

// Diff returns the records turning orig into mod. mod may be longer than
// orig but not shorter. Records never straddle the end of orig. When orig
// ends exactly at ips.EOFOffset and mod is longer, the patch relies on the
// default zero fill gap policy.
func Diff(orig, mod []byte, opts ...DiffOpt) ([]ips.Record, error) {
	cfg := &DiffConfig{MinRun: DefaultMinRun}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(mod) < len(orig) {
		return nil, fmt.Errorf("%w: %d < %d", ErrShrink, len(mod), len(orig))
	}
	if len(mod) > ips.MaxOffset+ips.MaxSize {
		return nil, fmt.Errorf("%w: image size %#x", ips.ErrOffsetTooLarge, len(mod))
	}
	differs := func(i int) bool {
		return i >= len(orig) || orig[i] != mod[i]
	}
	b := &builder{mod: mod, minRun: cfg.MinRun}
	for i := 0; i < len(mod); {
		if !differs(i) {
			i++
			continue
		}
		j := i + 1
		for j < len(mod) {
			if differs(j) {
				j++
				continue
			}
			k := j
			for k < len(mod) && k-j < mergeGap && !differs(k) {
				k++
			}
			if k == len(mod) || k-j == mergeGap {
				break
			}
			j = k
		}
		if i < len(orig) && j > len(orig) {
			b.span(i, len(orig))
			i = len(orig)
		}
		if i >= len(orig) {
			if err := b.grow(i, j); err != nil {
				return nil, err
			}
		} else {
			b.span(i, j)
		}
		i = j
	}
	for i := range b.res {
		if err := b.res[i].Validate(); err != nil {
			return nil, err
		}
	}
	return b.res, nil
}

type builder struct {
	mod    []byte
	minRun int
	res    []ips.Record
}

// span emits records for mod[start:end], using RLE for long runs. No
// record boundary other than start is placed at ips.EOFOffset, so records
// appended one after another never need to start there.
func (b *builder) span(start, end int) {
	lit := start
	for p := start; p < end; {
		q := p + 1
		for q < end && q-p < ips.MaxSize && b.mod[q] == b.mod[p] {
			q++
		}
		if b.minRun > 0 && q-p >= b.minRun {
			rs, re := p, q
			if rs == ips.EOFOffset {
				rs++
			}
			if re == ips.EOFOffset && re < end {
				re--
			}
			if rs < re {
				b.literal(lit, rs)
				b.rle(rs, re)
				lit = re
			}
		}
		p = q
	}
	b.literal(lit, end)
}

// grow emits records for mod[start:end] where start is the length of the
// original image, so every record extends the target.
func (b *builder) grow(start, end int) error {
	if start != ips.EOFOffset {
		b.span(start, end)
		return nil
	}
	// Nothing can be appended at the terminator offset. The tail after it is
	// written first, leaving a gap that is zero filled, and the byte at the
	// offset is then overwritten in place.
	if end == start+1 {
		return fmt.Errorf("%w: image cannot grow by one byte at %#x", ips.ErrEOFOffset, start)
	}
	b.span(start+1, end)
	b.eofBridge(start, end)
	return nil
}

func (b *builder) literal(start, end int) {
	for start < end {
		if start == ips.EOFOffset {
			start = b.eofBridge(start, end)
			continue
		}
		n := min(end-start, ips.MaxSize)
		if start+n == ips.EOFOffset && end > ips.EOFOffset {
			n--
		}
		b.emit(ips.NewLiteral(uint32(start), b.mod[start:start+n]))
		start += n
	}
}

func (b *builder) rle(start, end int) {
	b.emit(ips.NewRunLength(uint32(start), uint16(end-start), b.mod[start]))
}

// eofBridge covers the byte at ips.EOFOffset with a literal starting one
// byte earlier and returns the next offset to encode.
func (b *builder) eofBridge(start, end int) int {
	b.emit(ips.NewLiteral(uint32(start-1), b.mod[start-1:start+1]))
	return min(start+1, end)
}

func (b *builder) emit(rec ips.Record) {
	if debug.Diff() {
		debug.Logf("diff: %s\n", rec)
	}
	b.res = append(b.res, rec)
}
