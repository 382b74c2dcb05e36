package libdiff

import (
	"encoding/hex"
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "equal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// HexLine is one line of a hex dump diff.
type HexLine struct {
	Op   Op
	Text string
}

// HexDiff compares the hex dumps of before and after line by line. Each
// dump line holds 16 bytes prefixed with their offset, so only lines with
// changed bytes differ.
func HexDiff(before, after []byte) []HexLine {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(hex.Dump(before), hex.Dump(after))
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []HexLine
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffEqual:
			op = Equal
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			res = append(res, HexLine{Op: op, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(lines []HexLine) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}
