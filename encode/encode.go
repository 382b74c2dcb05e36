package encode

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/Wew-Laddie/OxyIPS/format"
	"github.com/Wew-Laddie/OxyIPS/ips"
	"github.com/Wew-Laddie/OxyIPS/libdiff"

	"github.com/goccy/go-yaml"
)

type EncodeConfig struct {
	Format  format.Format
	Colors  *Colors
	Context int
	// Preview is the number of literal bytes shown in text listings.
	Preview int
}

type EncodeOption func(*EncodeConfig)

func EncodeFormat(f format.Format) EncodeOption {
	return func(c *EncodeConfig) { c.Format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(cfg *EncodeConfig) { cfg.Colors = c }
}

// EncodeContext sets the number of unchanged hex dump lines shown around
// each change.
func EncodeContext(n int) EncodeOption {
	return func(c *EncodeConfig) { c.Context = n }
}

func EncodePreview(n int) EncodeOption {
	return func(c *EncodeConfig) { c.Preview = n }
}

func newConfig(opts []EncodeOption) *EncodeConfig {
	cfg := &EncodeConfig{Context: 2, Preview: 8}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Record is the structured form of a record in yaml and json output.
type Record struct {
	Index  int    `yaml:"index"`
	Offset uint32 `yaml:"offset"`
	Kind   string `yaml:"kind"`
	Size   int    `yaml:"size"`
	End    int    `yaml:"end"`
	Fill   *int   `yaml:"fill,omitempty"`
	Data   string `yaml:"data,omitempty"`
}

func FromRecord(index int, rec *ips.Record) Record {
	res := Record{
		Index:  index,
		Offset: rec.Offset,
		Kind:   rec.Kind.String(),
		Size:   rec.Len(),
		End:    rec.End(),
	}
	switch rec.Kind {
	case ips.Literal:
		res.Data = hex.EncodeToString(rec.Data)
	case ips.RunLength:
		fill := int(rec.Fill)
		res.Fill = &fill
	}
	return res
}

// Records writes the records of recs selected by indexes, or all records if
// indexes is nil.
func Records(w io.Writer, recs []ips.Record, indexes []int, opts ...EncodeOption) error {
	cfg := newConfig(opts)
	if indexes == nil {
		indexes = make([]int, len(recs))
		for i := range indexes {
			indexes[i] = i
		}
	}
	if !cfg.Format.IsText() {
		views := make([]Record, 0, len(indexes))
		for _, i := range indexes {
			views = append(views, FromRecord(i, &recs[i]))
		}
		return marshal(w, views, cfg)
	}
	for _, i := range indexes {
		if _, err := io.WriteString(w, recordLine(cfg, i, &recs[i])); err != nil {
			return err
		}
	}
	return nil
}

func recordLine(cfg *EncodeConfig, i int, rec *ips.Record) string {
	c := cfg.Colors
	buf := &strings.Builder{}
	buf.WriteString(c.Sprintf(IndexColor, "%5d", i))
	buf.WriteString("  ")
	buf.WriteString(c.Sprintf(OffsetColor, "0x%06x", rec.Offset))
	buf.WriteString("  ")
	switch rec.Kind {
	case ips.Literal:
		buf.WriteString(c.Sprintf(LiteralColor, "%-7s", rec.Kind))
		buf.WriteString(c.Sprintf(SizeColor, " %5d", rec.Len()))
		buf.WriteString("  ")
		n := min(len(rec.Data), max(0, cfg.Preview))
		buf.WriteString(c.Sprintf(DataColor, "% x", rec.Data[:n]))
		if n < len(rec.Data) {
			buf.WriteString(c.Sprintf(ElideColor, " ..."))
		}
	case ips.RunLength:
		buf.WriteString(c.Sprintf(RLEColor, "%-7s", rec.Kind))
		buf.WriteString(c.Sprintf(SizeColor, " %5d", rec.Len()))
		buf.WriteString("  ")
		buf.WriteString(c.Sprintf(DataColor, "fill %02x", rec.Fill))
	}
	buf.WriteByte('\n')
	return buf.String()
}

func Summary(w io.Writer, s *ips.Summary, opts ...EncodeOption) error {
	cfg := newConfig(opts)
	if !cfg.Format.IsText() {
		return marshal(w, s, cfg)
	}
	c := cfg.Colors
	rows := []struct {
		key string
		val string
	}{
		{"size", fmt.Sprintf("%d bytes", s.Size)},
		{"records", fmt.Sprintf("%d (%d literal, %d rle)", s.Records, s.Literals, s.RLEs)},
		{"written", fmt.Sprintf("%d bytes (%d literal, %d rle)", s.LiteralBytes+s.RLEBytes, s.LiteralBytes, s.RLEBytes)},
		{"range", fmt.Sprintf("0x%06x - 0x%06x", s.MinOffset, s.MaxEnd)},
		{"terminator", fmt.Sprintf("0x%x", s.Terminator)},
		{"trailing", fmt.Sprintf("%d bytes", s.Trailing)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s %s\n", c.Sprintf(KeyColor, "%-11s", row.key+":"), row.val); err != nil {
			return err
		}
	}
	return nil
}

type hexLine struct {
	Op   string `yaml:"op"`
	Text string `yaml:"text"`
}

// HexDiff writes a hex dump diff, eliding unchanged lines further than the
// configured context from any change.
func HexDiff(w io.Writer, lines []libdiff.HexLine, opts ...EncodeOption) error {
	cfg := newConfig(opts)
	keep := make([]bool, len(lines))
	for i := range lines {
		if lines[i].Op == libdiff.Equal {
			continue
		}
		for j := max(0, i-cfg.Context); j <= min(len(lines)-1, i+cfg.Context); j++ {
			keep[j] = true
		}
	}
	if !cfg.Format.IsText() {
		res := []hexLine{}
		for i := range lines {
			if keep[i] {
				res = append(res, hexLine{Op: lines[i].Op.String(), Text: lines[i].Text})
			}
		}
		return marshal(w, res, cfg)
	}
	c := cfg.Colors
	elided := false
	for i := range lines {
		if !keep[i] {
			if !elided {
				if _, err := fmt.Fprintln(w, c.Sprintf(ElideColor, "  ...")); err != nil {
					return err
				}
			}
			elided = true
			continue
		}
		elided = false
		var s string
		switch lines[i].Op {
		case libdiff.Delete:
			s = c.Sprintf(DeleteColor, "- %s", lines[i].Text)
		case libdiff.Insert:
			s = c.Sprintf(InsertColor, "+ %s", lines[i].Text)
		default:
			s = "  " + lines[i].Text
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

func marshal(w io.Writer, v any, cfg *EncodeConfig) error {
	var yOpts []yaml.EncodeOption
	if cfg.Format.IsJSON() {
		yOpts = append(yOpts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(v, yOpts...)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", cfg.Format, err)
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}
