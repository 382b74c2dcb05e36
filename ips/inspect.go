package ips

import "io"

// Summary describes the structure of a patch.
type Summary struct {
	Size     int `yaml:"size"`
	Records  int `yaml:"records"`
	Literals int `yaml:"literals"`
	RLEs     int `yaml:"rles"`

	// LiteralBytes and RLEBytes count target bytes written by each kind.
	LiteralBytes int `yaml:"literalBytes"`
	RLEBytes     int `yaml:"rleBytes"`

	// MinOffset and MaxEnd bound the written range. Both are 0 for a patch
	// without records.
	MinOffset int `yaml:"minOffset"`
	MaxEnd    int `yaml:"maxEnd"`

	Terminator int `yaml:"terminator"`
	// Trailing counts bytes after the terminator. Apply ignores them.
	Trailing int `yaml:"trailing"`
}

func Inspect(patch []byte) (*Summary, error) {
	d, err := NewDecoder(patch)
	if err != nil {
		return nil, err
	}
	s := &Summary{Size: len(patch)}
	for {
		rec, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch rec.Kind {
		case Literal:
			s.Literals++
			s.LiteralBytes += rec.Len()
		case RunLength:
			s.RLEs++
			s.RLEBytes += rec.Len()
		}
		if s.Records == 0 || int(rec.Offset) < s.MinOffset {
			s.MinOffset = int(rec.Offset)
		}
		s.MaxEnd = max(s.MaxEnd, rec.End())
		s.Records++
	}
	s.Terminator = d.Pos()
	s.Trailing = len(patch) - d.Pos() - len(Terminator)
	return s, nil
}
