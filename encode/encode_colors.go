package encode

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	IndexColor ColorAttr = iota
	OffsetColor
	LiteralColor
	RLEColor
	SizeColor
	DataColor
	KeyColor
	DeleteColor
	InsertColor
	ElideColor
	ErrorColor
	OKColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			IndexColor:   color.RGB(96, 96, 96).SprintfFunc(),
			OffsetColor:  color.RGB(128, 216, 236).SprintfFunc(),
			LiteralColor: color.RGB(8, 196, 16).SprintfFunc(),
			RLEColor:     color.RGB(198, 198, 46).SprintfFunc(),
			SizeColor:    color.RGB(196, 96, 16).SprintfFunc(),
			DataColor:    color.RGB(128, 168, 196).SprintfFunc(),
			KeyColor:     color.RGB(74, 92, 138).SprintfFunc(),
			DeleteColor:  color.RedString,
			InsertColor:  color.GreenString,
			ElideColor:   color.BlueString,
			ErrorColor:   color.New(color.FgRed, color.Bold).SprintfFunc(),
			OKColor:      color.GreenString,
		},
	}
}

func colorDefault(f string, args ...any) string {
	return fmt.Sprintf(f, args...)
}

// Sprintf formats with the color for attr. A nil Colors formats without
// color.
func (c *Colors) Sprintf(attr ColorAttr, f string, args ...any) string {
	if c == nil {
		return fmt.Sprintf(f, args...)
	}
	if fn, ok := c.Map[attr]; ok {
		return fn(f, args...)
	}
	if c.Default != nil {
		return c.Default(f, args...)
	}
	return fmt.Sprintf(f, args...)
}
