package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Apply  bool
	Diff   bool
	Match  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("OXYIPS_DEBUG_DECODE")
	d.Apply = boolEnv("OXYIPS_DEBUG_APPLY")
	d.Diff = boolEnv("OXYIPS_DEBUG_DIFF")
	d.Match = boolEnv("OXYIPS_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Apply() bool {
	return d.Apply
}
func Diff() bool {
	return d.Diff
}
func Match() bool {
	return d.Match
}
