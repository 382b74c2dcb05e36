// Package match filters patch records with boolean expressions.
//
// Expressions are evaluated by github.com/expr-lang/expr against the
// fields of Env, for example
//
//	kind == "rle" && offset >= 0x8000
//	size > 256 || end > 0x100000
package match

import (
	"fmt"

	"github.com/Wew-Laddie/OxyIPS/debug"
	"github.com/Wew-Laddie/OxyIPS/ips"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the environment of a record expression.
type Env struct {
	Index  int    `expr:"index"`
	Offset int    `expr:"offset"`
	Size   int    `expr:"size"`
	End    int    `expr:"end"`
	Kind   string `expr:"kind"`
	// Fill is the fill byte of RLE records and -1 for literals.
	Fill int `expr:"fill"`
}

func NewEnv(index int, rec *ips.Record) Env {
	env := Env{
		Index:  index,
		Offset: int(rec.Offset),
		Size:   rec.Len(),
		End:    rec.End(),
		Kind:   rec.Kind.String(),
		Fill:   -1,
	}
	if rec.Kind == ips.RunLength {
		env.Fill = int(rec.Fill)
	}
	return env
}

type Matcher struct {
	src string
	prg *vm.Program
}

// Compile compiles src. An empty src matches every record.
func Compile(src string) (*Matcher, error) {
	m := &Matcher{src: src}
	if src == "" {
		return m, nil
	}
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	m.prg = prg
	return m, nil
}

func (m *Matcher) String() string {
	return m.src
}

func (m *Matcher) Match(index int, rec *ips.Record) (bool, error) {
	if m.prg == nil {
		return true, nil
	}
	res, err := expr.Run(m.prg, NewEnv(index, rec))
	if err != nil {
		return false, fmt.Errorf("error evaluating %q on record %d: %w", m.src, index, err)
	}
	ok := res.(bool)
	if debug.Match() {
		debug.Logf("match: %q on record %d %s: %t\n", m.src, index, rec, ok)
	}
	return ok, nil
}

// Filter returns the indexes of the records matching m.
func (m *Matcher) Filter(recs []ips.Record) ([]int, error) {
	res := []int{}
	for i := range recs {
		ok, err := m.Match(i, &recs[i])
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, i)
		}
	}
	return res, nil
}
