package debug

import (
	"encoding/hex"
	"fmt"
	"os"
)

// Hex is logged as a hex dump by Logf.
type Hex []byte

func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(Hex); ok {
			args[i] = "\n" + hex.Dump(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
