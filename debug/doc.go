// Package debug provides environment controlled debug output.
//
// Each switch is read once at startup from an OXYIPS_DEBUG_* variable
// holding a value accepted by strconv.ParseBool:
//
//   - OXYIPS_DEBUG_DECODE - records as they are decoded
//   - OXYIPS_DEBUG_APPLY - writes to the target image
//   - OXYIPS_DEBUG_DIFF - records built from image pairs
//   - OXYIPS_DEBUG_MATCH - record filter evaluation
package debug
