// Package format names the output formats of oxyips.
//
// # Related Packages
//
//   - github.com/Wew-Laddie/OxyIPS/encode - Encode records in a format
package format
