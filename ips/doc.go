// Package ips decodes, applies and encodes IPS binary patches.
//
// An IPS patch is the signature "PATCH", a sequence of records and the
// terminator "EOF". Each record writes either literal bytes or a run of a
// single fill byte at a 24-bit offset of the target image.
//
// # Usage
//
//	out, n, err := ips.Apply(patch, rom)
//	if errors.Is(err, ips.ErrTruncatedPatch) {
//		// ...
//	}
//
// Records can be decoded one at a time with a Decoder, and written back
// with Encode or Marshal.
//
// # Related Packages
//
//   - github.com/Wew-Laddie/OxyIPS/libdiff - Create patches from image pairs
//   - github.com/Wew-Laddie/OxyIPS/encode - Render records and summaries
package ips
