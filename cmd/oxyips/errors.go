package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/Wew-Laddie/OxyIPS/encode"
	"github.com/Wew-Laddie/OxyIPS/ips"
	"github.com/Wew-Laddie/OxyIPS/libdiff"

	"github.com/scott-cotton/cli"
)

const (
	exitOK = iota
	exitUsage
	exitNotFound
	exitIO
	exitSignature
	exitTruncated
	exitRange
	exitGap
	exitCreate
)

func exitCode(err error) int {
	var fe *fileError
	if errors.As(err, &fe) && fe.write {
		return exitIO
	}
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, cli.ErrUsage):
		return exitUsage
	case errors.Is(err, fs.ErrNotExist):
		return exitNotFound
	case errors.Is(err, ips.ErrInvalidSignature):
		return exitSignature
	case errors.Is(err, ips.ErrTruncatedPatch):
		return exitTruncated
	case errors.Is(err, ips.ErrOutOfRange):
		return exitRange
	case errors.Is(err, ips.ErrOffsetGap):
		return exitGap
	case errors.Is(err, ips.ErrEncode), errors.Is(err, libdiff.ErrShrink):
		return exitCreate
	default:
		return exitIO
	}
}

type fileRole int

const (
	rolePatch fileRole = iota
	roleROM
	roleOutput
	roleOriginal
	roleModified
)

func (r fileRole) String() string {
	switch r {
	case rolePatch:
		return "IPS patch file"
	case roleROM:
		return "ROM file"
	case roleOutput:
		return "output file"
	case roleOriginal:
		return "original file"
	case roleModified:
		return "modified file"
	default:
		return "file"
	}
}

// fileError ties a failure to the file it concerns.
type fileError struct {
	role  fileRole
	path  string
	write bool
	err   error
}

func (e *fileError) Error() string {
	switch {
	case errors.Is(e.err, fs.ErrNotExist) && !e.write:
		return fmt.Sprintf("%s '%s' does not exist!", e.role, e.path)
	case errors.Is(e.err, ips.ErrInvalidSignature):
		return fmt.Sprintf("%s '%s' is invalid!", e.role, e.path)
	case errors.Is(e.err, ips.ErrTruncatedPatch):
		return fmt.Sprintf("%s '%s' is truncated: %v", e.role, e.path, e.err)
	case errors.Is(e.err, ips.ErrOutOfRange), errors.Is(e.err, ips.ErrOffsetGap):
		return fmt.Sprintf("%s '%s' cannot be applied: %v", e.role, e.path, e.err)
	case e.write:
		return fmt.Sprintf("Failed to write %s '%s'!", e.role, e.path)
	default:
		return fmt.Sprintf("Failed to read %s '%s'!", e.role, e.path)
	}
}

func (e *fileError) Unwrap() error {
	return e.err
}

// report writes err to w and returns the error carrying the exit code
// for err. Usage errors are returned as is.
func report(w io.Writer, colors *encode.Colors, err error) error {
	if err == nil || errors.Is(err, cli.ErrUsage) {
		return err
	}
	theLog.Debug("failed", "error", err, "cause", errors.Unwrap(err))
	fmt.Fprintf(w, "%s %v\n", colors.Sprintf(encode.ErrorColor, "Error:"), err)
	return cli.ExitCodeErr(exitCode(err))
}
