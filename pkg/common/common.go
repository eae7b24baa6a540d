// 29 Apr 2020

// Package common has the bits shared by the commands and their tests.
package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) { return WrtTempExt(s, "") }

// WrtTempExt is like WrtTemp, but the name ends in ext, like ".pdb".
// We look at file names to guess the format, so tests need this.
func WrtTempExt(s, ext string) (string, error) {
	fTmp, err := os.CreateTemp("", "_del_me_testing*"+ext)
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer fTmp.Close()
	if _, err := io.WriteString(fTmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", fTmp.Name(), err)
	}
	return fTmp.Name(), nil
}
