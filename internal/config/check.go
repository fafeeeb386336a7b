package config

import (
	"errors"
	"os"

	"github.com/gorewood/xmlifyme/internal/fault"
)

// ErrInputDirCreated reports that the input directory was missing and has
// just been created empty.
var ErrInputDirCreated = errors.New("input directory was missing and has been created; add the input file and re-run")

// CheckInput verifies that the input directory and file exist.
//
// A missing input directory is created and the check still fails with
// ErrInputDirCreated, so the operator knows where to put the file.
func CheckInput(c Config) error {
	dir := c.InputDir()

	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return fault.New("config.check_input", fault.KindIO, dir, mkErr)
		}
		return fault.New("config.check_input", fault.KindConfig, dir, ErrInputDirCreated)
	case err != nil:
		return fault.New("config.check_input", fault.KindIO, dir, err)
	case !info.IsDir():
		return fault.New("config.check_input", fault.KindConfig, dir, errors.New("input directory is not a directory"))
	}

	info, err = os.Stat(c.InputPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fault.New("config.check_input", fault.KindConfig, c.InputPath, errors.New("input file not found"))
	case err != nil:
		return fault.New("config.check_input", fault.KindIO, c.InputPath, err)
	case info.IsDir():
		return fault.New("config.check_input", fault.KindConfig, c.InputPath, errors.New("input file is a directory"))
	}
	return nil
}
