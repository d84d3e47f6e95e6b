package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAlreadyParsed is returned when attempting to parse
// the arguments more than once
var ErrAlreadyParsed = errors.New("arguments already parsed")

// ErrParseFlags is returned when the flags cannot be parsed
type ErrParseFlags struct {
	Cause error
}

func (e ErrParseFlags) Error() string {
	return "failed to parse flags: " + e.Cause.Error()
}

// ErrReadConfigFile is returned when the configuration file
// cannot be read
type ErrReadConfigFile struct {
	Path  string
	Cause error
}

func (e ErrReadConfigFile) Error() string {
	return fmt.Sprintf("failed to read configuration file %s: %s", e.Path, e.Cause.Error())
}

// ErrReadEnvFile is returned when the environment files
// cannot be loaded
type ErrReadEnvFile struct {
	Paths []string
	Cause error
}

func (e ErrReadEnvFile) Error() string {
	return fmt.Sprintf("failed to load environment files %s: %s",
		strings.Join(e.Paths, ", "), e.Cause.Error())
}

// ErrInvalidValue is returned when a parameter has
// a value that is not accepted
type ErrInvalidValue struct {
	Key   string
	Value interface{}
}

func (e ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value %v for %s", e.Value, e.Key)
}
