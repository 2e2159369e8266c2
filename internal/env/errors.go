package env

import (
	"EnvFileGenerator/internal/paths"
	"errors"
	"fmt"
)

var (
	// ErrEmptyPath is matched by every PathError.
	ErrEmptyPath = errors.New("empty file path provided")
	// ErrExampleExists is returned when the example file would overwrite an existing file.
	ErrExampleExists = errors.New("example file already exists")

	errIsDirectory = errors.New("is a directory")
)

// ReadError reports a source file that exists but could not be read or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read '%s': %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// PathError reports an empty or blank path where one is required.
type PathError struct {
	Param string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v for %s", ErrEmptyPath, e.Param)
}

func (e *PathError) Is(target error) bool {
	return target == ErrEmptyPath
}

// RequirePath trims path and fails with a PathError if nothing is left.
func RequirePath(param, path string) (string, error) {
	p := paths.Normalise(path)
	if p == "" {
		return "", &PathError{Param: param}
	}
	return p, nil
}
