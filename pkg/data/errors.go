package data

import "fmt"

// LoadError reports that the source could not be turned into a Table.
// It is fatal: nothing downstream runs after it.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	src := e.Path
	if src == "" {
		src = "input"
	}
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", src, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", src, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadErr(path, reason string, err error) *LoadError {
	return &LoadError{Path: path, Reason: reason, Err: err}
}
