package scanner

import "fmt"

// IOError reports a failure to load the target file: it does not exist,
// cannot be read, or is not valid UTF-8 text.
type IOError struct {
	Op   string // "open", "read" or "decode"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
