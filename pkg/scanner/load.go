package scanner

import (
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/praetorian-inc/decodescan/pkg/types"
)

// ErrInvalidUTF8 is wrapped by the IOError returned for undecodable content.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

const byteOrderMark = "\uFEFF"

// newlines folds CRLF and lone CR to LF, as text-mode readers do.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// LoadOptions controls how content is read.
type LoadOptions struct {
	// StripBOM drops a leading U+FEFF so it does not shift offsets.
	StripBOM bool
}

// Load reads the whole file at path as UTF-8 text.
func Load(path string) (*types.Content, error) {
	return LoadWithOptions(path, LoadOptions{})
}

// LoadWithOptions reads the whole file at path as UTF-8 text.
// Line endings are normalized to LF before offsets are counted.
// Every failure is returned as an *IOError.
func LoadWithOptions(path string, opts LoadOptions) (*types.Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &IOError{Op: "decode", Path: path, Err: ErrInvalidUTF8}
	}

	text := newlines.Replace(string(data))
	if opts.StripBOM {
		text = strings.TrimPrefix(text, byteOrderMark)
	}
	return types.NewContent(path, text), nil
}
