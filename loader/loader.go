package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

type Kind int

const (
	NotFound Kind = iota + 1
	ReadFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case ReadFailure:
		return "read_failure"
	default:
		return "unknown"
	}
}

// Error is returned by Load. Its message is the one shown to the user.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == NotFound {
		return fmt.Sprintf("Error: The file '%s' was not found.", e.Path)
	}
	return fmt.Sprintf("Error reading '%s': %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == NotFound
}

var errInvalidUTF8 = errors.New("invalid UTF-8 in file content")

// Encoding resolves a WHATWG encoding label. UTF-8 labels resolve to nil,
// which Load treats as strict UTF-8.
func Encoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8", "unicode-1-1-utf-8":
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

// Load reads the whole file at path and decodes it as text. A nil enc means
// strict UTF-8.
func Load(path string, enc encoding.Encoding) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &Error{Kind: NotFound, Path: path, Err: err}
		}
		return "", &Error{Kind: ReadFailure, Path: path, Err: err}
	}
	defer f.Close()

	var r io.Reader = f
	if enc != nil {
		r = transform.NewReader(f, enc.NewDecoder())
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", &Error{Kind: ReadFailure, Path: path, Err: err}
	}
	if enc == nil && !utf8.Valid(data) {
		return "", &Error{Kind: ReadFailure, Path: path, Err: errInvalidUTF8}
	}
	return string(data), nil
}
