package loader

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode wraps r so it yields UTF-8 text with a leading byte-order mark
// removed. Invalid sequences come out as U+FFFD.
func Decode(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
}
