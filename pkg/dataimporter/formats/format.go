package formats

import (
	"io"
)

// Format is a feed parser that can read either a bundled archive or an
// extracted directory.
type Format interface {
	ParseFile(io.Reader) error
	ParseDirectory(string) error
}
