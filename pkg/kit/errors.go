package kit

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is matched by errors for unknown load extensions and
// export selectors.
var ErrUnsupportedFormat = errors.New("unsupported format")

// UnsupportedFormatError names the rejected format and the operation that
// rejected it ("load" or "export").
type UnsupportedFormatError struct {
	Op     string
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Op, e.Format)
}

func (e *UnsupportedFormatError) Is(target error) bool { return target == ErrUnsupportedFormat }
