package ballfield

import "errors"

// ErrInvalidConfig is returned (wrapped) when a field cannot be built from
// the given parameters. Nothing is allocated when it is returned.
var ErrInvalidConfig = errors.New("invalid ball field configuration")
