package frontier

import "errors"

// ErrInvalidBlockSize indicates a block size M <= 0 was passed to New.
var ErrInvalidBlockSize = errors.New("frontier: block size must be positive")
