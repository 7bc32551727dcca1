package datetime

import "errors"

// ErrInvalidPattern is returned by Format when a quoted literal in the
// pattern is not terminated.
var ErrInvalidPattern = errors.New("datetime: invalid format pattern")
