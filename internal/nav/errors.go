package nav

import "errors"

// ErrOrderKindMismatch indicates a NavOrder entry names an existing content
// entry of the opposite kind (a file where a directory is expected, or the
// reverse). This is a configuration error rather than something to resolve
// silently.
var ErrOrderKindMismatch = errors.New("nav order entry kind mismatch")
