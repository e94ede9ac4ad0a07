package impurity

import "errors"

// ErrInvalidArgument is wrapped by every error caused by a malformed
// argument: an undefined logarithm base, a partition pointing outside its
// table, a missing label column. Degenerate but well-formed input is never
// reported as an error.
var ErrInvalidArgument = errors.New("invalid argument")
