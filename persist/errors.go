package persist

import "errors"

// ErrNotFound indicates the requested graph file does not exist.
var ErrNotFound = errors.New("persist: graph not found")

// ErrDecodeFailed indicates the on-disk file was not a valid gob-encoded snapshot.
var ErrDecodeFailed = errors.New("persist: decode failed")
