package gen

import "errors"

// ErrTooFewLevels indicates a MaxDepth below the minimum of 1.
var ErrTooFewLevels = errors.New("gen: max depth must be >= 1")

// ErrTooFewChildren indicates a MaxChildren below the minimum of 1.
var ErrTooFewChildren = errors.New("gen: max children must be >= 1")

// ErrNeedRandSource indicates RandomTree was called without an RNG —
// randomness is never implicit: callers must supply WithRand or WithSeed.
var ErrNeedRandSource = errors.New("gen: rng is required")
