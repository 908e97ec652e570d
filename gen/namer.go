package gen

import "fmt"

// DefaultNamer returns a Namer that assigns depth-keyed names: vertices
// at distance 1 from the seed get an "a" name, distance 2 a "b" name,
// and so on wrapping through the alphabet, each suffixed with a
// monotonic counter to guarantee uniqueness within one RandomTree run —
// the same "distance picks a letter" idea as graphgen.py's
// alpha_index, minus its first/middle-name JSON asset lookup.
func DefaultNamer() Namer {
	counters := make(map[rune]int)
	return func(depth int) string {
		letter := rune('a' + (depth-1)%26)
		counters[letter]++
		return fmt.Sprintf("%c%d", letter, counters[letter])
	}
}
