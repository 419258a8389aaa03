package chrono

import "sync"

// patternCache memoizes the Formatter compiled from a given pattern string, so that the
// Format(layout)/Parse(layout, value) convenience methods on the value types don't pay
// the compilation cost (and allocation) on every call when a handful of layouts are
// reused across a hot loop, which is the common case for this kind of API.
var patternCache sync.Map // map[string]*Formatter

func formatterForPattern(pattern string) *Formatter {
	if f, ok := patternCache.Load(pattern); ok {
		return f.(*Formatter)
	}

	f := NewPatternFormatter(pattern)
	actual, _ := patternCache.LoadOrStore(pattern, f)
	return actual.(*Formatter)
}
