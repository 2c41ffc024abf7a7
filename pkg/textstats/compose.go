package textstats

// Pipe chains same-typed stages left to right: the result applies first,
// then each of more in the order given.
func Pipe[T any](first func(T) T, more ...func(T) T) func(T) T {
	fn := first
	for _, next := range more {
		prev, stage := fn, next
		fn = func(v T) T { return stage(prev(v)) }
	}
	return fn
}

// Then links two stages whose types differ.
func Then[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Tap wraps a side effect as a pass-through stage.
func Tap[T any](fn func(T)) func(T) T {
	return func(v T) T {
		fn(v)
		return v
	}
}
