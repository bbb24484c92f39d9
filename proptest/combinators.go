package proptest

// =============================================================================
// Selection Combinators
// =============================================================================

// OneOf returns a random element from the provided values.
// Panics if values is empty.
func OneOf[T any](g *Generator, values ...T) T {
	if len(values) == 0 {
		panic("proptest: OneOf called with no values")
	}
	return values[g.Intn(len(values))]
}

// =============================================================================
// Collection Generators
// =============================================================================

// SliceExact generates a slice of exactly the given length.
func SliceExact[T any](g *Generator, length int, gen func(*Generator) T) []T {
	result := make([]T, length)
	for i := 0; i < length; i++ {
		result[i] = gen(g)
	}
	return result
}

// =============================================================================
// Transformation Combinators
// =============================================================================

// Filter generates values until the predicate passes or maxRetries is exceeded.
// Returns (value, true) if a matching value was found, (zero, false) otherwise.
func Filter[T any](g *Generator, maxRetries int, gen func(*Generator) T, pred func(T) bool) (T, bool) {
	for i := 0; i < maxRetries; i++ {
		val := gen(g)
		if pred(val) {
			return val, true
		}
	}
	var zero T
	return zero, false
}

// =============================================================================
// Struct/Tuple Helpers
// =============================================================================

// Pair generates a pair of values.
func Pair[A, B any](g *Generator, genA func(*Generator) A, genB func(*Generator) B) (A, B) {
	return genA(g), genB(g)
}
