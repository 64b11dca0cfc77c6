package util

// Map applies mapper to every element of values, preserving order.
func Map[A any, B any](values []A, mapper func(value A, i uint64) B) []B {
	out := make([]B, 0, len(values))
	for i, v := range values {
		out = append(out, mapper(v, uint64(i)))
	}
	return out
}
