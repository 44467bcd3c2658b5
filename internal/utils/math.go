// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap переносит v в диапазон [0, size), как для частиц, уходящих за край.
func Wrap(v, size float64) float64 {
	for v < 0 {
		v += size
	}
	for v >= size {
		v -= size
	}
	return v
}
