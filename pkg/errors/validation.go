package errors

// MaxVertices bounds the size of trees accepted by the validators. Arrangement
// values are sums of at most n-1 lengths below n, so n*n must fit comfortably
// in an int on every platform.
const MaxVertices = 1 << 15

// ValidateVertexCount checks that n is a usable number of vertices.
func ValidateVertexCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "vertex count cannot be negative: %d", n)
	}
	if n > MaxVertices {
		return New(ErrCodeInvalidInput, "vertex count %d exceeds maximum of %d", n, MaxVertices)
	}
	return nil
}

// ValidateVertex checks that u names a vertex of a graph with n vertices.
func ValidateVertex(u, n int) error {
	if u < 0 || u >= n {
		return New(ErrCodeInvalidTree, "vertex %d out of range [0, %d)", u, n)
	}
	return nil
}

// ValidateWorkers checks a worker pool size. Zero means "use the default".
func ValidateWorkers(w int) error {
	if w < 0 {
		return New(ErrCodeInvalidConfig, "workers cannot be negative: %d", w)
	}
	if w > 4096 {
		return New(ErrCodeInvalidConfig, "workers too large (max 4096): %d", w)
	}
	return nil
}
