package shared

// Window returns the half-open range [start, end) of n rows to draw in
// size lines so that cursor stays visible, scrolling as little as
// possible.
func Window(n, cursor, size int) (start, end int) {
	if size <= 0 || n <= 0 {
		return 0, 0
	}
	if n <= size {
		return 0, n
	}
	cursor = Clamp(cursor, n)
	start = max(cursor-size/2, 0)
	start = min(start, n-size)
	return start, start + size
}

// Clamp keeps cursor inside [0, n). An empty list clamps to 0.
func Clamp(cursor, n int) int {
	if n <= 0 || cursor < 0 {
		return 0
	}
	return min(cursor, n-1)
}
