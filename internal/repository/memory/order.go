package memory

// lessID orders numeric-looking ids by value ("2" < "10") and everything
// else lexically.
func lessID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
