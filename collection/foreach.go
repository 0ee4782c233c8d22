package collection

// ForEach invokes action once per element of s, in order.
// It never skips, reorders or stops early.
func ForEach[T any](s []T, action func(T)) {
	for i := range s {
		action(s[i])
	}
}
