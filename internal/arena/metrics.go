package arena

// SizeInUse returns the number of bytes the cursor has advanced past,
// including internal fragmentation due to alignment.
func (a *Arena) SizeInUse() int {
	return int(a.cursor.Load())
}

// Capacity returns the fixed capacity of the region in bytes.
func (a *Arena) Capacity() int {
	return len(a.region)
}

// Remaining returns how many bytes can still be allocated, ignoring any
// alignment padding a future allocation may need.
func (a *Arena) Remaining() int {
	r := a.Capacity() - a.SizeInUse()
	if r < 0 {
		return 0
	}
	return r
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}
