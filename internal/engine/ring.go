package engine

// Ring is a bounded FIFO buffer of audit records. When full, appending
// evicts the oldest entry.
type Ring struct {
	buf   []CleanedEntry
	start int
	count int
}

// NewRing creates a ring holding at most capacity entries.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buf: make([]CleanedEntry, capacity)}
}

// Append adds an entry, evicting the oldest when at capacity.
func (r *Ring) Append(e CleanedEntry) {
	if r.count < len(r.buf) {
		r.buf[(r.start+r.count)%len(r.buf)] = e
		r.count++
		return
	}
	r.buf[r.start] = e
	r.start = (r.start + 1) % len(r.buf)
}

// Len returns the number of stored entries.
func (r *Ring) Len() int {
	return r.count
}

// Cap returns the maximum number of entries the ring holds.
func (r *Ring) Cap() int {
	return len(r.buf)
}

// Entries returns a snapshot ordered oldest to newest.
func (r *Ring) Entries() []CleanedEntry {
	out := make([]CleanedEntry, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.buf[(r.start+i)%len(r.buf)]
	}
	return out
}

// Clear drops all entries.
func (r *Ring) Clear() {
	r.start = 0
	r.count = 0
}
