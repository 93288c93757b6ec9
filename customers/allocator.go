package customers

// IDAllocator hands out the order IDs shared across every bucket of every
// customer in a run. It is threaded explicitly through generation calls
// instead of living as package state; IDs are strictly sequential.
type IDAllocator struct {
	next int
}

func NewIDAllocator(start int) *IDAllocator {
	return &IDAllocator{next: start}
}

// Take returns the next ID and advances the counter.
func (a *IDAllocator) Take() int {
	id := a.next
	a.next++
	return id
}
