package t2048

// IDAllocator hands out monotonically increasing tile ids.
// Each session owns one.
type IDAllocator struct {
	next int
}

// NewIDAllocator returns an allocator whose first id is 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Next returns a fresh id.
func (a *IDAllocator) Next() int {
	if a.next < 1 {
		a.next = 1
	}
	id := a.next
	a.next++
	return id
}

// Reset starts numbering from 1 again.
func (a *IDAllocator) Reset() {
	a.next = 1
}

// FastForward makes sure ids up to highest are never handed out.
func (a *IDAllocator) FastForward(highest int) {
	if highest+1 > a.next {
		a.next = highest + 1
	}
}
