package list

// Allocator accounts for the nodes of one or more lists. Reserve is called
// before a node is created and must leave the allocator unchanged when it
// fails.
type Allocator interface {
	Reserve() error
	// Free returns n destroyed nodes.
	Free(n int)
	// Adopt takes over n live nodes accounted by another allocator. It never
	// fails, even when the adopted nodes exceed the limit.
	Adopt(n int)
}

// Budget is an Allocator with an optional cap on live nodes. A limit of 0
// means unbounded.
type Budget struct {
	limit     int
	live      int
	allocated int
	freed     int
}

func NewBudget(limit int) *Budget {
	if limit < 0 {
		limit = 0
	}
	return &Budget{limit: limit}
}

func (b *Budget) Reserve() error {
	if b.limit > 0 && b.live >= b.limit {
		return NewOutOfMemoryError(b.live, b.limit)
	}
	b.live++
	b.allocated++
	return nil
}

func (b *Budget) Free(n int) {
	b.live -= n
	b.freed += n
}

func (b *Budget) Adopt(n int) {
	b.live += n
	b.allocated += n
}

func (b *Budget) Limit() int     { return b.limit }
func (b *Budget) Live() int      { return b.live }
func (b *Budget) Allocated() int { return b.allocated }
func (b *Budget) Freed() int     { return b.freed }
