package core

// Page is one capacity-bounded window over the full item list.
type Page struct {
	Index    int // 1-based, already clamped to [1, Count]
	Count    int // total pages, at least 1
	Capacity int // max rows used to compute this page
	Offset   int // absolute index of the first row, 0-based
	Length   int // rows on this page
}

// Paginate computes the page a caller asked for, clamping the requested
// index to the valid range. Zero items is not an error here: the caller
// gets a zero-length page 1 of 1 and decides whether that aborts anything.
// An exact-multiple item count gives the last page full capacity.
func Paginate(itemCount, capacity, requestedPage int) (Page, error) {
	if capacity < 1 {
		return Page{}, ErrBadCapacity
	}
	if itemCount < 0 {
		itemCount = 0
	}
	count := (itemCount + capacity - 1) / capacity
	if count < 1 {
		count = 1
	}
	index := requestedPage
	if index < 1 {
		index = 1
	}
	if index > count {
		index = count
	}
	offset := (index - 1) * capacity
	length := capacity
	if index == count {
		length = itemCount - offset
	}
	return Page{
		Index:    index,
		Count:    count,
		Capacity: capacity,
		Offset:   offset,
		Length:   length,
	}, nil
}

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool {
	return p.Index < p.Count
}

// HasPrev reports whether an earlier page exists.
func (p Page) HasPrev() bool {
	return p.Index > 1
}
