package form

// Selector is the mutation boundary for a bounded multi-select field such as
// the draft's tags or domains. It caps the number of entries, rejects
// duplicates, and preserves insertion order. The backing slice is only ever
// touched through Add and Remove.
type Selector struct {
	items *[]string
	max   int
}

// NewSelector binds a selector to the given slice with a hard capacity.
func NewSelector(items *[]string, max int) Selector {
	return Selector{items: items, max: max}
}

// Add appends item unless it is already selected or the capacity is
// reached. Returns whether the selection changed.
func (s Selector) Add(item string) bool {
	if s.Contains(item) || len(*s.items) >= s.max {
		return false
	}
	*s.items = append(*s.items, item)
	return true
}

// Remove drops item if present. Returns whether the selection changed.
func (s Selector) Remove(item string) bool {
	for i, existing := range *s.items {
		if existing == item {
			*s.items = append((*s.items)[:i], (*s.items)[i+1:]...)
			return true
		}
	}
	return false
}

func (s Selector) Contains(item string) bool {
	for _, existing := range *s.items {
		if existing == item {
			return true
		}
	}
	return false
}

// Items returns a copy of the current selection in insertion order.
func (s Selector) Items() []string {
	out := make([]string, len(*s.items))
	copy(out, *s.items)
	return out
}

func (s Selector) Len() int {
	return len(*s.items)
}

func (s Selector) Cap() int {
	return s.max
}
