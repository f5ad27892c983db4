package types

// OrderedSet is an insertion-order-preserving string set with O(1) membership
// tests. Removal rebuilds the backing slice, keeping the relative order of
// the remaining elements.
type OrderedSet struct {
	items []string
	index map[string]struct{}
}

// NewOrderedSet creates an OrderedSet seeded with the given items, dropping
// duplicates while keeping first-insertion order
func NewOrderedSet(items ...string) *OrderedSet {
	s := &OrderedSet{index: make(map[string]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add appends item unless it is already present. Returns true when the set changed.
func (s *OrderedSet) Add(item string) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

// Remove deletes item if present. Returns true when the set changed.
func (s *OrderedSet) Remove(item string) bool {
	if _, ok := s.index[item]; !ok {
		return false
	}
	delete(s.index, item)

	kept := make([]string, 0, len(s.items)-1)
	for _, existing := range s.items {
		if existing != item {
			kept = append(kept, existing)
		}
	}
	s.items = kept
	return true
}

// Contains reports whether item is in the set
func (s *OrderedSet) Contains(item string) bool {
	_, ok := s.index[item]
	return ok
}

// Len returns the number of elements
func (s *OrderedSet) Len() int {
	return len(s.items)
}

// Items returns the elements in insertion order. The returned slice is a copy.
func (s *OrderedSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
