package rulebook

import "sort"

// Set collects mechanics deduplicated by name. The first instance added under a
// name is kept; later ones with the same name are dropped.
type Set[T Entry] struct {
	items []T
	index map[string]int
}

// NewSet creates a set seeded with items
func NewSet[T Entry](items ...T) *Set[T] {
	s := &Set[T]{index: make(map[string]int)}
	s.Add(items...)
	return s
}

// Add inserts items whose names are not present yet; nil items are skipped
func (s *Set[T]) Add(items ...T) {
	for _, item := range items {
		if isNilEntry(item) {
			continue
		}
		name := item.Header().Name
		if _, ok := s.index[name]; ok {
			continue
		}
		s.index[name] = len(s.items)
		s.items = append(s.items, item)
	}
}

// Has reports whether a mechanic with this exact name is present
func (s *Set[T]) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Remove drops the mechanic with this exact name, if present
func (s *Set[T]) Remove(name string) {
	i, ok := s.index[name]
	if !ok {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].Header().Name] = j
	}
}

// Len returns the number of distinct names
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Items returns the members in insertion order
func (s *Set[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Sorted returns the members ordered by name
func (s *Set[T]) Sorted() []T {
	return SortByName(s.Items())
}

func sortEntries[T Entry](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Header().Name < items[j].Header().Name
	})
}
