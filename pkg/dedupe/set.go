// Package dedupe provides a bounded set of recently seen keys, used to drop
// duplicate records such as repeated calendar occurrences in a feed.
package dedupe

import "container/list"

// Set remembers string keys up to a fixed capacity. When full, the oldest
// key is forgotten first, so a long feed cannot grow memory without bound.
type Set struct {
	capacity int
	items    map[string]*list.Element
	order    *list.List // front = newest, back = oldest
}

// New creates a Set with the given capacity. A capacity of zero or less
// disables tracking entirely: every key looks new.
func New(capacity int) *Set {
	return &Set{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Seen records key and reports whether it had been seen before. The first
// call for a key returns false, later calls return true until the key ages
// out.
func (s *Set) Seen(key string) bool {
	if s.capacity <= 0 {
		return false
	}

	if _, exists := s.items[key]; exists {
		return true
	}

	if s.order.Len() >= s.capacity {
		oldest := s.order.Back()
		if oldest != nil {
			delete(s.items, oldest.Value.(string))
			s.order.Remove(oldest)
		}
	}

	elem := s.order.PushFront(key)
	s.items[key] = elem
	return false
}

// Contains checks whether key is currently tracked, without recording it.
func (s *Set) Contains(key string) bool {
	_, exists := s.items[key]
	return exists
}

// Len returns the number of keys currently tracked.
func (s *Set) Len() int {
	return len(s.items)
}
