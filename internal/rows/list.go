// Package rows provides an ordered collection addressed by a stable key.
//
// Lookups go through a key map; a separate order slice keeps insertion order,
// which is the order rows are shown and saved in.
package rows

// List is not safe for concurrent use. Callers serialize access.
type List[T any] struct {
	items map[string]T
	order []string
}

func New[T any]() *List[T] {
	return &List[T]{items: make(map[string]T)}
}

func (l *List[T]) Len() int {
	return len(l.order)
}

func (l *List[T]) Has(key string) bool {
	_, ok := l.items[key]
	return ok
}

func (l *List[T]) Get(key string) (T, bool) {
	v, ok := l.items[key]
	return v, ok
}

// At returns the row at position i.
func (l *List[T]) At(i int) (string, T, bool) {
	var zero T
	if i < 0 || i >= len(l.order) {
		return "", zero, false
	}
	k := l.order[i]
	return k, l.items[k], true
}

// Index returns the position of key, or -1.
func (l *List[T]) Index(key string) int {
	if !l.Has(key) {
		return -1
	}
	for i, k := range l.order {
		if k == key {
			return i
		}
	}
	return -1
}

// Append adds a row at the end. An existing key is overwritten in place.
func (l *List[T]) Append(key string, v T) {
	if _, ok := l.items[key]; !ok {
		l.order = append(l.order, key)
	}
	l.items[key] = v
}

// Set replaces the value of an existing key and reports whether it existed.
func (l *List[T]) Set(key string, v T) bool {
	if _, ok := l.items[key]; !ok {
		return false
	}
	l.items[key] = v
	return true
}

func (l *List[T]) Remove(key string) bool {
	if _, ok := l.items[key]; !ok {
		return false
	}
	delete(l.items, key)
	for i, k := range l.order {
		if k == key {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns a copy of the keys in order.
func (l *List[T]) Keys() []string {
	return append([]string(nil), l.order...)
}

// Values returns the rows in order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, len(l.order))
	for _, k := range l.order {
		out = append(out, l.items[k])
	}
	return out
}

// Reset drops every row.
func (l *List[T]) Reset() {
	l.items = make(map[string]T)
	l.order = nil
}

// FindFirst returns the position and key of the first row matching fn, or -1.
func (l *List[T]) FindFirst(fn func(T) bool) (int, string) {
	for i, k := range l.order {
		if fn(l.items[k]) {
			return i, k
		}
	}
	return -1, ""
}
