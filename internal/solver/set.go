package solver

type void struct{}

type set[T comparable] map[T]void

func newSet[T comparable](items ...T) set[T] {
	s := make(set[T], len(items))
	for _, item := range items {
		s[item] = void{}
	}
	return s
}

func (s set[T]) add(item T) {
	s[item] = void{}
}

func (s set[T]) has(item T) bool {
	_, ok := s[item]
	return ok
}

func (s set[T]) remove(item T) {
	delete(s, item)
}

func (s set[T]) clone() set[T] {
	c := make(set[T], len(s))
	for item := range s {
		c[item] = void{}
	}
	return c
}

func (s set[T]) equal(x set[T]) bool {
	if len(s) != len(x) {
		return false
	}
	for item := range s {
		if _, ok := x[item]; !ok {
			return false
		}
	}
	return true
}

// Reports whether s is a strict subset of x.
func (s set[T]) properSubsetOf(x set[T]) bool {
	if len(s) >= len(x) {
		return false
	}
	for item := range s {
		if _, ok := x[item]; !ok {
			return false
		}
	}
	return true
}

func (s set[T]) slice() []T {
	items := make([]T, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	return items
}
