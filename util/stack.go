package util

// Stack is a LIFO of T. The zero value is empty and ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes the top item. It returns the zero value when the stack is empty.
func (s *Stack[T]) Pop() (item T) {
	if len(s.items) == 0 {
		return
	}

	last := len(s.items) - 1
	item, s.items = s.items[last], s.items[:last]
	return
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}
