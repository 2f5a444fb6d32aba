package storage

import "errors"

type List[T any] interface {
	// Append adds an element to the end of the list.
	Append(T)

	// Len returns the number of elements in the list.
	Len() int

	// Last returns the final element without removing it.
	// It returns an error if the list is empty.
	Last() (T, error)

	// Items returns the elements in insertion order.
	Items() []T
}

type InMemoryList[T any] struct {
	items    []T
	nilValue T
}

func NewInMemoryList[T any](nilValue T) List[T] {
	return &InMemoryList[T]{
		items:    make([]T, 0),
		nilValue: nilValue,
	}
}

func (i *InMemoryList[T]) Append(value T) {
	i.items = append(i.items, value)
}

func (i *InMemoryList[T]) Len() int {
	return len(i.items)
}

func (i *InMemoryList[T]) Last() (T, error) {
	if len(i.items) == 0 {
		return i.nilValue, errors.New("list is empty")
	}

	return i.items[len(i.items)-1], nil
}

func (i *InMemoryList[T]) Items() []T {
	return i.items
}
