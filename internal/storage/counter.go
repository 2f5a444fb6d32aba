package storage

type Counter[K comparable] interface {

	// Add increases the value associated with the key by delta.
	Add(key K, delta float64)

	// Get returns the accumulated value for the key, zero if absent.
	Get(key K) float64

	// Len returns the number of distinct keys.
	Len() int
}

type InMemoryCounter[K comparable] struct {
	counts map[K]float64
}

func NewInMemoryCounter[K comparable]() Counter[K] {
	return &InMemoryCounter[K]{counts: make(map[K]float64)}
}

func (i *InMemoryCounter[K]) Add(key K, delta float64) {
	i.counts[key] += delta
}

func (i *InMemoryCounter[K]) Get(key K) float64 {
	return i.counts[key]
}

func (i *InMemoryCounter[K]) Len() int {
	return len(i.counts)
}
