package gradebook

// orderedIndex is a keyed collection that remembers insertion order.
// Lookups are O(1); iteration follows the order in which keys were added.
type orderedIndex[K comparable, V any] struct {
	keys  []K
	items map[K]V
}

func newOrderedIndex[K comparable, V any]() *orderedIndex[K, V] {
	return &orderedIndex[K, V]{items: make(map[K]V)}
}

// insert adds v under k. It returns false and leaves the index untouched
// when k is already present.
func (o *orderedIndex[K, V]) insert(k K, v V) bool {
	if _, exists := o.items[k]; exists {
		return false
	}
	o.keys = append(o.keys, k)
	o.items[k] = v
	return true
}

func (o *orderedIndex[K, V]) get(k K) (V, bool) {
	v, ok := o.items[k]
	return v, ok
}

func (o *orderedIndex[K, V]) len() int {
	return len(o.keys)
}

// values returns a fresh slice in insertion order.
func (o *orderedIndex[K, V]) values() []V {
	out := make([]V, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, o.items[k])
	}
	return out
}
