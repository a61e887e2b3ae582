package sets

// Ordered is an insertion-ordered set: every value appears at most once and
// values keep the position of their first insertion. The zero value is ready to use.
type Ordered[T comparable] struct {
	index Set[T]
	order []T
}

// NewOrdered builds an ordered set from vals, dropping later duplicates.
func NewOrdered[T comparable](vals ...T) *Ordered[T] {
	o := &Ordered[T]{}
	o.Add(vals...)
	return o
}

// Add appends the values not already present, in the order given, and
// reports how many were new.
func (o *Ordered[T]) Add(vals ...T) int {
	if o.index == nil {
		o.index = make(Set[T], len(vals))
	}
	added := 0
	for _, v := range vals {
		if o.index.Has(v) {
			continue
		}
		o.index.Add(v)
		o.order = append(o.order, v)
		added++
	}
	return added
}

// Has returns true if v is present.
func (o *Ordered[T]) Has(v T) bool { return o.index.Has(v) }

// Len returns the number of members.
func (o *Ordered[T]) Len() int { return len(o.order) }

// Values returns a copy of the members in insertion order. Never nil.
func (o *Ordered[T]) Values() []T {
	out := make([]T, len(o.order))
	copy(out, o.order)
	return out
}

// Equal reports whether both sets hold the same values in the same order.
func (o *Ordered[T]) Equal(other *Ordered[T]) bool {
	if o.Len() != other.Len() {
		return false
	}
	for i, v := range o.order {
		if other.order[i] != v {
			return false
		}
	}
	return true
}
