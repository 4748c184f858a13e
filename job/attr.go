package job

// Attr holds a field value that is either explicitly assigned or lazily
// defaulted. An explicit assignment (including an assignment of the zero
// value) is sticky: once Set has been called, Or returns the stored value
// forever. Unassigned attrs evaluate the default thunk fresh on every
// read, so defaults track the current state of their owner.
type Attr[T any] struct {
	value    T
	assigned bool
}

// Set records an explicit value and marks the attr assigned.
func (a *Attr[T]) Set(v T) {
	a.value = v
	a.assigned = true
}

// Assigned reports whether Set has ever been called.
func (a *Attr[T]) Assigned() bool {
	return a.assigned
}

// Or returns the assigned value, or the result of evaluating def.
func (a *Attr[T]) Or(def func() T) T {
	if a.assigned {
		return a.value
	}
	return def()
}
