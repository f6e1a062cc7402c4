package toast

// Unit is the item presented by boolean-driven toasts.
type Unit struct{}

// Binding is the single source of truth for whether a toast is shown.
// Get reports the current item and whether one is present. Set stores a new
// item, or clears it when present is false.
type Binding[T any] interface {
	Get() (T, bool)
	Set(item T, present bool)
}

type funcBinding[T any] struct {
	get func() (T, bool)
	set func(T, bool)
}

func (b funcBinding[T]) Get() (T, bool)      { return b.get() }
func (b funcBinding[T]) Set(item T, ok bool) { b.set(item, ok) }

// BindingFunc adapts a getter and setter pair to a Binding.
func BindingFunc[T any](get func() (T, bool), set func(item T, present bool)) Binding[T] {
	return funcBinding[T]{get: get, set: set}
}

// BoolBinding maps a boolean flag onto a Binding of Unit.
// true reads as a present Unit; storing any present item writes true.
func BoolBinding(p *bool) Binding[Unit] {
	return BindingFunc(
		func() (Unit, bool) { return Unit{}, *p },
		func(_ Unit, present bool) { *p = present },
	)
}

// PointerBinding maps an optional item, represented as a nillable pointer,
// onto a Binding. A nil pointer reads as absent.
func PointerBinding[T any](p **T) Binding[T] {
	return BindingFunc(
		func() (T, bool) {
			if *p == nil {
				var zero T
				return zero, false
			}
			return **p, true
		},
		func(item T, present bool) {
			if !present {
				*p = nil
				return
			}
			*p = &item
		},
	)
}

// Slot holds at most one item. The zero value is an empty slot.
type Slot[T any] struct {
	item    T
	present bool
}

// NewSlot returns an empty slot.
func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{}
}

// Get implements Binding.
func (s *Slot[T]) Get() (T, bool) {
	return s.item, s.present
}

// Set implements Binding.
func (s *Slot[T]) Set(item T, present bool) {
	if !present {
		var zero T
		item = zero
	}
	s.item = item
	s.present = present
}

// Show stores item in the slot.
func (s *Slot[T]) Show(item T) { s.Set(item, true) }

// Clear empties the slot.
func (s *Slot[T]) Clear() {
	var zero T
	s.Set(zero, false)
}

// Item returns the stored item, if any.
func (s *Slot[T]) Item() (T, bool) { return s.Get() }

// Present reports whether the slot holds an item.
func (s *Slot[T]) Present() bool { return s.present }
