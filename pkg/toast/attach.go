package toast

// Attach binds a toast to b. The toast is shown while b holds an item and is
// drawn with content. onDismiss, if not nil, runs each time the toast
// dismisses itself (timeout, tap, backdrop, drag, key or Dismiss); it does
// not run when the host clears the binding directly.
func Attach[T any](b Binding[T], opts Options, onDismiss func(), content func(T) string) *Model[T] {
	return newModel(b, opts, onDismiss, content)
}

// AttachBool binds a toast to a boolean flag. The toast is shown while *p is
// true and dismissal sets it back to false.
func AttachBool(p *bool, opts Options, onDismiss func(), content func() string) *Model[Unit] {
	return Attach(BoolBinding(p), opts, onDismiss, func(Unit) string { return content() })
}

// AttachPointer binds a toast to an optional item held as a pointer. The
// toast is shown while *p is non-nil and dismissal sets it to nil.
func AttachPointer[T any](p **T, opts Options, onDismiss func(), content func(T) string) *Model[T] {
	return Attach(PointerBinding(p), opts, onDismiss, content)
}

// Present binds a toast to a boolean flag.
//
// Deprecated: Use AttachBool.
func Present(isPresented *bool, opts Options, onDismiss func(), content func() string) *Model[Unit] {
	return AttachBool(isPresented, opts, onDismiss, content)
}
