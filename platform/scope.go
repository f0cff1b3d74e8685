package platform

// Scope collects teardown funcs acquired during a mount and releases them
// together. Register each cancel as soon as it is acquired so that early
// returns in setup still leave a complete teardown list.
type Scope struct {
	teardown []func()
	closed   bool
}

// NewScope creates an open scope.
func NewScope() *Scope {
	return &Scope{}
}

// Defer adds fn to the teardown list. On a closed scope fn runs at once.
func (s *Scope) Defer(fn func()) {
	if fn == nil {
		return
	}
	if s.closed {
		fn()
		return
	}
	s.teardown = append(s.teardown, fn)
}

// Close runs the teardown list in reverse order. Calling it again is a no-op.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.teardown) - 1; i >= 0; i-- {
		s.teardown[i]()
	}
	s.teardown = nil
}

// Closed reports whether Close has run.
func (s *Scope) Closed() bool {
	return s.closed
}

// Len returns the number of pending teardown funcs.
func (s *Scope) Len() int {
	return len(s.teardown)
}
