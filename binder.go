package eventx

import "fmt"

// Binder accumulates listener bindings and applies them to a Dispatcher in
// one step, in declaration order. It exists for wiring-heavy setup code;
// each binding is exactly an AddListener or SetDefaultListener call
// underneath, with failures surfaced as errors instead of dropped booleans.
type Binder struct {
	bindings []binding
}

type binding struct {
	code      int
	listener  Listener
	isDefault bool
}

// NewBinder creates an empty Binder.
func NewBinder() *Binder {
	return &Binder{}
}

// Handle binds l to code.
func (b *Binder) Handle(code int, l Listener) *Binder {
	b.bindings = append(b.bindings, binding{code: code, listener: l})
	return b
}

// HandleFunc binds a plain function to code.
func (b *Binder) HandleFunc(code int, fn func(code, param int)) *Binder {
	return b.Handle(code, ListenerFunc(fn))
}

// Default binds l as the dispatcher's default listener.
func (b *Binder) Default(l Listener) *Binder {
	b.bindings = append(b.bindings, binding{listener: l, isDefault: true})
	return b
}

// Apply registers every binding on d, stopping at the first failure. The
// error names the failing binding; bindings applied before it stay
// registered.
func (b *Binder) Apply(d *Dispatcher) error {
	for i, bd := range b.bindings {
		if bd.isDefault {
			if !d.SetDefaultListener(bd.listener) {
				return fmt.Errorf("binding %d: nil default listener", i)
			}
			continue
		}
		if !d.AddListener(bd.code, bd.listener) {
			if nilListener(bd.listener) {
				return fmt.Errorf("binding %d (code %d): nil listener", i, bd.code)
			}
			return fmt.Errorf("binding %d (code %d): listener table full", i, bd.code)
		}
	}
	return nil
}
