package eventx

import "reflect"

// Listener handles dispatched events. Implementations must not block; they
// run synchronously on the consumer goroutine inside ProcessEvent and
// ProcessAllEvents.
//
// The dispatcher stores listeners without owning them: a registered listener
// must stay valid until it is removed.
type Listener interface {
	HandleEvent(code, param int)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(code, param int)

// HandleEvent calls f(code, param).
func (f ListenerFunc) HandleEvent(code, param int) { f(code, param) }

// sameListener reports whether a and b are the same listener for removal,
// enabling, and lookup purposes.
//
// Func-kinded listeners compare by code pointer: the same named function or
// the same function literal matches, distinct functions never do. Closures
// built from one literal share a code pointer and are indistinguishable
// here. Other listeners compare with ==, so pointer receivers give
// per-object identity. Listeners whose dynamic type is not comparable never
// match.
func sameListener(a, b Listener) bool {
	if a == nil || b == nil {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}

// nilListener reports whether l is absent: a nil interface, or a typed nil
// function or pointer boxed in the interface.
func nilListener(l Listener) bool {
	if l == nil {
		return true
	}
	switch v := reflect.ValueOf(l); v.Kind() {
	case reflect.Func, reflect.Pointer:
		return v.IsNil()
	default:
		return false
	}
}
