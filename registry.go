package eventx

// listenerEntry is one registration: a listener bound to an event code with
// an enabled flag.
type listenerEntry struct {
	listener Listener
	code     int
	enabled  bool
}

// listenerTable is the fixed-capacity registration table. Entries [0, count)
// are live and contiguous; removal compacts by shifting later entries left.
// The table performs no locking: it belongs to the consumer goroutine.
type listenerTable struct {
	entries []listenerEntry
	count   int

	defaultListener Listener
	defaultEnabled  bool
}

func newListenerTable(capacity int) *listenerTable {
	if capacity < 1 {
		capacity = DefaultListenerCapacity
	}
	return &listenerTable{entries: make([]listenerEntry, capacity)}
}

func (t *listenerTable) empty() bool { return t.count == 0 }
func (t *listenerTable) full() bool  { return t.count == len(t.entries) }
func (t *listenerTable) size() int   { return t.count }

// add appends an enabled registration. Duplicates are not collapsed; every
// copy fires independently.
func (t *listenerTable) add(code int, l Listener) bool {
	if nilListener(l) || t.full() {
		return false
	}
	t.entries[t.count] = listenerEntry{listener: l, code: code, enabled: true}
	t.count++
	return true
}

// remove deletes the first entry matching (code, l), shifting later entries
// left one slot. Call again to remove further duplicates.
func (t *listenerTable) remove(code int, l Listener) bool {
	k := t.search(code, l)
	if k < 0 {
		return false
	}
	t.deleteAt(k)
	return true
}

// removeAll deletes every entry whose listener matches l, across all codes,
// and returns how many were removed.
func (t *listenerTable) removeAll(l Listener) int {
	removed := 0
	for {
		k := t.searchListener(l)
		if k < 0 {
			return removed
		}
		t.deleteAt(k)
		removed++
	}
}

// enable sets the enabled flag on the first entry matching (code, l) and
// reports whether a match was found.
func (t *listenerTable) enable(code int, l Listener, enable bool) bool {
	k := t.search(code, l)
	if k < 0 {
		return false
	}
	t.entries[k].enabled = enable
	return true
}

// enabled returns the flag of the first match, or false when nothing matches.
func (t *listenerTable) enabled(code int, l Listener) bool {
	k := t.search(code, l)
	if k < 0 {
		return false
	}
	return t.entries[k].enabled
}

// setDefault installs l as the fallback listener and enables it.
func (t *listenerTable) setDefault(l Listener) bool {
	if nilListener(l) {
		return false
	}
	t.defaultListener = l
	t.defaultEnabled = true
	return true
}

// removeDefault clears the fallback listener and disables it.
func (t *listenerTable) removeDefault() {
	t.defaultListener = nil
	t.defaultEnabled = false
}

// enableDefault flips the fallback flag without touching the listener.
func (t *listenerTable) enableDefault(enable bool) {
	t.defaultEnabled = enable
}

// send invokes every enabled listener registered for code, in registration
// order, with (code, param). When none fired and an enabled default listener
// is installed, the default fires once instead. Returns the number of
// listeners invoked.
func (t *listenerTable) send(code, param int) int {
	handled := 0
	for i := 0; i < t.count; i++ {
		e := &t.entries[i]
		if e.code == code && e.enabled {
			handled++
			e.listener.HandleEvent(code, param)
		}
	}
	if handled == 0 && t.defaultListener != nil && t.defaultEnabled {
		handled++
		t.defaultListener.HandleEvent(code, param)
	}
	return handled
}

// search returns the index of the first entry matching both code and
// listener, or -1.
func (t *listenerTable) search(code int, l Listener) int {
	for i := 0; i < t.count; i++ {
		if t.entries[i].code == code && sameListener(t.entries[i].listener, l) {
			return i
		}
	}
	return -1
}

// searchListener returns the index of the first entry whose listener matches
// l regardless of code, or -1.
func (t *listenerTable) searchListener(l Listener) int {
	for i := 0; i < t.count; i++ {
		if sameListener(t.entries[i].listener, l) {
			return i
		}
	}
	return -1
}

// deleteAt removes entry k, keeping live entries contiguous and releasing
// the vacated slot's listener reference.
func (t *listenerTable) deleteAt(k int) {
	for i := k; i < t.count-1; i++ {
		t.entries[i] = t.entries[i+1]
	}
	t.count--
	t.entries[t.count] = listenerEntry{}
}
