// Package callback maps Go values to small integer ids that can travel through
// native code as opaque userdata pointers.
package callback

import "sync"

// ID identifies a registered value. The zero ID is never handed out.
type ID uintptr

type entry struct {
	value any
	live  bool
}

// Table is a concurrency-safe handle table with slot reuse.
// The zero value is ready to use.
type Table struct {
	mu       sync.RWMutex
	entries  []entry
	freeList []ID
	count    int
}

// Register stores v and returns its id.
func (t *Table) Register(v any) ID {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.count++
	if n := len(t.freeList); n > 0 {
		id := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[id-1] = entry{value: v, live: true}
		return id
	}

	t.entries = append(t.entries, entry{value: v, live: true})
	return ID(len(t.entries))
}

// Lookup returns the value registered under id.
func (t *Table) Lookup(id ID) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if id == 0 || int(id) > len(t.entries) {
		return nil, false
	}
	e := t.entries[id-1]
	return e.value, e.live
}

// Unregister removes id and returns the value it held.
func (t *Table) Unregister(id ID) (any, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id == 0 || int(id) > len(t.entries) {
		return nil, false
	}
	e := t.entries[id-1]
	if !e.live {
		return nil, false
	}
	t.entries[id-1] = entry{}
	t.freeList = append(t.freeList, id)
	t.count--
	return e.value, true
}

// Len returns the number of live registrations.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}
