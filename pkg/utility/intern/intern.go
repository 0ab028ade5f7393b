package intern

import "sync"

// Process-wide table of canonical strings. Entries live for the lifetime of the
// process; the table only grows. Identifier values are few in practice (thousands),
// so no eviction is needed.
var table sync.Map

// Get returns the canonical pointer for s, inserting s on first use. Two calls
// with equal strings always return the same pointer, so callers may compare
// pointers instead of contents.
func Get(s string) *string {
	if v, ok := table.Load(s); ok {
		return v.(*string)
	}
	v, _ := table.LoadOrStore(s, &s)
	return v.(*string)
}

// Len reports the number of distinct strings interned so far. It is linear in
// the table size and intended for diagnostics and tests.
func Len() int {
	n := 0
	table.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
