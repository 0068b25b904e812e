package normalizer

import (
	"snake/internal/normal"

	"golang.org/x/exp/maps"
)

// Environment maps variable names to their VarMemory slots within a scope.
//
// Environments are values: Bind and Child return a new Environment and never
// modify the receiver, so a holder of an older Environment never sees
// bindings made later.  The allocation counter travels with the bindings;
// a child scope starts from the parent's counter and its allocations are
// discarded with it.
type Environment struct {
	vars    map[string]normal.Address
	counter int
}

// NewEnvironment returns an empty environment for a fresh compilation unit.
func NewEnvironment() Environment {
	return Environment{vars: map[string]normal.Address{}}
}

// Lookup returns the slot bound to name.
func (e Environment) Lookup(name string) (normal.Address, bool) {
	addr, ok := e.vars[name]
	return addr, ok
}

// Bind allocates the next VarMemory slot for name and returns the extended
// environment with that slot. An existing binding for name is shadowed, not
// reused.
func (e Environment) Bind(name string) (Environment, normal.Address) {
	next := e.Child()
	addr := normal.VarMemory(next.counter)
	next.vars[name] = addr
	next.counter++
	return next, addr
}

// Child returns an independent copy of e for a nested scope.
func (e Environment) Child() Environment {
	vars := maps.Clone(e.vars)
	if vars == nil {
		vars = map[string]normal.Address{}
	}
	return Environment{vars: vars, counter: e.counter}
}

// Counter is the index the next Bind will allocate.
func (e Environment) Counter() int { return e.counter }

// Len is the number of bound names.
func (e Environment) Len() int { return len(e.vars) }
