/*
File   : lpp/environment/environment.go
Package: environment

Package environment implements the nested lexical scope lpp's evaluator
binds names against (spec §3.4). An Environment is a flat map of names
to values plus a pointer to an optional enclosing Environment; Get walks
outward until a binding is found or the chain is exhausted, and Set
always installs into the innermost (current) Environment, so `variable`
shadows an outer binding rather than rebinding it.

A Block does not get its own Environment — only function calls do (see
function.Function / evaluator.applyFunction) — which is why a nested `si`
block can see its enclosing function's locals, and a `variable` inside it
rebinds them in that same scope rather than introducing a scope of its
own, matching the ast.Block doc
comment and spec's GLOSSARY entry for Block.
*/
package environment

import "github.com/danilopedraza/lpp/object"

// Environment is a lexical scope: a name->value store plus an optional
// pointer to the enclosing scope that defines the lookup chain.
type Environment struct {
	store map[string]object.Object
	outer *Environment
}

// New creates an empty top-level Environment with no enclosing scope.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosedBy creates an Environment nested inside outer: a lookup
// that misses in the new Environment continues in outer. This is used
// both for function calls (function.Function.Env as the outer scope) and
// could, in principle, nest arbitrarily deep.
func NewEnclosedBy(outer *Environment) *Environment {
	env := New()
	env.outer = outer
	return env
}

// Get looks up name in this Environment, then in each enclosing
// Environment in turn, returning the first binding found. The second
// return value is false if name is bound nowhere in the chain.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this Environment only, shadowing (without
// altering) any binding of the same name in an enclosing Environment.
// It returns val for convenience at the call site.
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}
