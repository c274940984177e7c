/*
File   : lpp/object/builtins.go
Package: object

Package object also owns the builtin function registry lpp's evaluator
consults once an identifier lookup misses both the current environment
and every enclosing one (spec §4.3 "Identifier"). Keeping it here, next
to the Builtin and Error types it is built from, mirrors the teacher's
objects/builtins.go, which keeps its builtin table beside Builtin.
*/
package object

import "fmt"

// Builtins is the minimum built-in set spec §4.3 requires. Registering
// more builtins (as the teacher's std/ package does for its much larger
// language) is the natural extension point, but lpp's Non-goals keep
// this table to exactly what the spec names.
var Builtins = map[string]*Builtin{
	"longitud": {Fn: longitud},
}

// longitud implements the `longitud(x)` builtin: the length, in bytes,
// of a String argument. Arity and type mismatches produce the exact
// diagnostic strings spec §4.3 specifies.
func longitud(args ...Object) Object {
	if len(args) != 1 {
		return newError("número incorrecto de argumentos para longitud, se recibieron %d, se requieren 1", len(args))
	}

	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	default:
		return newError("argumento para longitud sin soporte, se recibió %s", arg.Type())
	}
}

// newError formats a runtime *Error the way every evaluator diagnostic
// in this module does, so builtins and the core evaluator read the same.
func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}
