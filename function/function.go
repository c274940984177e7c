/*
File   : lpp/function/function.go
Package: function

Package function defines the runtime representation of an lpp closure.
It is kept in its own package, separate from object and environment,
for the same reason the teacher repository splits Function out of
objects: object.Object must not import environment.Environment (closures
carry one), and environment.Environment must not import a type that
itself embeds an environment — putting Function here breaks that cycle
while still letting it satisfy object.Object structurally.
*/
package function

import (
	"bytes"
	"strings"

	"github.com/danilopedraza/lpp/ast"
	"github.com/danilopedraza/lpp/environment"
	"github.com/danilopedraza/lpp/object"
)

// Function is a closure: its own parameter list and body straight from
// the AST, plus the environment that was active when the
// `procedimiento` expression was evaluated (Env). Calling a Function
// builds a fresh call environment enclosed by Env — not by the
// caller's environment — which is the lexical-scope rule of spec §3.4
// and what makes a returned inner function still see its defining
// scope's bindings after that scope's call has returned.
type Function struct {
	Name       string
	Parameters []*ast.Identifier
	Body       *ast.Block
	Env        *environment.Environment
}

// Type implements object.Object.
func (f *Function) Type() object.Type { return object.FUNCTION_OBJ }

// Inspect implements object.Object. Per spec §6.4, the exact rendering
// of a function is implementation-defined; this follows the teacher's
// "name + signature + body" convention (objects.Function.ToObject).
func (f *Function) Inspect() string {
	var out bytes.Buffer

	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("procedimiento")
	if f.Name != "" {
		out.WriteString("<" + f.Name + ">")
	}
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}
