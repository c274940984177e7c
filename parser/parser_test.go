/*
File   : lpp/parser/parser_test.go
Package: parser
*/
package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilopedraza/lpp/ast"
	"github.com/danilopedraza/lpp/lexer"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	p := New(lexer.New(source))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parser errors: %v", p.Errors())
	require.NotNil(t, program)
	return program
}

func TestLetStatement(t *testing.T) {
	tests := []struct {
		source        string
		expectedIdent string
	}{
		{"variable x = 5;", "x"},
		{"variable y = verdadero;", "y"},
		{"variable foo = bar;", "foo"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.source)
		require.Len(t, program.Statements, 1)

		stmt, ok := program.Statements[0].(*ast.LetStatement)
		require.True(t, ok, "expected *ast.LetStatement, got %T", program.Statements[0])
		assert.Equal(t, "variable", stmt.TokenLiteral())
		assert.Equal(t, tt.expectedIdent, stmt.Name.Value)
	}
}

func TestReturnStatement(t *testing.T) {
	program := parseProgram(t, "regresa 5;")
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok, "expected *ast.ReturnStatement, got %T", program.Statements[0])
	assert.Equal(t, "regresa", stmt.TokenLiteral())
}

func TestIdentifierExpression(t *testing.T) {
	program := parseProgram(t, "foobar;")
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ident, ok := stmt.Expression.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "foobar", ident.Value)
}

func TestIntegerLiteralExpression(t *testing.T) {
	program := parseProgram(t, "5;")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), lit.Value)
}

func TestStringLiteralExpression(t *testing.T) {
	program := parseProgram(t, `"hola mundo";`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hola mundo", lit.Value)
}

func TestBooleanExpression(t *testing.T) {
	tests := []struct {
		source   string
		expected bool
	}{
		{"verdadero;", true},
		{"falso;", false},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.source)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		lit, ok := stmt.Expression.(*ast.BooleanLiteral)
		require.True(t, ok)
		assert.Equal(t, tt.expected, lit.Value)
	}
}

func TestPrefixExpressions(t *testing.T) {
	tests := []struct {
		source   string
		operator string
	}{
		{"!5;", "!"},
		{"-15;", "-"},
		{"!verdadero;", "!"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.source)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		exp, ok := stmt.Expression.(*ast.Prefix)
		require.True(t, ok, "expected *ast.Prefix, got %T", stmt.Expression)
		assert.Equal(t, tt.operator, exp.Operator)
	}
}

func TestInfixExpressions(t *testing.T) {
	tests := []struct {
		source   string
		operator string
	}{
		{"5 + 5;", "+"},
		{"5 - 5;", "-"},
		{"5 * 5;", "*"},
		{"5 / 5;", "/"},
		{"5 > 5;", ">"},
		{"5 < 5;", "<"},
		{"5 >= 5;", ">="},
		{"5 <= 5;", "<="},
		{"5 == 5;", "=="},
		{"5 != 5;", "!="},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.source)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		exp, ok := stmt.Expression.(*ast.Infix)
		require.True(t, ok, "expected *ast.Infix, got %T", stmt.Expression)
		assert.Equal(t, tt.operator, exp.Operator)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.source)
		assert.Equal(t, tt.expected, program.String(), "source: %s", tt.source)
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "si (x < y) { x }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.If)
	require.True(t, ok, "expected *ast.If, got %T", stmt.Expression)

	require.Len(t, exp.Consequence.Statements, 1)
	assert.Nil(t, exp.Alternative)
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, "si (x < y) { x } sino { y }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	exp, ok := stmt.Expression.(*ast.If)
	require.True(t, ok, "expected *ast.If, got %T", stmt.Expression)

	require.Len(t, exp.Consequence.Statements, 1)
	require.NotNil(t, exp.Alternative)
	require.Len(t, exp.Alternative.Statements, 1)
}

func TestFunctionLiteral(t *testing.T) {
	program := parseProgram(t, "procedimiento(x, y) { x + y; }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.True(t, ok, "expected *ast.FunctionLiteral, got %T", stmt.Expression)

	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "y", fn.Parameters[1].Value)
	require.Len(t, fn.Body.Statements, 1)
}

func TestFunctionLiteralNamedByLet(t *testing.T) {
	program := parseProgram(t, "variable suma = procedimiento(x, y) { regresa x + y; };")
	stmt := program.Statements[0].(*ast.LetStatement)
	fn, ok := stmt.Value.(*ast.FunctionLiteral)
	require.True(t, ok)
	assert.Equal(t, "suma", fn.Name)
}

func TestFunctionParameterVariants(t *testing.T) {
	tests := []struct {
		source   string
		expected []string
	}{
		{"procedimiento() {};", []string{}},
		{"procedimiento(x) {};", []string{"x"}},
		{"procedimiento(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.source)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		fn := stmt.Expression.(*ast.FunctionLiteral)

		require.Len(t, fn.Parameters, len(tt.expected))
		for i, name := range tt.expected {
			assert.Equal(t, name, fn.Parameters[i].Value)
		}
	}
}

func TestCallExpression(t *testing.T) {
	program := parseProgram(t, "suma(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.Call)
	require.True(t, ok, "expected *ast.Call, got %T", stmt.Expression)

	ident, ok := call.Function.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "suma", ident.Value)
	require.Len(t, call.Arguments, 3)
}

func TestParserErrors_MissingToken(t *testing.T) {
	p := New(lexer.New("variable x 5;"))
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0], "Se esperaba")
}

func TestParserErrors_BadIntegerLiteral(t *testing.T) {
	p := New(lexer.New("99999999999999999999999;"))
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	assert.Equal(t, "No se ha podido parsear 99999999999999999999999 como entero", p.Errors()[0])
}

func TestParserErrors_NoPrefixParseFn(t *testing.T) {
	p := New(lexer.New(") + 1;"))
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
}

func TestParserErrors_ReportsMissingNameOrValue(t *testing.T) {
	sources := []string{"variable = 5;", "variable x = ;"}
	for _, s := range sources {
		p := New(lexer.New(s))
		p.ParseProgram()
		assert.NotEmpty(t, p.Errors(), fmt.Sprintf("expected errors for %q", s))
	}
}
