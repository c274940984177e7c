/*
File   : lpp/parser/expressions.go
Package: parser

The individual prefix/infix parse functions registered by New. Kept
separate from parser.go so the engine (lookahead, statement dispatch,
error plumbing) and the grammar productions (one function per AST node
type) can be read independently, matching how the teacher splits its
own parser across multiple files by concern.
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/danilopedraza/lpp/ast"
	"github.com/danilopedraza/lpp/token"
)

// parseIdentifier parses a bare identifier reference.
func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

// parseIntegerLiteral parses an integer literal. A literal that does
// not fit int64 (or is otherwise malformed, which the lexer should
// already have prevented) is recorded as a parse error rather than
// panicking.
func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("No se ha podido parsear %s como entero", p.curToken.Literal)
		p.errors = append(p.errors, msg)
		return nil
	}

	lit.Value = value
	return lit
}

// parseStringLiteral parses a double-quoted string literal. lpp has no
// escape sequences (spec §3.1), so the lexer's literal is used as-is.
func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

// parseBoolean parses `verdadero` or `falso`.
func (p *Parser) parseBoolean() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curToken.Type == token.TRUE}
}

// parseGroupedExpression parses a parenthesized expression, used to
// override precedence. An if-condition's parentheses are consumed by
// parseIfExpression itself, not here.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return exp
}

// parsePrefixExpression parses a unary `!` or `-` expression.
func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.Prefix{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()

	expression.Right = p.parseExpression(PREFIX)

	return expression
}

// parseInfixExpression parses a binary expression, continuing from an
// already-parsed left operand at the current operator's precedence.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.Infix{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}

	prec := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(prec)

	return expression
}

// parseIfExpression parses `si (<cond>) { ... } [sino { ... }]`.
func (p *Parser) parseIfExpression() ast.Expression {
	expression := &ast.If{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken()
	expression.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	expression.Consequence = p.parseBlock()

	if p.peekToken.Type == token.ELSE {
		p.nextToken()

		if !p.expectPeek(token.LBRACE) {
			return nil
		}

		expression.Alternative = p.parseBlock()
	}

	return expression
}

// parseFunctionLiteral parses `procedimiento (<params>) { <body> }`.
// Name is left blank here; parseLetStatement fills it in when the
// literal is the right-hand side of a `variable` binding.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	lit.Body = p.parseBlock()

	return lit
}

// parseFunctionParameters parses a comma-separated, possibly empty,
// parenthesized identifier list. curToken is LPAREN on entry; RPAREN on
// exit.
func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := []*ast.Identifier{}

	if p.peekToken.Type == token.RPAREN {
		p.nextToken()
		return identifiers
	}

	p.nextToken()

	identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekToken.Type == token.COMMA {
		p.nextToken()
		p.nextToken()
		identifiers = append(identifiers, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return identifiers
}

// parseCallExpression parses `<function>(<args>)`, invoked as the
// infix handler for LPAREN once a callable left operand has parsed.
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.Call{Token: p.curToken, Function: function}
	exp.Arguments = p.parseCallArguments()
	return exp
}

// parseCallArguments parses a comma-separated, possibly empty,
// parenthesized expression list. curToken is LPAREN on entry; RPAREN on
// exit.
func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.peekToken.Type == token.RPAREN {
		p.nextToken()
		return args
	}

	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))

	for p.peekToken.Type == token.COMMA {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return args
}
