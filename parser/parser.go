/*
File   : lpp/parser/parser.go
Package: parser

Package parser implements a Pratt (top-down operator precedence) parser
that turns lpp's Token stream into an *ast.Program (spec §4.2). It keeps
two tokens of lookahead (curToken, peekToken) and dispatches on the
current token's type to a prefix or infix parse function; errors are
accumulated rather than raised, so ParseProgram always returns the best-effort
AST it managed to build plus whatever diagnostics it collected along
the way.
*/
package parser

import (
	"fmt"

	"github.com/danilopedraza/lpp/ast"
	"github.com/danilopedraza/lpp/lexer"
	"github.com/danilopedraza/lpp/token"
)

// prefixParseFn parses an expression that starts at curToken with no
// left operand (identifiers, literals, grouped expressions, unary
// prefix operators, if/function literals).
type prefixParseFn func() ast.Expression

// infixParseFn parses an expression that continues from an
// already-parsed left operand (binary operators, function calls).
type infixParseFn func(ast.Expression) ast.Expression

// Parser holds all state needed to drive one parse of a token stream:
// the lexer it pulls tokens from, its two-token lookahead, the
// accumulated error list, and the prefix/infix dispatch tables.
type Parser struct {
	lex *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []string

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over lex, primes two tokens of lookahead, and
// registers every prefix/infix parse function lpp's grammar needs.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{
		lex:    lex,
		errors: []string{},
	}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.NOT, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	p.registerInfix(token.PLUS, p.parseInfixExpression)
	p.registerInfix(token.MINUS, p.parseInfixExpression)
	p.registerInfix(token.DIVISION, p.parseInfixExpression)
	p.registerInfix(token.MULTIPLICATION, p.parseInfixExpression)
	p.registerInfix(token.EQ, p.parseInfixExpression)
	p.registerInfix(token.NOT_EQ, p.parseInfixExpression)
	p.registerInfix(token.LT, p.parseInfixExpression)
	p.registerInfix(token.GT, p.parseInfixExpression)
	p.registerInfix(token.LT_OR_EQ, p.parseInfixExpression)
	p.registerInfix(token.GT_OR_EQ, p.parseInfixExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	// prime curToken/peekToken
	p.nextToken()
	p.nextToken()

	return p
}

// registerPrefix associates a token type with the prefix parse function
// invoked when that type starts an expression.
func (p *Parser) registerPrefix(tokenType token.Type, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

// registerInfix associates a token type with the infix parse function
// invoked when that type follows an already-parsed left operand.
func (p *Parser) registerInfix(tokenType token.Type, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// Errors returns every diagnostic accumulated during parsing, in the
// order they were recorded. An empty (non-nil) slice means parsing
// found nothing to complain about.
func (p *Parser) Errors() []string {
	return p.errors
}

// nextToken shifts the lookahead window forward by one token.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

// ParseProgram drains the lexer to EOF, returning the resulting
// *ast.Program. It never returns nil and never panics on malformed
// input — every error is appended to p.errors instead, and the parser
// resynchronizes at the next token so later statements still get a
// chance to parse.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for p.curToken.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

// parseStatement dispatches on the current token to the statement-level
// grammar: `variable`, `regresa`, or (the default) a bare expression.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `variable <ident> = <expression>;`.
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if fl, ok := stmt.Value.(*ast.FunctionLiteral); ok {
		fl.Name = stmt.Name.Value
	}

	if p.peekToken.Type == token.SEMICOLON {
		p.nextToken()
	}

	return stmt
}

// parseReturnStatement parses `regresa <expression>;`.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	p.nextToken()

	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekToken.Type == token.SEMICOLON {
		p.nextToken()
	}

	return stmt
}

// parseExpressionStatement parses a bare expression used as a
// statement. The trailing semicolon is consumed if present but is not
// required before a closing brace or EOF.
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekToken.Type == token.SEMICOLON {
		p.nextToken()
	}

	return stmt
}

// parseBlock parses a brace-delimited statement sequence: `{`
// <statements> (`}` | EOF). curToken is expected to be the opening
// LBRACE on entry.
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Token: p.curToken, Statements: []ast.Statement{}}

	p.nextToken()

	for p.curToken.Type != token.RBRACE && p.curToken.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	return block
}

// parseExpression is the heart of the Pratt parser: find a prefix
// parser for curToken, let it build the left operand, then keep
// extending that operand with infix operators for as long as the next
// operator binds tighter than prec.
func (p *Parser) parseExpression(prec precedence) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix()

	for p.peekToken.Type != token.SEMICOLON && prec < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken()

		leftExp = infix(leftExp)
	}

	return leftExp
}

// expectPeek checks the upcoming token against kind; on a match it
// advances and returns true, otherwise it records a diagnostic and
// returns false, leaving the caller to abort the current statement.
func (p *Parser) expectPeek(kind token.Type) bool {
	if p.peekToken.Type == kind {
		p.nextToken()
		return true
	}
	p.peekError(kind)
	return false
}

// peekError records the "expected X, got Y" diagnostic spec §4.2
// specifies for a failed expectPeek.
func (p *Parser) peekError(kind token.Type) {
	msg := fmt.Sprintf("Se esperaba %s, pero se obtiene %s", kind, p.peekToken.Type)
	p.errors = append(p.errors, msg)
}

// noPrefixParseFnError records the diagnostic for a token that starts
// an expression position but has no registered prefix parser.
func (p *Parser) noPrefixParseFnError(kind token.Type) {
	msg := fmt.Sprintf("No se encontró ninguna función para parsear %s", kind)
	p.errors = append(p.errors, msg)
}
