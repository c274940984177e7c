/*
File   : lpp/parser/precedence.go
Package: parser

Precedence climbing table for the Pratt expression parser (spec §4.2).
Levels are ordered lowest to highest; a higher numeric value binds more
tightly, so `prec < precedence(peek)` in parseExpression is exactly "the
next operator binds tighter than what I'm currently building, so let it
grab the left operand I just produced."
*/
package parser

import "github.com/danilopedraza/lpp/token"

type precedence int

const (
	_ precedence = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // f(x)
)

// precedences maps each operator/punctuation token to the precedence
// level it binds at when found as an infix operator. Tokens absent from
// this table (e.g. SEMICOLON) default to LOWEST, which is what stops
// the Pratt loop at a statement boundary.
var precedences = map[token.Type]precedence{
	token.EQ:             EQUALS,
	token.NOT_EQ:         EQUALS,
	token.LT:             LESSGREATER,
	token.GT:             LESSGREATER,
	token.LT_OR_EQ:       LESSGREATER,
	token.GT_OR_EQ:       LESSGREATER,
	token.PLUS:           SUM,
	token.MINUS:          SUM,
	token.DIVISION:       PRODUCT,
	token.MULTIPLICATION: PRODUCT,
	token.LPAREN:         CALL,
}

// peekPrecedence returns the precedence of the upcoming token, or
// LOWEST if it has none registered.
func (p *Parser) peekPrecedence() precedence {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// curPrecedence returns the precedence of the current token, or LOWEST
// if it has none registered.
func (p *Parser) curPrecedence() precedence {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}
