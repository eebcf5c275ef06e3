// Package calc evaluates plain arithmetic expressions for the back-office
// calculator panel. It parses the input itself instead of delegating to any
// dynamic evaluation facility.
package calc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenLeftParen
	tokenRightParen
)

type token struct {
	kind  tokenKind
	value decimal.Decimal
	op    byte
}

// opNeg is the internal operator a unary minus is tokenized as. It binds
// tighter than * and /, so 2*-3 is 2*(-3).
const opNeg = '~'

// Eval evaluates an arithmetic expression supporting +, -, *, /, unary
// minus and parentheses. Numbers may carry a decimal point.
func Eval(expr string) (decimal.Decimal, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return decimal.Zero, err
	}
	if len(tokens) == 0 {
		return decimal.Zero, fmt.Errorf("calc: empty expression")
	}

	rpn, err := toRPN(tokens)
	if err != nil {
		return decimal.Zero, err
	}

	return evalRPN(rpn)
}

func tokenize(expr string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			dots := 0
			for i < len(expr) && (expr[i] >= '0' && expr[i] <= '9' || expr[i] == '.') {
				if expr[i] == '.' {
					dots++
				}
				i++
			}
			if dots > 1 {
				return nil, fmt.Errorf("calc: malformed number %q", expr[start:i])
			}
			num, err := decimal.NewFromString(expr[start:i])
			if err != nil {
				return nil, fmt.Errorf("calc: malformed number %q", expr[start:i])
			}
			tokens = append(tokens, token{kind: tokenNumber, value: num})
		case c == '+' || c == '-' || c == '*' || c == '/':
			// A minus is unary when it starts the expression or follows an
			// operator or an opening parenthesis.
			op := c
			if c == '-' && isUnaryPosition(tokens) {
				op = opNeg
			}
			tokens = append(tokens, token{kind: tokenOperator, op: op})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokenLeftParen})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenRightParen})
			i++
		default:
			return nil, fmt.Errorf("calc: unexpected character %q", string(c))
		}
	}
	return tokens, nil
}

func isUnaryPosition(tokens []token) bool {
	if len(tokens) == 0 {
		return true
	}
	last := tokens[len(tokens)-1]
	return last.kind == tokenOperator || last.kind == tokenLeftParen
}

func precedence(op byte) int {
	switch op {
	case opNeg:
		return 3
	case '*', '/':
		return 2
	default:
		return 1
	}
}

// toRPN converts infix tokens to reverse Polish notation (shunting-yard).
func toRPN(tokens []token) ([]token, error) {
	var output []token
	var stack []token

	for _, tok := range tokens {
		switch tok.kind {
		case tokenNumber:
			output = append(output, tok)
		case tokenOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokenOperator || precedence(top.op) < precedence(tok.op) {
					break
				}
				// Negation is right-associative: stacked minuses wait for
				// their operand instead of popping each other.
				if tok.op == opNeg && precedence(top.op) == precedence(tok.op) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case tokenLeftParen:
			stack = append(stack, tok)
		case tokenRightParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenLeftParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, fmt.Errorf("calc: unbalanced parentheses")
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokenLeftParen {
			return nil, fmt.Errorf("calc: unbalanced parentheses")
		}
		output = append(output, top)
	}
	return output, nil
}

func evalRPN(rpn []token) (decimal.Decimal, error) {
	var stack []decimal.Decimal
	for _, tok := range rpn {
		if tok.kind == tokenNumber {
			stack = append(stack, tok.value)
			continue
		}

		if tok.op == opNeg {
			if len(stack) < 1 {
				return decimal.Zero, fmt.Errorf("calc: malformed expression")
			}
			stack[len(stack)-1] = stack[len(stack)-1].Neg()
			continue
		}

		if len(stack) < 2 {
			return decimal.Zero, fmt.Errorf("calc: malformed expression")
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var result decimal.Decimal
		switch tok.op {
		case '+':
			result = a.Add(b)
		case '-':
			result = a.Sub(b)
		case '*':
			result = a.Mul(b)
		case '/':
			if b.IsZero() {
				return decimal.Zero, fmt.Errorf("calc: division by zero")
			}
			result = a.DivRound(b, 10)
		}
		stack = append(stack, result)
	}

	if len(stack) != 1 {
		return decimal.Zero, fmt.Errorf("calc: malformed expression")
	}
	return stack[0], nil
}

// EvalString evaluates expr and renders the result, trimming trailing zeros.
func EvalString(expr string) (string, error) {
	result, err := Eval(expr)
	if err != nil {
		return "", err
	}
	s := result.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s, nil
}
