package terminal

import "github.com/smartpurse/pos-terminal/pkg/calc"

// calculatorPanel evaluates arithmetic expressions until a blank line.
func (a *App) calculatorPanel() {
	a.printf("Calculator: +, -, *, / and parentheses. Blank line to leave.\n")
	for {
		expr, ok := a.prompt("Calc")
		if !ok || expr == "" {
			return
		}
		result, err := calc.EvalString(expr)
		if err != nil {
			a.printf("! %v\n", err)
			continue
		}
		a.printf("= %s\n", result)
	}
}
