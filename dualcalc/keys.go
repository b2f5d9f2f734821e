package main

import (
	"gioui.org/io/key"

	"github.com/fjl/gio-calculators/dualcalc/internal/calc"
)

// keypad is the button grid of one pane. The zero button is wide, so the cell
// next to it is empty.
var keypad = [5][4]calc.Token{
	{calc.Clear, calc.Sign, calc.Percent, calc.Div},
	{calc.Digit(7), calc.Digit(8), calc.Digit(9), calc.Mul},
	{calc.Digit(4), calc.Digit(5), calc.Digit(6), calc.Sub},
	{calc.Digit(1), calc.Digit(2), calc.Digit(3), calc.Add},
	{calc.Digit(0), {}, calc.Point, calc.Equals},
}

// keyFilters are the keys that produce calculator input.
var keyFilters = []key.Filter{
	{Name: "0"}, {Name: "1"}, {Name: "2"}, {Name: "3"}, {Name: "4"},
	{Name: "5"}, {Name: "6"}, {Name: "7"}, {Name: "8"}, {Name: "9"},
	{Name: "."}, {Name: ","},
	{Name: "+", Optional: key.ModShift},
	{Name: "-", Optional: key.ModAlt},
	{Name: "*", Optional: key.ModShift},
	{Name: "/"},
	{Name: "%", Optional: key.ModShift},
	{Name: "=", Optional: key.ModShift},
	{Name: key.NameEnter},
	{Name: key.NameReturn},
	{Name: key.NameEscape},
	{Name: "C", Required: key.ModShortcut},
}

// classifyKey maps a key press to calculator input.
func classifyKey(e key.Event) (calc.Token, bool) {
	if e.State != key.Press {
		return calc.Token{}, false
	}
	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return calc.Number(string(e.Name)), true
	case ".", ",":
		return calc.Point, true
	case "+":
		return calc.Add, true
	case "-":
		if e.Modifiers.Contain(key.ModAlt) {
			return calc.Sign, true
		}
		return calc.Sub, true
	case "*":
		return calc.Mul, true
	case "/":
		return calc.Div, true
	case "%":
		return calc.Percent, true
	case "=", key.NameEnter, key.NameReturn:
		return calc.Equals, true
	case key.NameEscape:
		return calc.Clear, true
	default:
		return calc.Token{}, false
	}
}

func isCopy(e key.Event) bool {
	return e.State == key.Press && e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}
