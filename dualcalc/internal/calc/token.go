package calc

import "strconv"

const (
	kindInvalid Kind = iota
	KindNumber
	KindOperation
	KindFunction
	KindArrow
)

// Kind tells which variant a Token holds.
type Kind uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpEq
)

// Op is a binary operation or the equals sign.
type Op uint8

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "−"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	case OpEq:
		return "="
	default:
		return "op" + strconv.Itoa(int(op))
	}
}

// apply computes the operation.
func (op Op) apply(x, y float64) float64 {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	default:
		return y
	}
}

const (
	FnClear Fn = iota
	FnSign
	FnPercent
)

// Fn is a function button that edits the formula in place.
type Fn uint8

func (fn Fn) String() string {
	switch fn {
	case FnClear:
		return "AC"
	case FnSign:
		return "+/-"
	case FnPercent:
		return "%"
	default:
		return "fn" + strconv.Itoa(int(fn))
	}
}

const (
	ArrowRight Dir = iota
	ArrowLeft
)

// Dir is the direction of an arrow button.
type Dir uint8

func (d Dir) String() string {
	if d == ArrowLeft {
		return "←"
	}
	return "→"
}

// Token is one classified unit of calculator input.
// The zero Token is invalid and ignored by the engine.
type Token struct {
	kind Kind
	lit  string
	op   Op
	fn   Fn
	dir  Dir
}

// Number creates a number token holding the literal text as typed.
func Number(lit string) Token { return Token{kind: KindNumber, lit: lit} }

// Operation creates an operation token.
func Operation(op Op) Token { return Token{kind: KindOperation, op: op} }

// Function creates a function token.
func Function(fn Fn) Token { return Token{kind: KindFunction, fn: fn} }

// Arrow creates a navigation token. The engine never consumes it.
func Arrow(d Dir) Token { return Token{kind: KindArrow, dir: d} }

// Buttons of the standard keypad.
var (
	Add     = Operation(OpAdd)
	Sub     = Operation(OpSub)
	Mul     = Operation(OpMul)
	Div     = Operation(OpDiv)
	Equals  = Operation(OpEq)
	Clear   = Function(FnClear)
	Sign    = Function(FnSign)
	Percent = Function(FnPercent)
	Point   = Number(".")
)

// Digit returns the number token for a single decimal digit.
func Digit(d int) Token {
	return Number(strconv.Itoa(d))
}

func (t Token) Kind() Kind { return t.kind }

// Op returns the operation of an operation token.
func (t Token) Op() (Op, bool) {
	return t.op, t.kind == KindOperation
}

// Fn returns the function of a function token.
func (t Token) Fn() (Fn, bool) {
	return t.fn, t.kind == KindFunction
}

// Dir returns the direction of an arrow token.
func (t Token) Dir() (Dir, bool) {
	return t.dir, t.kind == KindArrow
}

func (t Token) isOp(op Op) bool {
	return t.kind == KindOperation && t.op == op
}

// Label is the text shown for the token in a formula and on its button.
func (t Token) Label() string {
	switch t.kind {
	case KindNumber:
		return t.lit
	case KindOperation:
		return t.op.String()
	case KindFunction:
		return t.fn.String()
	case KindArrow:
		return t.dir.String()
	default:
		return ""
	}
}

func (t Token) String() string {
	if t.kind == kindInvalid {
		return "invalid"
	}
	return t.Label()
}

// value parses a number token. Non-numbers and unparsable literals yield def.
func (t Token) value(def float64) (float64, bool) {
	if t.kind != KindNumber {
		return def, false
	}
	return parseLiteral(t.lit, def)
}
