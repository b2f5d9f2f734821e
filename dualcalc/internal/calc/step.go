package calc

import (
	"slices"
	"strings"
)

const (
	// SignScaled makes +/- after "=" push the negated result divided by 100,
	// like % does.
	SignScaled SignMode = iota
	// SignNegate makes +/- after "=" push the negated result.
	SignNegate
)

// SignMode selects what the sign button does right after "=".
type SignMode uint8

// State is the complete engine state.
type State struct {
	Stack       Stack
	SignPending bool    // next digit is negated
	Result      float64 // valid if HasResult
	HasResult   bool
}

// Clone returns a deep copy of st.
func (st State) Clone() State {
	st.Stack = slices.Clone(st.Stack)
	return st
}

// Step applies one input token to st and returns the new state. st is not modified.
// Every (state, token) pair yields a valid state. Tokens the keypad cannot
// act on leave the state unchanged.
func Step(st State, tok Token, mode SignMode) State {
	next := st.Clone()
	switch tok.kind {
	case KindFunction:
		next.function(tok.fn, mode)
	case KindOperation:
		next.operation(tok.op)
	case KindNumber:
		if tok.lit == "." {
			next.point()
		} else if tok.lit != "" {
			next.digit(tok.lit)
		}
	}
	return next
}

func (st *State) reset() {
	*st = State{}
}

func (st *State) function(fn Fn, mode SignMode) {
	switch fn {
	case FnClear:
		st.reset()
	case FnSign:
		st.sign(mode)
	case FnPercent:
		st.percent()
	}
}

// sign flips the sign of the current number, or of the next one.
func (st *State) sign(mode SignMode) {
	last, ok := st.Stack.Last()
	switch {
	case !ok:
		st.SignPending = true
	case last.kind == KindNumber:
		st.Stack.replaceLast(Number(negate(last.lit)))
	case last.isOp(OpEq):
		v := -st.Result
		if mode == SignScaled {
			v /= 100
		}
		st.reset()
		st.Stack.push(Number(FormatNumber(v)))
	case last.kind == KindOperation:
		st.SignPending = true
	}
}

// percent divides the current number by 100.
func (st *State) percent() {
	last, ok := st.Stack.Last()
	switch {
	case !ok:
		return
	case last.isOp(OpEq):
		v := st.Result / 100
		st.reset()
		st.Stack.push(Number(FormatNumber(v)))
	case last.kind == KindNumber:
		st.Stack.replaceLast(Number(hundredth(last.lit)))
	case last.kind == KindOperation && len(st.Stack) >= 2:
		i := len(st.Stack) - 2
		if prev := st.Stack[i]; prev.kind == KindNumber {
			st.Stack[i] = Number(hundredth(prev.lit))
		}
	}
}

func (st *State) operation(op Op) {
	if op == OpEq {
		st.equals()
		return
	}
	if st.Stack.lastIs(OpEq) {
		st.Stack.pop()
	}
	if st.Stack.lastKind() == KindOperation {
		st.Stack.pop()
	}
	st.Stack.push(Operation(op))
}

// equals evaluates the formula. Repeated presses do not re-evaluate.
func (st *State) equals() {
	if st.Stack.lastIs(OpEq) {
		return
	}
	st.Result = Eval(st.Stack)
	st.HasResult = true
	st.Stack.push(Equals)
}

// digit enters digits. A digit after "=" starts a new formula.
func (st *State) digit(d string) {
	if st.Stack.lastIs(OpEq) {
		st.reset()
	}
	last, _ := st.Stack.Last()
	switch {
	case st.SignPending:
		st.SignPending = false
		v, _ := parseLiteral(d, 0)
		st.Stack.push(Number(FormatNumber(-v)))
	case last.kind == KindNumber:
		st.Stack.replaceLast(Number(last.lit + d))
	default:
		st.Stack.push(Number(d))
	}
}

// point adds a decimal point. After "=" only the "=" is dropped and editing
// resumes on the previous operands. A pending sign is applied to the new number.
func (st *State) point() {
	if st.Stack.lastIs(OpEq) {
		st.Stack.pop()
	}
	last, _ := st.Stack.Last()
	switch {
	case last.kind == KindNumber && !strings.Contains(last.lit, "."):
		st.Stack.replaceLast(Number(last.lit + "."))
	case last.kind == KindOperation && st.SignPending:
		st.SignPending = false
		st.Stack.push(Number("-0."))
	case last.kind == KindOperation:
		st.Stack.push(Number("0."))
	}
}

func negate(lit string) string {
	if rest, ok := strings.CutPrefix(lit, "-"); ok {
		return rest
	}
	return "-" + lit
}

func hundredth(lit string) string {
	v, _ := parseLiteral(lit, 0)
	return FormatNumber(v / 100)
}
