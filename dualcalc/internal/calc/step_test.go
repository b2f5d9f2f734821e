package calc

import (
	"slices"
	"testing"
)

func TestStepPure(t *testing.T) {
	st := State{Stack: Stack{Digit(1), Add, Digit(2)}}
	next := Step(st, Percent, SignScaled)
	if !slices.Equal(st.Stack, Stack{Digit(1), Add, Digit(2)}) {
		t.Fatalf("input state modified: %v", st.Stack)
	}
	if !slices.Equal(next.Stack, Stack{Digit(1), Add, Number("0.02")}) {
		t.Fatalf("wrong stack %v", next.Stack)
	}
}

// Operators never end up adjacent, whatever order they are pressed in.
func TestStepOperatorsCollapse(t *testing.T) {
	ops := []Token{Add, Sub, Mul, Div, Equals, Add, Equals, Equals, Mul, Div}
	st := State{Stack: Stack{Digit(8)}}
	for _, op := range ops {
		st = Step(st, op, SignScaled)
		for i := 1; i < len(st.Stack); i++ {
			a, b := st.Stack[i-1], st.Stack[i]
			if a.kind == KindOperation && b.kind == KindOperation && !b.isOp(OpEq) {
				t.Fatalf("adjacent operations after %v: %v", op, st.Stack)
			}
		}
		if n := countOp(st.Stack, OpEq); n > 1 || (n == 1 && !st.Stack.lastIs(OpEq)) {
			t.Fatalf("misplaced = after %v: %v", op, st.Stack)
		}
	}
}

// Numbers are never adjacent, whatever is typed.
func TestStepNumbersMerge(t *testing.T) {
	input := []Token{Digit(1), Point, Digit(2), Sign, Digit(3), Percent, Add, Sign, Digit(4), Point, Point, Digit(5), Equals, Point, Digit(6), Add, Sign, Point, Digit(5)}
	var st State
	for _, tok := range input {
		st = Step(st, tok, SignScaled)
		for i := 1; i < len(st.Stack); i++ {
			if st.Stack[i-1].kind == KindNumber && st.Stack[i].kind == KindNumber {
				t.Fatalf("adjacent numbers after %v: %v", tok, st.Stack)
			}
		}
	}
}

func TestStepSignPendingPoint(t *testing.T) {
	var st State
	for _, tok := range []Token{Digit(1), Add, Sign, Point} {
		st = Step(st, tok, SignScaled)
	}
	if st.SignPending {
		t.Fatal("pending sign not consumed by point")
	}
	if !slices.Equal(st.Stack, Stack{Digit(1), Add, Number("-0.")}) {
		t.Fatalf("wrong stack %v", st.Stack)
	}
}

func TestStepSignPending(t *testing.T) {
	st := Step(State{}, Sign, SignScaled)
	if !st.SignPending {
		t.Fatal("sign on empty stack not pending")
	}
	st = Step(st, Digit(0), SignScaled)
	if st.SignPending {
		t.Fatal("pending sign not consumed")
	}
	if !slices.Equal(st.Stack, Stack{Digit(0)}) {
		t.Fatalf("wrong stack %v", st.Stack)
	}
}

func TestStepClear(t *testing.T) {
	st := State{Stack: Stack{Digit(1), Add}, SignPending: true, Result: 4, HasResult: true}
	st = Step(st, Clear, SignNegate)
	if len(st.Stack) != 0 || st.SignPending || st.HasResult || st.Result != 0 {
		t.Fatalf("state not cleared: %+v", st)
	}
}

func countOp(s Stack, op Op) int {
	n := 0
	for _, t := range s {
		if t.isOp(op) {
			n++
		}
	}
	return n
}
