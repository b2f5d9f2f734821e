package calc

import (
	"math"
	"strconv"
)

// item is a formula element during evaluation. Collapsed products and quotients
// keep their float64 value instead of going back through a literal.
type item struct {
	tok Token
	val float64
	ok  bool
}

func (it item) num(def float64) float64 {
	if it.tok.kind == KindNumber && it.ok {
		return it.val
	}
	return def
}

// Eval reduces a formula without its trailing "=" to a number.
//
// All multiplications are resolved before any division, then additions and
// subtractions are folded left to right. For example 2÷4×3 computes 4×3 first
// and yields 2÷12, unlike the usual left-to-right rule.
func Eval(s Stack) float64 {
	items := make([]item, len(s))
	for i, t := range s {
		v, ok := t.value(0)
		items[i] = item{tok: t, val: v, ok: ok}
	}
	items = reduce(items, OpMul, 0)
	items = reduce(items, OpDiv, 1)
	return fold(items)
}

// reduce repeatedly collapses the leftmost [left, op, right] window into one
// number until no op with operands on both sides remains. Unparsable left
// operands count as 0, unparsable right operands as rightDef.
func reduce(items []item, op Op, rightDef float64) []item {
	for {
		i := leftmostOp(items, op)
		if i < 0 {
			return items
		}
		x := items[i-1].num(0)
		y := items[i+1].num(rightDef)
		res := item{tok: Number(""), val: op.apply(x, y), ok: true}
		items = append(items[:i-1], append([]item{res}, items[i+2:]...)...)
	}
}

func leftmostOp(items []item, op Op) int {
	for i := 1; i < len(items)-1; i++ {
		if items[i].tok.isOp(op) {
			return i
		}
	}
	return -1
}

// fold adds and subtracts numbers left to right, starting from the first
// number. Tokens other than + and − between numbers are ignored.
func fold(items []item) float64 {
	var (
		acc     float64
		started bool
		lastOp  Op
		haveOp  bool
	)
	for _, it := range items {
		switch it.tok.kind {
		case KindNumber:
			if !started {
				acc = it.num(0)
				started = true
				continue
			}
			if !haveOp || !it.ok {
				continue
			}
			switch lastOp {
			case OpAdd, OpSub:
				acc = lastOp.apply(acc, it.val)
			}
		case KindOperation:
			lastOp, haveOp = it.tok.op, true
		}
	}
	return acc
}

// parseLiteral reads a number literal such as "12", "-3" or "0.".
func parseLiteral(lit string, def float64) (float64, bool) {
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def, false
	}
	return v, true
}

// FormatNumber gives the canonical literal for v: the shortest decimal that
// parses back to v, without exponent or trailing zeros. Non-finite values and
// negative zero format as "0".
func FormatNumber(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
