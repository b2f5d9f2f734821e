package calc

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultFormula = " "
	DefaultResult  = "0"
)

// Projector turns engine state into display strings.
type Projector struct {
	printer *message.Printer
	digits  int
	delim   string

	// Separators of the locale, discovered by formatting a sample value.
	group   rune
	decimal rune
}

// NewProjector creates a projector for the given locale. fractionDigits caps
// the fraction digits of grouped output. delim is placed between formula tokens.
func NewProjector(tag language.Tag, fractionDigits int, delim string) *Projector {
	p := &Projector{
		printer: message.NewPrinter(tag),
		digits:  fractionDigits,
		delim:   delim,
		group:   ',',
		decimal: '.',
	}
	p.discoverSeparators()
	return p
}

func (p *Projector) discoverSeparators() {
	sample := p.printer.Sprint(number.Decimal(1234567.5, number.MaxFractionDigits(1)))
	var seps []rune
	for _, r := range sample {
		if !unicode.IsDigit(r) && !unicode.Is(unicode.Bidi_Control, r) {
			seps = append(seps, r)
		}
	}
	if len(seps) >= 2 {
		p.group, p.decimal = seps[0], seps[len(seps)-1]
	} else if len(seps) == 1 {
		p.group, p.decimal = 0, seps[0]
	}
}

// Grouped formats v with thousands separators and the locale decimal point.
func (p *Projector) Grouped(v float64) string {
	if v == 0 {
		v = 0 // no "-0"
	}
	return p.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(p.digits)))
}

// ParseGrouped reads a number written by Grouped, or a plain literal.
func (p *Projector) ParseGrouped(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == p.group && p.group != 0:
		case r == p.decimal:
			b.WriteByte('.')
		case r == '−':
			b.WriteByte('-')
		case unicode.IsSpace(r), unicode.Is(unicode.Bidi_Control, r):
			// no-break spaces group digits in some locales, and
			// right-to-left locales mark the minus sign
		case unicode.IsDigit(r):
			b.WriteByte(asciiDigit(r))
		default:
			b.WriteRune(r)
		}
	}
	return parseLiteral(b.String(), 0)
}

// asciiDigit converts a decimal digit of any script to ASCII. Unicode encodes
// decimal digits in runs of ten, starting at zero.
func asciiDigit(r rune) byte {
	n := 0
	for unicode.IsDigit(r - rune(n) - 1) {
		n++
	}
	return byte('0' + n%10)
}

// Formula renders the stack. A trailing "=" is followed by the result.
func (p *Projector) Formula(st State) string {
	f := st.Stack.Labels(p.delim)
	if st.Stack.lastIs(OpEq) && st.HasResult {
		f += p.delim + p.Grouped(st.Result)
	}
	if f == "" {
		return DefaultFormula
	}
	return f
}

// Result renders the last result.
func (p *Projector) Result(st State) string {
	if !st.HasResult {
		return DefaultResult
	}
	return p.Grouped(st.Result)
}
