package calc

import (
	"testing"

	"golang.org/x/text/language"
)

func TestProjectorGrouped(t *testing.T) {
	p := NewProjector(language.English, 3, "")
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{7.5, "7.5"},
		{1234.5, "1,234.5"},
		{-1234567, "-1,234,567"},
		{2.0 / 3, "0.667"},
	}
	for _, test := range tests {
		if got := p.Grouped(test.input); got != test.want {
			t.Errorf("Grouped(%v) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestProjectorParseGrouped(t *testing.T) {
	tests := []struct {
		tag   language.Tag
		input string
		want  float64
		ok    bool
	}{
		{language.English, "1,234.5", 1234.5, true},
		{language.English, " 42 ", 42, true},
		{language.English, "−3", -3, true},
		{language.English, "0.", 0, true},
		{language.German, "1.234,5", 1234.5, true},
		{language.Arabic, "١٬٢٣٤٫٥", 1234.5, true},
		{language.Persian, "\u200e−۴۲", -42, true},
		{language.Bengali, "১,২৩৪.৫", 1234.5, true},
		{language.English, "", 0, false},
		{language.English, "1.2.3", 0, false},
		{language.English, "Inf", 0, false},
	}
	for _, test := range tests {
		p := NewProjector(test.tag, 3, "")
		got, ok := p.ParseGrouped(test.input)
		if got != test.want || ok != test.ok {
			t.Errorf("%v: ParseGrouped(%q) = %v, %t, want %v, %t", test.tag, test.input, got, ok, test.want, test.ok)
		}
	}
}

func TestProjectorRoundTrip(t *testing.T) {
	tags := []language.Tag{
		language.English, language.German, language.French,
		language.Arabic, language.Persian, language.Bengali,
		language.MustParse("de-CH"), language.Hindi,
	}
	for _, tag := range tags {
		p := NewProjector(tag, 3, "")
		for _, v := range []float64{0, 1, -12.5, 1234567.25, 1000} {
			s := p.Grouped(v)
			got, ok := p.ParseGrouped(s)
			if !ok || got != v {
				t.Errorf("%v: ParseGrouped(Grouped(%v) = %q) = %v, %t", tag, v, s, got, ok)
			}
		}
	}
}

func TestASCIIDigit(t *testing.T) {
	tests := map[rune]byte{'7': '7', '٠': '0', '٩': '9', '۴': '4', '৫': '5', '३': '3', '𝟎': '0', '𝟗': '9', '𝟘': '0', '𝟡': '9'}
	for r, want := range tests {
		if got := asciiDigit(r); got != want {
			t.Errorf("asciiDigit(%q) = %q, want %q", r, got, want)
		}
	}
}

func TestProjectorFormula(t *testing.T) {
	p := NewProjector(language.English, 3, " ")
	tests := []struct {
		st   State
		want string
	}{
		{State{}, DefaultFormula},
		{State{Stack: Stack{Digit(1), Add}}, "1 +"},
		{State{Stack: Stack{Digit(9), Div, Digit(3), Equals}, Result: 3, HasResult: true}, "9 ÷ 3 = 3"},
		{State{Stack: Stack{Sign}}, "+/-"},
	}
	for _, test := range tests {
		if got := p.Formula(test.st); got != test.want {
			t.Errorf("Formula(%v) = %q, want %q", test.st.Stack, got, test.want)
		}
	}
}
