package calc

import "strings"

// Stack is the formula as typed so far.
type Stack []Token

// Last returns the top token.
func (s Stack) Last() (Token, bool) {
	if len(s) == 0 {
		return Token{}, false
	}
	return s[len(s)-1], true
}

// lastIs tells whether the top token is the given operation.
func (s Stack) lastIs(op Op) bool {
	last, ok := s.Last()
	return ok && last.isOp(op)
}

// lastKind returns the kind of the top token, or kindInvalid when empty.
func (s Stack) lastKind() Kind {
	last, _ := s.Last()
	return last.kind
}

func (s *Stack) push(t Token) {
	*s = append(*s, t)
}

// pop removes the top token. It does nothing on an empty stack.
func (s *Stack) pop() {
	if len(*s) > 0 {
		*s = (*s)[:len(*s)-1]
	}
}

func (s Stack) replaceLast(t Token) {
	s[len(s)-1] = t
}

// Labels joins the token labels with delim.
func (s Stack) Labels(delim string) string {
	var b strings.Builder
	for i, t := range s {
		if i > 0 {
			b.WriteString(delim)
		}
		b.WriteString(t.Label())
	}
	return b.String()
}
