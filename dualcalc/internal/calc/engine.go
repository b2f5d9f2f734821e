// Package calc implements the engine of a button-driven calculator.
//
// The engine keeps the formula as a stack of tokens in the order they were
// typed. Function buttons (AC, +/-, %) and the decimal point edit the stack in
// place. Pressing "=" evaluates it, with all multiplications resolved before
// any division and additions and subtractions folded last, left to right.
//
// An Engine is not safe for concurrent use. Two engines share no state; use
// Transfer to copy a result from one to the other.
package calc

import (
	"log/slog"

	"golang.org/x/text/language"
)

// Listener receives the display strings of an engine.
type Listener interface {
	FormulaChanged(text string)
	ResultChanged(text string)
}

// ListenerFuncs is a Listener made of two functions. Nil functions are skipped.
type ListenerFuncs struct {
	Formula func(text string)
	Result  func(text string)
}

func (l ListenerFuncs) FormulaChanged(text string) {
	if l.Formula != nil {
		l.Formula(text)
	}
}

func (l ListenerFuncs) ResultChanged(text string) {
	if l.Result != nil {
		l.Result(text)
	}
}

// Options configures an Engine. The zero value is usable.
type Options struct {
	Locale          language.Tag // defaults to English
	FractionDigits  int          // max fraction digits of the result; 0 means 3
	Delimiter       string       // between formula tokens
	SignAfterEquals SignMode
	Logger          *slog.Logger
}

// Engine owns the state of one calculator.
type Engine struct {
	state    State
	mode     SignMode
	proj     *Projector
	listener Listener
	log      *slog.Logger

	formula string
	result  string
}

// New creates an engine. The listener may be nil.
func New(l Listener, opts Options) *Engine {
	if opts.Locale == language.Und {
		opts.Locale = language.English
	}
	if opts.FractionDigits <= 0 {
		opts.FractionDigits = 3
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if l == nil {
		l = ListenerFuncs{}
	}
	return &Engine{
		mode:     opts.SignAfterEquals,
		proj:     NewProjector(opts.Locale, opts.FractionDigits, opts.Delimiter),
		listener: l,
		log:      opts.Logger,
		formula:  DefaultFormula,
		result:   DefaultResult,
	}
}

// Dispatch applies one input token and notifies the listener of changed strings.
func (e *Engine) Dispatch(tok Token) {
	if fn, ok := tok.Fn(); ok && fn == FnClear {
		e.Reset()
		return
	}
	e.state = Step(e.state, tok, e.mode)
	e.publish()
	e.log.Debug("dispatch", "token", tok.String(), "formula", e.formula, "result", e.result)
}

// Reset clears the formula and result. The listener always receives the defaults.
func (e *Engine) Reset() {
	e.state = State{}
	e.formula = DefaultFormula
	e.result = DefaultResult
	e.listener.FormulaChanged(e.formula)
	e.listener.ResultChanged(e.result)
}

// SetResult resets the engine and seeds it with a number written in grouped
// notation, such as the Result of another engine. If s is not a number the
// engine stays reset.
func (e *Engine) SetResult(s string) {
	e.Reset()
	v, ok := e.proj.ParseGrouped(s)
	if !ok {
		e.log.Debug("rejected result", "input", s)
		return
	}
	e.state.Stack = Stack{Number(FormatNumber(v))}
	e.state.Result = v
	e.state.HasResult = true
	e.publish()
}

// Formula returns the current formula string.
func (e *Engine) Formula() string { return e.formula }

// Result returns the current result string.
func (e *Engine) Result() string { return e.result }

// State returns a copy of the engine state.
func (e *Engine) State() State { return e.state.Clone() }

// publish recomputes the display strings and reports the ones that changed.
func (e *Engine) publish() {
	if f := e.proj.Formula(e.state); f != e.formula {
		e.formula = f
		e.listener.FormulaChanged(f)
	}
	if r := e.proj.Result(e.state); r != e.result {
		e.result = r
		e.listener.ResultChanged(r)
	}
}

// Transfer copies the result of src into dst, replacing everything dst held.
func Transfer(dst, src *Engine) {
	v := src.Result()
	dst.Reset()
	dst.SetResult(v)
}
