package main

import (
	"image"
	"image/color"
	"io"
	"strings"

	"gioui.org/io/clipboard"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/fjl/gio-calculators/dualcalc/internal/calc"
	"github.com/fjl/gio-calculators/dualcalc/internal/config"
)

var (
	numberColor     = color.NRGBA{50, 50, 50, 255}
	functionColor   = color.NRGBA{165, 165, 165, 255}
	opColor         = color.NRGBA{234, 164, 43, 255}
	activeOpColor   = color.NRGBA{250, 205, 120, 255}
	arrowColor      = color.NRGBA{63, 141, 84, 255}
	backgroundColor = color.NRGBA{0, 0, 0, 255}
	textColor       = color.NRGBA{255, 255, 255, 255}
	activePaneColor = color.NRGBA{30, 30, 30, 255}

	designWidth  = unit.Dp(270)
	designHeight = unit.Dp(420)
	controlInset = unit.Dp(6)
	cornerRadius = unit.Dp(10)
)

// calcUI is one calculator pane.
type calcUI struct {
	engine  *calc.Engine
	theme   *material.Theme
	buttons [5][4]*button
	click   widget.Clickable // selects the pane for keyboard input

	formula string
	result  string
}

func newCalcUI(theme *material.Theme, opts calc.Options) *calcUI {
	ui := &calcUI{theme: theme, formula: calc.DefaultFormula, result: calc.DefaultResult}
	ui.engine = calc.New(calc.ListenerFuncs{
		Formula: func(s string) { ui.formula = s },
		Result:  func(s string) { ui.result = s },
	}, opts)
	for r, row := range keypad {
		for c, tok := range row {
			if tok != (calc.Token{}) {
				ui.buttons[r][c] = newButton(tok)
			}
		}
	}
	return ui
}

// button is a clickable keypad button.
type button struct {
	tok     calc.Token
	color   color.NRGBA
	clicker widget.Clickable
}

func newButton(tok calc.Token) *button {
	b := &button{tok: tok, color: numberColor}
	switch tok.Kind() {
	case calc.KindOperation:
		b.color = opColor
	case calc.KindFunction:
		b.color = functionColor
	case calc.KindArrow:
		b.color = arrowColor
	}
	return b
}

// press forwards input to the engine.
func (ui *calcUI) press(tok calc.Token) {
	ui.engine.Dispatch(tok)
}

// update handles button clicks. It reports whether the pane was touched.
func (ui *calcUI) update(gtx layout.Context) bool {
	touched := ui.click.Clicked(gtx)
	for _, row := range ui.buttons {
		for _, b := range row {
			if b != nil && b.clicker.Clicked(gtx) {
				ui.press(b.tok)
				touched = true
			}
		}
	}
	return touched
}

// Layout draws the pane.
func (ui *calcUI) Layout(gtx layout.Context, active bool) layout.Dimensions {
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(designWidth))
	radius := gtx.Dp(cornerRadius * unit.Dp(scaleFactor))
	spacing := gtx.Dp(controlInset * unit.Dp(scaleFactor))

	if active {
		rr := clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Max}, radius)
		paint.FillShape(gtx.Ops, activePaneColor, rr.Op(gtx.Ops))
	}
	inset := layout.UniformInset(controlInset)
	return ui.click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Flexed(16, func(gtx layout.Context) layout.Dimensions {
					return ui.layoutText(gtx, ui.result, text.End)
				}),
				layout.Flexed(7, func(gtx layout.Context) layout.Dimensions {
					return ui.layoutText(gtx, ui.formula, text.Start)
				}),
				layout.Flexed(70, func(gtx layout.Context) layout.Dimensions {
					return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return ui.layoutButtons(gtx, radius, spacing)
					})
				}),
			)
		})
	})
}

// layoutText draws a display line, scaling the font to its height.
func (ui *calcUI) layoutText(gtx layout.Context, s string, align text.Alignment) layout.Dimensions {
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.2
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, s)
	l.Color = textColor
	l.MaxLines = 1
	return shrinkToFit(gtx, align, l.Layout)
}

func (ui *calcUI) layoutButtons(gtx layout.Context, radius, spacing int) layout.Dimensions {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: spacing,
	}
	last, _ := ui.engine.State().Stack.Last()
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		b := ui.buttons[row][col]
		if b == nil {
			return layout.Dimensions{}
		}
		_, isOp := b.tok.Op()
		highlight := isOp && b.tok != calc.Equals && b.tok == last
		return layoutButton(gtx, ui.theme, &b.clicker, b.tok.Label(), b.color, highlight, radius)
	})
}

func layoutButton(gtx layout.Context, th *material.Theme, c *widget.Clickable, label string, bg color.NRGBA, highlight bool, radius int) layout.Dimensions {
	textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
	style := material.Button(th, c, label)
	style.Background = bg
	if highlight {
		style.Background = activeOpColor
	}
	style.Color = textColor
	style.Inset = layout.Inset{}
	style.TextSize = unit.Sp(textSizePx / gtx.Metric.PxPerSp)
	style.CornerRadius = unit.Dp(float32(radius) / gtx.Metric.PxPerDp)
	return style.Layout(gtx)
}

// dualUI holds two calculator panes and the buttons that move results between them.
type dualUI struct {
	theme  *material.Theme
	mode   string
	panes  [2]*calcUI
	active int // pane receiving keyboard input

	toRight, toLeft, del button
	delLabel             string
}

func newDualUI(theme *material.Theme, tr *translator, opts calc.Options, layoutMode string) *dualUI {
	ui := &dualUI{
		theme:    theme,
		mode:     layoutMode,
		active:   1,
		toRight:  button{tok: calc.Arrow(calc.ArrowRight), color: arrowColor},
		toLeft:   button{tok: calc.Arrow(calc.ArrowLeft), color: arrowColor},
		del:      button{color: functionColor},
		delLabel: tr.text(msgClearPanes),
	}
	for i := range ui.panes {
		ui.panes[i] = newCalcUI(theme, opts)
	}
	return ui
}

// navigate handles arrow input: the result of one pane is copied to the other.
func (ui *dualUI) navigate(tok calc.Token) {
	dir, ok := tok.Dir()
	if !ok {
		return
	}
	left, right := ui.panes[0].engine, ui.panes[1].engine
	switch dir {
	case calc.ArrowRight:
		calc.Transfer(right, left)
	case calc.ArrowLeft:
		calc.Transfer(left, right)
	}
}

// clearAll resets both panes.
func (ui *dualUI) clearAll() {
	for _, p := range ui.panes {
		p.engine.Reset()
	}
}

// showBoth tells whether both panes fit into the window.
func (ui *dualUI) showBoth(size image.Point) bool {
	switch ui.mode {
	case config.LayoutSingle:
		return false
	case config.LayoutDual:
		return true
	default:
		return size.X > size.Y
	}
}

// Layout draws the app.
func (ui *dualUI) Layout(gtx layout.Context) layout.Dimensions {
	ui.handleKeys(gtx)

	both := ui.showBoth(gtx.Constraints.Max)
	for i, p := range ui.panes {
		if (both || i == ui.active) && p.update(gtx) {
			ui.active = i
		}
	}
	if ui.toRight.clicker.Clicked(gtx) {
		ui.navigate(ui.toRight.tok)
	}
	if ui.toLeft.clicker.Clicked(gtx) {
		ui.navigate(ui.toLeft.tok)
	}
	if ui.del.clicker.Clicked(gtx) {
		ui.clearAll()
	}

	if !both {
		return ui.panes[ui.active].Layout(gtx, false)
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return ui.panes[0].Layout(gtx, ui.active == 0)
		}),
		layout.Rigid(ui.layoutMiddle),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return ui.panes[1].Layout(gtx, ui.active == 1)
		}),
	)
}

// layoutMiddle draws the column of arrow and DEL buttons between the panes.
func (ui *dualUI) layoutMiddle(gtx layout.Context) layout.Dimensions {
	width := gtx.Dp(unit.Dp(64))
	height := width * 3 / 4
	radius := gtx.Dp(cornerRadius)
	inset := layout.UniformInset(controlInset)
	btn := func(b *button, label string) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints = layout.Exact(image.Pt(width, height))
				return layoutButton(gtx, ui.theme, &b.clicker, label, b.color, false, radius)
			})
		})
	}
	return layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceSides}.Layout(gtx,
		btn(&ui.toRight, ui.toRight.tok.Label()),
		btn(&ui.toLeft, ui.toLeft.tok.Label()),
		btn(&ui.del, ui.delLabel),
	)
}

// handleKeys registers the global key handler and sends keys to the active pane.
func (ui *dualUI) handleKeys(gtx layout.Context) {
	event.Op(gtx.Ops, ui)
	filters := make([]event.Filter, len(keyFilters))
	for i, f := range keyFilters {
		filters[i] = f
	}
	for {
		ev, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		e, ok := ev.(key.Event)
		if !ok {
			continue
		}
		pane := ui.panes[ui.active]
		if isCopy(e) {
			gtx.Execute(clipboard.WriteCmd{
				Type: "application/text",
				Data: io.NopCloser(strings.NewReader(pane.engine.Result())),
			})
			continue
		}
		if tok, ok := classifyKey(e); ok {
			pane.press(tok)
		}
	}
}
