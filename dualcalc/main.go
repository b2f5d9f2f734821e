// Command dualcalc is a calculator with two independent panes. In landscape
// windows both panes are shown side by side, and the arrow buttons between
// them copy the result of one pane into the other.
//
// Note that the calculator resolves all multiplications before any division:
// 2÷4×3 is computed as 2÷(4×3).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget/material"

	"github.com/fjl/gio-calculators/dualcalc/internal/config"
)

func main() {
	configFile := flag.String("config", "", "path of the TOML config file")
	flag.Parse()

	ui, title, err := setup(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title(title),
			app.Size(designWidth*2+designWidth/4, designHeight),
			app.MinSize(designWidth, designHeight),
		)
		if err := loop(w, ui); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// setup builds the UI from the config file.
func setup(configFile string) (*dualUI, string, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, "", err
	}
	log := newLogger(cfg)
	tag, err := cfg.Tag()
	if err != nil {
		return nil, "", err
	}
	tr, err := newTranslator(tag)
	if err != nil {
		return nil, "", err
	}
	opts, err := cfg.EngineOptions(log)
	if err != nil {
		return nil, "", err
	}
	log.Info("starting", "config", configFile, "locale", tag.String(), "layout", cfg.Layout)

	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return newDualUI(th, tr, opts, cfg.Layout), tr.text(msgWindowTitle), nil
}

// newLogger creates the app logger on stderr.
func newLogger(cfg config.Config) *slog.Logger {
	level := new(slog.LevelVar)
	if l, err := cfg.Level(); err == nil {
		level.Set(l)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// loop is the main loop of the app.
func loop(w *app.Window, ui *dualUI) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			paint.Fill(gtx.Ops, backgroundColor)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
