package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	msgWindowTitle = &i18n.Message{ID: "WindowTitle", Other: "Dual Calculator"}
	msgClearPanes  = &i18n.Message{ID: "ClearPanes", Other: "DEL"}
)

// translator provides the UI strings for one language.
type translator struct {
	loc *i18n.Localizer
}

func newTranslator(tag language.Tag) (*translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("can't load %s: %w", file, err)
		}
	}
	return &translator{loc: i18n.NewLocalizer(bundle, tag.String())}, nil
}

// text returns the localized message, falling back to its English default.
func (tr *translator) text(msg *i18n.Message) string {
	s, err := tr.loc.Localize(&i18n.LocalizeConfig{DefaultMessage: msg})
	if err != nil {
		return msg.Other
	}
	return s
}
