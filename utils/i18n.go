package utils

import (
	"embed"
	"encoding/json"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed i18n
var i18nFS embed.FS

var bundle *i18n.Bundle

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	if _, err := bundle.LoadMessageFileFS(i18nFS, "i18n/active.en.json"); err != nil {
		panic(err)
	}
}

// NewLocalizer returns a localizer for the given languages, falling back to
// English.
func NewLocalizer(langs ...string) *i18n.Localizer {
	langs = append(langs, language.English.String())
	return i18n.NewLocalizer(bundle, langs...)
}
