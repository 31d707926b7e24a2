// Package locale defines the display languages supported by the screening API
// and a localized text type with a deterministic English fallback.
package locale

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the supported display languages.
type Locale string

const (
	English Locale = "en"
	French  Locale = "fr"
	Arabic  Locale = "ar"
)

// Supported lists all recognized locales. The order matches the matcher
// priority, so English wins when a request expresses no preference.
var Supported = []Locale{English, French, Arabic}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
	language.Arabic,
})

// Parse returns the Locale for a language code. Region subtags are accepted
// and stripped (fr-MA resolves to fr).
func Parse(code string) (Locale, error) {
	base := strings.ToLower(strings.TrimSpace(code))
	if idx := strings.IndexAny(base, "-_"); idx != -1 {
		base = base[:idx]
	}

	for _, l := range Supported {
		if base == string(l) {
			return l, nil
		}
	}

	return "", fmt.Errorf("unsupported locale: %q", code)
}

// FromRequest resolves the display locale for an HTTP request. An explicit
// lang query parameter wins, then the Accept-Language header, then English.
func FromRequest(r *http.Request) Locale {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		if l, err := Parse(lang); err == nil {
			return l
		}
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tags, _, _ := language.ParseAcceptLanguage(accept)
		_, idx, conf := matcher.Match(tags...)
		if conf > language.No && idx >= 0 && idx < len(Supported) {
			return Supported[idx]
		}
	}

	return English
}

// Text holds one string per supported locale. English is the canonical
// variant and the fallback when a requested variant is absent.
type Text struct {
	En string `json:"en"`
	Fr string `json:"fr"`
	Ar string `json:"ar"`
}

// In returns the variant for the given locale, falling back to English when
// the requested variant is empty.
func (t Text) In(l Locale) string {
	switch l {
	case French:
		if t.Fr != "" {
			return t.Fr
		}
	case Arabic:
		if t.Ar != "" {
			return t.Ar
		}
	}
	return t.En
}

// Complete reports whether every supported locale has a non-empty variant.
func (t Text) Complete() bool {
	return t.En != "" && t.Fr != "" && t.Ar != ""
}
