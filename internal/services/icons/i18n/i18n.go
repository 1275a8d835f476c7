// Package i18n resolves the language of catalog page requests.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/apollo/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam selects a language for one request and remembers it.
	LangParam = "lang"
	// LangCookieName holds the remembered language.
	LangCookieName = "apollo_lang"

	cookieMaxAge = 365 * 24 * time.Hour
)

var (
	portuguese = language.MustParse("pt-BR")
	supported  = []language.Tag{language.English, portuguese}
	matcher    = language.NewMatcher(supported)
	_          = catalog.Default()
)

// Supported lists the languages the catalogs are translated to, default first.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default is the language used when a request expresses no usable preference.
func Default() language.Tag {
	return supported[0]
}

// Printer formats catalog messages for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Locale names the catalog directory for tag. English maps to the base locale.
func Locale(tag language.Tag) string {
	if tag == language.English {
		return catalog.BaseLocale
	}
	return tag.String()
}

// ResolveTag picks the request language from, in order, the lang query
// parameter, the language cookie and Accept-Language. persist reports that
// the choice came from the query and should be remembered.
func ResolveTag(r *http.Request) (tag language.Tag, persist bool) {
	if r == nil {
		return Default(), false
	}
	if tag, ok := exact(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := exact(cookie.Value); ok {
			return tag, false
		}
	}
	if tag, ok := MatchAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return tag, false
	}
	return Default(), false
}

// MatchAcceptLanguage picks the supported tag closest to an Accept-Language
// header value. ok is false when nothing supported is acceptable.
func MatchAcceptLanguage(accept string) (tag language.Tag, ok bool) {
	if strings.TrimSpace(accept) == "" {
		return language.Tag{}, false
	}
	wanted, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(wanted) == 0 {
		return language.Tag{}, false
	}
	if _, index, confidence := matcher.Match(wanted...); confidence != language.No {
		return supported[index], true
	}
	return language.Tag{}, false
}

// SetLanguageCookie remembers tag for later requests.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int(cookieMaxAge / time.Second),
		SameSite: http.SameSiteLaxMode,
	})
}

// Localize resolves the request language and returns its printer. A language
// chosen through the query parameter is written back as a cookie.
func Localize(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag
}

// exact accepts a supported tag or any English variant.
func exact(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	for _, tag := range supported {
		if parsed == tag {
			return tag, true
		}
	}
	if base, _ := parsed.Base(); base.String() == "en" {
		return language.English, true
	}
	return language.Tag{}, false
}
