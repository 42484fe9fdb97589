package i18n

import (
	"golang.org/x/text/language"

	"github.com/ppiankov/cardiorisk/internal/util"
)

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first tag is the matcher's fallback
	language.Russian,
	language.Korean,
})

// Negotiate picks a supported language from an Accept-Language header.
func Negotiate(acceptLanguage string) Language {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Pick returns the first candidate naming a supported language ("ko" is
// read as Korean), falling back to the Accept-Language header.
func Pick(acceptLanguage string, candidates ...string) Language {
	if l, ok := util.First(func(code string) (Language, bool) {
		if code == "ko" {
			return Korean, true
		}
		return Language(code), IsSupported(code)
	}, candidates...); ok {
		return l
	}
	return Negotiate(acceptLanguage)
}
