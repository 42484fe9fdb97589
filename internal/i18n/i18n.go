// Package i18n holds the translation tables and the lookup rules shared by
// every renderer.
package i18n

import (
	"strings"

	"github.com/ppiankov/cardiorisk/internal/util"
)

// Language is a supported UI language code
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
	Korean  Language = "kr"
)

// Default is the language every lookup falls back to.
const Default = English

// Supported lists the languages in display order.
var Supported = []Language{English, Russian, Korean}

// Parse maps a language code onto a supported language. Unknown codes map to
// Default. "ko" is accepted as an alias for Korean.
func Parse(code string) Language {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "ru":
		return Russian
	case "kr", "ko":
		return Korean
	default:
		return English
	}
}

// IsSupported reports whether code names a supported language exactly.
func IsSupported(code string) bool {
	for _, l := range Supported {
		if string(l) == code {
			return true
		}
	}
	return false
}

// Table maps language to key to text.
type Table map[Language]map[string]string

type entry struct {
	lang Language
	key  string
}

func (t Table) find(e entry) (string, bool) {
	s, ok := t[e.lang][e.key]
	return s, ok && s != ""
}

// Lookup resolves key in lang, then in Default. It reports false when
// neither table has a non-empty entry.
func (t Table) Lookup(lang Language, key string) (string, bool) {
	return util.First(t.find, entry{lang, key}, entry{Default, key})
}

// T resolves key in lang, then Default, then returns the key itself.
func (t Table) T(lang Language, key string) string {
	return t.TOr(lang, key, "")
}

// TOr resolves key in lang, then Default, then fallback, then the key itself.
func (t Table) TOr(lang Language, key, fallback string) string {
	if s, ok := t.Lookup(lang, key); ok {
		return s
	}
	if fallback != "" {
		return fallback
	}
	return key
}

// Format resolves key and substitutes {name} placeholders from args.
func (t Table) Format(lang Language, key string, args map[string]string) string {
	s := t.T(lang, key)
	for name, value := range args {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

// Keys returns the table for one language merged over Default, so that a
// client receives a complete set.
func (t Table) Keys(lang Language) map[string]string {
	out := make(map[string]string, len(t[Default]))
	for k, v := range t[Default] {
		out[k] = v
	}
	for k, v := range t[lang] {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Messages is the built-in translation table.
var Messages = Table{
	English: en,
	Russian: ru,
	Korean:  kr,
}

// T resolves key in the built-in table.
func T(lang Language, key string) string {
	return Messages.T(lang, key)
}
