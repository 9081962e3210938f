package i18n

// Language is a BCP 47 tag for one of the supported Indian locales.
type Language string

const (
	LanguageHindi   Language = "hi-IN"
	LanguageEnglish Language = "en-IN"
	LanguageTelugu  Language = "te-IN"
	LanguageMarathi Language = "mr-IN"
)

// DefaultLanguage is the fallback for unknown or missing language tags.
const DefaultLanguage = LanguageHindi

// Supported lists every language the catalog carries, in display order.
var Supported = []Language{
	LanguageHindi,
	LanguageEnglish,
	LanguageTelugu,
	LanguageMarathi,
}

var displayNames = map[Language]string{
	LanguageHindi:   "Hindi",
	LanguageEnglish: "English",
	LanguageTelugu:  "Telugu",
	LanguageMarathi: "Marathi",
}

// Parse maps a raw tag to a supported Language, falling back to the default.
func Parse(tag string) Language {
	lang := Language(tag)
	if _, ok := displayNames[lang]; ok {
		return lang
	}
	return DefaultLanguage
}

// IsSupported reports whether the raw tag is one of the supported locales.
func IsSupported(tag string) bool {
	_, ok := displayNames[Language(tag)]
	return ok
}

// Name returns the English display name of the language ("Hindi", "Telugu", ...).
func (l Language) Name() string {
	if name, ok := displayNames[l]; ok {
		return name
	}
	return displayNames[DefaultLanguage]
}

func (l Language) String() string {
	return string(l)
}

// Lookup returns the catalog entry for key in the given language.
// Unknown languages fall back to the default language; an unknown key
// returns the key itself so a missing translation is visible, not fatal.
func Lookup(key string, lang Language) string {
	entries, ok := catalog[key]
	if !ok {
		return key
	}
	if text, ok := entries[lang]; ok {
		return text
	}
	return entries[DefaultLanguage]
}

func init() {
	// The catalog must be exhaustive: a hole would surface to end users as a
	// raw key in the wrong script, so fail at startup instead.
	for key, entries := range catalog {
		for _, lang := range Supported {
			if _, ok := entries[lang]; !ok {
				panic("i18n: catalog key " + key + " missing language " + string(lang))
			}
		}
	}
}
