package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Language
	}{
		{"hindi", "hi-IN", LanguageHindi},
		{"english", "en-IN", LanguageEnglish},
		{"telugu", "te-IN", LanguageTelugu},
		{"marathi", "mr-IN", LanguageMarathi},
		{"unknown tag falls back", "fr-FR", DefaultLanguage},
		{"empty tag falls back", "", DefaultLanguage},
		{"bare language code falls back", "hi", DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestLookup(t *testing.T) {
	t.Run("returns translation for each language", func(t *testing.T) {
		assert.Equal(t, "Your Voice is Your Right", Lookup("tagline", LanguageEnglish))
		assert.Equal(t, "आपकी आवाज़ है आपका अधिकार", Lookup("tagline", LanguageHindi))
		assert.Equal(t, "మీ స్వరమే మీ హక్కు", Lookup("tagline", LanguageTelugu))
		assert.Equal(t, "तुमचा आवाज तुमचा अधिकार", Lookup("tagline", LanguageMarathi))
	})

	t.Run("unknown key returns the key itself", func(t *testing.T) {
		assert.Equal(t, "noSuchKey", Lookup("noSuchKey", LanguageEnglish))
	})

	t.Run("unknown language falls back to default", func(t *testing.T) {
		assert.Equal(t, Lookup("error", DefaultLanguage), Lookup("error", Language("ta-IN")))
	})
}

func TestCatalogIsExhaustive(t *testing.T) {
	for key, entries := range catalog {
		for _, lang := range Supported {
			text, ok := entries[lang]
			assert.Truef(t, ok, "key %q missing language %s", key, lang)
			assert.NotEmptyf(t, text, "key %q has empty entry for %s", key, lang)
		}
	}
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Hindi", LanguageHindi.Name())
	assert.Equal(t, "Telugu", LanguageTelugu.Name())
	assert.Equal(t, "Hindi", Language("xx-XX").Name())
}
