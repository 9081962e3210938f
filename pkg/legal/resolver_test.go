package legal

import (
	"strings"
	"testing"

	"github.com/Shravansapate/legislate-voice-aid/pkg/i18n"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		lang     i18n.Language
		topic    string
		category string
	}{
		{"hindi land term", "मेरी जमीन पर कब्जा हो गया है", i18n.LanguageHindi, "land dispute", "property"},
		{"english land term", "I have a LAND dispute with my neighbour", i18n.LanguageEnglish, "land dispute", "property"},
		{"telugu land term", "నా భూమి సమస్య", i18n.LanguageTelugu, "land dispute", "property"},
		{"cross-script: hindi term in english session", "help with भूमि issue", i18n.LanguageEnglish, "land dispute", "property"},
		{"domestic violence english", "domestic violence complaint", i18n.LanguageEnglish, "domestic violence", "safety"},
		{"domestic violence marathi", "घरगुती हिंसाचार बद्दल माहिती", i18n.LanguageMarathi, "domestic violence", "safety"},
		{"pension hindi", "वृद्धावस्था पेंशन कैसे मिलेगी", i18n.LanguageHindi, "pension", "welfare"},
		{"mnrega uppercase", "MNREGA job card", i18n.LanguageEnglish, "employment", "employment"},
		{"employment telugu", "నాకు పని కావాలి", i18n.LanguageTelugu, "employment", "employment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.query, tt.lang)
			assert.True(t, res.Matched)
			assert.Equal(t, tt.topic, res.Topic)
			assert.Equal(t, tt.category, res.Category)
			assert.NotEmpty(t, res.Answer)
		})
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	// Query mentions both land and pension; land dispute is earlier in the
	// topic order so it must win.
	res := Resolve("land and pension question", i18n.LanguageEnglish)
	assert.Equal(t, "land dispute", res.Topic)
}

func TestResolveAnswerLanguage(t *testing.T) {
	res := Resolve("land dispute", i18n.LanguageTelugu)
	assert.Contains(t, res.Answer, "తహసీల్దార్")

	res = Resolve("land dispute", i18n.LanguageEnglish)
	assert.Contains(t, res.Answer, "Tehsildar")
}

func TestResolveUnknownLanguageFallsBackToHindi(t *testing.T) {
	res := Resolve("land dispute", i18n.Language("bn-IN"))
	assert.True(t, res.Matched)
	assert.Equal(t, topics[0].Answers[i18n.DefaultLanguage], res.Answer)
}

func TestResolveFallbackEmbedsQuery(t *testing.T) {
	query := "my cow wandered into the temple"
	res := Resolve(query, i18n.LanguageEnglish)

	assert.False(t, res.Matched)
	assert.Empty(t, res.Topic)
	assert.Contains(t, res.Answer, `"`+query+`"`)
	assert.True(t, strings.Contains(res.Answer, "land disputes"))
}

func TestTopicsOrder(t *testing.T) {
	assert.Equal(t, []string{"land dispute", "domestic violence", "pension", "employment"}, Topics())
}
