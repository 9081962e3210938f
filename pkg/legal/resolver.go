// Package legal resolves common legal questions to canned, reviewed answers.
// It is a keyword matcher, not a language model: the quick-help flow must keep
// working offline and must never depend on an upstream AI service.
package legal

import (
	"fmt"
	"strings"

	"github.com/Shravansapate/legislate-voice-aid/pkg/i18n"
)

// Result is a resolved canned answer.
type Result struct {
	Answer   string
	Topic    string
	Category string
	// Matched is false when no topic triggered and the fallback answer was used.
	Matched bool
}

// Resolve matches the query against the topic triggers in priority order and
// returns the first topic's answer in the requested language. A topic missing
// the requested language falls back to the default language entry. When no
// topic matches, the localized fallback embeds the literal query.
func Resolve(query string, lang i18n.Language) Result {
	lowered := strings.ToLower(query)

	for _, t := range topics {
		for _, trigger := range t.Triggers {
			if strings.Contains(lowered, trigger) {
				return Result{
					Answer:   answerFor(t, lang),
					Topic:    t.Key,
					Category: t.Category,
					Matched:  true,
				}
			}
		}
	}

	tmpl, ok := defaultAnswers[lang]
	if !ok {
		tmpl = defaultAnswers[i18n.DefaultLanguage]
	}
	return Result{Answer: fmt.Sprintf(tmpl, query)}
}

func answerFor(t topic, lang i18n.Language) string {
	if answer, ok := t.Answers[lang]; ok {
		return answer
	}
	return t.Answers[i18n.DefaultLanguage]
}

// Topics returns the canned topic keys in matching order.
func Topics() []string {
	keys := make([]string, 0, len(topics))
	for _, t := range topics {
		keys = append(keys, t.Key)
	}
	return keys
}
