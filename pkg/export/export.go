// Package export builds the share and download targets for generated drafts:
// plain-text filenames, WhatsApp deep links and a printable HTML page.
package export

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/Shravansapate/legislate-voice-aid/pkg/docgen"
	"github.com/Shravansapate/legislate-voice-aid/pkg/i18n"
)

const waShareBase = "https://wa.me/"

// ngoGreeting is the prefilled Hindi message sent when contacting an aid center.
const ngoGreeting = "नमस्ते, मुझे Legislate AI से आपकी जानकारी मिली है। मुझे कानूनी सहायता चाहिए। कृपया मदद करें।"

// Filename names the downloadable draft, e.g. "FIR_Draft_1709812345678.txt".
func Filename(kind docgen.Kind, now time.Time) string {
	return fmt.Sprintf("%s_Draft_%d.txt", kind.Label(), now.UnixMilli())
}

// DocumentShareLink builds a wa.me link carrying the whole draft body.
func DocumentShareLink(kind docgen.Kind, body string) string {
	text := fmt.Sprintf("Legislate AI से तैयार %s ड्राफ्ट:\n\n%s", kind.Label(), body)
	return waShareBase + "?text=" + url.QueryEscape(text)
}

// AnswerShareLink builds a wa.me link sharing one question and its answer.
func AnswerShareLink(query, response string) string {
	text := fmt.Sprintf("Legislate AI की सहायता:\n\nप्रश्न: %s\n\nउत्तर: %s", query, response)
	return waShareBase + "?text=" + url.QueryEscape(text)
}

// AppShareLink builds a wa.me link recommending the app itself, localized.
func AppShareLink(lang i18n.Language, origin string) string {
	text := fmt.Sprintf("%s - %s\n\n%s\n\n%s",
		i18n.Lookup("appName", lang),
		i18n.Lookup("tagline", lang),
		i18n.Lookup("whatsappDescription", lang),
		origin,
	)
	return waShareBase + "?text=" + url.QueryEscape(text)
}

// NGOContactLink builds a wa.me link to an aid center with the greeting
// prefilled. Non-digits are stripped from the phone number.
func NGOContactLink(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return waShareBase + digits + "?text=" + url.QueryEscape(ngoGreeting)
}

// PrintHTML wraps the draft body in a minimal printable page. The body is
// escaped; drafts may embed arbitrary user text.
func PrintHTML(kind docgen.Kind, body string) string {
	return fmt.Sprintf(printTemplate, kind.Title(), kind.Title(), html.EscapeString(body))
}

const printTemplate = `<html>
  <head>
    <title>%s</title>
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; margin: 40px; }
      .header { text-align: center; margin-bottom: 30px; }
      .content { white-space: pre-wrap; }
    </style>
  </head>
  <body>
    <div class="header">
      <h2>Legislate AI - %s</h2>
    </div>
    <div class="content">%s</div>
  </body>
</html>
`
