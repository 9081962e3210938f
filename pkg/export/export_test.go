package export

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Shravansapate/legislate-voice-aid/pkg/docgen"
	"github.com/Shravansapate/legislate-voice-aid/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	now := time.UnixMilli(1709812345678)
	assert.Equal(t, "FIR_Draft_1709812345678.txt", Filename(docgen.KindFIR, now))
	assert.Equal(t, "RTI_Draft_1709812345678.txt", Filename(docgen.KindRTI, now))
}

func TestDocumentShareLink(t *testing.T) {
	link := DocumentShareLink(docgen.KindFIR, "draft body")
	require.True(t, strings.HasPrefix(link, "https://wa.me/?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Legislate AI से तैयार FIR ड्राफ्ट:")
	assert.Contains(t, text, "draft body")
}

func TestAnswerShareLink(t *testing.T) {
	u, err := url.Parse(AnswerShareLink("जमीन विवाद", "तहसीलदार से मिलें"))
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "प्रश्न: जमीन विवाद")
	assert.Contains(t, text, "उत्तर: तहसीलदार से मिलें")
}

func TestAppShareLink(t *testing.T) {
	u, err := url.Parse(AppShareLink(i18n.LanguageEnglish, "https://legislate.example"))
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Legislate AI - Your Voice is Your Right")
	assert.Contains(t, text, "https://legislate.example")
}

func TestNGOContactLink(t *testing.T) {
	link := NGOContactLink("+91 98765-43210")
	require.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("text"), "नमस्ते, मुझे Legislate AI से आपकी जानकारी मिली है।")
}

func TestPrintHTML(t *testing.T) {
	html := PrintHTML(docgen.KindRTI, "line one\nline <two>")

	assert.Contains(t, html, "<title>RTI Application</title>")
	assert.Contains(t, html, "Legislate AI - RTI Application")
	assert.Contains(t, html, "white-space: pre-wrap")
	// User text is escaped before embedding.
	assert.Contains(t, html, "line &lt;two&gt;")
	assert.NotContains(t, html, "line <two>")
}
