package docgen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"fir", KindFIR, false},
		{"rti", KindRTI, false},
		{"FIR", "", true},
		{"affidavit", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestRenderFIR(t *testing.T) {
	now := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)
	doc := Render(KindFIR, "जमीन पर कब्जा", "तहसीलदार के पास शिकायत दर्ज कराएं", now)

	assert.Equal(t, KindFIR, doc.Kind)
	assert.Equal(t, "07/03/2025", doc.GeneratedDate)

	assert.Contains(t, doc.Body, "प्राथमिकी (FIR) - प्रथम सूचना रिपोर्ट")
	assert.Contains(t, doc.Body, "विषय: जमीन पर कब्जा")
	assert.Contains(t, doc.Body, "तहसीलदार के पास शिकायत दर्ज कराएं")
	assert.Contains(t, doc.Body, "यह AI द्वारा तैयार किया गया ड्राफ्ट है। कृपया वकील से सलाह लेकर इसे अंतिम रूप दें।")

	// The date is captured once and appears in both date fields.
	assert.Equal(t, 2, strings.Count(doc.Body, "दिनांक: 07/03/2025"))

	// Blanks for the complainant's own details stay in the draft.
	assert.Contains(t, doc.Body, "शिकायतकर्ता का नाम: ________________________")
}

func TestRenderRTI(t *testing.T) {
	now := time.Date(2025, time.December, 1, 9, 0, 0, 0, time.UTC)
	doc := Render(KindRTI, "पेंशन की स्थिति", "ग्राम पंचायत में आवेदन करें", now)

	assert.Equal(t, KindRTI, doc.Kind)
	assert.Contains(t, doc.Body, "सूचना का अधिकार अधिनियम 2005 के तहत आवेदन")
	// The query appears both in the subject line and the question body.
	assert.Contains(t, doc.Body, "विषय: पेंशन की स्थिति संबंधी जानकारी हेतु आवेदन")
	assert.Contains(t, doc.Body, "प्रश्न: पेंशन की स्थिति")
	assert.Contains(t, doc.Body, "संदर्भ: ग्राम पंचायत में आवेदन करें")
	assert.Contains(t, doc.Body, "₹10")
	assert.Equal(t, 2, strings.Count(doc.Body, "दिनांक: 01/12/2025"))
}

func TestKindLabels(t *testing.T) {
	assert.Equal(t, "FIR", KindFIR.Label())
	assert.Equal(t, "RTI", KindRTI.Label())
	assert.Equal(t, "FIR Draft", KindFIR.Title())
	assert.Equal(t, "RTI Application", KindRTI.Title())
}
