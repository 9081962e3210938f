// Package docgen renders FIR and RTI draft documents from a legal query and
// the assistant's answer. Rendering is pure text assembly; the drafts carry
// underscore blanks for the details only the citizen can fill in.
package docgen

import (
	"fmt"
	"time"
)

// Kind selects the document template.
type Kind string

const (
	KindFIR Kind = "fir"
	KindRTI Kind = "rti"
)

// DateLayout is dd/mm/yyyy, the format Hindi-locale dates render in.
const DateLayout = "02/01/2006"

// Document is a rendered draft.
type Document struct {
	Kind          Kind
	Body          string
	GeneratedDate string
}

// ParseKind validates a raw kind value.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindFIR, KindRTI:
		return Kind(raw), nil
	default:
		return "", fmt.Errorf("unknown document kind: %q", raw)
	}
}

// Title returns the printable English heading for the kind.
func (k Kind) Title() string {
	if k == KindFIR {
		return "FIR Draft"
	}
	return "RTI Application"
}

// Label returns the short uppercase label used in filenames and share text.
func (k Kind) Label() string {
	if k == KindFIR {
		return "FIR"
	}
	return "RTI"
}

// Render builds the draft for the given kind. The date is captured once from
// now and reused for every date field in the same document.
func Render(kind Kind, query, response string, now time.Time) Document {
	date := now.Format(DateLayout)

	var body string
	switch kind {
	case KindFIR:
		body = fmt.Sprintf(firTemplate, date, query, response, date)
	case KindRTI:
		body = fmt.Sprintf(rtiTemplate, date, query, query, response, date)
	}

	return Document{
		Kind:          kind,
		Body:          body,
		GeneratedDate: date,
	}
}

const firTemplate = `प्राथमिकी (FIR) - प्रथम सूचना रिपोर्ट

थाना: ________________________
दिनांक: %s
समय: ________________________

श्रीमान/श्रीमती,
    मैं निम्नलिखित घटना की सूचना देना चाहता/चाहती हूँ:

विषय: %s

घटना का विवरण:
%s

मैं अनुरोध करता/करती हूँ कि इस मामले में उचित कार्रवाई की जाए और न्याय दिलाया जाए।

सादर,
शिकायतकर्ता का नाम: ________________________
पता: ________________________
मोबाइल नंबर: ________________________
हस्ताक्षर: ________________________

दिनांक: %s

--------------------------------
यह AI द्वारा तैयार किया गया ड्राफ्ट है। कृपया वकील से सलाह लेकर इसे अंतिम रूप दें।
`

const rtiTemplate = `सूचना का अधिकार अधिनियम 2005 के तहत आवेदन

सेवा में,
लोक सूचना अधिकारी
________________________ विभाग/कार्यालय

दिनांक: %s

विषय: %s संबंधी जानकारी हेतु आवेदन

महोदय/महोदया,

सूचना का अधिकार अधिनियम 2005 की धारा 6(1) के तहत मैं निम्नलिखित जानकारी प्राप्त करना चाहता/चाहती हूँ:

प्रश्न: %s

संदर्भ: %s

अपेक्षित जानकारी:
1. उपरोक्त विषय से संबंधित सभी दस्तावेज
2. संबंधित नीतियों और नियमों की जानकारी
3. आवेदन की स्थिति और प्रक्रिया

मैं RTI शुल्क के रूप में ₹10 संलग्न कर रहा/रही हूँ।

सादर,
आवेदक का नाम: ________________________
पता: ________________________
मोबाइल नंबर: ________________________
हस्ताक्षर: ________________________

दिनांक: %s

--------------------------------
यह AI द्वारा तैयार किया गया ड्राफ्ट है। कृपया वकील से सलाह लेकर इसे अंतिम रूप दें।
`
