package i18n

// catalog holds every user-facing string, keyed by message key then language.
var catalog = map[string]map[Language]string{
	// Header
	"appName": {
		LanguageHindi:   "Legislate AI",
		LanguageEnglish: "Legislate AI",
		LanguageTelugu:  "Legislate AI",
		LanguageMarathi: "Legislate AI",
	},
	"tagline": {
		LanguageHindi:   "आपकी आवाज़ है आपका अधिकार",
		LanguageEnglish: "Your Voice is Your Right",
		LanguageTelugu:  "మీ స్వరమే మీ హక్కు",
		LanguageMarathi: "तुमचा आवाज तुमचा अधिकार",
	},
	"subtitle": {
		LanguageHindi:   "कानूनी समस्याओं का समाधान • दस्तावेज़ निर्माण • विशेषज्ञ सहायता",
		LanguageEnglish: "Legal Solutions • Document Creation • Expert Assistance",
		LanguageTelugu:  "న్యాయ సమస్యల పరిష్కారం • పత్రాల తయారీ • నిపుణుల సహాయం",
		LanguageMarathi: "कायदेशीर समस्यांचे निराकरण • कागदपत्र निर्मिती • तज्ञांची मदत",
	},
	"helpCenter": {
		LanguageHindi:   "सहायता केंद्र",
		LanguageEnglish: "Help Center",
		LanguageTelugu:  "సహాయ కేంద్రం",
		LanguageMarathi: "मदत केंद्र",
	},

	// Features
	"voiceQuery": {
		LanguageHindi:   "आवाज़ से पूछें",
		LanguageEnglish: "Voice Query",
		LanguageTelugu:  "స్వరంతో అడగండి",
		LanguageMarathi: "आवाजाने विचारा",
	},
	"voiceDescription": {
		LanguageHindi:   "अपनी भाषा में बोलकर कानूनी सलाह पाएं",
		LanguageEnglish: "Get legal advice by speaking in your language",
		LanguageTelugu:  "మీ భాషలో మాట్లాడి న్యాయ సలహా పొందండి",
		LanguageMarathi: "तुमच्या भाषेत बोलून कायदेशीर सल्ला घ्या",
	},
	"createDocs": {
		LanguageHindi:   "दस्तावेज़ बनाएं",
		LanguageEnglish: "Create Documents",
		LanguageTelugu:  "పత్రాలు తయారు చేయండి",
		LanguageMarathi: "कागदपत्रे तयार करा",
	},
	"docsDescription": {
		LanguageHindi:   "FIR, RTI और अन्य कानूनी दस्तावेज़",
		LanguageEnglish: "FIR, RTI and other legal documents",
		LanguageTelugu:  "FIR, RTI మరియు ఇతర న్యాయ పత్రాలు",
		LanguageMarathi: "FIR, RTI आणि इतर कायदेशीर कागदपत्रे",
	},
	"ngoSupport": {
		LanguageHindi:   "NGO सपोर्ट",
		LanguageEnglish: "NGO Support",
		LanguageTelugu:  "NGO మద్దతు",
		LanguageMarathi: "NGO सपोर्ट",
	},
	"ngoDescription": {
		LanguageHindi:   "विशेषज्ञ कानूनी सहायता केंद्रों से जुड़ें",
		LanguageEnglish: "Connect with expert legal aid centers",
		LanguageTelugu:  "నిపుణుల న్యాయ సహాయ కేంద్రాలతో అనుసంధానం",
		LanguageMarathi: "तज्ञ कायदेशीर मदत केंद्रांशी जुडा",
	},
	"whatsappShare": {
		LanguageHindi:   "WhatsApp शेयर",
		LanguageEnglish: "WhatsApp Share",
		LanguageTelugu:  "WhatsApp షేర్",
		LanguageMarathi: "WhatsApp शेअर",
	},
	"whatsappDescription": {
		LanguageHindi:   "दस्तावेज़ और जानकारी साझा करें",
		LanguageEnglish: "Share documents and information",
		LanguageTelugu:  "పత్రాలు మరియు సమాచారం పంచుకోండి",
		LanguageMarathi: "कागदपत्रे आणि माहिती सामायिक करा",
	},

	// Voice input
	"listening": {
		LanguageHindi:   "सुन रहा हूँ... बोलिए",
		LanguageEnglish: "Listening... Please speak",
		LanguageTelugu:  "వింటున్నాను... మాట్లాడండి",
		LanguageMarathi: "ऐकत आहे... बोला",
	},
	"pressToSpeak": {
		LanguageHindi:   "माइक दबाकर बोलें",
		LanguageEnglish: "Press mic to speak",
		LanguageTelugu:  "మైక్ నొక్కి మాట్లాడండి",
		LanguageMarathi: "मायक दाबून बोला",
	},
	"exampleQuery": {
		LanguageHindi:   "\"मेरी जमीन का विवाद है\" या \"घरेलू हिंसा की शिकायत कैसे करें\"",
		LanguageEnglish: "\"I have a land dispute\" or \"How to file domestic violence complaint\"",
		LanguageTelugu:  "\"నా భూమి వివాదం ఉంది\" లేదా \"గృహ హింస ఫిర్యాదు ఎలా చేయాలి\"",
		LanguageMarathi: "\"माझ्या जमिनीचा वाद आहे\" किंवा \"घरगुती हिंसाचारची तक्रार कशी करावी\"",
	},

	// Quick actions
	"quickHelp": {
		LanguageHindi:   "त्वरित सहायता",
		LanguageEnglish: "Quick Help",
		LanguageTelugu:  "త్వరిత సహాయం",
		LanguageMarathi: "त्वरित मदत",
	},
	"firHelp": {
		LanguageHindi:   "FIR दर्ज करना",
		LanguageEnglish: "File FIR",
		LanguageTelugu:  "FIR దాఖలు చేయడం",
		LanguageMarathi: "FIR नोंदवणे",
	},
	"rtiHelp": {
		LanguageHindi:   "RTI आवेदन",
		LanguageEnglish: "RTI Application",
		LanguageTelugu:  "RTI దరఖాస్తు",
		LanguageMarathi: "RTI अर्ज",
	},
	"pensionHelp": {
		LanguageHindi:   "पेंशन योजना",
		LanguageEnglish: "Pension Scheme",
		LanguageTelugu:  "పెన్షన్ పథకం",
		LanguageMarathi: "पेन्शन योजना",
	},

	// Chat
	"yourQuery": {
		LanguageHindi:   "आपका प्रश्न",
		LanguageEnglish: "Your Query",
		LanguageTelugu:  "మీ ప్రశ్న",
		LanguageMarathi: "तुमचा प्रश्न",
	},
	"aiResponse": {
		LanguageHindi:   "AI सहायक का जवाब",
		LanguageEnglish: "AI Assistant Response",
		LanguageTelugu:  "AI సహాయకుని సమాధానం",
		LanguageMarathi: "AI सहाय्यकाचे उत्तर",
	},
	"generateFIR": {
		LanguageHindi:   "FIR बनाएं",
		LanguageEnglish: "Generate FIR",
		LanguageTelugu:  "FIR తయారు చేయండి",
		LanguageMarathi: "FIR तयार करा",
	},
	"generateRTI": {
		LanguageHindi:   "RTI बनाएं",
		LanguageEnglish: "Generate RTI",
		LanguageTelugu:  "RTI తయారు చేయండి",
		LanguageMarathi: "RTI तयार करा",
	},
	"shareWhatsApp": {
		LanguageHindi:   "WhatsApp पर साझा करें",
		LanguageEnglish: "Share on WhatsApp",
		LanguageTelugu:  "WhatsApp లో పంచుకోండి",
		LanguageMarathi: "WhatsApp वर सामायिक करा",
	},
	"backToHome": {
		LanguageHindi:   "मुख्य पृष्ठ पर वापस",
		LanguageEnglish: "Back to Home",
		LanguageTelugu:  "హోమ్ కు తిరిగి వెళ్లండి",
		LanguageMarathi: "मुख्य पानावर परत जा",
	},
	"chatPrompt": {
		LanguageHindi:   "कानूनी सहायता के लिए अपना प्रश्न पूछें",
		LanguageEnglish: "Ask your legal question for assistance",
		LanguageTelugu:  "న్యాయ సహాయం కోసం మీ ప్రశ్న అడగండి",
		LanguageMarathi: "कायदेशीर मदतीसाठी तुमचा प्रश्न विचारा",
	},
	"chatPlaceholder": {
		LanguageHindi:   "अपना कानूनी प्रश्न टाइप करें...",
		LanguageEnglish: "Type your legal question...",
		LanguageTelugu:  "మీ న్యాయ ప్రశ్నను టైప్ చేయండి...",
		LanguageMarathi: "तुमचा कायदेशीर प्रश्न टाइप करा...",
	},
	"chatThinking": {
		LanguageHindi:   "सोच रहा हूँ...",
		LanguageEnglish: "Thinking...",
		LanguageTelugu:  "ఆలోచిస్తున్నాను...",
		LanguageMarathi: "विचार करत आहे...",
	},
	"chatError": {
		LanguageHindi:   "क्षमा करें, कुछ गलत हुआ है। कृपया फिर से कोशिश करें।",
		LanguageEnglish: "Sorry, something went wrong. Please try again.",
		LanguageTelugu:  "క్షమించండి, ఏదో తప్పు జరిగింది. దయచేసి మళ్లీ ప్రయత్నించండి.",
		LanguageMarathi: "माफ करा, काहीतरी चूक झाली. कृपया पुन्हा प्रयत्न करा.",
	},

	// Document
	"generatedDoc": {
		LanguageHindi:   "तैयार दस्तावेज़",
		LanguageEnglish: "Generated Document",
		LanguageTelugu:  "తయారైన పత్రం",
		LanguageMarathi: "तयार केलेले कागदपत्र",
	},
	"downloadDoc": {
		LanguageHindi:   "डाउनलोड करें",
		LanguageEnglish: "Download",
		LanguageTelugu:  "డౌన్‌లోడ్ చేయండి",
		LanguageMarathi: "डाउनलोड करा",
	},
	"printDoc": {
		LanguageHindi:   "प्रिंट करें",
		LanguageEnglish: "Print",
		LanguageTelugu:  "ప్రింట్ చేయండి",
		LanguageMarathi: "प्रिंट करा",
	},
	"shareDoc": {
		LanguageHindi:   "WhatsApp पर साझा करें",
		LanguageEnglish: "Share on WhatsApp",
		LanguageTelugu:  "WhatsApp లో పంచుకోండి",
		LanguageMarathi: "WhatsApp वर सामायिक करा",
	},

	// NGO directory
	"ngoDirectory": {
		LanguageHindi:   "कानूनी सहायता केंद्र",
		LanguageEnglish: "Legal Aid Centers",
		LanguageTelugu:  "న్యాయ సహాయ కేంద్రాలు",
		LanguageMarathi: "कायदेशीर मदत केंद्रे",
	},
	"selectRegion": {
		LanguageHindi:   "अपना क्षेत्र चुनें",
		LanguageEnglish: "Select Your Region",
		LanguageTelugu:  "మీ ప్రాంతాన్ని ఎంచుకోండి",
		LanguageMarathi: "तुमचा प्रदेश निवडा",
	},
	"regionAll": {
		LanguageHindi:   "सभी क्षेत्र",
		LanguageEnglish: "All Regions",
		LanguageTelugu:  "అన్ని ప్రాంతాలు",
		LanguageMarathi: "सर्व प्रदेश",
	},
	"regionNorth": {
		LanguageHindi:   "उत्तर भारत",
		LanguageEnglish: "North India",
		LanguageTelugu:  "ఉత్తర భారతదేశం",
		LanguageMarathi: "उत्तर भारत",
	},
	"regionSouth": {
		LanguageHindi:   "दक्षिण भारत",
		LanguageEnglish: "South India",
		LanguageTelugu:  "దక్షిణ భారతదేశం",
		LanguageMarathi: "दक्षिण भारत",
	},
	"regionWest": {
		LanguageHindi:   "पश्चिम भारत",
		LanguageEnglish: "West India",
		LanguageTelugu:  "పశ్చిమ భారతదేశం",
		LanguageMarathi: "पश्चिम भारत",
	},
	"regionEast": {
		LanguageHindi:   "पूर्व भारत",
		LanguageEnglish: "East India",
		LanguageTelugu:  "తూర్పు భారతదేశం",
		LanguageMarathi: "पूर्व भारत",
	},
	"callNow": {
		LanguageHindi:   "कॉल करें",
		LanguageEnglish: "Call Now",
		LanguageTelugu:  "కాల్ చేయండి",
		LanguageMarathi: "आता कॉल करा",
	},
	"whatsappNow": {
		LanguageHindi:   "WhatsApp",
		LanguageEnglish: "WhatsApp",
		LanguageTelugu:  "WhatsApp",
		LanguageMarathi: "WhatsApp",
	},
	"visitWebsite": {
		LanguageHindi:   "वेबसाइट",
		LanguageEnglish: "Website",
		LanguageTelugu:  "వెబ్‌సైట్",
		LanguageMarathi: "वेबसाइट",
	},
	"emergencyHelp": {
		LanguageHindi:   "आपातकालीन सहायता",
		LanguageEnglish: "Emergency Help",
		LanguageTelugu:  "అత్యవసర సహాయం",
		LanguageMarathi: "आपत्कालीन मदत",
	},
	"womenHelpline": {
		LanguageHindi:   "महिला हेल्पलाइन",
		LanguageEnglish: "Women Helpline",
		LanguageTelugu:  "మహిళా హెల్ప్‌లైన్",
		LanguageMarathi: "महिला हेल्पलाइन",
	},
	"childHelpline": {
		LanguageHindi:   "चाइल्ड हेल्पलाइन",
		LanguageEnglish: "Child Helpline",
		LanguageTelugu:  "చైల్డ్ హెల్ప్‌లైన్",
		LanguageMarathi: "चाइल्ड हेल्पलाइन",
	},
	"policeHelp": {
		LanguageHindi:   "पुलिस सहायता",
		LanguageEnglish: "Police Help",
		LanguageTelugu:  "పోలీస్ సహాయం",
		LanguageMarathi: "पोलिस मदत",
	},
	"legalAidHelpline": {
		LanguageHindi:   "कानूनी सहायता हेल्पलाइन",
		LanguageEnglish: "Legal Aid Helpline",
		LanguageTelugu:  "న్యాయ సహాయ హెల్ప్‌లైన్",
		LanguageMarathi: "कायदेशीर मदत हेल्पलाइन",
	},

	// Footer
	"disclaimer": {
		LanguageHindi:   "यह एक AI सहायक है। कानूनी सलाह के लिए योग्य वकील से सलाह लें।",
		LanguageEnglish: "This is an AI assistant. Consult a qualified lawyer for legal advice.",
		LanguageTelugu:  "ఇది AI సహాయకుడు. న్యాయ సలహా కోసం అర్హత కలిగిన న్యాయవాదిని సంప్రదించండి.",
		LanguageMarathi: "हा एक AI सहाय्यक आहे. कायदेशीर सल्ल्यासाठी पात्र वकिलाचा सल्ला घ्या.",
	},

	// Common
	"loading": {
		LanguageHindi:   "लोड हो रहा है...",
		LanguageEnglish: "Loading...",
		LanguageTelugu:  "లోడ్ అవుతోంది...",
		LanguageMarathi: "लोड होत आहे...",
	},
	"error": {
		LanguageHindi:   "कुछ गलत हुआ है",
		LanguageEnglish: "Something went wrong",
		LanguageTelugu:  "ఏదో తప్పు జరిగింది",
		LanguageMarathi: "काहीतरी चूक झाली",
	},
	"tryAgain": {
		LanguageHindi:   "फिर कोशिश करें",
		LanguageEnglish: "Try Again",
		LanguageTelugu:  "మళ్లీ ప్రయత్నించండి",
		LanguageMarathi: "पुन्हा प्रयत्न करा",
	},
}
