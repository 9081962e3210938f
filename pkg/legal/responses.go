package legal

import "github.com/Shravansapate/legislate-voice-aid/pkg/i18n"

// topic is one canned legal subject with its trigger terms and answers.
type topic struct {
	Key      string
	Category string
	// Triggers span Devanagari, Telugu and Latin scripts on purpose: a user
	// chatting in one language may still type a term from another.
	Triggers []string
	Answers  map[i18n.Language]string
}

// topics are evaluated in order; the first topic with a matching trigger wins.
var topics = []topic{
	{
		Key:      "land dispute",
		Category: "property",
		Triggers: []string{"जमीन", "भूमि", "land", "భూమి"},
		Answers: map[i18n.Language]string{
			i18n.LanguageHindi:   "भूमि विवाद के लिए आपको सबसे पहले अपने पास की सारी जमीन के कागजात इकट्ठे करने होंगे। इसमें खसरा खतौनी, रजिस्ट्री के कागजात, और म्यूटेशन के दस्तावेज शामिल हैं। फिर आप तहसीलदार के पास जाकर शिकायत दर्ज करा सकते हैं।",
			i18n.LanguageEnglish: "For land disputes, first collect all property documents including Khasra Khatauni, registry papers, and mutation documents. Then file a complaint with the Tehsildar.",
			i18n.LanguageTelugu:  "భూమి వివాదాల కోసం, మొదట ఖస్రా ఖతౌని, రిజిస్ట్రీ పేపర్లు మరియు మ్యుటేషన్ పత్రాలతో సహా అన్ని ఆస్తి పత్రాలను సేకరించండి. తరువాత తహసీల్దార్ వద్ద ఫిర్యాదు దాఖలు చేయండి।",
			i18n.LanguageMarathi: "जमिनीच्या वादासाठी, प्रथम खसरा खतावणी, नोंदणी कागदपत्रे आणि म्युटेशन दस्तऐवजांसह सर्व मालमत्ता कागदपत्रे गोळा करा. नंतर तहसीलदार कडे तक्रार दाखल करा.",
		},
	},
	{
		Key:      "domestic violence",
		Category: "safety",
		Triggers: []string{"घरेलू हिंसा", "domestic", "violence", "గృహ హింస", "घरगुती हिंसाचार"},
		Answers: map[i18n.Language]string{
			i18n.LanguageHindi:   "घरेलू हिंसा के खिलाफ आप महिला हेल्पलाइन 1091 पर कॉल कर सकती हैं। आप नजदीकी पुलिस स्टेशन में FIR दर्ज करा सकती हैं या महिला थाने में जा सकती हैं। घरेलू हिंसा अधिनियम 2005 के तहत आपको सुरक्षा का अधिकार है।",
			i18n.LanguageEnglish: "For domestic violence, call Women Helpline 1091. You can file FIR at nearest police station or women's police station. Domestic Violence Act 2005 protects your rights.",
			i18n.LanguageTelugu:  "గృహ హింస కోసం, మహిళా హెల్ప్‌లైన్ 1091కు కాల్ చేయండి. మీరు సమీప పోలీసు స్టేషన్‌లో లేదా మహిళా పోలీసు స్టేషన్‌లో FIR దాఖలు చేయవచ్చు. గృహ హింస చట్టం 2005 మీ హక్కులను రక్షిస్తుంది.",
			i18n.LanguageMarathi: "घरगुती हिंसाचारासाठी, महिला हेल्पलाइन 1091 वर कॉल करा. तुम्ही जवळच्या पोलिस स्टेशनमध्ये किंवा महिला पोलिस स्टेशनमध्ये FIR दाखल करू शकता. घरगुती हिंसाचार कायदा 2005 तुमच्या हक्कांचे संरक्षण करतो.",
		},
	},
	{
		Key:      "pension",
		Category: "welfare",
		Triggers: []string{"पेंशन", "pension", "वृद्धावस्था", "పెన్షన్", "पेन्शन"},
		Answers: map[i18n.Language]string{
			i18n.LanguageHindi:   "वृद्धावस्था पेंशन के लिए आपको अपने BPL कार्ड, आधार कार्ड, और आयु प्रमाण पत्र की जरूरत होगी। आप अपने ग्राम पंचायत में आवेदन कर सकते हैं या ऑनलाइन पोर्टल पर भी अप्लाई कर सकते हैं।",
			i18n.LanguageEnglish: "For old age pension, you need BPL card, Aadhaar card, and age certificate. Apply at your Gram Panchayat or through online portal.",
			i18n.LanguageTelugu:  "వృద్ధాప్య పెన్షన్ కోసం, మీకు BPL కార్డ్, ఆధార్ కార్డ్ మరియు వయస్సు ప్రమాణ పత్రం అవసరం. మీ గ్రామ పంచాయతీలో లేదా ఆన్‌లైన్ పోర్టల్ ద్వారా దరఖాస్తు చేసుకోండి.",
			i18n.LanguageMarathi: "वृद्धत्व पेन्शनसाठी, तुम्हाला BPL कार्ड, आधार कार्ड आणि वय प्रमाणपत्राची गरज आहे. तुमच्या ग्राम पंचायतीत किंवा ऑनलाइन पोर्टलद्वारे अर्ज करा.",
		},
	},
	{
		Key:      "employment",
		Category: "employment",
		Triggers: []string{"काम", "employment", "mnrega", "मनरेगा", "పని"},
		Answers: map[i18n.Language]string{
			i18n.LanguageHindi:   "MNREGA के तहत आपको साल में कम से कम 100 दिन काम पाने का अधिकार है। अगर 15 दिन में काम नहीं मिलता तो बेरोजगारी भत्ता का हक है। नजदीकी रोजगार सहायक से संपर्क करें।",
			i18n.LanguageEnglish: "Under MNREGA, you have right to at least 100 days of work per year. If work not provided within 15 days, you get unemployment allowance. Contact local employment assistant.",
			i18n.LanguageTelugu:  "MNREGA కింద మీకు సంవత్సరానికి కనీసం 100 రోజుల పని పొందే హక్కు ఉంది. 15 రోజుల్లో పని లభించకపోతే, మీకు నిరుద్యోగ భత్యం లభిస్తుంది. స్థానిక ఉపాధి సహాయకుడిని సంప్రదించండి.",
			i18n.LanguageMarathi: "MNREGA अंतर्गत तुम्हाला वर्षभरात किमान 100 दिवसांचे काम मिळण्याचा अधिकार आहे. 15 दिवसांत काम मिळाले नाही तर बेरोजगारी भत्ता मिळण्याचा हक्क आहे. जवळच्या रोजगार सहायकाशी संपर्क साधा.",
		},
	},
}

// defaultAnswers embed the literal query and enumerate the covered subjects.
// The %s verb is filled with the raw query text.
var defaultAnswers = map[i18n.Language]string{
	i18n.LanguageHindi:   `आपका प्रश्न: "%s" के लिए मैं आपकी सहायता करता हूँ। कृपया अधिक विस्तार से बताएं कि आपकी समस्या क्या है। आप निम्नलिखित विषयों पर पूछ सकते हैं: जमीन विवाद, घरेलू हिंसा, पेंशन, रोजगार की समस्या।`,
	i18n.LanguageEnglish: `Your query: "%s" - I'm here to help you. Please provide more details about your problem. You can ask about: land disputes, domestic violence, pension, employment issues.`,
	i18n.LanguageTelugu:  `మీ ప్రశ్న: "%s" కోసం నేను మీకు సహాయం చేస్తాను. దయచేసి మీ సమస్య గురించి మరింత వివరాలు ఇవ్వండి. మీరు అడగవచ్చు: భూమి వివాదాలు, గృహ హింస, పెన్షన్, ఉపాధి సమస్యలు.`,
	i18n.LanguageMarathi: `तुमचा प्रश्न: "%s" साठी मी तुमची मदत करतो. कृपया तुमच्या समस्येबद्दल अधिक तपशीलांसह सांगा. तुम्ही विचारू शकता: जमिनीचे वाद, घरगुती हिंसाचार, पेन्शन, रोजगाराच्या समस्या.`,
}
