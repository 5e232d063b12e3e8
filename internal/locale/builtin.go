// Copyright (c) 2025 Bhasha AI
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

// Builtin returns the compiled-in lookup tables. Deployments can overlay
// these with a personas.toml file in the config directory; see Load.
func Builtin() *Table {
	return &Table{
		Greetings: map[Language]map[Persona]string{
			LangEnglish: {
				PersonaFarmer:     "Hello Farmer",
				PersonaDeveloper:  "Hello Software Developer",
				PersonaStudent:    "Hello Student",
				PersonaEducated:   "Hello Educated Person",
				PersonaUneducated: "Hello Friend",
			},
			LangHindi: {
				PersonaFarmer:     "नमस्ते किसान",
				PersonaDeveloper:  "नमस्ते सॉफ्टवेयर डेवलपर",
				PersonaStudent:    "नमस्ते छात्र",
				PersonaEducated:   "नमस्ते शिक्षित व्यक्ति",
				PersonaUneducated: "नमस्ते मित्र",
			},
			LangTamil: {
				PersonaFarmer:     "வணக்கம் விவசாயி",
				PersonaDeveloper:  "வணக்கம் மென்பொருள் உருவாக்குநர்",
				PersonaStudent:    "வணக்கம் மாணவர்",
				PersonaEducated:   "வணக்கம் படித்தவர்",
				PersonaUneducated: "வணக்கம் நண்பர்",
			},
			LangTelugu: {
				PersonaFarmer:     "హలో రైతు",
				PersonaDeveloper:  "హలో సాఫ్ట్‌వేర్ డెవలపర్",
				PersonaStudent:    "హలో విద్యార్థి",
				PersonaEducated:   "హలో విద్యావంతుడు",
				PersonaUneducated: "హలో స్నేహితుడు",
			},
			LangBengali: {
				PersonaFarmer:     "হ্যালো কৃষক",
				PersonaDeveloper:  "হ্যালো সফটওয়্যার ডেভেলপার",
				PersonaStudent:    "হ্যালো ছাত্র",
				PersonaEducated:   "হ্যালো শিক্ষিত ব্যক্তি",
				PersonaUneducated: "হ্যালো বন্ধু",
			},
		},

		Responses: map[Language][]string{
			LangEnglish: {
				"I understand your question. Let me think about that...",
				"That's an interesting point. Based on my knowledge, I would suggest...",
				"I can help you with that. Here's what you need to know...",
				"Great question! The answer involves several considerations...",
				"I've analyzed your request and here's my response...",
			},
			LangHindi: {
				"मैं आपका प्रश्न समझता हूँ। मुझे इसके बारे में सोचने दें...",
				"यह एक रोचक बिंदु है। मेरे ज्ञान के आधार पर, मैं सुझाव दूंगा...",
				"मैं आपकी मदद कर सकता हूँ। यहाँ आपको जो जानने की जरूरत है...",
				"शानदार सवाल! इसका जवाब कई विचारों से जुड़ा है...",
				"मैंने आपके अनुरोध का विश्लेषण किया और यहाँ मेरा जवाब है...",
			},
			LangTamil: {
				"உங்கள் கேள்வியை புரிந்துகொண்டேன். அதை பற்றி யோசிக்கட்டுமே...",
				"அது ஒரு சுவாரஸ்யமான புள்ளி. என் அறிவின் அடிப்படையில், நான் பரிந்துரைக்கிறேன்...",
				"நான் உங்களுக்கு உதவ முடியும். இதோ உங்களுக்கு தெரிந்திருக்க வேண்டியவை...",
				"சிறந்த கேள்வி! பதில் பல கருத்துகளை உள்ளடக்கியது...",
				"உங்கள் கோரிக்கையை ஆய்வு செய்தேன், இதோ என் பதில்...",
			},
			LangTelugu: {
				"నా భాషలో మీ ప్రశ్నను అర్థం చేసుకున్నాను. దాని గురించి ఆలోచిస్తాను...",
				"అది ఆసక్తికరమైన అంశం. నా జ్ఞానం ఆధారంగా, నేను సలహా ఇస్తాను...",
				"నేను మీకు సహాయపడతాను. ఇక్కడ మీకు తెలియవలసిన విషయాలు ఉన్నాయి...",
				"మంచి ప్రశ్న! జవాబు ఎన్నో ఆలోచనలను ఆధారంగా ఉంటుంది...",
				"మీ అభ్యర్థనను నేను విశ్లేషించాను మరియు ఇక్కడ నా స్పందన ఉంది...",
			},
			LangBengali: {
				"আমি আপনার প্রশ্নটি বুঝতে পেরেছি। আমাকে একটু ভাবতে দিন...",
				"এটি একটি আকর্ষণীয় বিষয়। আমার জ্ঞানের ভিত্তিতে আমি পরামর্শ দিব...",
				"আমি আপনাকে সাহায্য করতে পারি। এখানে আপনার জানা উচিত কিছু...",
				"মহান প্রশ্ন! উত্তরটি বিভিন্ন বিবেচনার সঙ্গে জড়িত...",
				"আমি আপনার অনুরোধটি বিশ্লেষণ করেছি এবং এখানে আমার প্রতিক্রিয়া...",
			},
		},

		Prompts: map[Language][]string{
			LangEnglish: {
				"I need help starting an online business.",
				"Create a crop plan for a farmer.",
				"How to design a website?",
			},
			LangHindi: {
				"मुझे एक ऑनलाइन बिजनेस शुरू करने में मदद चाहिए।",
				"किसान के लिए फसल योजना बनाएं।",
				"वेबसाइट डिजाइन कैसे करें?",
			},
			LangTamil: {
				"ஆன்லைன் வணிகத்தைத் தொடங்க எனக்கு உதவி தேவை.",
				"விவசாயிக்கான பயிர் திட்டம் உருவாக்கவும்.",
				"வலைத்தளத்தை எவ்வாறு வடிவமைப்பது?",
			},
			LangTelugu: {
				"ఆన్‌లైన్ వ్యాపారాన్ని ప్రారంభించడానికి నాకు సహాయం కావాలి.",
				"రైతు కోసం పంట ప్రణాళికను రూపొందించండి.",
				"వెబ్‌సైట్‌ను ఎలా డిజైన్ చేయాలి?",
			},
			LangBengali: {
				"একটি অনলাইন ব্যবসা শুরু করতে আমার সাহায্য দরকার।",
				"কৃষকের জন্য ফসল পরিকল্পনা তৈরি করুন।",
				"ওয়েবসাইট কিভাবে ডিজাইন করবেন?",
			},
		},

		LanguageNames: map[Language]map[Language]string{
			LangEnglish: {
				LangEnglish: "English",
				LangHindi:   "Hindi",
				LangTamil:   "Tamil",
				LangTelugu:  "Telugu",
				LangBengali: "Bengali",
			},
			LangHindi: {
				LangEnglish: "अंग्रेज़ी",
				LangHindi:   "हिंदी",
				LangTamil:   "तमिल",
				LangTelugu:  "तेलुगु",
				LangBengali: "बंगाली",
			},
			LangTamil: {
				LangEnglish: "ஆங்கிலம்",
				LangHindi:   "இந்தி",
				LangTamil:   "தமிழ்",
				LangTelugu:  "தெலுங்கு",
				LangBengali: "வங்காளம்",
			},
			LangTelugu: {
				LangEnglish: "ఆంగ్లం",
				LangHindi:   "హిందీ",
				LangTamil:   "తమిళం",
				LangTelugu:  "తెలుగు",
				LangBengali: "బెంగాలీ",
			},
			LangBengali: {
				LangEnglish: "ইংরেজি",
				LangHindi:   "হিন্দি",
				LangTamil:   "তামিল",
				LangTelugu:  "তেলুগু",
				LangBengali: "বাংলা",
			},
		},

		PersonaLabels: map[Persona]string{
			PersonaFarmer:     "Farmer",
			PersonaDeveloper:  "Software Developer",
			PersonaStudent:    "Student",
			PersonaEducated:   "Educated",
			PersonaUneducated: "Uneducated",
		},

		PersonaIcons: map[Persona]string{
			PersonaFarmer:     "👨‍🌾",
			PersonaDeveloper:  "👨‍💻",
			PersonaStudent:    "👨‍🎓",
			PersonaEducated:   "🧑‍🏫",
			PersonaUneducated: "👷",
		},

		Text: map[Language]UIText{
			LangEnglish: {
				Title:            "BHASHA AI",
				Subtitle:         "Bridging language barriers with AI",
				Sending:          "Sending...",
				InputPlaceholder: "Type your message...",
				SelectLanguage:   "Select Language",
				Listening:        "Listening...",
			},
			LangHindi: {
				Title:            "भाषा AI",
				Subtitle:         "AI के साथ भाषा बाधाओं को पाटना",
				Sending:          "भेजा जा रहा है...",
				InputPlaceholder: "अपना संदेश लिखें...",
				SelectLanguage:   "भाषा चुनें",
				Listening:        "सुन रहा है...",
			},
			LangTamil: {
				Title:            "பாஷா AI",
				Subtitle:         "AI உடன் மொழித் தடைகளை இணைத்தல்",
				Sending:          "அனுப்பப்படுகிறது...",
				InputPlaceholder: "உங்கள் செய்தியை உள்ளிடவும்...",
				SelectLanguage:   "மொழியைத் தேர்ந்தெடுக்கவும்",
				Listening:        "கேட்கிறது...",
			},
			LangTelugu: {
				Title:            "భాష AI",
				Subtitle:         "AI తో భాషా అడ్డంకులను అధిగమించడం",
				Sending:          "పంపిణీ చేస్తోంది...",
				InputPlaceholder: "మీ సందేశాన్ని టైప్ చేయండి...",
				SelectLanguage:   "భాషను ఎంచుకోండి",
				Listening:        "వింటోంది...",
			},
			LangBengali: {
				Title:            "ভাষা AI",
				Subtitle:         "AI এর সাথে ভাষা বাধা দূর করা",
				Sending:          "পাঠানো হচ্ছে...",
				InputPlaceholder: "আপনার বার্তা লিখুন...",
				SelectLanguage:   "ভাষা নির্বাচন করুন",
				Listening:        "শুনছে...",
			},
		},
	}
}
