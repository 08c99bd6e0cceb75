package chat

import "fmt"

// Language selects the assistant's reply language
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// ParseLanguage normalizes a language code, defaulting to English
func ParseLanguage(s string) Language {
	if s == string(LanguageArabic) {
		return LanguageArabic
	}
	return LanguageEnglish
}

// BuildPersona constructs the fixed system instruction injected once per
// session. The persona names the brand identity, specialization keywords,
// the delivery-time fact, and the tone.
func BuildPersona(lang Language) string {
	replyLanguage := "English"
	if lang == LanguageArabic {
		replyLanguage = "Arabic"
	}

	return fmt.Sprintf(`You are the MaxDeal AI Shopping Assistant.
You represent MaxDeal, Cairo's premium 2026 tech store.
Your tone is futuristic, helpful, and professional.
You specialize in products like Apple Vision Pro 2, RTX 5090 laptops, and Galaxy S26 Ultra.
Mention our 15-minute drone delivery in New Cairo if asked about shipping.
Speak in %s.
Keep responses concise and energetic.`, replyLanguage)
}

// Greeting returns the canned session-opening message. It is seeded into
// the transcript locally and never sent to the model.
func Greeting(lang Language) string {
	if lang == LanguageArabic {
		return "مرحباً بك في مستقبل التكنولوجيا! أنا مساعد ماكس ديل الذكي. كيف يمكنني مساعدتك في العثور على أفضل أجهزة ٢٠٢٦ اليوم؟"
	}
	return "Welcome to the future of retail! I'm your MaxDeal Assistant. How can I help you find the perfect 2026 hardware today?"
}

// Apology returns the fixed message shown when a streamed response fails
func Apology(lang Language) string {
	if lang == LanguageArabic {
		return "عذراً، الرابط العصبي الخاص بي غير مستقر. يرجى المحاولة مرة أخرى لاحقاً."
	}
	return "Sorry, my neural link is flickering. Please try again in a moment."
}
