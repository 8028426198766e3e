package chat

import "strings"

type Mode string

const ModeDefault Mode = "default"

var personalities = map[Mode]string{
	ModeDefault:    "Friendly and natural.",
	"educational":  "Clear, simple teacher tone with examples.",
	"developer":    "Technical and precise. Short and direct.",
	"fun":          "High-energy, playful, expressive. Do NOT mix languages unless Hinglish.",
	"professional": "Concise and formal.",
	"motivational": "Uplifting and encouraging.",
}

// Personality returns the tone description of the mode, falling back to the
// default one for unknown modes.
func (m Mode) Personality() string {
	if p, ok := personalities[m]; ok {
		return p
	}
	return personalities[ModeDefault]
}

type Language string

const (
	LanguageAuto     Language = "auto"
	LanguageEnglish  Language = "en"
	LanguageHindi    Language = "hi"
	LanguageHinglish Language = "hinglish"
	LanguageSpanish  Language = "es"
	LanguageFrench   Language = "fr"
)

var languageNames = map[Language]string{
	LanguageEnglish:  "English",
	LanguageHindi:    "Hindi",
	LanguageHinglish: "Hinglish",
	LanguageSpanish:  "Spanish",
	LanguageFrench:   "French",
}

func ParseLanguage(raw string) Language {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return LanguageAuto
	}
	return Language(raw)
}

// Name returns the human readable target language. It is empty for auto and
// for languages without a translation target.
func (l Language) Name() string {
	return languageNames[l]
}

func (l Language) NeedsTranslation() bool {
	return l != LanguageAuto && l.Name() != ""
}
