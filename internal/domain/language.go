package domain

type Language string

const (
	LanguageSpanish Language = "es"
	LanguageEnglish Language = "en"
)

var DefaultSearchLanguage = LanguageSpanish

// Languages lists the supported languages in display order.
var Languages = []Language{LanguageSpanish, LanguageEnglish}

var SupportedLanguages = map[Language]bool{
	LanguageSpanish: true,
	LanguageEnglish: true,
}

// Name returns the long-form language name used in file layouts and reports.
func (l Language) Name() string {
	switch l {
	case LanguageSpanish:
		return "spanish"
	case LanguageEnglish:
		return "english"
	}
	return string(l)
}
