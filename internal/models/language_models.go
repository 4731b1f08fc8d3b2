package models

// LanguageAuto asks the translation backend to detect the source language.
const LanguageAuto = "auto"

// LanguagePivot is the language all text is normalized to before
// classification.
const LanguagePivot = "en"

// SupportedLanguages maps language codes accepted by the API to display names.
var SupportedLanguages = map[string]string{
	"en":    "English",
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"it":    "Italian",
	"pt":    "Portuguese",
	"ru":    "Russian",
	"zh-CN": "Chinese",
	"ja":    "Japanese",
	"ko":    "Korean",
	"ar":    "Arabic",
	"hi":    "Hindi",
	"nl":    "Dutch",
	"sv":    "Swedish",
	"pl":    "Polish",
	"tr":    "Turkish",
}

func IsSupportedLanguage(code string) bool {
	if code == LanguageAuto {
		return true
	}
	_, ok := SupportedLanguages[code]
	return ok
}
