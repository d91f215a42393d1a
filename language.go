package oxforddict

import "strings"

// DefaultLanguage is the source language used when no WithLanguage option is
// given.
const DefaultLanguage = "en"

// SupportedLanguages lists the source language codes the dictionary endpoints
// accept. Not every category is available in every language; the API answers
// 404 for combinations it does not cover.
var SupportedLanguages = []string{
	"en", "es", "ms", "sw", "tn", "nso", "lv", "id", "ur", "zu", "ro", "hi",
}

// IsSupportedLanguage reports whether lang is one of SupportedLanguages. The
// comparison is case-insensitive.
func IsSupportedLanguage(lang string) bool {
	lang = strings.ToLower(lang)
	for _, supported := range SupportedLanguages {
		if lang == supported {
			return true
		}
	}
	return false
}
