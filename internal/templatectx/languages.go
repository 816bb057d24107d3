package templatectx

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/thirstydigital/django/models"
)

// languageList resolves the configured language codes into Language values
// carrying each language's self-name ("Deutsch", "العربية"), the form a
// language switcher template would render. Codes that do not parse keep the
// raw code as their name.
func languageList(codes []string) []models.Language {
	languages := make([]models.Language, 0, len(codes))
	for _, code := range codes {
		name := code
		if tag, err := language.Parse(code); err == nil {
			name = display.Self.Name(tag)
		}
		languages = append(languages, models.Language{Code: code, Name: name})
	}
	return languages
}
