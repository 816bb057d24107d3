package models

// Language describes one language offered by the application, as exposed to
// rendered templates via the i18n context processor.
type Language struct {
	// Code is the language tag, e.g. "en-us" or "ar".
	Code string `json:"code"`

	// Name is the language's self-name, e.g. "English" or "العربية".
	Name string `json:"name"`
}
