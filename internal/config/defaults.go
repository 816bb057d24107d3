package config

import "time"

// defaultSettings returns the built-in configuration defaults. The bidi
// language list mirrors the right-to-left languages the framework was
// originally shipped with.
func defaultSettings() *Settings {
	return &Settings{
		App: App{
			MediaURL: "/media/",
		},
		I18N: I18N{
			LanguageCode:       "en-us",
			Languages:          []string{"en-us"},
			BidiLanguages:      []string{"ar", "ckb", "fa", "he", "ug", "ur"},
			LanguageCookieName: "language",
		},
		Auth: Auth{
			SessionCookieName: "sessionid",
			SessionDuration:   14 * 24 * time.Hour,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			Sessions: Sessions{DSN: ":memory:"},
		},
		Workers: Workers{
			SessionCleanupInterval: time.Hour,
		},
	}
}
