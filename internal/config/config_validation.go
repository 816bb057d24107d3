package config

import "strings"

// validate checks that the final merged [Settings] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *Settings) validate() error {
	if cfg.App.MediaURL != "" && !strings.HasSuffix(cfg.App.MediaURL, "/") {
		return ErrInvalidMediaURL
	}

	if cfg.I18N.LanguageCode == "" || len(cfg.I18N.Languages) == 0 {
		return ErrInvalidI18NConfigs
	}

	if cfg.Auth.TokenIssuer != "" && cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
