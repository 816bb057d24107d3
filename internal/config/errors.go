package config

import "errors"

// Validation errors returned by [Settings.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidMediaURL indicates a MediaURL that does not end with a
	// trailing slash; template code joins media paths by concatenation.
	ErrInvalidMediaURL = errors.New("media URL must end with a slash")

	// ErrInvalidI18NConfigs indicates incomplete language settings
	// (for example, an empty default language code).
	ErrInvalidI18NConfigs = errors.New("invalid i18n configuration")

	// ErrInvalidAuthConfigs indicates incomplete token settings
	// (for example, an issuer without a sign key).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
