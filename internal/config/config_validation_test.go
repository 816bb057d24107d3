package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() *Settings {
	cfg := defaultSettings()
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, validSettings().validate())
}

func TestValidate_MediaURLWithoutSlash(t *testing.T) {
	cfg := validSettings()
	cfg.App.MediaURL = "/media"

	err := cfg.validate()

	assert.ErrorIs(t, err, ErrInvalidMediaURL)
}

func TestValidate_EmptyLanguageCode(t *testing.T) {
	cfg := validSettings()
	cfg.I18N.LanguageCode = ""

	err := cfg.validate()

	assert.ErrorIs(t, err, ErrInvalidI18NConfigs)
}

func TestValidate_IssuerWithoutSignKey(t *testing.T) {
	cfg := validSettings()
	cfg.Auth.TokenIssuer = "issuer"
	cfg.Auth.TokenSignKey = ""

	err := cfg.validate()

	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestBuilder_EnvWinsOverDefaults(t *testing.T) {
	t.Setenv("I18N_LANGUAGE_CODE", "de")

	cfg, err := newSettingsBuilder().withEnv().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, "de", cfg.I18N.LanguageCode)
	// untouched fields fall back to defaults
	assert.Equal(t, "sessionid", cfg.Auth.SessionCookieName)
	assert.Equal(t, "/media/", cfg.App.MediaURL)
}
