package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [Settings] with JSON tags and the
// string-friendly [Duration] type, so that operators can write durations as
// "30s" or "14h" in the config file.
type StructuredJSONConfig struct {
	App struct {
		Debug       bool     `json:"debug"`
		InternalIPs []string `json:"internal_ips"`
		UseETags    bool     `json:"use_etags"`
		MediaURL    string   `json:"media_url"`
		Version     string   `json:"version"`
	} `json:"app,omitempty"`

	I18N struct {
		LanguageCode       string   `json:"language_code"`
		Languages          []string `json:"languages"`
		BidiLanguages      []string `json:"bidi_languages"`
		LanguageCookieName string   `json:"language_cookie_name"`
	} `json:"i18n,omitempty"`

	Auth struct {
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		SessionCookieName string   `json:"session_cookie_name"`
		SessionDuration   Duration `json:"session_duration"`
	} `json:"auth,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Sessions struct {
			DSN string `json:"dsn"`
		} `json:"sessions,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		SessionCleanupInterval Duration `json:"session_cleanup_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*Settings, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Settings{
		App: App{
			Debug:       jsonCfg.App.Debug,
			InternalIPs: jsonCfg.App.InternalIPs,
			UseETags:    jsonCfg.App.UseETags,
			MediaURL:    jsonCfg.App.MediaURL,
			Version:     jsonCfg.App.Version,
		},
		I18N: I18N{
			LanguageCode:       jsonCfg.I18N.LanguageCode,
			Languages:          jsonCfg.I18N.Languages,
			BidiLanguages:      jsonCfg.I18N.BidiLanguages,
			LanguageCookieName: jsonCfg.I18N.LanguageCookieName,
		},
		Auth: Auth{
			TokenSignKey:      jsonCfg.Auth.TokenSignKey,
			TokenIssuer:       jsonCfg.Auth.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.Auth.TokenDuration),
			SessionCookieName: jsonCfg.Auth.SessionCookieName,
			SessionDuration:   time.Duration(jsonCfg.Auth.SessionDuration),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB:       DB{DSN: jsonCfg.Storage.DB.DSN},
			Sessions: Sessions{DSN: jsonCfg.Storage.Sessions.DSN},
		},
		Workers: Workers{
			SessionCleanupInterval: time.Duration(jsonCfg.Workers.SessionCleanupInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
