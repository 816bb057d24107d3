package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-sessions-dsn SQLite session store path
//	-c/-config json file path with configs
//	-debug enable the debug context processor
//	-internal-ips comma-separated internal IP list
//	-use-etags enable ETag handling in the gzip middleware
//	-media-url public media base URL
//	-language-code default language tag
//	-languages comma-separated offered language tags
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *Settings {
	var serverAddress NetAddress
	var databaseDSN string
	var sessionsDSN string
	var jsonConfigPath string
	var debug bool
	var internalIPs string
	var useETags bool
	var mediaURL string
	var languageCode string
	var languages string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&sessionsDSN, "sessions-dsn", "", "SQLite session store path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.BoolVar(&debug, "debug", false, "Enable debug context variables")
	flag.StringVar(&internalIPs, "internal-ips", "", "Comma-separated internal IPs")
	flag.BoolVar(&useETags, "use-etags", false, "Enable ETag handling")
	flag.StringVar(&mediaURL, "media-url", "", "Public media base URL")
	flag.StringVar(&languageCode, "language-code", "", "Default language tag")
	flag.StringVar(&languages, "languages", "", "Comma-separated offered language tags")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &Settings{
		App: App{
			Debug:       debug,
			InternalIPs: splitList(internalIPs),
			UseETags:    useETags,
			MediaURL:    mediaURL,
		},
		I18N: I18N{
			LanguageCode: languageCode,
			Languages:    splitList(languages),
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			Sessions: Sessions{DSN: sessionsDSN},
		},
		JSONFilePath: jsonConfigPath,
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
