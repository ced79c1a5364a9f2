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

// ParseFlags parses all configuration flags registered on flag.CommandLine.
// Positional arguments left after the flags stay available via flag.Args.
//
// Flags:
//
//	-a backend listen address in format [host]:[port]
//	-u/-base-url backend base URL used by the client
//	-d token storage DSN (sqlite path or *.json file)
//	-database-dsn backend PostgreSQL DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "10s", "1m")
//	-refresh-timeout shared refresh timeout (e.g., "30s")
//	-refresh-retries transport retries of the refresh call
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-access-token-duration access token lifetime (e.g., "5m")
//	-refresh-token-duration refresh token lifetime (e.g., "24h")
//	-admin-login seeded account login
//	-admin-password seeded account password
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var baseURL string
	var databaseDSN string
	var serverDatabaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshTimeout time.Duration
	var refreshRetries int
	var tokenSignKey string
	var tokenIssuer string
	var accessTokenDuration time.Duration
	var refreshTokenDuration time.Duration
	var adminLogin string
	var adminPassword string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&baseURL, "u", "", "Backend base URL")
	flag.StringVar(&baseURL, "base-url", "", "Backend base URL (alias)")
	flag.StringVar(&databaseDSN, "d", "", "Token storage DSN")
	flag.StringVar(&serverDatabaseDSN, "database-dsn", "", "Backend PostgreSQL DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	flag.DurationVar(&refreshTimeout, "refresh-timeout", 0, "Token refresh timeout (e.g., 30s)")
	flag.IntVar(&refreshRetries, "refresh-retries", 0, "Token refresh retry count")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Access token duration (e.g., 5m)")
	flag.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Refresh token duration (e.g., 24h)")
	flag.StringVar(&adminLogin, "admin-login", "", "Seeded account login")
	flag.StringVar(&adminPassword, "admin-password", "", "Seeded account password")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			RefreshTimeout:    refreshTimeout,
			RefreshRetryCount: refreshRetries,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			DatabaseDSN:    serverDatabaseDSN,
		},
		Auth: Auth{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			AccessTokenDuration:  accessTokenDuration,
			RefreshTokenDuration: refreshTokenDuration,
			AdminLogin:           adminLogin,
			AdminPassword:        adminPassword,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
