package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"

	"workshop/internal/pkg/errs"
)

// Config holds the runtime settings of the service. Values come from the
// environment (optionally a .env file) and command line flags.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	LogLevel             string
	StatusReportSchedule string
}

// Validate reports every missing required setting.
func (c Config) Validate() error {
	var problems []error
	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.DBHost == "" {
		problems = append(problems, errs.NewValueIsRequiredError("DB_HOST"))
	}
	if c.DBUser == "" {
		problems = append(problems, errs.NewValueIsRequiredError("DB_USER"))
	}
	if c.DBName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("DB_NAME"))
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err)
	}
	return errors.Join(problems...)
}

// DatabaseURL returns the postgres:// connection URL used by GORM and the migrations.
func (c Config) DatabaseURL() string {
	host := c.DBHost
	if c.DBPort != "" {
		host = net.JoinHostPort(c.DBHost, c.DBPort)
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   host,
		Path:   "/" + c.DBName,
	}
	if c.DBSslMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.DBSslMode}}.Encode()
	}
	return u.String()
}

// HTTPAddress returns the listen address of the HTTP server.
func (c Config) HTTPAddress() string {
	return net.JoinHostPort("0.0.0.0", c.HTTPPort)
}

// SlogLevel parses LogLevel. An empty level means info.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause(
			"LOG_LEVEL",
			fmt.Errorf("%q is not one of debug, info, warn, error", c.LogLevel),
		)
	}
}
