package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"workshop/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// settings maps config keys to their flag names, defaults and help texts.
var settings = []struct {
	key, flag, fallback, usage string
}{
	{"HTTP_PORT", "http-port", "8080", "HTTP listen port"},
	{"DB_HOST", "db-host", "localhost", "database host"},
	{"DB_PORT", "db-port", "5432", "database port"},
	{"DB_USER", "db-user", "", "database user"},
	{"DB_PASSWORD", "db-password", "", "database password"},
	{"DB_NAME", "db-name", "", "database name"},
	{"DB_SSLMODE", "db-sslmode", "disable", "database sslmode"},
	{"LOG_LEVEL", "log-level", "info", "log level (debug, info, warn, error)"},
	{"STATUS_REPORT_SCHEDULE", "status-report-schedule", "@every 1m", "cron schedule of the order status report"},
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "workshop",
		Short:         "Vehicle workshop order fulfillment service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cobra.OnInitialize(func() {
		loadDotEnv()
	})

	for _, s := range settings {
		root.PersistentFlags().String(s.flag, s.fallback, s.usage)
		v.SetDefault(s.key, s.fallback)
		if err := v.BindPFlag(s.key, root.PersistentFlags().Lookup(s.flag)); err != nil {
			log.Fatalf("failed to bind flag %s: %v", s.flag, err)
		}
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(
		newServeCommand(v),
		newMigrateCommand(v),
		newTemplatesCommand(v),
		newOrderCommand(v),
	)

	return root
}

// loadDotEnv reads .env from the working directory when it exists.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("failed to load .env file: %v", err)
	}
}

func loadConfig(v *viper.Viper) (cmd.Config, error) {
	config := cmd.Config{
		HTTPPort:             v.GetString("HTTP_PORT"),
		DBHost:               v.GetString("DB_HOST"),
		DBPort:               v.GetString("DB_PORT"),
		DBUser:               v.GetString("DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               v.GetString("DB_NAME"),
		DBSslMode:            v.GetString("DB_SSLMODE"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		StatusReportSchedule: v.GetString("STATUS_REPORT_SCHEDULE"),
	}
	if err := config.Validate(); err != nil {
		return cmd.Config{}, err
	}
	return config, nil
}

func newLogger(config cmd.Config) *slog.Logger {
	level, _ := config.SlogLevel()
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	return gorm.Open(postgresdriver.Open(config.DatabaseURL()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

// connect opens the database and wires the composition root over it.
func connect(config cmd.Config) (cmd.CompositionRoot, func(), error) {
	db, err := openDatabase(config)
	if err != nil {
		return cmd.CompositionRoot{}, nil, err
	}
	closeDB := func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}

	return cmd.NewCompositionRoot(config, db, newLogger(config)), closeDB, nil
}
