// Package config assembles the CLI configuration from defaults,
// command-line flags, a .env file, and environment variables, then
// validates the result. Later sources win: env > flags > defaults.
package config

import (
	"flag"
	"log"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the pocketcast CLI needs to construct an
// authenticated client and render output.
type Config struct {
	Email       string        `env:"POCKETCASTS_EMAIL" validate:"required,email"`
	Password    string        `env:"POCKETCASTS_PASSWORD" validate:"required"`
	LogLevel    string        `env:"LOG_LEVEL" validate:"loglevel"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT"`
	Region      string        `env:"REGION" validate:"omitempty,alpha,len=2"`
}

var defaultConfig = Config{
	LogLevel:    "info",
	HTTPTimeout: 30 * time.Second,
	Region:      "us",
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	value := fieldLevel.Field().String()

	allowedLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}

	return allowedLogLevels[value]
}

func (c *Config) validate() error {
	validate := validator.New()

	err := validate.RegisterValidation("loglevel", validateLogLevel)
	if err != nil {
		return err
	}

	return validate.Struct(c)
}

// InitOption customizes New.
type InitOption func(*initOptions)

type initOptions struct {
	disableFlagsParsing bool
}

// WithDisableFlagsParsing disables command-line flag parsing. It is
// used by tests, which own os.Args.
func WithDisableFlagsParsing(disableFlagsParsing bool) InitOption {
	return func(options *initOptions) {
		options.disableFlagsParsing = disableFlagsParsing
	}
}

// New builds a validated Config.
func New(optionsProto ...InitOption) (*Config, error) {
	options := &initOptions{
		disableFlagsParsing: false,
	}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Unable to load .env file: %v", err)
	}

	values := defaultConfig

	if !options.disableFlagsParsing {
		flag.StringVar(&values.Email, "e", values.Email, "Pocket Casts account email")
		flag.StringVar(&values.Password, "p", values.Password, "Pocket Casts account password")
		flag.StringVar(&values.LogLevel, "l", values.LogLevel, "logger level")
		flag.DurationVar(&values.HTTPTimeout, "t", values.HTTPTimeout, "HTTP request timeout")
		flag.StringVar(&values.Region, "r", values.Region, "region code for discovery charts")
		flag.Parse()
	}

	var valuesFromEnv Config
	if err := env.Parse(&valuesFromEnv); err != nil {
		return nil, err
	}

	if valuesFromEnv.Email != "" {
		values.Email = valuesFromEnv.Email
	}

	if valuesFromEnv.Password != "" {
		values.Password = valuesFromEnv.Password
	}

	if valuesFromEnv.LogLevel != "" {
		values.LogLevel = valuesFromEnv.LogLevel
	}

	if valuesFromEnv.HTTPTimeout != 0 {
		values.HTTPTimeout = valuesFromEnv.HTTPTimeout
	}

	if valuesFromEnv.Region != "" {
		values.Region = valuesFromEnv.Region
	}

	if err := values.validate(); err != nil {
		return nil, err
	}

	return &values, nil
}
