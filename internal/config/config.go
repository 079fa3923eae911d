// Package config builds the application options from defaults, an optional
// JSON file, command-line flags and environment variables, in that order of
// precedence.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// DefaultSessionSecret signs session tokens when no secret is configured.
const DefaultSessionSecret = "supersecretkey"

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `env:"SERVER_ADDRESS" validate:"hostname_port"`

	// ResultHostname is the base URL used for result links.
	ResultHostname string `env:"BASE_URL" validate:"url"`

	// EnableHTTPS serves over TLS with autocert certificates.
	EnableHTTPS bool `env:"ENABLE_HTTPS"`

	// EnablePprof starts the pprof server on localhost:6060.
	EnablePprof bool `env:"ENABLE_PPROF"`

	// TrustedSubnet is the CIDR allowed to read internal stats. Empty denies everyone.
	TrustedSubnet string `env:"TRUSTED_SUBNET" validate:"omitempty,cidr|ip"`

	LogLevel string `env:"LOG_LEVEL" validate:"loglevel"`

	// SessionSecret is the HMAC key of session tokens.
	SessionSecret string `env:"SESSION_SECRET" validate:"required"`

	// VisitFlushInterval is how often buffered visits are written.
	VisitFlushInterval time.Duration `env:"VISIT_FLUSH_INTERVAL" validate:"gt=0"`

	// Config is the path of the JSON config file.
	Config string `env:"CONFIG"`
}

// fileOptions is the JSON config file layout.
type fileOptions struct {
	Port               *string `json:"server_address"`
	ResultHostname     *string `json:"base_url"`
	EnableHTTPS        *bool   `json:"enable_https"`
	EnablePprof        *bool   `json:"enable_pprof"`
	TrustedSubnet      *string `json:"trusted_subnet"`
	LogLevel           *string `json:"log_level"`
	SessionSecret      *string `json:"session_secret"`
	VisitFlushInterval *string `json:"visit_flush_interval"`
}

func defaults() Options {
	return Options{
		Port:               "localhost:8080",
		ResultHostname:     "http://localhost:8080",
		LogLevel:           "info",
		SessionSecret:      DefaultSessionSecret,
		VisitFlushInterval: 10 * time.Second,
	}
}

type InitOption func(*initOptions)

type initOptions struct {
	disableFlagsParsing bool
	args                []string
	envFiles            []string
}

// WithDisableFlagsParsing skips command-line flags.
func WithDisableFlagsParsing(disableFlagsParsing bool) InitOption {
	return func(options *initOptions) {
		options.disableFlagsParsing = disableFlagsParsing
	}
}

// WithArgs parses args instead of os.Args[1:].
func WithArgs(args ...string) InitOption {
	return func(options *initOptions) {
		options.args = args
	}
}

// WithEnvFiles loads the given dotenv files instead of .env.
func WithEnvFiles(files ...string) InitOption {
	return func(options *initOptions) {
		options.envFiles = files
	}
}

// New builds and validates the options.
func New(optionsProto ...InitOption) (*Options, error) {
	options := &initOptions{
		args: os.Args[1:],
	}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	if err := godotenv.Load(options.envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	opts := defaults()

	var fromFlags Options
	var setFlags map[string]bool
	if !options.disableFlagsParsing {
		var err error
		fromFlags, setFlags, err = parseFlags(options.args)
		if err != nil {
			return nil, err
		}
	}

	configPath := fromFlags.Config
	if p, ok := os.LookupEnv("CONFIG"); ok && p != "" {
		configPath = p
	}
	if configPath != "" {
		if err := opts.loadFile(configPath); err != nil {
			return nil, err
		}
		opts.Config = configPath
	}

	opts.applyFlags(fromFlags, setFlags)

	if err := env.Parse(&opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

func parseFlags(args []string) (Options, map[string]bool, error) {
	d := defaults()
	var o Options

	fset := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fset.StringVar(&o.Port, "a", d.Port, "run on ip:port server")
	fset.StringVar(&o.ResultHostname, "b", d.ResultHostname, "result base url")
	fset.BoolVar(&o.EnableHTTPS, "s", d.EnableHTTPS, "enable https")
	fset.BoolVar(&o.EnablePprof, "p", d.EnablePprof, "enable pprof")
	fset.StringVar(&o.TrustedSubnet, "t", d.TrustedSubnet, "trusted subnet (CIDR) for internal stats")
	fset.StringVar(&o.Config, "c", "", "path to JSON config file")
	fset.StringVar(&o.LogLevel, "l", d.LogLevel, "log level")
	fset.StringVar(&o.SessionSecret, "k", d.SessionSecret, "session token secret")
	fset.DurationVar(&o.VisitFlushInterval, "v", d.VisitFlushInterval, "visit flush interval")

	if err := fset.Parse(args); err != nil {
		return o, nil, err
	}

	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return o, set, nil
}

func (o *Options) applyFlags(f Options, set map[string]bool) {
	if set["a"] {
		o.Port = f.Port
	}
	if set["b"] {
		o.ResultHostname = f.ResultHostname
	}
	if set["s"] {
		o.EnableHTTPS = f.EnableHTTPS
	}
	if set["p"] {
		o.EnablePprof = f.EnablePprof
	}
	if set["t"] {
		o.TrustedSubnet = f.TrustedSubnet
	}
	if set["l"] {
		o.LogLevel = f.LogLevel
	}
	if set["k"] {
		o.SessionSecret = f.SessionSecret
	}
	if set["v"] {
		o.VisitFlushInterval = f.VisitFlushInterval
	}
}

func (o *Options) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var f fileOptions
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if f.Port != nil {
		o.Port = *f.Port
	}
	if f.ResultHostname != nil {
		o.ResultHostname = *f.ResultHostname
	}
	if f.EnableHTTPS != nil {
		o.EnableHTTPS = *f.EnableHTTPS
	}
	if f.EnablePprof != nil {
		o.EnablePprof = *f.EnablePprof
	}
	if f.TrustedSubnet != nil {
		o.TrustedSubnet = *f.TrustedSubnet
	}
	if f.LogLevel != nil {
		o.LogLevel = *f.LogLevel
	}
	if f.SessionSecret != nil {
		o.SessionSecret = *f.SessionSecret
	}
	if f.VisitFlushInterval != nil {
		d, err := time.ParseDuration(*f.VisitFlushInterval)
		if err != nil {
			return fmt.Errorf("parse visit_flush_interval: %w", err)
		}
		o.VisitFlushInterval = d
	}
	return nil
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	_, err := zapcore.ParseLevel(fieldLevel.Field().String())
	return err == nil
}

func (o *Options) validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}

	return validate.Struct(o)
}
