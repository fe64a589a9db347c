package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"TradingHours/pkg/util"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no -config flag is given. It may be absent.
const DefaultPath = "config/config.yaml"

var ErrMissingAPIKey = errors.New("RESEND_API_KEY is not set")

type Config struct {
	Environment string           `yaml:"environment" default:"development"`
	Server      ServerConfig     `yaml:"server"`
	Logging     LoggingConfig    `yaml:"logging"`
	Metrics     MetricsConfig    `yaml:"metrics"`
	Report      ReportConfig     `yaml:"report"`
	Delivery    DeliveryConfig   `yaml:"delivery"`
	Resend      ResendConfig     `yaml:"resend"`
	Exchanges   []ExchangeConfig `yaml:"exchanges" validate:"omitempty,dive"`
}

type ServerConfig struct {
	Port            int           `yaml:"port" default:"8080" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	CORSOrigins     []string      `yaml:"cors_origins" default:"[\"*\"]"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
	Output string `yaml:"output" default:"stderr"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Path    string `yaml:"path" default:"/metrics"`
}

type ReportConfig struct {
	Timezone  string   `yaml:"timezone" default:"UTC" validate:"required,timezone"`
	Exchanges []string `yaml:"exchanges" default:"[\"NYSE\",\"NASDAQ\",\"LSE\",\"JPX\"]" validate:"min=1,dive,required"`
}

type DeliveryConfig struct {
	SendHour   int    `yaml:"send_hour" default:"8" validate:"gte=0,lte=23"`
	Force      bool   `yaml:"force"`
	RosterPath string `yaml:"roster_path" default:"users.json" validate:"required"`
	Workers    int    `yaml:"workers" default:"1" validate:"gte=1,lte=32"`
}

type ResendConfig struct {
	APIKey        string        `yaml:"api_key"`
	From          string        `yaml:"from" default:"onboarding@resend.dev" validate:"required"`
	BaseURL       string        `yaml:"base_url" default:"https://api.resend.com" validate:"url"`
	Timeout       time.Duration `yaml:"timeout" default:"15s"`
	RatePerSecond float64       `yaml:"rate_per_second" default:"2"`
}

// ExchangeConfig overrides the built-in exchange table. Times are "HH:MM" in the exchange's zone.
type ExchangeConfig struct {
	Code     string `yaml:"code" validate:"required"`
	Name     string `yaml:"name" validate:"required"`
	Timezone string `yaml:"timezone" validate:"required,timezone"`
	Open     string `yaml:"open" validate:"required,datetime=15:04"`
	Close    string `yaml:"close" validate:"required,datetime=15:04"`
}

// Load reads and parses a YAML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	c, err := read(path, false)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads .env (if present), the YAML file and then environment overrides.
// A missing file at DefaultPath is not an error; the process runs on env and defaults.
func LoadWithEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	optional := path == "" || path == DefaultPath
	if path == "" {
		path = DefaultPath
	}
	c, err := read(path, optional)
	if err != nil {
		return nil, err
	}
	applyEnv(c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func read(path string, optional bool) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return &c, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &c, nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("TIMEZONE"); v != "" {
		c.Report.Timezone = strings.TrimSpace(v)
	}
	if v := os.Getenv("EXCHANGES"); v != "" {
		c.Report.Exchanges = util.SplitList(v)
	}
	if v := os.Getenv("SEND_HOUR"); v != "" {
		c.Delivery.SendHour = util.ParseIntDefault(v, c.Delivery.SendHour)
	}
	if v := os.Getenv("FORCE_SEND"); v != "" {
		c.Delivery.Force = util.ParseBoolDefault(v, c.Delivery.Force)
	}
	if v := os.Getenv("USERS_FILE"); v != "" {
		c.Delivery.RosterPath = v
	}
	if v := os.Getenv("DELIVERY_WORKERS"); v != "" {
		c.Delivery.Workers = util.ParseIntDefault(v, c.Delivery.Workers)
	}
	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		c.Resend.APIKey = v
	}
	if v := os.Getenv("FROM_EMAIL"); v != "" {
		c.Resend.From = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = util.SplitList(v)
	}
}

var validate = validator.New()

// Validate checks if the configuration is valid. The API key is checked separately
// by RequireAPIKey since only the notifier needs it.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}
	return nil
}

// RequireAPIKey reports ErrMissingAPIKey when no Resend key is configured.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.Resend.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}
