package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Email    EmailConfig    `mapstructure:"email"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel       string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	// URL, when set, overrides the individual connection fields.
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host" validate:"required_without=URL"`
	Port     int    `mapstructure:"port" validate:"omitempty,gt=0,lt=65536"`
	Name     string `mapstructure:"name" validate:"required_without=URL"`
	Username string `mapstructure:"username" validate:"required_without=URL"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
}

type EmailConfig struct {
	SMTPServer string `mapstructure:"smtp_server" validate:"required"`
	SMTPPort   int    `mapstructure:"smtp_port" validate:"required,gt=0,lt=65536"`
	Address    string `mapstructure:"address" validate:"required,email"`
	Password   string `mapstructure:"password"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required_without=DevUser,omitempty,min=32"`
	// DevUser accepts every request as a local administrator. Never enable outside development.
	DevUser bool `mapstructure:"dev_user"`
}

// legacyEnv maps keys to the variable names the service has always read.
var legacyEnv = map[string]string{
	"database.name":     "DB_NAME",
	"database.username": "DB_USERNAME",
	"database.password": "DB_PASSWORD",
	"database.host":     "LOCAL_DB_HOST",
	"database.port":     "LOCAL_DB_PORT",
	"email.address":     "PLM_EMAIL_ADDRESS",
	"email.password":    "PLM_EMAIL_PASSWORD",
	"email.smtp_server": "SMTP_SERVER",
	"email.smtp_port":   "SMTP_PORT",
	"server.port":       "PORT",
}

// Load reads .env (if present), an optional config file and the environment.
// configFile may be empty.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("PLM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, "PLM_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key; viper only unmarshals keys it knows about.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "")
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.sslmode", "")
	v.SetDefault("email.smtp_server", "")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.address", "")
	v.SetDefault("email.password", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.dev_user", false)
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DatabaseURL builds a libpq style URL for pgxpool.
func (c DatabaseConfig) DatabaseURL() string {
	if c.URL != "" {
		return c.URL
	}

	sslmode := c.SSLMode
	if sslmode == "" {
		// Passwordless means a local database without TLS; anything else gets TLS.
		sslmode = "require"
		if c.Password == "" {
			sslmode = "disable"
		}
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {sslmode}}.Encode(),
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.Username, c.Password)
	} else {
		u.User = url.User(c.Username)
	}
	return u.String()
}
