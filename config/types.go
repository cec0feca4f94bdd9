package config

import (
	"errors"
	"fmt"
	"strings"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Contact       ContactConfig       `mapstructure:"contact"`
	Form          FormConfig          `mapstructure:"form"`
	Email         EmailConfig         `mapstructure:"email"`
	SMS           SMSConfig           `mapstructure:"sms"`
	Redis         RedisConfig         `mapstructure:"redis"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	TimeoutSeconds int           `mapstructure:"timeout_seconds"`
	Environment    string        `mapstructure:"environment"`
	Domain         string        `mapstructure:"domain"`
	BodyLimitKB    int           `mapstructure:"body_limit_kb"`
	StaticDir      string        `mapstructure:"static_dir"`
	CORS           CORSConfig    `mapstructure:"cors"`
	Headers        HeadersConfig `mapstructure:"headers"`
}

type HeadersConfig struct {
	XSSProtection      string `mapstructure:"xss_protection"`
	ContentTypeNosniff string `mapstructure:"content_type_nosniff"`
	XFrameOptions      string `mapstructure:"x_frame_options"`
	ReferrerPolicy     string `mapstructure:"referrer_policy"`
}

type CORSConfig struct {
	AllowOrigin  string   `mapstructure:"allow_origin"`
	AllowMethods []string `mapstructure:"allow_methods"`
	AllowHeaders []string `mapstructure:"allow_headers"`
}

// ContactConfig is the business-facing part of the submission flow.
type ContactConfig struct {
	Path             string   `mapstructure:"path"`
	LegacyPath       string   `mapstructure:"legacy_path"`
	SiteName         string   `mapstructure:"site_name"`
	OperatorMailbox  string   `mapstructure:"operator_mailbox"`
	LogoURL          string   `mapstructure:"logo_url"`
	BusinessPhone    string   `mapstructure:"business_phone"`
	WhatsAppNumber   string   `mapstructure:"whatsapp_number"`
	PhoneRegion      string   `mapstructure:"phone_region"`
	MaxMessageLength int      `mapstructure:"max_message_length"`
	ServiceTypes     []string `mapstructure:"service_types"`
	AlertMobile      string   `mapstructure:"alert_mobile"`
}

// FormConfig drives the headless form controller used by the CLI.
type FormConfig struct {
	Endpoint     string `mapstructure:"endpoint"`
	Language     string `mapstructure:"language"`
	ResetDelayMs int    `mapstructure:"reset_delay_ms"`
}

type EmailConfig struct {
	Enabled bool       `mapstructure:"enabled"`
	From    string     `mapstructure:"from"`
	SMTP    SMTPConfig `mapstructure:"smtp"`
}

type SMTPConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	UseTLS         bool   `mapstructure:"use_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type SMSConfig struct {
	Enabled bool        `mapstructure:"enabled"`
	SMSIR   SMSIRConfig `mapstructure:"smsir"`
}

type SMSIRConfig struct {
	APIKey     string `mapstructure:"api_key"`
	SecretKey  string `mapstructure:"secret_key"`
	TemplateID string `mapstructure:"template_id"`
}

type RedisConfig struct {
	Enabled             bool   `mapstructure:"enabled"`
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerWindow int  `mapstructure:"requests_per_window"`
	WindowSeconds     int  `mapstructure:"window_seconds"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/app.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"` // e.g. "http://localhost:3100"
	TenantID string `mapstructure:"tenant_id"`
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if strings.TrimSpace(c.Contact.OperatorMailbox) == "" {
		errs = append(errs, errors.New("contact.operator_mailbox is required"))
	}
	if strings.TrimSpace(c.Contact.WhatsAppNumber) == "" {
		errs = append(errs, errors.New("contact.whatsapp_number is required"))
	}
	if c.Contact.MaxMessageLength <= 0 {
		errs = append(errs, errors.New("contact.max_message_length must be positive"))
	}
	if len(c.Contact.ServiceTypes) == 0 {
		errs = append(errs, errors.New("contact.service_types must not be empty"))
	}
	if c.Email.Enabled && strings.TrimSpace(c.Email.From) == "" {
		errs = append(errs, errors.New("email.from is required when email is enabled"))
	}

	return errors.Join(errs...)
}
