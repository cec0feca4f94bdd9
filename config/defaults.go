package config

import "github.com/spf13/viper"

// DefaultServiceTypes is the service catalogue offered by the contact form.
var DefaultServiceTypes = []string{
	"Standard",
	"Affaires",
	"Premium",
	"Transfert Aéroport",
	"Professionnel & Entreprise",
	"Événements & Occasions Spéciales",
	"Service à la Demande",
	"Autre",
}

// SetDefaults registers every default on v. Keys must exist here for
// AutomaticEnv to pick them up during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.timeout_seconds", 15)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.domain", "emtaxi.fr")
	v.SetDefault("server.body_limit_kb", 64)
	v.SetDefault("server.static_dir", "")
	v.SetDefault("server.cors.allow_origin", "*")
	v.SetDefault("server.cors.allow_methods", []string{"POST", "OPTIONS"})
	v.SetDefault("server.cors.allow_headers", []string{"Content-Type"})
	v.SetDefault("server.headers.xss_protection", "0")
	v.SetDefault("server.headers.content_type_nosniff", "nosniff")
	v.SetDefault("server.headers.x_frame_options", "SAMEORIGIN")
	v.SetDefault("server.headers.referrer_policy", "no-referrer")

	v.SetDefault("contact.path", "/api/v1/contact")
	v.SetDefault("contact.legacy_path", "/contact.php")
	v.SetDefault("contact.site_name", "EM Taxi Touristique")
	v.SetDefault("contact.operator_mailbox", "contact@emtaxi.fr")
	v.SetDefault("contact.logo_url", "https://emtaxi.fr/logo.png")
	v.SetDefault("contact.business_phone", "+212762728706")
	v.SetDefault("contact.whatsapp_number", "212762728706")
	v.SetDefault("contact.phone_region", "MA")
	v.SetDefault("contact.max_message_length", 500)
	v.SetDefault("contact.service_types", DefaultServiceTypes)
	v.SetDefault("contact.alert_mobile", "")

	v.SetDefault("form.endpoint", "http://localhost:8080/api/v1/contact")
	v.SetDefault("form.language", "fr")
	v.SetDefault("form.reset_delay_ms", 5000)

	v.SetDefault("email.enabled", true)
	v.SetDefault("email.from", "EM Taxi Site <noreply@emtaxi.fr>")
	v.SetDefault("email.smtp.host", "localhost")
	v.SetDefault("email.smtp.port", 1025)
	v.SetDefault("email.smtp.username", "")
	v.SetDefault("email.smtp.password", "")
	v.SetDefault("email.smtp.use_tls", false)
	v.SetDefault("email.smtp.timeout_seconds", 30)

	v.SetDefault("sms.enabled", false)
	v.SetDefault("sms.smsir.api_key", "")
	v.SetDefault("sms.smsir.secret_key", "")
	v.SetDefault("sms.smsir.template_id", "")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.username", "")
	v.SetDefault("redis.password", "")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_window", 5)
	v.SetDefault("rate_limit.window_seconds", 60)

	v.SetDefault("observability.enabled", false)
	v.SetDefault("observability.service_name", "emtaxi_backend")
	v.SetDefault("observability.service_version", "dev")
	v.SetDefault("observability.tracing.enabled", false)
	v.SetDefault("observability.tracing.otlp_endpoint", "")
	v.SetDefault("observability.tracing.otlp_insecure", true)
	v.SetDefault("observability.tracing.sampling_rate", 1.0)
	v.SetDefault("observability.metrics.enabled", false)
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output.stdout", true)
	v.SetDefault("logging.output.file.enabled", false)
	v.SetDefault("logging.output.file.path", "logs/app.log")
	v.SetDefault("logging.output.file.max_size_mb", 50)
	v.SetDefault("logging.output.file.max_backups", 5)
	v.SetDefault("logging.output.file.max_age_days", 30)
	v.SetDefault("logging.output.file.compress", true)
	v.SetDefault("logging.output.loki.enabled", false)
	v.SetDefault("logging.output.loki.endpoint", "")
	v.SetDefault("logging.output.loki.tenant_id", "")
}

// Default returns a Config populated only from defaults. Useful in tests.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(err)
	}
	return &c
}
