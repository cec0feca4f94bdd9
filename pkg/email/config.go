package email

import (
	"net"
	"strconv"
	"time"

	"github.com/emtaxi/emtaxi_backend/config"
)

const (
	defaultSMTPPort    = 587
	defaultSMTPTimeout = 30 * time.Second
)

// Config is the mail transport setup. From is the envelope and header sender
// for every notification; visitors only ever appear in Reply-To.
type Config struct {
	Enabled bool
	From    string
	SMTP    SMTP
}

// SMTP describes the relay. ImplicitTLS selects SMTPS (usually port 465);
// otherwise the connection upgrades through STARTTLS when offered.
type SMTP struct {
	Host        string
	Port        int
	Username    string
	Password    string
	ImplicitTLS bool
	Timeout     time.Duration
}

// Addr is host:port, with the submission port when none is set.
func (s SMTP) Addr() string {
	port := s.Port
	if port <= 0 {
		port = defaultSMTPPort
	}
	return net.JoinHostPort(s.Host, strconv.Itoa(port))
}

func (s SMTP) timeout() time.Duration {
	if s.Timeout <= 0 {
		return defaultSMTPTimeout
	}
	return s.Timeout
}

// FromCentralConfig maps the email section of the application config.
func FromCentralConfig(c config.EmailConfig) Config {
	return Config{
		Enabled: c.Enabled,
		From:    c.From,
		SMTP: SMTP{
			Host:        c.SMTP.Host,
			Port:        c.SMTP.Port,
			Username:    c.SMTP.Username,
			Password:    c.SMTP.Password,
			ImplicitTLS: c.SMTP.UseTLS,
			Timeout:     time.Duration(c.SMTP.TimeoutSeconds) * time.Second,
		},
	}
}
