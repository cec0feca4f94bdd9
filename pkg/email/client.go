package email

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/emtaxi/emtaxi_backend/config"
	"gopkg.in/gomail.v2"
)

// Client delivers notifications through one SMTP relay. It holds no
// connection between sends.
type Client struct {
	cfg Config
}

var _ Sender = (*Client)(nil)

// NewFromCentral builds a Client from the application config.
func NewFromCentral(cfg config.EmailConfig) (*Client, error) {
	return New(FromCentralConfig(cfg))
}

func New(cfg Config) (*Client, error) {
	if cfg.Enabled && strings.TrimSpace(cfg.SMTP.Host) == "" {
		return nil, ErrInvalidMessage{Reason: "smtp host is required when email is enabled"}
	}
	return &Client{cfg: cfg}, nil
}

// IsEnabled reports whether Send talks to the relay.
func (c *Client) IsEnabled() bool {
	return c.cfg.Enabled
}

// Send makes a single delivery attempt and never retries. It returns when the
// relay answers, when ctx ends, or after the SMTP timeout, whichever is first.
func (c *Client) Send(ctx context.Context, m Message) error {
	if !c.cfg.Enabled {
		return ErrDisabled{}
	}

	msg, err := buildMessage(c.cfg.From, m)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.SMTP.timeout())
	defer cancel()

	// gomail has no context support; the dial runs detached and its result
	// is dropped if ctx wins.
	done := make(chan error, 1)
	go func() {
		done <- c.dialer().DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return ErrSend{Provider: "gomail/smtp", Err: err}
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) dialer() *gomail.Dialer {
	s := c.cfg.SMTP
	port := s.Port
	if port <= 0 {
		port = defaultSMTPPort
	}
	d := gomail.NewDialer(s.Host, port, s.Username, s.Password)
	d.SSL = s.ImplicitTLS
	d.TLSConfig = &tls.Config{ServerName: s.Host, MinVersion: tls.VersionTLS12}
	return d
}

func buildMessage(from string, m Message) (*gomail.Message, error) {
	msg := gomail.NewMessage(gomail.SetCharset("UTF-8"))

	from = strings.TrimSpace(from)
	if from == "" {
		return nil, ErrInvalidMessage{Reason: "from is required"}
	}
	msg.SetHeader("From", from)

	to := cleanAddrs(m.To)
	if len(to) == 0 {
		return nil, ErrInvalidMessage{Reason: "at least one recipient is required"}
	}
	msg.SetHeader("To", to...)
	if len(m.CC) > 0 {
		msg.SetHeader("Cc", cleanAddrs(m.CC)...)
	}
	if len(m.BCC) > 0 {
		msg.SetHeader("Bcc", cleanAddrs(m.BCC)...)
	}

	if addr := oneLine(m.ReplyTo.Email); addr != "" {
		msg.SetAddressHeader("Reply-To", addr, oneLine(m.ReplyTo.Name))
	}

	subj := oneLine(m.Subject)
	if subj == "" {
		return nil, ErrInvalidMessage{Reason: "subject is required"}
	}
	msg.SetHeader("Subject", subj)

	for k, v := range m.Headers {
		k = oneLine(k)
		v = oneLine(v)
		if k == "" || v == "" {
			continue
		}
		msg.SetHeader(k, v)
	}

	hasText := strings.TrimSpace(m.TextBody) != ""
	hasHTML := strings.TrimSpace(m.HTMLBody) != ""

	switch {
	case hasText && hasHTML:
		msg.SetBody("text/plain", m.TextBody)
		msg.AddAlternative("text/html", m.HTMLBody)
	case hasHTML:
		msg.SetBody("text/html", m.HTMLBody)
	case hasText:
		msg.SetBody("text/plain", m.TextBody)
	default:
		return nil, ErrInvalidMessage{Reason: "either TextBody or HTMLBody is required"}
	}

	return msg, nil
}

// oneLine trims s and drops CR/LF so a value cannot start a new header.
func oneLine(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\r", "", "\n", "").Replace(s))
}

func cleanAddrs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = oneLine(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
