package form

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/emtaxi/emtaxi_backend/config"
	"github.com/emtaxi/emtaxi_backend/pkg/chatlink"
	"github.com/emtaxi/emtaxi_backend/pkg/i18n"
)

// DefaultResetDelay is how long a Success or Error banner stays up.
const DefaultResetDelay = 5000 * time.Millisecond

// Response is the endpoint's answer as the controller sees it.
type Response struct {
	StatusCode int
	Success    bool
	Message    string
}

// Submitter delivers one request. An error means no usable answer came back.
type Submitter interface {
	Submit(ctx context.Context, req Fields) (Response, error)
}

// Opener opens a URL in a new browsing context. An error means the
// environment refused, like a blocked popup.
type Opener interface {
	Open(url string) error
}

type Config struct {
	// Endpoint is only consulted for the development bypass.
	Endpoint       string
	WhatsAppNumber string
	Language       string
	ResetDelay     time.Duration
	Rules          Rules
}

// ConfigFromCentral builds the controller config from application config.
func ConfigFromCentral(cfg *config.Config) Config {
	return Config{
		Endpoint:       cfg.Form.Endpoint,
		WhatsAppNumber: cfg.Contact.WhatsAppNumber,
		Language:       cfg.Form.Language,
		ResetDelay:     time.Duration(cfg.Form.ResetDelayMs) * time.Millisecond,
		Rules: Rules{
			Required:         DefaultRules().Required,
			MaxMessageLength: cfg.Contact.MaxMessageLength,
		},
	}
}

// Outcome is what Submit reports once the submission settled.
type Outcome struct {
	State        State
	ChatLink     string
	PopupBlocked bool
}

type Controller struct {
	cfg       Config
	submitter Submitter
	opener    Opener
	printer   *i18n.Printer
	logger    *slog.Logger

	mu     sync.Mutex
	state  State
	timer  *time.Timer
	closed bool
}

func NewController(cfg Config, submitter Submitter, opener Opener, logger *slog.Logger) *Controller {
	if cfg.ResetDelay <= 0 {
		cfg.ResetDelay = DefaultResetDelay
	}
	if cfg.Rules.Required == nil {
		cfg.Rules = DefaultRules()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		cfg:       cfg,
		submitter: submitter,
		opener:    opener,
		printer:   i18n.For(i18n.Match(cfg.Language)),
		logger:    logger.With("component", "form"),
	}
}

// State returns a snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Edit(field Field, value string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Edit(c.state, c.cfg.Rules, field, value)
	return c.state
}

// Prefill reads service=<value> from the fragment or the query of pageURL,
// e.g. "https://emtaxi.fr/#contact?service=Premium", and sets the service
// type. It reports whether a value was found.
func (c *Controller) Prefill(pageURL string) bool {
	service, ok := serviceFromURL(pageURL)
	if !ok {
		return false
	}
	c.Edit(FieldServiceType, service)
	return true
}

func serviceFromURL(pageURL string) (string, bool) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", false
	}

	candidates := []string{u.RawQuery}
	if frag := u.EscapedFragment(); frag != "" {
		if i := strings.IndexByte(frag, '?'); i >= 0 {
			frag = frag[i+1:]
		}
		candidates = append(candidates, frag)
	}

	for _, raw := range candidates {
		q, err := url.ParseQuery(raw)
		if err != nil {
			continue
		}
		if v := strings.TrimSpace(q.Get("service")); v != "" {
			return v, true
		}
	}
	return "", false
}

// Submit validates, sends and settles one submission. Validation failures
// and ErrBusy return before any network call. Transport trouble is not an
// error here: it lands in the Error state with a generic banner.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	next, req, err := Begin(c.state, c.cfg.Rules)
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			c.state.Banner = c.fieldMessage(fe)
		}
		out := Outcome{State: c.state}
		c.mu.Unlock()
		return out, err
	}
	c.state = next
	gen := next.Generation
	c.mu.Unlock()

	resp, err := c.send(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	var out Outcome
	switch {
	case err != nil:
		c.logger.WarnContext(ctx, "submission did not reach the endpoint", "error", err)
		c.state = Fail(c.state, c.printer.T(i18n.KeyBannerNetwork))
	case !resp.Success || resp.StatusCode < 200 || resp.StatusCode > 299:
		banner := resp.Message
		if banner == "" {
			banner = c.printer.T(i18n.KeyBannerError)
		}
		c.logger.InfoContext(ctx, "submission rejected", "status", resp.StatusCode)
		c.state = Fail(c.state, banner)
	default:
		c.state = Succeed(c.state, c.printer.T(i18n.KeyBannerSuccess))
		out.ChatLink = chatlink.WhatsApp(c.cfg.WhatsAppNumber, ChatMessage(c.printer, req))
		if err := c.opener.Open(out.ChatLink); err != nil {
			c.logger.WarnContext(ctx, "chat link not opened", "error", err)
			c.state.Banner = c.printer.T(i18n.KeyBannerPopup)
			out.PopupBlocked = true
		}
	}

	c.scheduleReset(gen)
	out.State = c.state
	return out, nil
}

func (c *Controller) send(ctx context.Context, req Fields) (Response, error) {
	if bypassAllowed(c.cfg.Endpoint) {
		c.logger.DebugContext(ctx, "development bypass, no request sent", "endpoint", c.cfg.Endpoint)
		return Response{StatusCode: 200, Success: true}, nil
	}
	return c.submitter.Submit(ctx, req)
}

// scheduleReset must run with c.mu held.
func (c *Controller) scheduleReset(gen uint64) {
	if c.closed {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.cfg.ResetDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.state = Reset(c.state, gen)
	})
}

// Close cancels a pending reset.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) fieldMessage(fe *FieldError) string {
	if fe.Reason == ReasonTooLong {
		return c.printer.T(i18n.KeyMessageTooLong, fe.Limit)
	}
	return c.printer.T(i18n.KeyFieldRequired, string(fe.Field))
}
