package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/emtaxi/emtaxi_backend/config"
	"github.com/emtaxi/emtaxi_backend/pkg/chatlink"
	"github.com/emtaxi/emtaxi_backend/pkg/email"
	"github.com/emtaxi/emtaxi_backend/pkg/observability"
	"github.com/emtaxi/emtaxi_backend/pkg/sanitize"
	"github.com/emtaxi/emtaxi_backend/pkg/util/codes"
	"github.com/emtaxi/emtaxi_backend/pkg/util/phone"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Request is the submission payload as it arrives on the wire.
type Request struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	ServiceType  string `json:"serviceType"`
	FlightNumber string `json:"flightNumber,omitempty"`
	Message      string `json:"message"`
}

// Receipt describes a notification the mail transport accepted.
type Receipt struct {
	Reference   string
	To          string
	ReplyTo     string
	Subject     string
	ServiceType string
	AcceptedAt  time.Time
}

// Info is the public contact data shown next to the form.
type Info struct {
	BusinessPhone string   `json:"businessPhone"`
	WhatsAppLink  string   `json:"whatsappLink"`
	Mailbox       string   `json:"mailbox"`
	ServiceTypes  []string `json:"serviceTypes"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Submit(ctx context.Context, req Request) (*Receipt, error)
	Info() Info
}

const (
	referencePrefix = "EMT"
	referenceHeader = "X-Booking-Reference"
)

// Alerter sends a short operator alert once a notification was accepted.
// *sms.Client satisfies it.
type Alerter interface {
	SendTemplate(ctx context.Context, mobile string, params map[string]string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	cfg     config.ContactConfig
	mailer  email.Sender
	alerter Alerter
	metrics *observability.SubmissionRecorder
	logger  *slog.Logger
	now     func() time.Time
	newRef  func() (string, error)

	services map[string]string // lower-cased label -> canonical label
}

// New builds the service. alerter and metrics may be nil.
func New(
	cfg config.ContactConfig,
	mailer email.Sender,
	alerter Alerter,
	metrics *observability.SubmissionRecorder,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	services := make(map[string]string, len(cfg.ServiceTypes))
	for _, s := range cfg.ServiceTypes {
		services[strings.ToLower(strings.TrimSpace(s))] = s
	}
	return &contactService{
		cfg:      cfg,
		mailer:   mailer,
		alerter:  alerter,
		metrics:  metrics,
		logger:   logger.With("component", "contact"),
		now:      time.Now,
		newRef:   func() (string, error) { return codes.NewReference(referencePrefix) },
		services: services,
	}
}

func (s *contactService) Info() Info {
	return Info{
		BusinessPhone: phone.Display(s.cfg.BusinessPhone, s.cfg.PhoneRegion),
		WhatsAppLink:  chatlink.WhatsApp(s.cfg.WhatsAppNumber, ""),
		Mailbox:       s.cfg.OperatorMailbox,
		ServiceTypes:  append([]string(nil), s.cfg.ServiceTypes...),
	}
}

func (s *contactService) Submit(ctx context.Context, req Request) (*Receipt, error) {
	sub, err := s.clean(req)
	if err != nil {
		s.metrics.Record(ctx, observability.OutcomeInvalid, "")
		return nil, err
	}

	ref := s.reference(ctx)

	note, err := renderNotification(s.cfg, sub, ref)
	if err != nil {
		s.metrics.Record(ctx, observability.OutcomeFailed, sub.ServiceType)
		return nil, fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	msg := email.Message{
		To:       []string{s.cfg.OperatorMailbox},
		ReplyTo:  email.Address{Email: sub.Email, Name: sanitize.HeaderSafe(sub.Name)},
		Subject:  note.Subject,
		TextBody: note.Text,
		HTMLBody: note.HTML,
	}
	if ref != "" {
		msg.Headers = map[string]string{referenceHeader: ref}
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "notification rejected by mail transport",
			"service_type", sub.ServiceType, "reference", ref, "error", err)
		s.metrics.Record(ctx, observability.OutcomeFailed, sub.ServiceType)
		return nil, fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	s.metrics.Record(ctx, observability.OutcomeAccepted, sub.ServiceType)
	s.logger.InfoContext(ctx, "notification accepted",
		"service_type", sub.ServiceType, "reference", ref, "has_phone", sub.Phone != "")

	s.alert(ctx, sub, ref)

	return &Receipt{
		Reference:   ref,
		To:          s.cfg.OperatorMailbox,
		ReplyTo:     sub.Email,
		Subject:     note.Subject,
		ServiceType: sub.ServiceType,
		AcceptedAt:  s.now(),
	}, nil
}

// reference tags the notification so the operator can quote it back to the
// visitor. A generator failure only costs the tag.
func (s *contactService) reference(ctx context.Context) string {
	ref, err := s.newRef()
	if err != nil {
		s.logger.WarnContext(ctx, "booking reference unavailable", "error", err)
		return ""
	}
	return ref
}

// clean sanitizes every field and validates the result. Required fields are
// checked in form order so the caller sees the first missing one.
func (s *contactService) clean(req Request) (Request, error) {
	if limit := s.cfg.MaxMessageLength; limit > 0 && utf8.RuneCountInString(strings.TrimSpace(req.Message)) > limit {
		return Request{}, &ValidationError{Field: "message", Code: CodeTooLong, Limit: limit}
	}

	out := Request{
		Name:         sanitize.HeaderSafe(req.Name),
		Email:        sanitize.Email(req.Email),
		Phone:        sanitize.HeaderSafe(req.Phone),
		ServiceType:  sanitize.HeaderSafe(req.ServiceType),
		FlightNumber: sanitize.HeaderSafe(req.FlightNumber),
		Message:      sanitize.Text(req.Message),
	}

	for _, f := range []struct{ name, value string }{
		{"name", out.Name},
		{"email", out.Email},
		{"serviceType", out.ServiceType},
		{"message", out.Message},
	} {
		if f.value == "" {
			return Request{}, &ValidationError{Field: f.name, Code: CodeRequired}
		}
	}

	if !sanitize.ValidEmail(out.Email) {
		return Request{}, &ValidationError{Field: "email", Code: CodeInvalidEmail}
	}

	canonical, ok := s.services[strings.ToLower(out.ServiceType)]
	if !ok {
		return Request{}, &ValidationError{Field: "serviceType", Code: CodeUnknownService}
	}
	out.ServiceType = canonical

	if out.Phone != "" {
		if e164, ok := phone.Normalize(out.Phone, s.cfg.PhoneRegion); ok {
			out.Phone = e164
		}
	}
	out.FlightNumber = strings.ToUpper(out.FlightNumber)

	return out, nil
}

// alert is best effort; the e-mail already went out.
func (s *contactService) alert(ctx context.Context, sub Request, ref string) {
	if s.alerter == nil || s.cfg.AlertMobile == "" {
		return
	}
	params := map[string]string{
		"name":    sub.Name,
		"service": sub.ServiceType,
	}
	if ref != "" {
		params["ref"] = ref
	}
	err := s.alerter.SendTemplate(ctx, s.cfg.AlertMobile, params)
	if err != nil {
		s.logger.WarnContext(ctx, "operator sms alert failed", "error", err)
	}
}
