// Package form is a headless rendition of the site's contact form: a state
// record moved by pure transition functions, and a Controller that drives
// them with a Submitter, an Opener for the chat deep link and a reset timer.
package form

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/emtaxi/emtaxi_backend/pkg/sanitize"
)

// Status is the visible phase of the form.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Field names match the JSON keys of the submission.
type Field string

const (
	FieldName         Field = "name"
	FieldEmail        Field = "email"
	FieldPhone        Field = "phone"
	FieldServiceType  Field = "serviceType"
	FieldFlightNumber Field = "flightNumber"
	FieldMessage      Field = "message"
)

// Fields is what the visitor typed. It doubles as the request body.
type Fields struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	ServiceType  string `json:"serviceType"`
	FlightNumber string `json:"flightNumber,omitempty"`
	Message      string `json:"message"`
}

func (f Fields) get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	case FieldServiceType:
		return f.ServiceType
	case FieldFlightNumber:
		return f.FlightNumber
	case FieldMessage:
		return f.Message
	}
	return ""
}

func (f *Fields) set(field Field, v string) bool {
	switch field {
	case FieldName:
		f.Name = v
	case FieldEmail:
		f.Email = v
	case FieldPhone:
		f.Phone = v
	case FieldServiceType:
		f.ServiceType = v
	case FieldFlightNumber:
		f.FlightNumber = v
	case FieldMessage:
		f.Message = v
	default:
		return false
	}
	return true
}

// State is the whole form. Generation increases on every Begin so a reset
// scheduled for one submission can recognise a later one.
type State struct {
	Fields     Fields
	Status     Status
	Banner     string
	Generation uint64
}

// Rules are the client-side constraints.
type Rules struct {
	Required         []Field
	MaxMessageLength int
}

// DefaultRules mirrors the endpoint: name, email, service and message are
// required and the message holds at most 500 characters.
func DefaultRules() Rules {
	return Rules{
		Required:         []Field{FieldName, FieldEmail, FieldServiceType, FieldMessage},
		MaxMessageLength: 500,
	}
}

var ErrBusy = errors.New("a submission is already in progress")

// FieldError reasons.
const (
	ReasonRequired = "required"
	ReasonTooLong  = "too_long"
)

// FieldError blocks a submission before any network call.
type FieldError struct {
	Field  Field
	Reason string
	Limit  int
}

func (e *FieldError) Error() string {
	if e.Reason == ReasonTooLong {
		return fmt.Sprintf("field %s exceeds %d characters", e.Field, e.Limit)
	}
	return fmt.Sprintf("field %s is %s", e.Field, e.Reason)
}

// Edit sets one field. The message is cut at the bound as the textarea's
// maxlength would. Editing clears a stale banner and returns to Idle; it is
// ignored while a submission is in flight.
func Edit(s State, r Rules, field Field, value string) State {
	if s.Status == StatusSubmitting {
		return s
	}
	if field == FieldMessage && r.MaxMessageLength > 0 {
		value = sanitize.Truncate(value, r.MaxMessageLength)
	}
	if !s.Fields.set(field, value) {
		return s
	}
	s.Status = StatusIdle
	s.Banner = ""
	return s
}

// Validate returns the first violated rule, or nil.
func Validate(f Fields, r Rules) error {
	for _, field := range r.Required {
		if strings.TrimSpace(f.get(field)) == "" {
			return &FieldError{Field: field, Reason: ReasonRequired}
		}
	}
	if r.MaxMessageLength > 0 && utf8.RuneCountInString(f.Message) > r.MaxMessageLength {
		return &FieldError{Field: FieldMessage, Reason: ReasonTooLong, Limit: r.MaxMessageLength}
	}
	return nil
}

// Begin moves a valid form to Submitting and returns the request to send.
// The returned Fields is a copy; later edits cannot reach it.
func Begin(s State, r Rules) (State, Fields, error) {
	if s.Status == StatusSubmitting {
		return s, Fields{}, ErrBusy
	}
	if err := Validate(s.Fields, r); err != nil {
		return s, Fields{}, err
	}
	req := s.Fields
	s.Status = StatusSubmitting
	s.Banner = ""
	s.Generation++
	return s, req, nil
}

// Succeed clears the fields and shows banner.
func Succeed(s State, banner string) State {
	if s.Status != StatusSubmitting {
		return s
	}
	s.Fields = Fields{}
	s.Status = StatusSuccess
	s.Banner = banner
	return s
}

// Fail keeps the fields so the visitor can retry without retyping.
func Fail(s State, banner string) State {
	if s.Status != StatusSubmitting {
		return s
	}
	s.Status = StatusError
	s.Banner = banner
	return s
}

// Reset returns a Success or Error form to Idle with no banner, but only if
// no submission started after generation gen.
func Reset(s State, gen uint64) State {
	if s.Generation != gen {
		return s
	}
	if s.Status != StatusSuccess && s.Status != StatusError {
		return s
	}
	s.Status = StatusIdle
	s.Banner = ""
	return s
}
