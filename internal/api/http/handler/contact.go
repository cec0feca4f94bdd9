package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/emtaxi/emtaxi_backend/internal/service/contact"
	"github.com/emtaxi/emtaxi_backend/pkg/i18n"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit validates the JSON payload and hands the notification to the mail
// transport. 200 means the transport accepted it, nothing more.
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	p := printer(c)

	var req contact.Request
	if len(c.Body()) == 0 {
		return badRequest(c, p.T(i18n.KeyInvalidJSON))
	}
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, p.T(i18n.KeyInvalidJSON))
	}

	_, err := h.svc.Submit(c.Context(), req)
	if err != nil {
		var vErr *contact.ValidationError
		if errors.As(err, &vErr) {
			return badRequest(c, validationMessage(p, vErr))
		}
		return internalError(c, p.T(i18n.KeySendFailed))
	}
	return succeeded(c, p.T(i18n.KeySent))
}

func (h *ContactHandler) MethodNotAllowed(c fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, "POST, OPTIONS")
	return failed(c, fiber.StatusMethodNotAllowed, printer(c).T(i18n.KeyMethodNotAllowed))
}

// Info exposes the public contact details the page renders next to the form.
func (h *ContactHandler) Info(c fiber.Ctx) error {
	return ok(c, h.svc.Info())
}

// TooManyRequests is the limiter's LimitReached handler.
func (h *ContactHandler) TooManyRequests(c fiber.Ctx) error {
	return failed(c, fiber.StatusTooManyRequests, printer(c).T(i18n.KeyTooManyRequests))
}

func validationMessage(p *i18n.Printer, err *contact.ValidationError) string {
	switch err.Code {
	case contact.CodeInvalidEmail:
		return p.T(i18n.KeyInvalidEmail)
	case contact.CodeUnknownService:
		return p.T(i18n.KeyInvalidService)
	case contact.CodeTooLong:
		return p.T(i18n.KeyMessageTooLong, err.Limit)
	default:
		return p.T(i18n.KeyFieldRequired, err.Field)
	}
}
