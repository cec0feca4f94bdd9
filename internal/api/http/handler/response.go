package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/emtaxi/emtaxi_backend/pkg/i18n"
)

// result is the envelope every contact reply uses.
type result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func succeeded(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusOK).JSON(result{Success: true, Message: msg})
}

func failed(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(result{Success: false, Message: msg})
}

func badRequest(c fiber.Ctx, msg string) error {
	return failed(c, fiber.StatusBadRequest, msg)
}

func internalError(c fiber.Ctx, msg string) error {
	return failed(c, fiber.StatusInternalServerError, msg)
}

// printer localizes from the Accept-Language header.
func printer(c fiber.Ctx) *i18n.Printer {
	return i18n.For(i18n.Match(c.Get(fiber.HeaderAcceptLanguage)))
}

// fiberErrorKeys localizes the framework errors a visitor can trigger.
var fiberErrorKeys = map[int]string{
	fiber.StatusBadRequest:            i18n.KeyBadRequest,
	fiber.StatusNotFound:              i18n.KeyNotFound,
	fiber.StatusMethodNotAllowed:      i18n.KeyMethodNotAllowed,
	fiber.StatusRequestEntityTooLarge: i18n.KeyBodyTooLarge,
	fiber.StatusTooManyRequests:       i18n.KeyTooManyRequests,
}

// ErrorHandler renders errors that escape handlers (body too large, unknown
// route, panics turned into errors) with the same envelope. Messages always
// come from the catalogue; fiber's own English text is never sent.
func ErrorHandler(c fiber.Ctx, err error) error {
	p := printer(c)
	code := fiber.StatusInternalServerError
	msg := p.T(i18n.KeySendFailed)

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if key, ok := fiberErrorKeys[code]; ok {
			msg = p.T(key)
		} else if code < fiber.StatusInternalServerError {
			msg = p.T(i18n.KeyBadRequest)
		}
	}
	return failed(c, code, msg)
}
