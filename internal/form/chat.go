package form

import (
	"strings"

	"github.com/emtaxi/emtaxi_backend/pkg/i18n"
)

// ChatMessage is the pre-filled WhatsApp text for a submission. Phone and
// flight lines only appear when given.
func ChatMessage(p *i18n.Printer, f Fields) string {
	lines := []string{
		p.T(i18n.KeyChatGreeting),
		p.T(i18n.KeyChatIntro),
		p.T(i18n.KeyChatName, f.Name),
		p.T(i18n.KeyChatService, f.ServiceType),
		p.T(i18n.KeyChatEmail, f.Email),
	}
	if f.Phone != "" {
		lines = append(lines, p.T(i18n.KeyChatPhone, f.Phone))
	}
	if f.FlightNumber != "" {
		lines = append(lines, p.T(i18n.KeyChatFlight, f.FlightNumber))
	}
	lines = append(lines, p.T(i18n.KeyChatMessage, f.Message))
	return strings.Join(lines, "\n")
}
