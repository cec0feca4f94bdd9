// Package i18n holds the user-facing strings of the contact flow in French
// and English, and picks one from an Accept-Language header.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	KeyFieldRequired    = "field_required"
	KeyInvalidJSON      = "invalid_json"
	KeyInvalidEmail     = "invalid_email"
	KeyInvalidService   = "invalid_service"
	KeyMessageTooLong   = "message_too_long"
	KeyMethodNotAllowed = "method_not_allowed"
	KeySent             = "sent"
	KeySendFailed       = "send_failed"
	KeyTooManyRequests  = "too_many_requests"
	KeyNotFound         = "not_found"
	KeyBodyTooLarge     = "body_too_large"
	KeyBadRequest       = "bad_request"

	KeyBannerSuccess     = "banner_success"
	KeyBannerError       = "banner_error"
	KeyBannerNetwork     = "banner_network"
	KeyBannerPopup       = "banner_popup_blocked"
	KeyBannerBusy        = "banner_busy"
	KeyChatGreeting      = "chat_greeting"
	KeyChatIntro         = "chat_intro"
	KeyChatName          = "chat_name"
	KeyChatService       = "chat_service"
	KeyChatEmail         = "chat_email"
	KeyChatPhone         = "chat_phone"
	KeyChatFlight        = "chat_flight"
	KeyChatMessage       = "chat_message"
	KeyNotifySubject     = "notify_subject"
	KeyNotifyTitle       = "notify_title"
	KeyNotifyFooter      = "notify_footer"
	KeyNotifyNotProvided = "notify_not_provided"
)

var (
	French  = language.French
	English = language.English

	// Supported lists French first; it is the fallback.
	Supported = []language.Tag{French, English}
)

var entries = map[language.Tag]map[string]string{
	French: {
		KeyFieldRequired:    "Le champ '%s' est requis",
		KeyInvalidJSON:      "Requête invalide",
		KeyInvalidEmail:     "Adresse email invalide",
		KeyInvalidService:   "Type de service inconnu",
		KeyMessageTooLong:   "Le message ne doit pas dépasser %d caractères",
		KeyMethodNotAllowed: "Method not allowed",
		KeySent:             "Votre message a été envoyé avec succès !",
		KeySendFailed:       "Erreur lors de l'envoi du message. Veuillez réessayer.",
		KeyTooManyRequests:  "Trop de demandes. Veuillez patienter avant de réessayer.",
		KeyNotFound:         "Ressource introuvable",
		KeyBodyTooLarge:     "La requête est trop volumineuse",
		KeyBadRequest:       "Requête invalide",

		KeyBannerSuccess: "Votre message a été envoyé avec succès ! Nous vous contacterons bientôt.",
		KeyBannerError:   "Une erreur est survenue. Veuillez réessayer ou nous contacter par téléphone.",
		KeyBannerNetwork: "Impossible de joindre le serveur. Vérifiez votre connexion et réessayez.",
		KeyBannerPopup:   "Votre message a bien été envoyé, mais WhatsApp n'a pas pu s'ouvrir automatiquement.",
		KeyBannerBusy:    "Envoi déjà en cours.",

		KeyChatGreeting: "Bonjour EM Taxi,",
		KeyChatIntro:    "Une nouvelle demande de service a été envoyée :",
		KeyChatName:     "*Nom*: %s",
		KeyChatService:  "*Service*: %s",
		KeyChatEmail:    "*Email*: %s",
		KeyChatPhone:    "*Téléphone*: %s",
		KeyChatFlight:   "*Vol*: %s",
		KeyChatMessage:  "*Message*: %s",

		KeyNotifySubject:     "Nouvelle réservation - %s - %s",
		KeyNotifyTitle:       "Nouvelle Demande de Service",
		KeyNotifyFooter:      "Cet email a été envoyé depuis le formulaire de contact de %s.",
		KeyNotifyNotProvided: "Non fourni",
	},
	English: {
		KeyFieldRequired:    "The '%s' field is required",
		KeyInvalidJSON:      "Invalid request",
		KeyInvalidEmail:     "Invalid email address",
		KeyInvalidService:   "Unknown service type",
		KeyMessageTooLong:   "The message must not exceed %d characters",
		KeyMethodNotAllowed: "Method not allowed",
		KeySent:             "Your message has been sent successfully!",
		KeySendFailed:       "Error while sending the message. Please try again.",
		KeyTooManyRequests:  "Too many requests. Please wait before trying again.",
		KeyNotFound:         "Resource not found",
		KeyBodyTooLarge:     "Request body is too large",
		KeyBadRequest:       "Invalid request",

		KeyBannerSuccess: "Your message has been sent successfully! We will contact you soon.",
		KeyBannerError:   "An error occurred. Please try again or call us.",
		KeyBannerNetwork: "Unable to reach the server. Check your connection and try again.",
		KeyBannerPopup:   "Your message was sent, but WhatsApp could not be opened automatically.",
		KeyBannerBusy:    "A submission is already in progress.",

		KeyChatGreeting: "Hello EM Taxi,",
		KeyChatIntro:    "A new service request has been sent:",
		KeyChatName:     "*Name*: %s",
		KeyChatService:  "*Service*: %s",
		KeyChatEmail:    "*Email*: %s",
		KeyChatPhone:    "*Phone*: %s",
		KeyChatFlight:   "*Flight*: %s",
		KeyChatMessage:  "*Message*: %s",

		KeyNotifySubject:     "New booking - %s - %s",
		KeyNotifyTitle:       "New Service Request",
		KeyNotifyFooter:      "This email was sent from the %s contact form.",
		KeyNotifyNotProvided: "Not provided",
	},
}

var (
	cat     = buildCatalog()
	matcher = language.NewMatcher(Supported)
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(French))
	for tag, msgs := range entries {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Match picks the best supported language for an Accept-Language header
// value or a bare tag such as "en". Empty or unparsable input yields French.
func Match(acceptLanguage string) language.Tag {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return French
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return French
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return French
	}
	return Supported[idx]
}

// Printer formats messages for one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// For returns a Printer for tag; unsupported tags fall back to French.
func For(tag language.Tag) *Printer {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	t := Supported[idx]
	return &Printer{tag: t, p: message.NewPrinter(t, message.Catalog(cat))}
}

// Tag is the language the printer renders.
func (p *Printer) Tag() language.Tag { return p.tag }

// T renders key with args.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}
