package contact

import (
	"strings"

	"github.com/emtaxi/emtaxi_backend/config"
	"github.com/emtaxi/emtaxi_backend/pkg/email"
	"github.com/emtaxi/emtaxi_backend/pkg/i18n"
)

// notification is the operator e-mail for one submission.
type notification struct {
	Subject string
	Text    string
	HTML    string
}

const notificationText = `{{ title }}
{% if reference %}Référence: {{ reference }}
{% endif %}
Nom: {{ name }}
Email: {{ email }}
Téléphone: {{ phone }}
Type de service: {{ service }}
{% if flight %}Vol: {{ flight }}
{% endif %}
Message:
{{ message }}

--
{{ footer }}
`

const notificationHTML = `<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; border: 1px solid #eee; border-radius: 10px; overflow: hidden; }
.header { background: #1a1a1a; padding: 20px; text-align: center; }
.header img { max-width: 150px; }
.content { padding: 30px; }
.field { margin-bottom: 20px; }
.label { font-weight: bold; color: #ff6b35; display: block; margin-bottom: 5px; text-transform: uppercase; font-size: 12px; }
.value { font-size: 16px; background: #f9f9f9; padding: 10px; border-radius: 5px; }
.footer { background: #f4f4f4; padding: 20px; text-align: center; font-size: 12px; color: #777; }
</style>
</head>
<body>
<div class="container">
{% if logo %}<div class="header"><img src="{{ logo }}" alt="{{ site }}"></div>{% endif %}
<div class="content">
<h2 style="text-align: center; color: #1a1a1a;">{{ title }}</h2>
{% if reference %}<p style="text-align: center; color: #777;">Référence {{ reference }}</p>{% endif %}
<div class="field"><span class="label">Nom complet</span><div class="value">{{ name }}</div></div>
<div class="field"><span class="label">Email</span><div class="value">{{ email }}</div></div>
<div class="field"><span class="label">Téléphone</span><div class="value">{{ phone }}</div></div>
<div class="field"><span class="label">Type de Service</span><div class="value">{{ service }}</div></div>
{% if flight %}<div class="field"><span class="label">Vol</span><div class="value">{{ flight }}</div></div>{% endif %}
<div class="field"><span class="label">Message</span><div class="value">{% for line in lines %}{{ line }}{% if not forloop.Last %}<br>{% endif %}{% endfor %}</div></div>
</div>
<div class="footer">{{ footer }}</div>
</div>
</body>
</html>
`

var notificationTemplate = email.MustTemplate("contact_notification", notificationText, notificationHTML)

// renderNotification builds the operator e-mail. The operator reads French,
// whatever language the visitor used.
func renderNotification(cfg config.ContactConfig, sub Request, ref string) (notification, error) {
	p := i18n.For(i18n.French)

	phoneValue := sub.Phone
	if phoneValue == "" {
		phoneValue = p.T(i18n.KeyNotifyNotProvided)
	}

	text, html, err := notificationTemplate.Render(map[string]any{
		"title":     p.T(i18n.KeyNotifyTitle),
		"footer":    p.T(i18n.KeyNotifyFooter, cfg.SiteName),
		"site":      cfg.SiteName,
		"logo":      cfg.LogoURL,
		"reference": ref,
		"name":      sub.Name,
		"email":     sub.Email,
		"phone":     phoneValue,
		"service":   sub.ServiceType,
		"flight":    sub.FlightNumber,
		"message":   sub.Message,
		"lines":     strings.Split(sub.Message, "\n"),
	})
	if err != nil {
		return notification{}, err
	}

	return notification{
		Subject: p.T(i18n.KeyNotifySubject, sub.ServiceType, cfg.SiteName),
		Text:    text,
		HTML:    html,
	}, nil
}
