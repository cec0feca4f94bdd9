package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/emtaxi/emtaxi_backend/config"
	"github.com/emtaxi/emtaxi_backend/internal/service/contact"
	"github.com/emtaxi/emtaxi_backend/pkg/email"
	"github.com/emtaxi/emtaxi_backend/pkg/observability"
	"github.com/emtaxi/emtaxi_backend/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideContactService,
	),
)

func ProvideContactService(
	cfg *config.Config,
	mailer *email.Client,
	smsCli *sms.Client,
	metrics *observability.SubmissionRecorder,
	logger *slog.Logger,
) contact.Service {
	var alerter contact.Alerter
	if smsCli.IsEnabled() {
		alerter = smsCli
	}
	return contact.New(cfg.Contact, mailer, alerter, metrics, logger)
}
