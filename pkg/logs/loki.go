package logs

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/grafana/loki-client-go/loki"
	slogloki "github.com/samber/slog-loki/v3"

	"github.com/emtaxi/emtaxi_backend/config"
)

const lokiPushPath = "/loki/api/v1/push"

func newLokiHandler(cfg *config.Config, level slog.Level) (slog.Handler, error) {
	lc := cfg.Logging.Output.Loki
	if strings.TrimSpace(lc.Endpoint) == "" {
		return nil, errors.New("logging.output.loki.endpoint is empty")
	}

	lokiCfg, err := loki.NewDefaultConfig(strings.TrimRight(lc.Endpoint, "/") + lokiPushPath)
	if err != nil {
		return nil, err
	}
	lokiCfg.TenantID = lc.TenantID

	client, err := loki.New(lokiCfg)
	if err != nil {
		return nil, err
	}

	return slogloki.Option{
		Level:  level,
		Client: client,
	}.NewLokiHandler().WithAttrs([]slog.Attr{
		slog.String("service", cfg.Observability.ServiceName),
		slog.String("env", cfg.Server.Environment),
	}), nil
}
