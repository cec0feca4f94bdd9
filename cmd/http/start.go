package http

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/emtaxi/emtaxi_backend/config"
	httpapi "github.com/emtaxi/emtaxi_backend/internal/api/http"
	"github.com/emtaxi/emtaxi_backend/pkg/logs"
)

func NewStartCommand() *cobra.Command {
	var (
		shutdownTimeout time.Duration
		port            int
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the contact endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			// Logger first, so fx hooks and providers log through it.
			slog.SetDefault(logs.New(cfg))
			slog.Info("starting contact endpoint",
				"environment", cfg.Server.Environment,
				"mailbox", cfg.Contact.OperatorMailbox,
				"email_enabled", cfg.Email.Enabled,
				"redis_enabled", cfg.Redis.Enabled,
			)

			fxApp := fx.New(
				httpapi.Options(cfg, shutdownTimeout),
				fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
			)
			if err := fxApp.Err(); err != nil {
				return err
			}

			fxApp.Run()
			return nil
		},
	}

	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "Maximum time to wait for graceful shutdown")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port, overrides server.port")

	return cmd
}
