package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emtaxi/emtaxi_backend/config"
	"github.com/emtaxi/emtaxi_backend/pkg/email"
)

func NewCheckConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-config",
		Short: "Load and validate the configuration, then print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			mail := email.FromCentralConfig(cfg.Email)
			if _, err := email.New(mail); err != nil {
				return fmt.Errorf("email: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "environment:   %s\n", cfg.Server.Environment)
			fmt.Fprintf(out, "listen:        :%d\n", cfg.Server.Port)
			fmt.Fprintf(out, "contact path:  %s (legacy %s)\n", cfg.Contact.Path, cfg.Contact.LegacyPath)
			fmt.Fprintf(out, "mailbox:       %s\n", cfg.Contact.OperatorMailbox)
			fmt.Fprintf(out, "smtp:          %s enabled=%t\n", mail.SMTP.Addr(), mail.Enabled)
			fmt.Fprintf(out, "rate limit:    %d per %ds enabled=%t redis=%t\n",
				cfg.RateLimit.RequestsPerWindow, cfg.RateLimit.WindowSeconds, cfg.RateLimit.Enabled, cfg.Redis.Enabled)
			fmt.Fprintf(out, "service types: %d\n", len(cfg.Contact.ServiceTypes))
			return nil
		},
	}

	return cmd
}
