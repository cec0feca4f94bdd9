package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emtaxi/emtaxi_backend/config"
	"github.com/emtaxi/emtaxi_backend/internal/form"
	"github.com/emtaxi/emtaxi_backend/pkg/logs"
)

type submitFlags struct {
	endpoint string
	language string
	pageURL  string
	open     bool
	fields   form.Fields
}

func NewSubmitCommand() *cobra.Command {
	var f submitFlags

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Fill the contact form and submit it to the endpoint",
		Long: `Fill the contact form from flags and submit it the way the site does:
required fields and the message length are checked locally, the request is
posted as JSON, and on success the pre-filled WhatsApp link is printed
(or opened with --open).`,
		Example: `  emtaxi contact submit --name "Jean Dupont" --email jean@example.com \
    --service Standard --message "Bonjour, une course demain à 9h"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}
			logger := logs.New(cfg)

			if f.endpoint != "" {
				cfg.Form.Endpoint = f.endpoint
			}
			if f.language != "" {
				cfg.Form.Language = f.language
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runSubmit(ctx, cmd.OutOrStdout(), cfg, f, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.fields.Name, "name", "", "visitor name")
	flags.StringVar(&f.fields.Email, "email", "", "visitor e-mail")
	flags.StringVar(&f.fields.Phone, "phone", "", "visitor phone (optional)")
	flags.StringVar(&f.fields.ServiceType, "service", "", "service type, e.g. Standard or Premium")
	flags.StringVar(&f.fields.FlightNumber, "flight", "", "flight number (optional)")
	flags.StringVar(&f.fields.Message, "message", "", "message, at most the configured length")
	flags.StringVar(&f.pageURL, "page-url", "", "page address to prefill the service from, e.g. https://emtaxi.fr/#contact?service=Premium")
	flags.StringVar(&f.endpoint, "endpoint", "", "contact endpoint (default form.endpoint)")
	flags.StringVar(&f.language, "lang", "", "fr or en (default form.language)")
	flags.BoolVar(&f.open, "open", false, "open the WhatsApp link in the browser instead of printing it")

	return cmd
}

func runSubmit(ctx context.Context, out io.Writer, cfg *config.Config, f submitFlags, logger *slog.Logger) error {
	var opener form.Opener = form.PrintOpener{W: out}
	if f.open {
		opener = form.BrowserOpener{}
	}

	c := form.NewController(
		form.ConfigFromCentral(cfg),
		form.NewHTTPSubmitter(cfg.Form.Endpoint, cfg.Form.Language),
		opener,
		logger,
	)
	defer c.Close()

	if f.pageURL != "" {
		c.Prefill(f.pageURL)
	}
	for field, v := range map[form.Field]string{
		form.FieldName:         f.fields.Name,
		form.FieldEmail:        f.fields.Email,
		form.FieldPhone:        f.fields.Phone,
		form.FieldServiceType:  f.fields.ServiceType,
		form.FieldFlightNumber: f.fields.FlightNumber,
		form.FieldMessage:      f.fields.Message,
	} {
		if v != "" {
			c.Edit(field, v)
		}
	}

	res, err := c.Submit(ctx)
	if err != nil {
		var fe *form.FieldError
		if errors.As(err, &fe) {
			return errors.New(res.State.Banner)
		}
		return err
	}

	fmt.Fprintf(out, "[%s] %s\n", res.State.Status, res.State.Banner)
	if res.State.Status != form.StatusSuccess {
		return fmt.Errorf("submission failed: %s", res.State.Banner)
	}
	return nil
}
