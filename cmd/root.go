package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	contactcmd "github.com/emtaxi/emtaxi_backend/cmd/contact"
	httpcmd "github.com/emtaxi/emtaxi_backend/cmd/http"
	systemcmd "github.com/emtaxi/emtaxi_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "emtaxi",
	Short: "EM Taxi Touristique contact backend.",
	Long: `emtaxi serves the contact endpoint of the EM Taxi Touristique site:
it validates booking requests, mails them to the operator and answers the
form with a JSON result. It can also drive the contact form headlessly.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(contactcmd.NewContactCommand())
}
