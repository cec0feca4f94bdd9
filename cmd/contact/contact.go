package contact

import "github.com/spf13/cobra"

func NewContactCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Drive the contact form without a browser",
	}

	cmd.AddCommand(NewSubmitCommand())

	return cmd
}
