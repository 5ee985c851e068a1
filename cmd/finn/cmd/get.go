package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <type> <finncode>",
		Short:   "Fetch one FINN ad",
		Example: `  finn get realestate-homes 123456789`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := newListingClient(cfg, newLogger(cfg))

			l, err := client.GetObject(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if l == nil {
				return fmt.Errorf("getting %s/%s: %w", args[0], args[1], errNoResponse)
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), l)
			}
			return printListingDetail(cmd.OutOrStdout(), l)
		},
	}
}
