package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

var errNoResponse = errors.New("no response from FINN")

func searchCmd() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "search <type>",
		Short: "Search FINN ads of one type",
		Long:  "Runs a search against FINN and prints the matching ads.",
		Example: `  finn search realestate-homes -p q=oslo
  finn search realestate-homes -p location=0.20061 -p page=2 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseParams(params)
			if err != nil {
				return err
			}
			return runSearch(cmd, args[0], values)
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "search parameter as key=value (repeatable)")

	return cmd
}

// parseParams turns key=value pairs into query values. Repeated keys keep
// every value in order.
func parseParams(pairs []string) (url.Values, error) {
	values := url.Values{}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", p)
		}
		values.Add(k, v)
	}
	return values, nil
}

func runSearch(cmd *cobra.Command, adType string, params url.Values) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newListingClient(cfg, newLogger(cfg))

	rs, err := client.Search(cmd.Context(), adType, params)
	if err != nil {
		return err
	}
	if rs == nil {
		return fmt.Errorf("searching %s: %w", adType, errNoResponse)
	}

	if jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), rs)
	}
	return printResultSet(cmd.OutOrStdout(), rs)
}
