// Package cmd implements the finn CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/finn-client/internal/api/client"
	"github.com/donaldgifford/finn-client/internal/config"
	"github.com/donaldgifford/finn-client/internal/finn"
	"github.com/donaldgifford/finn-client/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "finn",
		Short: "Client for the FINN listings API",
		Long: "finn searches and fetches ads from the FINN listings API and\n" +
			"prints them as tables or JSON. It can also run a small JSON\n" +
			"proxy in front of the API.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/.finn.yaml)")
	flags.String("base-url", config.DefaultBaseURL, "FINN API base URL")
	flags.String("user-agent", "", "User-Agent sent to FINN")
	flags.String("remote", "", "finn-client server URL; when set, search and get go through its API")
	flags.String("output", "table", "output format (table, json)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	cobra.CheckErr(viper.BindPFlag("api.base_url", flags.Lookup("base-url")))
	cobra.CheckErr(viper.BindPFlag("api.user_agent", flags.Lookup("user-agent")))
	cobra.CheckErr(viper.BindPFlag("remote", flags.Lookup("remote")))
	cobra.CheckErr(viper.BindPFlag("output", flags.Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("logging.level", flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("logging.format", flags.Lookup("log-format")))

	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(getCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".finn")
	}

	viper.SetEnvPrefix("FINN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig reads the config file found by viper, if any, and overlays
// flags and FINN_* environment variables on top.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if path := viper.ConfigFileUsed(); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	overlay(&cfg.API.BaseURL, "api.base_url")
	overlay(&cfg.API.UserAgent, "api.user_agent")
	overlay(&cfg.Logging.Level, "logging.level")
	overlay(&cfg.Logging.Format, "logging.format")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func overlay(dst *string, key string) {
	if viper.IsSet(key) {
		if v := viper.GetString(key); v != "" {
			*dst = v
		}
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.Logging.Level, cfg.Logging.Format)
}

// newListingClient returns a client for a running finn-client server when
// --remote is set, and a direct FINN client otherwise.
func newListingClient(cfg *config.Config, log *slog.Logger) finn.ListingClient {
	if remote := viper.GetString("remote"); remote != "" {
		log.Debug("using remote finn-client server", "url", remote)
		return client.New(remote, client.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))
	}
	return newClient(cfg, log)
}

// newClient assembles the FINN client from configuration.
func newClient(cfg *config.Config, log *slog.Logger) *finn.Client {
	rl := cfg.API.RateLimit
	transport := finn.NewHTTPTransport(
		finn.WithUserAgent(cfg.API.UserAgent),
		finn.WithHeaders(cfg.API.Headers),
		finn.WithTimeout(cfg.API.Timeout),
		finn.WithRateLimiter(finn.NewRateLimiter(rl.PerSecond, rl.Burst, rl.DailyLimit)),
	)

	return finn.NewClient(transport,
		finn.WithBaseURL(cfg.API.BaseURL),
		finn.WithLogger(log),
	)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
