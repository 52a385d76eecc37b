// Package cmd implements the pulse command-line interface.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/PriyanshAroraa/CreatorPulse/api"
	"github.com/PriyanshAroraa/CreatorPulse/cache"
	"github.com/PriyanshAroraa/CreatorPulse/config"
)

var (
	flagConfig  string
	flagAPIURL  string
	flagToken   string
	flagOutput  string
	flagVerbose bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "CreatorPulse command-line client",
	Long: `pulse is the command-line client for the CreatorPulse comment-analytics
backend: connect YouTube channels, watch sync progress live, browse analyzed
comments, and query sentiment, community, and report data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		level := zerolog.WarnLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "backend base URL")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "bearer token for this invocation")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: table or json")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "skip confirmation prompts")
}

// app bundles the client, the shared channel store, and the cached views.
// One app serves one CLI invocation.
type app struct {
	cfg    *config.Config
	client *api.Client
	store  *cache.ChannelStore
	views  *cache.Views
}

func loadApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	if flagToken != "" {
		cfg.Token = flagToken
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}

	client, err := api.New(cfg.APIURL, api.WithTokenSource(cfg.TokenSource()))
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return &app{
		cfg:    cfg,
		client: client,
		store:  cache.NewChannelStore(client),
		views:  cache.NewViews(client),
	}, nil
}

func (a *app) timeout() time.Duration {
	if a.cfg.RequestTimeout > 0 {
		return a.cfg.RequestTimeout
	}
	return 30 * time.Second
}
