package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/oriole/internal/app"
	"github.com/MKhiriev/oriole/internal/config"
	"github.com/MKhiriev/oriole/models"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "oriole",
		Short:         "Routing and bearer-token gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(flags),
		newIssueCmd(flags),
	)

	return root
}

// loadApp merges flags with the other config sources and builds the App.
func loadApp(flags *config.StructuredConfig) (*app.App, error) {
	cfg, err := config.GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := newLogger(cfg.Debug, cfg.Log.Level, cfg.Log.Options)
	log.Debug().Str("config_file", cfg.ConfigFilePath).Int("routes", len(cfg.Routes)).Msg("received configs")

	return app.New(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
}

func newServeCmd(flags *config.StructuredConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the configured routes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			printBuildInfo()

			a, err := loadApp(flags)
			if err != nil {
				return err
			}

			return a.Serve()
		},
	}
}

func newIssueCmd(flags *config.StructuredConfig) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "jwt:issue <subject> <scopes...>",
		Short: "Issue a bearer token for a subject",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(flags)
			if err != nil {
				return err
			}

			token, claims, err := a.IssueToken(args[0], args[1:], ttl)
			if err != nil {
				return fmt.Errorf("error issuing token: %w", err)
			}

			return printToken(cmd.OutOrStdout(), token, claims)
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default: the configured TTL)")

	return cmd
}

func printToken(w io.Writer, token string, claims map[string]any) error {
	out, err := json.MarshalIndent(claims, "", "  ")
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "Bearer Token: %s\n", token); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Claims: %s\n", out)
	return err
}
