package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"CapIot.esp32mock/internal/client"
	"CapIot.esp32mock/internal/probe"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	url      string
	timeout  time.Duration
	logLevel string

	logger zerolog.Logger
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.url, client.Options{Timeout: o.timeout})
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "esp32probe",
		Short: "Query and validate an ESP32 sensor device (or the mock server).",
		Long: `esp32probe talks to the device HTTP API.

It can print a single reading, print the health document, or sample every
endpoint repeatedly and report any value outside the documented ranges.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", opts.logLevel, err)
			}
			consoleWriter := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}
			opts.logger = zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
			opts.logger.Debug().Str("url", opts.url).Msg("Logger initialized")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.url, "url", "http://localhost:80", "Base URL of the device")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 5*time.Second, "Per-request timeout")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Set the logging level (trace, debug, info, warn, error)")

	root.AddCommand(newStatusCmd(opts), newHealthCmd(opts), newCheckCmd(opts))
	return root
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Print one full reading with recommendations",
		Example: "  esp32probe status --url http://192.168.1.100",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := opts.client().Status(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), status)
		},
	}
}

func newHealthCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Print the device health document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := opts.client().Health(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), health)
		},
	}
}

type checkResult struct {
	OK         bool           `json:"ok"`
	Samples    map[string]int `json:"samples"`
	Violations []string       `json:"violations"`
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var samples int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Sample every endpoint and validate ranges, units and thresholds",
		Long: `check requests every endpoint --samples times and validates each response.
It exits non-zero when any violation is found.`,
		Example: "  esp32probe check --samples 200 --url http://localhost:8080",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			checker := probe.NewChecker(opts.client(), opts.logger)
			report, err := checker.Run(cmd.Context(), samples)
			if err != nil {
				return err
			}

			result := checkResult{OK: report.OK(), Samples: report.Samples, Violations: []string{}}
			for _, v := range report.Violations {
				result.Violations = append(result.Violations, v.String())
			}
			if err := printJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if !report.OK() {
				return fmt.Errorf("%d violations found", len(report.Violations))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&samples, "samples", "n", 100, "Number of times each endpoint is requested")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
