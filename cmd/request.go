package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/iothub-httpapi/internal/app"
	"github.com/oshokin/iothub-httpapi/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var requestCmd = &cobra.Command{
	Use:   "request [flags] {path}",
	Short: "Send one request to the hub and print the response.",
	Long: `Send one request to the configured hub.

The path is sent as is, including the query string. Only Host, User-Agent and
Content-Length are added when missing; every other header must be given with -H.

Example:
iothub-httpapi request -X POST -H "Authorization: SharedAccessSignature sr=..." \
  -H "Content-Type: application/json" -d '{"temperature":21.5}' \
  "/devices/dev-1/messages/events?api-version=2020-09-30"`,
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, args []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		opts, err := requestOptionsFromFlags(cmd.Flags(), args[0])
		if err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteRequestCommand(cmd.Context(), appConfig, opts)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	addRequestFlags(requestCmd.Flags())
	requestCmd.MarkFlagsMutuallyExclusive("data", "data-file")

	rootCmd.AddCommand(requestCmd)
}

func addRequestFlags(flags *pflag.FlagSet) {
	flags.String("host", "", "hub host name, overrides the configuration file.")
	flags.StringP("method", "X", "GET", "HTTP method: GET, POST, PUT, DELETE or PATCH.")
	flags.StringArrayP("header", "H", nil, "request header 'Name: Value', may be repeated; order is kept.")
	flags.StringP("data", "d", "", "request body.")
	flags.String("data-file", "", "read the request body from a file.")
	flags.StringP("output", "o", "", "save the response body to a file.")
	flags.StringP("timeout", "t", "", "response timeout, for example: 500ms, 10s, 1m.")
	flags.String("log-level", "", "log level: debug, info, warn, error.")
	flags.Bool("insecure", false, "skip server certificate verification.")
	flags.String("metrics-file", "", "write request metrics in Prometheus text format to this file.")
}

func requestOptionsFromFlags(flags *pflag.FlagSet, path string) (app.RequestOptions, error) {
	opts := app.RequestOptions{Path: path}

	var err error

	if opts.Method, err = flags.GetString("method"); err != nil {
		return opts, err
	}

	if opts.Headers, err = flags.GetStringArray("header"); err != nil {
		return opts, err
	}

	if opts.OutputPath, err = flags.GetString("output"); err != nil {
		return opts, err
	}

	data, err := flags.GetString("data")
	if err != nil {
		return opts, err
	}

	dataFile, err := flags.GetString("data-file")
	if err != nil {
		return opts, err
	}

	switch {
	case dataFile != "":
		opts.Data, err = os.ReadFile(dataFile)
		if err != nil {
			return opts, fmt.Errorf("failed to read request body: %w", err)
		}
	case data != "":
		opts.Data = []byte(data)
	}

	return opts, nil
}
