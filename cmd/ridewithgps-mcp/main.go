package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/boezzz/ridewithgps-mcp/internal/config"
	"github.com/boezzz/ridewithgps-mcp/rwgps"
	"github.com/boezzz/ridewithgps-mcp/tools"
)

var rootCmd = &cobra.Command{
	Use:   "ridewithgps-mcp",
	Short: "An MCP server for the RideWithGPS API",
	Long: `ridewithgps-mcp exposes the RideWithGPS API as Model Context Protocol
tools over stdio, so an AI assistant can look up your routes, trips, events,
and profile, and fetch incremental changes.

Credentials are read from the environment (a .env file is honored):

  RWGPS_API_KEY     RideWithGPS API key
  RWGPS_AUTH_TOKEN  RideWithGPS auth token

Values may be 1Password secret references (op://vault/item/field).

Claude Desktop configuration (claude_desktop_config.json):

  {
    "mcpServers": {
      "ridewithgps": {
        "command": "ridewithgps-mcp",
        "env": {
          "RWGPS_API_KEY": "...",
          "RWGPS_AUTH_TOKEN": "..."
        }
      }
    }
  }

Diagnostics go to stderr; stdout carries protocol traffic only.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		g, ctx := errgroup.WithContext(ctx)

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		if !verbose {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}

		g.Go(func() error {
			if err := godotenv.Load(envFile); err == nil {
				logger.Info("loaded environment file", "file", envFile)
			}

			cfg, err := config.FromEnv(ctx)
			if err != nil {
				return err
			}

			fileCfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			cfg.Apply(fileCfg)

			retryClient := retryablehttp.NewClient()
			retryClient.RetryMax = retries
			retryClient.RetryWaitMin = 1 * time.Second
			retryClient.RetryWaitMax = 30 * time.Second
			retryClient.HTTPClient.Timeout = timeout
			retryClient.Logger = logger

			clientOpts := []rwgps.ClientOption{
				rwgps.WithHTTPClient(retryClient.StandardClient()),
				rwgps.WithLogger(logger),
			}
			if cfg.BaseURL != "" {
				clientOpts = append(clientOpts, rwgps.WithBaseURL(cfg.BaseURL))
			}

			client, err := rwgps.NewClient(cfg.APIKey, cfg.AuthToken, clientOpts...)
			if err != nil {
				return err
			}

			server := tools.NewServer(client,
				tools.WithLogger(logger),
				tools.WithDisabledTools(cfg.DisabledTools),
			)

			logger.Info("serving MCP over stdio")
			return server.Run(ctx, &mcp.StdioTransport{})
		})

		return g.Wait()
	},
}

var (
	verbose    bool
	retries    int
	timeout    time.Duration
	configPath string
	envFile    string

	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.Flags().IntVar(&retries, "retries", 0, "Maximum number of retries for failed requests (0 disables retry)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "HTTP request timeout")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to an optional YAML config file")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Path to an optional .env file")

	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built at: %s)", version, commit, date)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
