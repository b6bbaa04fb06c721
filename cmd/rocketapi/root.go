package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"rocketapi/pkg/api"
	"rocketapi/pkg/auth"
	"rocketapi/pkg/config"
	"rocketapi/pkg/instagram"
	"rocketapi/pkg/logger"
	"rocketapi/pkg/threads"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	apiToken   string
	baseURL    string
	timeout    time.Duration
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rocketapi",
	Short: "Command-line client for the RocketAPI Instagram and Threads API",
	Long: `rocketapi is a command-line client for the RocketAPI service,
covering the Instagram and Threads endpoints.

Tokens can be provided via the --token flag, the ROCKETAPI_TOKEN
environment variable, a config file, or stored securely with
'rocketapi auth login'.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is .rocketapi.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "RocketAPI access token")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout (e.g. 30s)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.SetVersionTemplate(`rocketapi {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig loads configuration from all sources. When no token is
// configured it falls back to the stored token from the auth manager.
func loadConfig() (*config.Config, error) {
	flags := make(map[string]interface{})
	if apiToken != "" {
		flags["token"] = apiToken
	}
	if baseURL != "" {
		flags["base-url"] = baseURL
	}
	if timeout > 0 {
		flags["timeout"] = timeout
	}
	if logLevel != "" {
		flags["log-level"] = logLevel
	}

	cfg := config.DefaultConfig()
	if err := cfg.LoadFromFile(configFile); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg.MergeCommandLineFlags(flags)

	if cfg.API.Token == "" {
		if manager, err := auth.NewManager(); err == nil {
			if token, err := manager.RetrieveDefault(); err == nil {
				cfg.API.Token = token.Value
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// newTransport builds the shared API transport from the loaded configuration
func newTransport() (*api.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client := api.NewClient(cfg.API.Token, cfg.API.Timeout, logger.GetLogger())
	if cfg.API.BaseURL != config.DefaultBaseURL {
		client.SetBaseURL(cfg.API.BaseURL)
	}

	return client, nil
}

// newInstagramAPI builds the Instagram facade for command handlers
func newInstagramAPI() (*instagram.API, error) {
	client, err := newTransport()
	if err != nil {
		return nil, err
	}
	return instagram.NewWithClient(client), nil
}

// newThreadsAPI builds the Threads facade for command handlers
func newThreadsAPI() (*threads.API, error) {
	client, err := newTransport()
	if err != nil {
		return nil, err
	}
	return threads.NewWithClient(client), nil
}

// printJSON prints any payload as indented JSON to stdout
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// parseID parses a numeric command argument
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be numeric", arg)
	}
	return id, nil
}
