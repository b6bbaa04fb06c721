package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rocketapi/pkg/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Long: `Write a configuration file with default values. The default
location is .rocketapi.yaml in the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ".rocketapi.yaml"
		if len(args) > 0 {
			path = args[0]
		}

		cfg := config.DefaultConfig()
		if err := cfg.Save(path); err != nil {
			return err
		}

		fmt.Println("Config written to", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Never print the raw token
		if len(cfg.API.Token) > 8 {
			cfg.API.Token = cfg.API.Token[:4] + "..." + cfg.API.Token[len(cfg.API.Token)-4:]
		} else if cfg.API.Token != "" {
			cfg.API.Token = "********"
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
