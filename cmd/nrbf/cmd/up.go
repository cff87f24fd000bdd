/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/netfossil/nrbf/pkg/api"
	"github.com/netfossil/nrbf/pkg/config"
)

// upCmd represents the up command
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Bootstrap and start the nrbf server",
	Long: `Bootstrap nrbf by creating configuration and an API key if
they don't exist, then start the REST API server. This is the
recommended way to get nrbf running.

Examples:
  nrbf up
  nrbf up --data-dir ./mydata --port 9000
  nrbf up --config ./custom-config.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")
		configPath, _ := cmd.Flags().GetString("config")
		printKeys, _ := cmd.Flags().GetBool("print-keys")

		// Use default config path if not specified
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		var cfg *config.Config
		var err error

		// Check if config exists
		if config.ConfigExists(configPath) {
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				cmd.Printf("Error loading existing config: %v\n", err)
				os.Exit(1)
			}
			cmd.Printf("✅ Loaded existing configuration from %s\n", configPath)
		} else {
			cmd.Printf("🔧 First run detected. Bootstrapping nrbf...\n")

			cfg, err = config.BootstrapConfig(configPath, dataDir)
			if err != nil {
				cmd.Printf("Error bootstrapping config: %v\n", err)
				os.Exit(1)
			}

			cmd.Printf("✅ Configuration created at %s\n", configPath)

			if printKeys {
				cmd.Printf("\n🔑 Generated Keys:\n")
				cmd.Printf("Client API Key: %s\n", cfg.Security.ClientAPIKey)
				cmd.Printf("\n⚠️  Store this key securely! It is also saved in %s\n", configPath)
			}
		}

		// Override config with command line flags if provided
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if port != 8080 { // Only override if explicitly set
			cfg.Port = port
		}
		if bind != "127.0.0.1" { // Only override if explicitly set
			cfg.Bind = bind
		}

		cmd.Printf("🚀 Starting nrbf server on %s:%d\n", cfg.Bind, cfg.Port)
		cmd.Printf("📁 Data directory: %s\n", cfg.DataDir)

		if container == nil {
			cmd.Printf("Error: dependency container not initialized\n")
			os.Exit(1)
		}

		streams, err := container.GetStreamStoreFactory().
			CreateStreamStore(cfg.DataDir, cfg.Limits.MaxStreamBytes)
		if err != nil {
			cmd.Printf("Error opening stream store: %v\n", err)
			os.Exit(1)
		}

		serverConfig := api.ServerConfig{
			Port:           cfg.Port,
			Bind:           cfg.Bind,
			APIKey:         cfg.Security.ClientAPIKey,
			DataDir:        cfg.DataDir,
			MaxStreamBytes: cfg.Limits.MaxStreamBytes,
		}

		starter := container.GetServerFactory().CreateServerStarter()
		if err := starter.StartServer(streams, serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(upCmd)

	upCmd.Flags().StringP("data-dir", "d", "", "Data directory for stored streams")
	upCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	upCmd.Flags().String("bind", "127.0.0.1", "Address to bind server to")
	upCmd.Flags().String("config", "", "Path to config file (default: OS-specific location)")
	upCmd.Flags().Bool("print-keys", false, "Print the generated API key to console")
}
