/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/netfossil/nrbf/pkg/api"
	"github.com/netfossil/nrbf/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the nrbf REST API server. Uploaded streams are decoded,
validated and persisted; their record graphs are served back as JSON.

Examples:
  nrbf serve --api-key=mysecretkey --port=8080
  nrbf serve --api-key=mysecretkey --data-dir=./data`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")
		apiKey, _ := cmd.Flags().GetString("api-key")
		dataDir, _ := cmd.Flags().GetString("data-dir")
		maxBytes, _ := cmd.Flags().GetInt64("max-stream-bytes")

		if apiKey == "" {
			cmd.Println("Error: --api-key is required")
			return
		}
		if dataDir == "" {
			dataDir = "./data"
		}
		if maxBytes == 0 {
			maxBytes = config.DefaultMaxStreamBytes
		}

		if container == nil {
			cmd.Println("Error: dependency container not initialized")
			return
		}

		streams, err := container.GetStreamStoreFactory().CreateStreamStore(dataDir, maxBytes)
		if err != nil {
			cmd.Printf("Error opening stream store: %v\n", err)
			return
		}

		serverConfig := api.ServerConfig{
			Port:           port,
			Bind:           bind,
			APIKey:         apiKey,
			DataDir:        dataDir,
			MaxStreamBytes: maxBytes,
		}

		starter := container.GetServerFactory().CreateServerStarter()
		if err := starter.StartServer(streams, serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind server to")
	serveCmd.Flags().String("api-key", "", "API key for client authentication (required)")
	serveCmd.Flags().String("data-dir", "./data", "Data directory for stored streams")
	serveCmd.Flags().Int64("max-stream-bytes", 0, "Per-stream size limit in bytes")
	serveCmd.MarkFlagRequired("api-key")
}
