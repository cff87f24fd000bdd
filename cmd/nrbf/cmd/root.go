/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/netfossil/nrbf/pkg/di"
)

// container holds the application dependencies, injected by main
var container *di.Container

// SetContainer injects the dependency container
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nrbf",
	Short: "nrbf - .NET binary serialization stream decoder",
	Long: `nrbf decodes .NET BinaryFormatter streams into a resolved
object graph: inspect records from the command line, or serve decoded
graphs over a REST API.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
