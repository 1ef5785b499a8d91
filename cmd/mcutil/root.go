package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the mcutil CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcutil",
		Short: "Plugin utility toolkit",
		Long: `mcutil exercises the plugin utility helpers from the command line:
location strings, chat color codes, material and sound names, and
provisioned configuration files.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "toolkit config file path")

	cmd.AddCommand(newLocationCmd())
	cmd.AddCommand(newChatCmd())
	cmd.AddCommand(newEnumCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}
