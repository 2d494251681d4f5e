package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/webblaze/projectflow-be/logger"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "projectflow-be",
	Short: "Multi-tenant project management backend",
	Long: `projectflow-be serves the ProjectFlow API: company and employee
accounts, teams, projects with phases and subtasks, tasks, password
reset and two-factor authentication.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{Level: logLevel})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config/config.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}
