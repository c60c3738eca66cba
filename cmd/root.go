/*
Copyright © 2023 dimas maulana dimasmaulana0305@gmail.com
*/

// Package cmd provides command-line interface commands for teams-notifier
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dimasma0305/teams-notifier/internal/log"
	"github.com/dimasma0305/teams-notifier/internal/notifier"
	"github.com/dimasma0305/teams-notifier/internal/notifier/deploy"
	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
)

var (
	deployPath string
	service    string
	gitCommits int
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "teams-notifier",
	Short: "Deploy a site and announce it on a Teams webhook",
	Long: `teams-notifier runs your hosting provider's deploy command, picks the
deployed URL out of its output and posts a card to a Microsoft Teams
incoming webhook.

The project name and webhook URL are read from .teams-notifier-config.json
in the current directory (or next to the executable):

  {
    "projectName": "Marketing Site",
    "teamsUrl": "https://outlook.office.com/webhook/...",
    "options": { "themeColor": "0075FF" }
  }`,
	Example: `  # Deploy the current directory with now
  teams-notifier

  # Deploy ./public with netlify and list the last 3 commits
  teams-notifier --service netlify --path ./public --git-commits 3

  # Create a config file
  teams-notifier init`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// Enable debug mode if flag is set
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		workDir, err := os.Getwd()
		if err != nil {
			return err
		}

		opts := notifier.Options{}
		if cmd.Flags().Changed("service") {
			opts.Service = service
		}
		if cmd.Flags().Changed("path") {
			opts.Path = deployPath
		}
		if cmd.Flags().Changed("git-commits") {
			if gitCommits < 0 {
				return errors.Wrapf(errors.ErrUsage, "--git-commits must not be negative, got %d", gitCommits)
			}
			count := gitCommits
			opts.GitCommits = &count
		}

		cfg, err := notifier.LoadConfig(configPath, workDir)
		if err != nil {
			return err
		}
		n, err := notifier.New(cfg, workDir)
		if err != nil {
			return err
		}

		_, err = n.Run(cmd.Context(), opts)
		return err
	},
}

// Execute runs the command line and reports a failure on the console. The
// caller decides the exit code from the returned error.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(ctx, os.Args[1:])
}

func execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(normalizeArgs(args))
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		report(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default .teams-notifier-config.json in the current directory)")

	rootCmd.Flags().StringVarP(&deployPath, "path", "p", notifier.DefaultPath, "Path to the directory to deploy")
	rootCmd.Flags().StringVarP(&service, "service", "s", deploy.DefaultService, "Deploy command to run (now, netlify, ...)")
	rootCmd.Flags().IntVarP(&gitCommits, "git-commits", "g", 0, "Number of recent git commits to list in the notification (alias -gc)")
}
