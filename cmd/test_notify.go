package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dimasma0305/teams-notifier/internal/log"
	"github.com/dimasma0305/teams-notifier/internal/notifier"
	"github.com/dimasma0305/teams-notifier/internal/notifier/notify"
)

var testURL string

var testNotifyCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a sample notification without deploying",
	Long: `Send a sample deployment notification to the configured webhook.

Nothing is deployed. Use it to check that teamsUrl is correct.`,
	Example: `  teams-notifier test
  teams-notifier test --url https://staging.example.com`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		workDir, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := notifier.LoadConfig(configPath, workDir)
		if err != nil {
			return err
		}
		sender, err := notify.New(cfg)
		if err != nil {
			return err
		}

		d := notify.NewDeployment(cfg, testURL, []notify.Fact{
			{Name: "Latest commit:", Value: "This is a test notification"},
		}, time.Now())

		if err := sender.Send(cmd.Context(), d); err != nil {
			notifier.ReportNotifyFailure(cfg.TeamsURL, err)
			return fmt.Errorf("test notification failed")
		}
		log.Success("Test notification posted to %s", cfg.TeamsURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testNotifyCmd)

	testNotifyCmd.Flags().StringVar(&testURL, "url", "https://example.com", "Site URL shown in the sample notification")
}
