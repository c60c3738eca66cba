package cmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dimasma0305/teams-notifier/internal/log"
	"github.com/dimasma0305/teams-notifier/internal/notifier/config"
	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
)

var (
	initProject    string
	initTeamsURL   string
	initThemeColor string
	initFormat     string
	initForce      bool
)

// interactive reports whether missing values may be prompted for
var interactive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i"},
	Short:   "Create a .teams-notifier-config.json in the current directory",
	Long: `Create the config file read by teams-notifier.

You can provide values via flags or be prompted for input interactively.
An existing config file is only replaced when --force is given.`,
	Example: `  # Initialize with prompts
  teams-notifier init

  # Initialize with flags
  teams-notifier init --project "Marketing Site" --teams-url https://outlook.office.com/webhook/...`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		workDir, err := os.Getwd()
		if err != nil {
			return err
		}
		path := filepath.Join(workDir, config.FileName)
		if _, err := os.Stat(path); err == nil && !initForce {
			return errors.Wrapf(errors.ErrUsage, "%s already exists, use --force to replace it", path)
		}

		answers := initAnswers{
			ProjectName: initProject,
			TeamsURL:    initTeamsURL,
			ThemeColor:  initThemeColor,
		}
		if answers.ProjectName == "" || answers.TeamsURL == "" {
			if !interactive() {
				return errors.Wrap(errors.ErrUsage, "--project and --teams-url are required when not running in a terminal")
			}
			if err := askMissing(&answers); err != nil {
				return err
			}
		}

		cfg := &config.Config{
			ProjectName: answers.ProjectName,
			TeamsURL:    answers.TeamsURL,
		}
		if answers.ThemeColor != "" || initFormat != "" {
			cfg.Options = &config.Options{ThemeColor: answers.ThemeColor, Format: initFormat}
		}
		if err := config.Write(path, cfg); err != nil {
			return err
		}

		log.Success("Created %s", path)
		return nil
	},
}

type initAnswers struct {
	ProjectName string `survey:"projectName"`
	TeamsURL    string `survey:"teamsUrl"`
	ThemeColor  string `survey:"themeColor"`
}

func askMissing(answers *initAnswers) error {
	var questions []*survey.Question
	if answers.ProjectName == "" {
		questions = append(questions, &survey.Question{
			Name:     "projectName",
			Prompt:   &survey.Input{Message: "Project name:"},
			Validate: survey.Required,
		})
	}
	if answers.TeamsURL == "" {
		questions = append(questions, &survey.Question{
			Name:     "teamsUrl",
			Prompt:   &survey.Input{Message: "Teams webhook URL:"},
			Validate: survey.ComposeValidators(survey.Required, validateWebhookURL),
		})
	}
	if answers.ThemeColor == "" {
		questions = append(questions, &survey.Question{
			Name:   "themeColor",
			Prompt: &survey.Input{Message: "Theme color:", Default: config.DefaultThemeColor},
		})
	}

	if err := survey.Ask(questions, answers); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

func validateWebhookURL(ans interface{}) error {
	s, _ := ans.(string)
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an http(s) URL", s)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initProject, "project", "", "Name of the project shown in notifications")
	initCmd.Flags().StringVar(&initTeamsURL, "teams-url", "", "Incoming webhook URL")
	initCmd.Flags().StringVar(&initThemeColor, "theme-color", "", "Card accent color as hex (default 0075FF)")
	initCmd.Flags().StringVar(&initFormat, "format", "", "Notification format: card, text or discord")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Replace an existing config file")
}
