// Package notify builds deployment notifications and posts them to a
// webhook.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dimasma0305/teams-notifier/internal/notifier/config"
	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
)

// Fact is a name/value row of a notification
type Fact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Deployment is everything a notification says about one deploy
type Deployment struct {
	ProjectName string
	URL         string
	DeployedAt  time.Time
	ThemeColor  string
	Commits     []Fact
}

// NewDeployment fills a Deployment from the project config
func NewDeployment(cfg *config.Config, url string, commits []Fact, at time.Time) Deployment {
	return Deployment{
		ProjectName: cfg.ProjectName,
		URL:         url,
		DeployedAt:  at,
		ThemeColor:  cfg.ThemeColor(),
		Commits:     commits,
	}
}

// Summary is the one-line description of the deployment
func (d Deployment) Summary() string {
	return fmt.Sprintf("A new version of the %s site was deployed to %s", d.ProjectName, d.URL)
}

// Title is the headline of the deployment card
func (d Deployment) Title() string {
	return fmt.Sprintf("**New %s site deployed**", d.ProjectName)
}

// FormatTime renders t like "Oct 18th 3:04pm"
func FormatTime(t time.Time) string {
	return t.Format("Jan") + " " + humanize.Ordinal(t.Day()) + " " + t.Format("3:04pm")
}

// Facts lists the rows shown under the card title
func (d Deployment) Facts() []Fact {
	facts := []Fact{
		{Name: "Date/time uploaded:", Value: FormatTime(d.DeployedAt)},
		{Name: "Link:", Value: fmt.Sprintf("[%s](%s)", d.URL, d.URL)},
	}
	return append(facts, d.Commits...)
}

// Sender delivers a deployment notification
type Sender interface {
	Send(ctx context.Context, d Deployment) error
}

// New returns the sender for the format configured in cfg
func New(cfg *config.Config) (Sender, error) {
	switch cfg.Format() {
	case config.FormatCard:
		return newTeamsSender(cfg.TeamsURL, func(d Deployment) any { return BuildCard(d) }), nil
	case config.FormatText:
		return newTeamsSender(cfg.TeamsURL, func(d Deployment) any { return BuildText(d) }), nil
	case config.FormatDiscord:
		return newDiscordSender(cfg.TeamsURL)
	default:
		return nil, errors.Wrapf(errors.ErrConfigParse, "unknown notification format %q", cfg.Format())
	}
}
