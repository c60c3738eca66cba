// Package notifier runs a deploy and announces the result on a webhook.
package notifier

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/dimasma0305/teams-notifier/internal/log"
	"github.com/dimasma0305/teams-notifier/internal/notifier/config"
	"github.com/dimasma0305/teams-notifier/internal/notifier/deploy"
	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
	"github.com/dimasma0305/teams-notifier/internal/notifier/git"
	"github.com/dimasma0305/teams-notifier/internal/notifier/notify"
)

// DefaultPath is deployed when no path is given
const DefaultPath = "."

// Options are the per-run choices made on the command line. Empty values
// fall back to the config file and then to the defaults.
type Options struct {
	Service    string
	Path       string
	GitCommits *int
}

// Outcome describes a finished run
type Outcome struct {
	Service  string
	URL      string
	Commits  []notify.Fact
	Notified bool
	// NotifyErr is set when the deploy succeeded but the webhook post did not
	NotifyErr error
}

// Notifier wires the deploy, the commit summary and the webhook together
type Notifier struct {
	Config     *config.Config
	Executor   *deploy.Executor
	Summarizer *git.Summarizer
	Sender     notify.Sender
	Now        func() time.Time
}

// LoadConfig reads path when given, otherwise searches workDir and then the
// directory holding the running executable.
func LoadConfig(path, workDir string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	dirs := []string{workDir}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dirs = append(dirs, filepath.Dir(exe))
	}
	return config.Load(dirs...)
}

// New creates a Notifier for cfg that works in workDir
func New(cfg *config.Config, workDir string) (*Notifier, error) {
	sender, err := notify.New(cfg)
	if err != nil {
		return nil, err
	}
	executor := deploy.NewExecutor()
	executor.Dir = workDir
	return &Notifier{
		Config:     cfg,
		Executor:   executor,
		Summarizer: git.NewSummarizer(workDir),
		Sender:     sender,
		Now:        time.Now,
	}, nil
}

// Resolve merges opts with the options of the config file
func (n *Notifier) Resolve(opts Options) (Options, error) {
	cfgOpts := n.Config.Options
	if cfgOpts == nil {
		cfgOpts = &config.Options{}
	}
	if opts.Service == "" {
		opts.Service = firstNonEmpty(cfgOpts.Service, deploy.DefaultService)
	}
	if opts.Path == "" {
		opts.Path = firstNonEmpty(cfgOpts.Path, DefaultPath)
	}
	if opts.GitCommits == nil {
		opts.GitCommits = cfgOpts.GitCommits
	}
	if opts.GitCommits != nil && *opts.GitCommits < 0 {
		return opts, errors.Wrapf(errors.ErrUsage, "--git-commits must not be negative, got %d", *opts.GitCommits)
	}
	return opts, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Run deploys, reads the deployed URL and posts the notification. A failed
// notification is reported on the console and in Outcome.NotifyErr but is
// not returned as an error.
func (n *Notifier) Run(ctx context.Context, opts Options) (*Outcome, error) {
	opts, err := n.Resolve(opts)
	if err != nil {
		return nil, err
	}
	outcome := &Outcome{Service: opts.Service}

	log.Info("Deploying %s with %s", n.Config.ProjectName, opts.Service)
	result, err := n.Executor.Deploy(ctx, opts.Service, opts.Path)
	if err != nil {
		return outcome, err
	}

	url, err := deploy.ExtractURL(result.Output)
	if err != nil {
		return outcome, errors.Wrapf(err, "%s printed no URL", opts.Service)
	}
	outcome.URL = url
	log.Success("Deployed to %s", url)

	commits, err := n.Summarizer.Commits(ctx, opts.GitCommits)
	if err != nil {
		log.Warn("Skipping commit summary: %v", err)
		commits = nil
	}
	outcome.Commits = commits

	d := notify.NewDeployment(n.Config, url, commits, n.Now())
	if err := n.Sender.Send(ctx, d); err != nil {
		outcome.NotifyErr = err
		ReportNotifyFailure(n.Config.TeamsURL, err)
		return outcome, nil
	}

	outcome.Notified = true
	log.Success("Deployment message posted to %s", webhookName(n.Config))
	return outcome, nil
}

// ReportNotifyFailure prints the failed post together with the webhook URL
// so a wrong teamsUrl is easy to spot.
func ReportNotifyFailure(webhookURL string, err error) {
	log.Error("Sorry, something went wrong with the notification.")
	log.ErrorH2("Please check your teamsUrl and try again.")
	log.ErrorH2("For reference your teams url was %s", log.Highlight(webhookURL))
	log.ErrorH2("%v", err)
}

func webhookName(cfg *config.Config) string {
	if cfg.Format() == config.FormatDiscord {
		return "Discord"
	}
	return "Teams"
}
