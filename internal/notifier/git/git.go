// Package git turns recent commit subjects into notification facts
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/dimasma0305/teams-notifier/internal/log"
	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
	"github.com/dimasma0305/teams-notifier/internal/notifier/notify"
)

// Summarizer reads commit subjects from a repository
type Summarizer struct {
	repoPath string
	command  func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewSummarizer creates a summarizer for the repository at repoPath
func NewSummarizer(repoPath string) *Summarizer {
	if repoPath == "" {
		repoPath = "."
	}
	return &Summarizer{
		repoPath: repoPath,
		command:  exec.CommandContext,
	}
}

// Commits returns the labeled subjects of the latest count commits. A nil
// count means no summary was requested and git is not run at all; the result
// is then nil rather than empty.
func (s *Summarizer) Commits(ctx context.Context, count *int) ([]notify.Fact, error) {
	if count == nil {
		log.Debug("No commit summary requested")
		return nil, nil
	}
	messages, err := s.Messages(ctx, *count)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		log.Debug("Commit summary requested but no commits were found")
	}
	return Label(messages), nil
}

// Messages runs `git log -n <count> --format=%s` and returns the non-empty
// subject lines, newest first.
func (s *Summarizer) Messages(ctx context.Context, count int) ([]string, error) {
	if count < 0 {
		return nil, errors.Wrapf(errors.ErrUsage, "commit count %d is negative", count)
	}
	if count == 0 {
		return []string{}, nil
	}

	log.InfoH2("Reading the last %d commit(s) from %s", count, s.repoPath)

	//nolint:gosec // G204: arguments are built from a validated integer
	cmd := s.command(ctx, "git", "-C", s.repoPath, "log", "-n", strconv.Itoa(count), "--format=%s")
	cmd.Env = os.Environ()
	output, err := cmd.Output()
	if err != nil {
		detail := err.Error()
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			detail = strings.TrimSpace(string(exitErr.Stderr))
		}
		return nil, errors.Kind(errors.ErrGitLog, fmt.Errorf("%s", detail))
	}

	lines := strings.Split(strings.ReplaceAll(string(output), "\r\n", "\n"), "\n")
	messages := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		messages = append(messages, line)
		log.InfoH3("%s", line)
	}
	return messages, nil
}

// Label pairs each commit subject with its ordinal label
func Label(messages []string) []notify.Fact {
	facts := make([]notify.Fact, 0, len(messages))
	for i, msg := range messages {
		facts = append(facts, notify.Fact{Name: OrdinalLabel(i), Value: msg})
	}
	return facts
}
