package cmd

import (
	"strings"

	"github.com/dimasma0305/teams-notifier/internal/log"
	"github.com/dimasma0305/teams-notifier/internal/notifier/config"
	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
)

// normalizeArgs rewrites the two letter -gc alias, which pflag cannot
// register as a shorthand, into --git-commits.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		switch {
		case arg == "-gc":
			out = append(out, "--git-commits")
		case strings.HasPrefix(arg, "-gc="):
			out = append(out, "--git-commits="+strings.TrimPrefix(arg, "-gc="))
		default:
			out = append(out, arg)
		}
	}
	return out
}

// report prints the guidance that belongs to a failed run
func report(err error) {
	switch {
	case errors.Is(err, errors.ErrConfigMissing):
		log.Error("You don't have a config file present!")
		log.ErrorH2("Please create a %s file in the directory where you use this command,", config.FileName)
		log.ErrorH2("or run `teams-notifier init` to create one.")
		log.DebugH2("%v", err)
	case errors.Is(err, errors.ErrConfigParse):
		log.Error("Your config file wasn't able to be parsed correctly.")
		log.ErrorH2("Please fix it and try again.")
		log.ErrorH2("%v", err)
	case errors.Is(err, errors.ErrServiceNotFound):
		log.Error("Sorry, this command requires the deploy service: %v", err)
		log.ErrorH2("Please install it before moving forward.")
	case errors.Is(err, errors.ErrURLNotFound):
		log.Error("The deploy finished but no deployed URL was found in its output.")
		log.ErrorH2("%v", err)
	case errors.Is(err, errors.ErrDeployFailed):
		log.Error("The deploy command failed: %v", err)
	default:
		log.Error("%v", err)
	}
}
