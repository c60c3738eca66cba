package deploy

import (
	"regexp"

	"github.com/acarl005/stripansi"
	"mvdan.cc/xurls/v2"

	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
)

// deployedURL matches only URLs with an authority part (scheme://).
var deployedURL = mustStrictScheme(`[a-z][a-z0-9+.-]*://`)

func mustStrictScheme(scheme string) *regexp.Regexp {
	re, err := xurls.StrictMatchingScheme(scheme)
	if err != nil {
		panic(err)
	}
	return re
}

// ExtractURL returns the first absolute URL printed in output. Terminal color
// codes around the URL are ignored.
func ExtractURL(output string) (string, error) {
	url := deployedURL.FindString(stripansi.Strip(output))
	if url == "" {
		return "", errors.ErrURLNotFound
	}
	return url, nil
}
