package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/imroc/req/v3"

	"github.com/dimasma0305/teams-notifier/internal/log"
	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
)

const (
	userAgent      = "teams-notifier"
	requestTimeout = 30 * time.Second
)

type teamsSender struct {
	url    string
	client *req.Client
	build  func(Deployment) any
}

func newTeamsSender(url string, build func(Deployment) any) *teamsSender {
	return &teamsSender{
		url:    url,
		client: req.C().SetUserAgent(userAgent).SetTimeout(requestTimeout),
		build:  build,
	}
}

// Send posts the payload once; there is no retry.
func (s *teamsSender) Send(ctx context.Context, d Deployment) error {
	log.Debug("Posting notification to %s", s.url)

	resp, err := s.client.R().
		SetContext(ctx).
		SetBodyJsonMarshal(s.build(d)).
		Post(s.url)
	if err != nil {
		return errors.Kind(errors.ErrNotificationSend, err)
	}
	if !resp.IsSuccessState() {
		return errors.Kind(errors.ErrNotificationSend,
			fmt.Errorf("webhook responded with status %d: %s", resp.StatusCode, strings.TrimSpace(resp.String())))
	}

	log.Debug("Webhook responded with status %d", resp.StatusCode)
	return nil
}
