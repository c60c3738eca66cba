package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
	"github.com/dimasma0305/teams-notifier/internal/notifier/notify"
	"github.com/dimasma0305/teams-notifier/internal/notifier/testutil"
)

func TestTestCommand_PostsSample(t *testing.T) {
	env := setup(t, `: > deployed`)
	srv := testutil.WebhookServer(t, http.StatusOK)
	env.writeConfig(t, `{"projectName":"Docs","teamsUrl":"`+srv.URL+`"}`)

	if err := execute(context.Background(), []string{"test", "--url", "https://staging.example.com"}); err != nil {
		t.Fatalf("test command failed: %v", err)
	}

	var card notify.MessageCard
	if err := json.Unmarshal(<-srv.Bodies, &card); err != nil {
		t.Fatalf("posted body is not a card: %v", err)
	}
	if got := card.Sections[1].PotentialAction[0].Targets[0].URI; got != "https://staging.example.com" {
		t.Errorf("action uri = %q", got)
	}
	if !strings.Contains(env.out.String(), "Test notification posted") {
		t.Errorf("expected success message, got:\n%s", env.out.String())
	}
}

func TestTestCommand_FailureExitsNonZero(t *testing.T) {
	env := setup(t, `echo`)
	srv := testutil.WebhookServer(t, http.StatusForbidden)
	env.writeConfig(t, `{"projectName":"Docs","teamsUrl":"`+srv.URL+`"}`)

	err := execute(context.Background(), []string{"test"})
	if errors.ExitCode(err) != errors.ExitFailure {
		t.Fatalf("exit code = %d (err %v), want 1", errors.ExitCode(err), err)
	}
	if !strings.Contains(env.errOut.String(), srv.URL) {
		t.Errorf("failure message should contain the webhook URL, got:\n%s", env.errOut.String())
	}
}
