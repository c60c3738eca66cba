package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "config missing", err: Wrap(ErrConfigMissing, "load"), want: ExitFailure},
		{name: "config parse", err: Kind(ErrConfigParse, errors.New("bad json")), want: ExitFailure},
		{name: "service not found", err: ErrServiceNotFound, want: ExitFailure},
		{name: "url not found", err: ErrURLNotFound, want: ExitFailure},
		{name: "usage", err: Wrapf(ErrUsage, "--git-commits %d", -1), want: ExitFailure},
		{name: "notification", err: Kind(ErrNotificationSend, errors.New("status 500")), want: ExitOK},
		{name: "unknown", err: errors.New("boom"), want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestKindMatchesBothErrors(t *testing.T) {
	err := Kind(ErrConfigMissing, fs.ErrNotExist)

	if !Is(err, ErrConfigMissing) {
		t.Error("expected error to match the kind")
	}
	if !Is(err, fs.ErrNotExist) {
		t.Error("expected error to match the cause")
	}
	if got := Kind(ErrUsage, nil); got != ErrUsage {
		t.Errorf("Kind with nil cause = %v, want ErrUsage", got)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
	if got := Wrap(ErrGitLog, "summary").Error(); got != fmt.Sprintf("summary: %s", ErrGitLog) {
		t.Errorf("Wrap() = %q", got)
	}
}
