package domain_test

import (
	"errors"
	"testing"

	"github.com/doeshing/spinit/internal/domain"
)

func TestExitStatusSuccess(t *testing.T) {
	tests := []struct {
		name   string
		status domain.ExitStatus
		want   bool
	}{
		{name: "zero is success", status: domain.StatusSuccess, want: true},
		{name: "one is failure", status: domain.StatusFailure, want: false},
		{name: "arbitrary code is failure", status: domain.StatusFromCode(127), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Success(); got != tt.want {
				t.Fatalf("Success() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusFromError(t *testing.T) {
	if got := domain.StatusFromError(nil); got != domain.StatusSuccess {
		t.Fatalf("StatusFromError(nil) = %d, want success", got)
	}
	if got := domain.StatusFromError(errors.New("boom")); got != domain.StatusFailure {
		t.Fatalf("StatusFromError(err) = %d, want failure", got)
	}
}

func TestExitCodeError(t *testing.T) {
	err := &domain.ExitCodeError{Code: 3}
	if err.Error() != "command exited with code 3" {
		t.Fatalf("Error() = %q", err.Error())
	}

	var target *domain.ExitCodeError
	if !errors.As(error(err), &target) || target.Code != 3 {
		t.Fatal("errors.As should unwrap the exit code")
	}
}
